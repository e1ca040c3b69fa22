package vars

import "testing"

func TestFirstNonZero(t *testing.T) {
	if v := FirstNonZero("", "a", "b"); v != "a" {
		t.Fatalf("got %v", v)
	}
	if v := FirstNonZero(0, 0); v != 0 {
		t.Fatalf("got %v", v)
	}
	if v := FirstNonZero[bool](); v {
		t.Fatal()
	}
}

func TestStrToBool(t *testing.T) {
	for str, expected := range map[string]bool{
		"true": true,
		"Y":    true,
		" on ": true,
		"1":    true,
		"no":   false,
		"f":    false,
		"what": false,
	} {
		if got := StrToBool(str); got != expected {
			t.Fatalf("%q: got %v", str, got)
		}
	}
}
