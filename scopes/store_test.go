package scopes

import (
	"errors"
	"testing"

	"github.com/reusee/terse/tokens"
	"github.com/reusee/terse/values"
)

func TestStore(t *testing.T) {
	s := New()
	if _, ok := s.Get("x"); ok {
		t.Fatal()
	}

	s.Set("x", values.Int(1))
	s.Set("y", values.Text("outer"))
	s.Push()
	if s.Depth() != 2 {
		t.Fatalf("got %d", s.Depth())
	}

	// outer visible
	if v, ok := s.Get("x"); !ok || v != values.Int(1) {
		t.Fatalf("got %v", v)
	}

	// shadow, not overwrite
	s.Set("x", values.Int(2))
	if v, _ := s.Get("x"); v != values.Int(2) {
		t.Fatalf("got %v", v)
	}
	scopes := s.Scopes()
	if scopes[0]["x"] != values.Int(1) || scopes[1]["x"] != values.Int(2) {
		t.Fatalf("got %v", scopes)
	}

	if err := s.Pop(); err != nil {
		t.Fatal(err)
	}
	if v, _ := s.Get("x"); v != values.Int(1) {
		t.Fatalf("got %v", v)
	}
	if v, _ := s.Get("y"); v != values.Text("outer") {
		t.Fatalf("got %v", v)
	}

	if err := s.Pop(); !errors.Is(err, ErrPopGlobal) {
		t.Fatalf("got %v", err)
	}
	if s.Depth() != 1 {
		t.Fatalf("got %d", s.Depth())
	}
}

func TestStoreScopesAreCopies(t *testing.T) {
	s := New()
	s.Set("a", values.Bool(true))
	scopes := s.Scopes()
	scopes[0]["a"] = values.Bool(false)
	if v, _ := s.Get("a"); v != values.Bool(true) {
		t.Fatalf("got %v", v)
	}
}

func TestRegister(t *testing.T) {
	tokenizer := tokens.NewTokenizer(tokens.NewSource("test", `
		#f { 1 }
		#g { 2 }
		#f { 3 }
	`))
	s := New()
	if err := s.Register(tokenizer); err != nil {
		t.Fatal(err)
	}
	if len(s.Functions()) != 2 {
		t.Fatalf("got %v", s.Functions())
	}

	// last definition wins
	pos, ok := s.Function("f")
	if !ok {
		t.Fatal()
	}
	tokenizer.Reset(pos)
	tokenizer.Next()
	tok, _ := tokenizer.Next()
	if tok.Literal != values.Int(3) {
		t.Fatalf("got %v", tok)
	}

	if _, ok := s.Function("h"); ok {
		t.Fatal()
	}

	s = New()
	err := s.Register(tokens.NewTokenizer(tokens.NewSource("test", "#f")))
	if !errors.Is(err, tokens.ErrStructural) {
		t.Fatalf("got %v", err)
	}
}
