package tokens

import (
	"errors"
	"strings"
	"testing"

	"github.com/reusee/terse/values"
)

func collect(t *testing.T, src string) []Token {
	t.Helper()
	tokenizer := NewTokenizer(NewSource("test", src))
	var ret []Token
	for {
		tok, err := tokenizer.Next()
		if err != nil {
			t.Fatalf("src: %s, err: %v", src, err)
		}
		if tok.Kind == KindEOF {
			return ret
		}
		ret = append(ret, tok)
	}
}

func TestTokenizer(t *testing.T) {
	tests := []struct {
		input  string
		tokens string
	}{
		{"3 4 +", "3 4 +"},
		{"  12\t\n 345  ", "12 345"},
		{`"foo" 'bar'`, `"foo" "bar"`},
		{`"it's" 'say "hi"'`, `"it's" "say \"hi\""`},
		{`"a // b"`, `"a // b"`},
		{"true false", "true false"},
		{"trueish", "true ish"},
		{"1 2 == 1 2 != < >", "1 2 == 1 2 != < >"},
		{`"hello" 1 []`, `"hello" 1 []`},
		{"- * / . ? , ;", "- * / . ? , ;"},
		{"{ } ~ $ : #", "{ } ~ $ : #"},
		{"42 =x x .", "42 =x x ."},
		{"foo.bar", "foo . bar"},
		{"x1", "x 1"},
		{"1 // comment\n2", "1 2"},
		{"// only a comment", ""},
		{"1//2\n3", "1 3"},
		{"8/2", "8 / 2"},
		{"~{1.$}", "~ { 1 . $ }"},
		{"#double { 2 * }", "# double { 2 * }"},
		{"=é ß", "=é ß"},
		{"a==b", "a == b"},
	}

	for _, test := range tests {
		var texts []string
		for _, tok := range collect(t, test.input) {
			texts = append(texts, tok.String())
		}
		if got := strings.Join(texts, " "); got != test.tokens {
			t.Fatalf("input %q: got %s, expected %s", test.input, got, test.tokens)
		}
	}
}

func TestTokenKinds(t *testing.T) {
	toks := collect(t, `1 "a" + =v v [] { $ }`)
	kinds := []Kind{
		KindLiteral, KindLiteral, KindAdd, KindAssign, KindAccess, KindIndex,
		KindBodyOpen, KindBreak, KindBodyClose,
	}
	if len(toks) != len(kinds) {
		t.Fatalf("got %v", toks)
	}
	for i, tok := range toks {
		if tok.Kind != kinds[i] {
			t.Fatalf("%d: got %v", i, tok.Kind)
		}
	}
	if toks[0].Literal != values.Int(1) {
		t.Fatalf("got %#v", toks[0].Literal)
	}
	if toks[1].Literal != values.Text("a") {
		t.Fatalf("got %#v", toks[1].Literal)
	}
	if toks[3].Name != "v" || toks[4].Name != "v" {
		t.Fatalf("got %v %v", toks[3], toks[4])
	}
	if !toks[2].Kind.IsAction() || toks[2].Kind.IsStructural() {
		t.Fatal()
	}
	if !toks[6].Kind.IsStructural() || toks[6].Kind.IsAction() {
		t.Fatal()
	}
	if toks[0].Kind.IsAction() || toks[0].Kind.IsStructural() {
		t.Fatal()
	}
}

func TestTokenPositions(t *testing.T) {
	toks := collect(t, "ab  \"x\"\n12")
	offsets := []int{0, 4, 8}
	for i, tok := range toks {
		if tok.Pos.Offset() != offsets[i] {
			t.Fatalf("%d: got %d", i, tok.Pos.Offset())
		}
	}
}

func TestTokenizerErrors(t *testing.T) {
	tests := []struct {
		input string
		err   error
	}{
		{"1 @", ErrUnrecognized},
		{"!", ErrUnrecognized},
		{"[", ErrUnrecognized},
		{`"abc`, ErrUnterminatedText},
		{`'abc"`, ErrUnterminatedText},
		{"99999999999", ErrIntegerRange},
		{"2147483648", ErrIntegerRange},
		{"= x", ErrMissingName},
		{"=1", ErrMissingName},
	}
	for _, test := range tests {
		tokenizer := NewTokenizer(NewSource("test", test.input))
		var err error
		for {
			var tok Token
			tok, err = tokenizer.Next()
			if err != nil || tok.Kind == KindEOF {
				break
			}
		}
		if !errors.Is(err, test.err) {
			t.Fatalf("input %q: got %v", test.input, err)
		}
		if !errors.Is(err, ErrLexical) {
			t.Fatalf("input %q: got %v", test.input, err)
		}
		var posErr PosError
		if !errors.As(err, &posErr) {
			t.Fatalf("input %q: no position: %v", test.input, err)
		}
	}
}

func TestMaxInt(t *testing.T) {
	toks := collect(t, "2147483647")
	if toks[0].Literal != values.Int(2147483647) {
		t.Fatalf("got %v", toks[0])
	}
}

func TestPeek(t *testing.T) {
	tokenizer := NewTokenizer(NewSource("test", "1 2"))
	tok, err := tokenizer.Peek()
	if err != nil {
		t.Fatal(err)
	}
	if tok.Literal != values.Int(1) {
		t.Fatalf("got %v", tok)
	}
	tok, _ = tokenizer.Next()
	if tok.Literal != values.Int(1) {
		t.Fatalf("got %v", tok)
	}
	tok, _ = tokenizer.Peek()
	if tok.Literal != values.Int(2) {
		t.Fatalf("got %v", tok)
	}
	tokenizer.Next()
	tok, _ = tokenizer.Peek()
	if tok.Kind != KindEOF {
		t.Fatalf("got %v", tok)
	}
}

func TestMarkReset(t *testing.T) {
	tokenizer := NewTokenizer(NewSource("test", "~{ 1 . }"))
	tokenizer.Next()
	tokenizer.Next()
	resume := tokenizer.Mark()
	for range 3 {
		tokenizer.Next()
	}
	tokenizer.Reset(resume)
	tok, _ := tokenizer.Next()
	if tok.Literal != values.Int(1) {
		t.Fatalf("got %v", tok)
	}
}

func TestSeek(t *testing.T) {
	tokenizer := NewTokenizer(NewSource("test", `: "x" 1 { 2 } 3`))
	if err := tokenizer.Seek(BodyOpen); err != nil {
		t.Fatal(err)
	}
	tok, _ := tokenizer.Next()
	if tok.Kind != KindBodyOpen {
		t.Fatalf("got %v", tok)
	}

	if err := tokenizer.Seek(Token{Kind: KindLiteral, Literal: values.Int(3)}); err != nil {
		t.Fatal(err)
	}
	tok, _ = tokenizer.Next()
	if tok.Literal != values.Int(3) {
		t.Fatalf("got %v", tok)
	}

	err := tokenizer.Seek(BodyOpen)
	if !errors.Is(err, ErrNotFound) || !errors.Is(err, ErrStructural) {
		t.Fatalf("got %v", err)
	}
}

func TestSkipBody(t *testing.T) {
	tokenizer := NewTokenizer(NewSource("test", `{ 1 { 2 { } } "}" } 42`))
	if err := tokenizer.SkipBody(); err != nil {
		t.Fatal(err)
	}
	tok, _ := tokenizer.Next()
	if tok.Literal != values.Int(42) {
		t.Fatalf("got %v", tok)
	}

	tokenizer = NewTokenizer(NewSource("test", `{ 1 { 2 }`))
	err := tokenizer.SkipBody()
	if !errors.Is(err, ErrUnbalancedBody) || !errors.Is(err, ErrStructural) {
		t.Fatalf("got %v", err)
	}

	tokenizer = NewTokenizer(NewSource("test", `1 { }`))
	err = tokenizer.SkipBody()
	if !errors.Is(err, ErrMissingBody) {
		t.Fatalf("got %v", err)
	}
}

func TestPosError(t *testing.T) {
	src := "1 2 +\n\t3 @ 4"
	tokenizer := NewTokenizer(NewSource("prog.terse", src))
	var err error
	for err == nil {
		_, err = tokenizer.Next()
	}
	expected := "lexical error: unrecognized character: '@' at prog.terse:2:4\n\t3 @ 4\n\t  ^\n"
	if err.Error() != expected {
		t.Fatalf("got %q", err.Error())
	}

	if WithPos(nil, nil, Pos{}) != nil {
		t.Fatal()
	}
	if again := WithPos(err, nil, Pos{}); again != err {
		t.Fatalf("got %v", again)
	}
	if str := WithPos(ErrMissingBody, nil, Pos{}).Error(); str != ErrMissingBody.Error() {
		t.Fatalf("got %s", str)
	}
}
