package tokens

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/reusee/terse/values"
)

// Tokenizer produces tokens on demand from a cursor into its source.
// Moving the cursor with Reset is how control flow jumps.
type Tokenizer struct {
	source *Source
	runes  []rune
	cursor int
}

func NewTokenizer(source *Source) *Tokenizer {
	return &Tokenizer{
		source: source,
		runes:  source.runes,
	}
}

func (t *Tokenizer) Source() *Source {
	return t.source
}

// Mark captures the cursor.
func (t *Tokenizer) Mark() Pos {
	return Pos{offset: t.cursor}
}

// Reset restores a cursor captured by Mark or taken from a token.
func (t *Tokenizer) Reset(pos Pos) {
	t.cursor = pos.offset
}

var singles = map[rune]Kind{
	'<': KindLessThan,
	'>': KindGreaterThan,
	'+': KindAdd,
	'-': KindSub,
	'.': KindPrint,
	'*': KindMul,
	'/': KindDiv,
	'?': KindConditional,
	',': KindPopDiscard,
	';': KindClearStack,
	'{': KindBodyOpen,
	'}': KindBodyClose,
	'~': KindLoop,
	'$': KindBreak,
	':': KindElse,
	'#': KindDefine,
}

var pairs = []struct {
	text string
	kind Kind
}{
	{"==", KindEqual},
	{"!=", KindNotEqual},
	{"[]", KindIndex},
}

// Next consumes one token. At the end of the source it returns a KindEOF token.
func (t *Tokenizer) Next() (Token, error) {
	for t.cursor < len(t.runes) {
		r := t.runes[t.cursor]
		start := Pos{offset: t.cursor}

		switch {
		case unicode.IsSpace(r):
			t.cursor++
			continue
		case t.hasPrefix("//"):
			t.skipComment()
			continue
		case r >= '0' && r <= '9':
			return t.lexInteger(start)
		case t.hasPrefix("true"):
			t.cursor += 4
			return Token{Kind: KindLiteral, Literal: values.Bool(true), Pos: start}, nil
		case t.hasPrefix("false"):
			t.cursor += 5
			return Token{Kind: KindLiteral, Literal: values.Bool(false), Pos: start}, nil
		case r == '"' || r == '\'':
			return t.lexText(r, start)
		}

		for _, pair := range pairs {
			if t.hasPrefix(pair.text) {
				t.cursor += 2
				return Token{Kind: pair.kind, Pos: start}, nil
			}
		}

		if r == '=' {
			t.cursor++
			name := t.readName()
			if name == "" {
				return Token{}, WithPos(fmt.Errorf("%w: assignment needs a name after =", ErrMissingName), t.source, start)
			}
			return Token{Kind: KindAssign, Name: name, Pos: start}, nil
		}

		if kind, ok := singles[r]; ok {
			t.cursor++
			return Token{Kind: kind, Pos: start}, nil
		}

		if unicode.IsLetter(r) {
			return Token{Kind: KindAccess, Name: t.readName(), Pos: start}, nil
		}

		return Token{}, WithPos(fmt.Errorf("%w: %q", ErrUnrecognized, r), t.source, start)
	}

	return Token{Kind: KindEOF, Pos: Pos{offset: len(t.runes)}}, nil
}

// Peek returns the next token without moving the cursor.
func (t *Tokenizer) Peek() (Token, error) {
	mark := t.cursor
	tok, err := t.Next()
	t.cursor = mark
	return tok, err
}

// Seek moves the cursor to just before the next token that is the same as target.
func (t *Tokenizer) Seek(target Token) error {
	for {
		mark := t.cursor
		tok, err := t.Next()
		if err != nil {
			return err
		}
		if tok.Kind == KindEOF {
			return WithPos(fmt.Errorf("%w: %s", ErrNotFound, target), t.source, tok.Pos)
		}
		if tok.Same(target) {
			t.cursor = mark
			return nil
		}
	}
}

// SkipBody consumes the next token, which must open a body, and everything up to its matching close.
func (t *Tokenizer) SkipBody() error {
	open, err := t.Next()
	if err != nil {
		return err
	}
	if open.Kind != KindBodyOpen {
		return WithPos(fmt.Errorf("%w: expecting {, got %s", ErrMissingBody, open), t.source, open.Pos)
	}
	for depth := 1; depth > 0; {
		tok, err := t.Next()
		if err != nil {
			return err
		}
		switch tok.Kind {
		case KindEOF:
			return WithPos(ErrUnbalancedBody, t.source, open.Pos)
		case KindBodyOpen:
			depth++
		case KindBodyClose:
			depth--
		}
	}
	return nil
}

func (t *Tokenizer) hasPrefix(s string) bool {
	i := t.cursor
	for _, r := range s {
		if i >= len(t.runes) || t.runes[i] != r {
			return false
		}
		i++
	}
	return true
}

func (t *Tokenizer) skipComment() {
	for t.cursor < len(t.runes) && t.runes[t.cursor] != '\n' {
		t.cursor++
	}
}

func (t *Tokenizer) readName() string {
	start := t.cursor
	for t.cursor < len(t.runes) && unicode.IsLetter(t.runes[t.cursor]) {
		t.cursor++
	}
	return string(t.runes[start:t.cursor])
}

func (t *Tokenizer) lexInteger(start Pos) (Token, error) {
	for t.cursor < len(t.runes) && t.runes[t.cursor] >= '0' && t.runes[t.cursor] <= '9' {
		t.cursor++
	}
	text := string(t.runes[start.offset:t.cursor])
	n, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return Token{}, WithPos(fmt.Errorf("%w: %s", ErrIntegerRange, text), t.source, start)
	}
	return Token{Kind: KindLiteral, Literal: values.Int(n), Pos: start}, nil
}

func (t *Tokenizer) lexText(quote rune, start Pos) (Token, error) {
	end := t.closingQuote(quote)
	if end < 0 {
		return Token{}, WithPos(ErrUnterminatedText, t.source, start)
	}
	text := string(t.runes[t.cursor+1 : end])
	t.cursor = end + 1
	return Token{Kind: KindLiteral, Literal: values.Text(text), Pos: start}, nil
}

func (t *Tokenizer) closingQuote(quote rune) int {
	for i := t.cursor + 1; i < len(t.runes); i++ {
		if t.runes[i] == quote {
			return i
		}
	}
	return -1
}
