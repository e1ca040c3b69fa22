package tokens

import (
	"errors"
	"fmt"
	"iter"
	"unicode"
)

var ErrMissingFunctionName = fmt.Errorf("%w: missing function name", ErrStructural)

type Definition struct {
	Name string
	// Body is where a call jumps to; the next token there opens the function body.
	Body Pos
	At   Pos
}

// Definitions scans the whole source for function definitions.
// The scan is flat: definitions nested in other bodies are found too.
// The cursor is back at the start when the iteration ends.
func (t *Tokenizer) Definitions() iter.Seq2[Definition, error] {
	return func(yield func(Definition, error) bool) {
		t.cursor = 0
		defer func() {
			t.cursor = 0
		}()

		for t.cursor < len(t.runes) {
			r := t.runes[t.cursor]
			switch {

			case t.hasPrefix("//"):
				t.skipComment()

			case r == '"' || r == '\'':
				end := t.closingQuote(r)
				if end < 0 {
					// reported when the literal is executed
					return
				}
				t.cursor = end + 1

			case r == '#':
				at := Pos{offset: t.cursor}
				t.cursor++
				for t.cursor < len(t.runes) && unicode.IsSpace(t.runes[t.cursor]) {
					t.cursor++
				}
				name := t.readName()
				if name == "" {
					yield(Definition{}, WithPos(ErrMissingFunctionName, t.source, at))
					return
				}
				if err := t.Seek(BodyOpen); errors.Is(err, ErrNotFound) {
					yield(Definition{}, WithPos(fmt.Errorf("%w: function %s", ErrMissingBody, name), t.source, at))
					return
				} else if err != nil {
					yield(Definition{}, err)
					return
				}
				if !yield(Definition{
					Name: name,
					Body: t.Mark(),
					At:   at,
				}, nil) {
					return
				}

			default:
				t.cursor++
			}
		}
	}
}
