package tokens

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrLexical    = errors.New("lexical error")
	ErrStructural = errors.New("structural error")
)

var (
	ErrUnrecognized     = fmt.Errorf("%w: unrecognized character", ErrLexical)
	ErrUnterminatedText = fmt.Errorf("%w: unterminated text literal", ErrLexical)
	ErrIntegerRange     = fmt.Errorf("%w: integer literal out of range", ErrLexical)
	ErrMissingName      = fmt.Errorf("%w: missing name", ErrLexical)

	ErrMissingBody    = fmt.Errorf("%w: missing body", ErrStructural)
	ErrUnbalancedBody = fmt.Errorf("%w: missing closing brace", ErrStructural)
	ErrNotFound       = fmt.Errorf("%w: token not found", ErrStructural)
)

// PosError attaches a source position to an error.
type PosError struct {
	Err    error
	Pos    Pos
	Source *Source
}

func (p PosError) Error() string {
	if p.Source == nil {
		return p.Err.Error()
	}
	line, column := p.Source.Position(p.Pos)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s at %s:%d:%d\n", p.Err.Error(), p.Source.Name, line, column)

	if idx := line - 1; idx >= 0 && idx < len(p.Source.Lines) {
		text := p.Source.Lines[idx]
		sb.WriteString(text)
		sb.WriteString("\n")
		for i, r := range []rune(text) {
			if i >= column-1 {
				break
			}
			if r == '\t' {
				sb.WriteByte('\t')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("^\n")
	}

	return sb.String()
}

func (p PosError) Unwrap() error {
	return p.Err
}

// WithPos wraps err unless it already carries a position.
func WithPos(err error, source *Source, pos Pos) error {
	if err == nil {
		return nil
	}
	var posErr PosError
	if errors.As(err, &posErr) {
		return err
	}
	return PosError{
		Err:    err,
		Pos:    pos,
		Source: source,
	}
}
