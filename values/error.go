package values

import (
	"errors"
	"fmt"
)

// ErrSemantic is the class of every error raised while applying an operator.
var ErrSemantic = errors.New("semantic error")

var (
	ErrTypeMismatch   = fmt.Errorf("%w: type mismatch", ErrSemantic)
	ErrDivisionByZero = fmt.Errorf("%w: division by zero", ErrSemantic)
	ErrIndexRange     = fmt.Errorf("%w: index out of range", ErrSemantic)
	ErrStackUnderflow = fmt.Errorf("%w: stack underflow", ErrSemantic)
	ErrUnknownName    = fmt.Errorf("%w: unknown name", ErrSemantic)
)
