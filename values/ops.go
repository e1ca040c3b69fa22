package values

import "fmt"

// BinaryOp computes left OP right.
type BinaryOp struct {
	Name string
	Func func(left, right Value) (Value, error)
}

var (
	OpAdd         = BinaryOp{"+", Add}
	OpSub         = BinaryOp{"-", Sub}
	OpMul         = BinaryOp{"*", Mul}
	OpDiv         = BinaryOp{"/", Div}
	OpEqual       = BinaryOp{"==", Equal}
	OpNotEqual    = BinaryOp{"!=", NotEqual}
	OpLessThan    = BinaryOp{"<", LessThan}
	OpGreaterThan = BinaryOp{">", GreaterThan}
	OpIndex       = BinaryOp{"[]", Index}
)

func mismatch(op string, left, right Value) error {
	return fmt.Errorf("%w: %s %s %s", ErrTypeMismatch, left.Type(), op, right.Type())
}

func ints(op string, left, right Value) (Int, Int, error) {
	l, ok := left.(Int)
	if !ok {
		return 0, 0, mismatch(op, left, right)
	}
	r, ok := right.(Int)
	if !ok {
		return 0, 0, mismatch(op, left, right)
	}
	return l, r, nil
}

// Add sums two ints, or concatenates when either side is text.
func Add(left, right Value) (Value, error) {
	_, lText := left.(Text)
	_, rText := right.(Text)
	if lText || rText {
		return Text(left.String() + right.String()), nil
	}
	l, r, err := ints("+", left, right)
	if err != nil {
		return nil, err
	}
	return l + r, nil
}

func Sub(left, right Value) (Value, error) {
	l, r, err := ints("-", left, right)
	if err != nil {
		return nil, err
	}
	return l - r, nil
}

func Mul(left, right Value) (Value, error) {
	l, r, err := ints("*", left, right)
	if err != nil {
		return nil, err
	}
	return l * r, nil
}

// Div truncates toward zero.
func Div(left, right Value) (Value, error) {
	l, r, err := ints("/", left, right)
	if err != nil {
		return nil, err
	}
	if r == 0 {
		return nil, fmt.Errorf("%w: %d / 0", ErrDivisionByZero, l)
	}
	return l / r, nil
}

func Equal(left, right Value) (Value, error) {
	if left.Type() != right.Type() {
		return nil, mismatch("==", left, right)
	}
	return Bool(left == right), nil
}

func NotEqual(left, right Value) (Value, error) {
	if left.Type() != right.Type() {
		return nil, mismatch("!=", left, right)
	}
	return Bool(left != right), nil
}

func LessThan(left, right Value) (Value, error) {
	l, r, err := ints("<", left, right)
	if err != nil {
		return nil, err
	}
	return Bool(l < r), nil
}

func GreaterThan(left, right Value) (Value, error) {
	l, r, err := ints(">", left, right)
	if err != nil {
		return nil, err
	}
	return Bool(l > r), nil
}

// Index returns the character of text left at position right, counted in runes.
func Index(left, right Value) (Value, error) {
	idx, ok := right.(Int)
	if !ok {
		return nil, fmt.Errorf("%w: index must be int, got %s", ErrTypeMismatch, right.Type())
	}
	text, ok := left.(Text)
	if !ok {
		return nil, fmt.Errorf("%w: cannot index %s", ErrTypeMismatch, left.Type())
	}
	runes := []rune(string(text))
	if idx < 0 || int(idx) >= len(runes) {
		return nil, fmt.Errorf("%w: %d in %q", ErrIndexRange, idx, string(text))
	}
	return Text(string(runes[idx])), nil
}
