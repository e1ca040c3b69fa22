package values

import (
	"fmt"
	"io"
	"slices"
)

type Stack struct {
	values []Value
}

func (s *Stack) Push(v Value) {
	s.values = append(s.values, v)
}

func (s *Stack) Pop() (Value, error) {
	if len(s.values) == 0 {
		return nil, ErrStackUnderflow
	}
	v := s.values[len(s.values)-1]
	s.values[len(s.values)-1] = nil
	s.values = s.values[:len(s.values)-1]
	return v, nil
}

func (s *Stack) Top() (Value, bool) {
	if len(s.values) == 0 {
		return nil, false
	}
	return s.values[len(s.values)-1], true
}

func (s *Stack) Len() int {
	return len(s.values)
}

func (s *Stack) Clear() {
	clear(s.values)
	s.values = s.values[:0]
}

// Values returns a copy, bottom first.
func (s *Stack) Values() []Value {
	return slices.Clone(s.values)
}

// Apply pops the right operand, then the left one, and pushes left OP right.
func (s *Stack) Apply(op BinaryOp) error {
	right, err := s.Pop()
	if err != nil {
		return fmt.Errorf("%s: %w", op.Name, err)
	}
	left, err := s.Pop()
	if err != nil {
		return fmt.Errorf("%s: %w", op.Name, err)
	}
	result, err := op.Func(left, right)
	if err != nil {
		return err
	}
	s.Push(result)
	return nil
}

// Print writes the top value, or the placeholder when empty, and a newline.
func (s *Stack) Print(w io.Writer) error {
	text := Placeholder
	if top, ok := s.Top(); ok {
		text = top.String()
	}
	_, err := fmt.Fprintln(w, text)
	return err
}
