package values

import "strconv"

// Value is one of Int, Bool or Text.
type Value interface {
	isValue()
	Type() Type
	String() string
}

type Type uint8

const (
	TypeInt Type = iota + 1
	TypeBool
	TypeText
)

func (t Type) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeBool:
		return "bool"
	case TypeText:
		return "text"
	}
	return "invalid"
}

type Int int32

type Bool bool

type Text string

var (
	_ Value = Int(0)
	_ Value = Bool(false)
	_ Value = Text("")
)

func (Int) isValue() {}
func (Bool) isValue() {}
func (Text) isValue() {}

func (Int) Type() Type { return TypeInt }
func (Bool) Type() Type { return TypeBool }
func (Text) Type() Type { return TypeText }

func (i Int) String() string {
	return strconv.FormatInt(int64(i), 10)
}

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

func (t Text) String() string {
	return string(t)
}

// Placeholder is what Print renders for an empty stack.
const Placeholder = "_"
