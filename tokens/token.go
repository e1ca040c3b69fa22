package tokens

import (
	"fmt"

	"github.com/reusee/terse/values"
)

type Token struct {
	Kind    Kind
	Literal values.Value // KindLiteral
	Name    string       // KindAssign, KindAccess
	Pos     Pos          // first character
}

type Kind uint8

const (
	KindEOF Kind = iota

	KindLiteral

	// actions
	KindAdd
	KindSub
	KindMul
	KindDiv
	KindPrint
	KindEqual
	KindNotEqual
	KindLessThan
	KindGreaterThan
	KindConditional
	KindPopDiscard
	KindClearStack
	KindAssign
	KindAccess
	KindIndex

	// structural
	KindBodyOpen
	KindBodyClose
	KindLoop
	KindBreak
	KindElse
	KindDefine
)

var kindNames = [...]string{
	KindEOF:         "end of input",
	KindLiteral:     "literal",
	KindAdd:         "+",
	KindSub:         "-",
	KindMul:         "*",
	KindDiv:         "/",
	KindPrint:       ".",
	KindEqual:       "==",
	KindNotEqual:    "!=",
	KindLessThan:    "<",
	KindGreaterThan: ">",
	KindConditional: "?",
	KindPopDiscard:  ",",
	KindClearStack:  ";",
	KindAssign:      "=",
	KindAccess:      "name",
	KindIndex:       "[]",
	KindBodyOpen:    "{",
	KindBodyClose:   "}",
	KindLoop:        "~",
	KindBreak:       "$",
	KindElse:        ":",
	KindDefine:      "#",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

func (k Kind) IsAction() bool {
	return k >= KindAdd && k <= KindIndex
}

func (k Kind) IsStructural() bool {
	return k >= KindBodyOpen && k <= KindDefine
}

// Same reports whether two tokens are structurally equal, ignoring positions.
func (t Token) Same(other Token) bool {
	return t.Kind == other.Kind &&
		t.Name == other.Name &&
		t.Literal == other.Literal
}

func (t Token) String() string {
	switch t.Kind {
	case KindLiteral:
		if text, ok := t.Literal.(values.Text); ok {
			return fmt.Sprintf("%q", string(text))
		}
		return t.Literal.String()
	case KindAssign:
		return "=" + t.Name
	case KindAccess:
		return t.Name
	}
	return t.Kind.String()
}

var (
	BodyOpen  = Token{Kind: KindBodyOpen}
	BodyClose = Token{Kind: KindBodyClose}
)
