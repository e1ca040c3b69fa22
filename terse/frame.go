package terse

import (
	"fmt"

	"github.com/reusee/terse/tokens"
)

// Frame records what the close of an open body must do.
type Frame interface {
	isFrame()
	OpenedAt() tokens.Pos
	String() string
}

// PlainFrame is an ordinary grouping; its close does nothing.
type PlainFrame struct {
	Open tokens.Pos
}

// LoopFrame jumps back to Resume on every close. Only a break removes it.
type LoopFrame struct {
	Open   tokens.Pos
	Resume tokens.Pos
}

// FunctionFrame returns to the call site on close.
type FunctionFrame struct {
	Name   string
	Open   tokens.Pos
	Return tokens.Pos
}

var (
	_ Frame = PlainFrame{}
	_ Frame = LoopFrame{}
	_ Frame = FunctionFrame{}
)

func (PlainFrame) isFrame()    {}
func (LoopFrame) isFrame()     {}
func (FunctionFrame) isFrame() {}

func (p PlainFrame) OpenedAt() tokens.Pos    { return p.Open }
func (l LoopFrame) OpenedAt() tokens.Pos     { return l.Open }
func (f FunctionFrame) OpenedAt() tokens.Pos { return f.Open }

func (PlainFrame) String() string {
	return "body"
}

func (LoopFrame) String() string {
	return "loop"
}

func (f FunctionFrame) String() string {
	return fmt.Sprintf("function %s", f.Name)
}
