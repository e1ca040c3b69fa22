package terse

import (
	"context"
	"errors"
	"fmt"

	"github.com/reusee/terse/tokens"
	"github.com/reusee/terse/values"
)

// Run executes tokens until the source is exhausted or an error occurs.
// A loop that never breaks makes Run never return.
func (i *Interpreter) Run(ctx context.Context) (err error) {
	source := i.tokenizer.Source()
	i.Logger.InfoContext(ctx, "run",
		"source", source.Name,
		"functions", len(i.scopes.Functions()),
	)
	defer func() {
		if err != nil {
			i.Logger.DebugContext(ctx, "run failed",
				"source", source.Name,
				"steps", i.steps,
				"error", err,
			)
			return
		}
		i.Logger.InfoContext(ctx, "run finished",
			"source", source.Name,
			"steps", i.steps,
		)
	}()

	for {
		tok, err := i.tokenizer.Next()
		if err != nil {
			return err
		}
		if tok.Kind == tokens.KindEOF {
			return i.finish(tok)
		}
		i.steps++
		if i.Trace {
			i.Logger.DebugContext(ctx, "step",
				"token", tok.String(),
				"offset", tok.Pos.Offset(),
				"stack", i.stack.Len(),
				"frames", len(i.frames),
			)
		}
		if err := i.step(tok); err != nil {
			return i.fail(tok, err)
		}
	}
}

func (i *Interpreter) fail(tok tokens.Token, err error) error {
	var posErr tokens.PosError
	if errors.As(err, &posErr) {
		return err
	}
	return tokens.WithPos(fmt.Errorf("%s: %w", tok, err), i.tokenizer.Source(), tok.Pos)
}

func (i *Interpreter) finish(eof tokens.Token) error {
	if i.loopPending {
		return i.fail(eof, fmt.Errorf("%w after loop mark", tokens.ErrMissingBody))
	}
	if len(i.frames) > 0 {
		frame := i.frames[len(i.frames)-1]
		return tokens.WithPos(
			fmt.Errorf("%w: %s", ErrUnclosedBody, frame),
			i.tokenizer.Source(),
			frame.OpenedAt(),
		)
	}
	return nil
}

func (i *Interpreter) step(tok tokens.Token) error {
	if i.loopPending && tok.Kind != tokens.KindBodyOpen {
		return fmt.Errorf("%w after loop mark", tokens.ErrMissingBody)
	}

	switch tok.Kind {

	case tokens.KindLiteral:
		i.stack.Push(tok.Literal)

	case tokens.KindAdd:
		return i.stack.Apply(values.OpAdd)
	case tokens.KindSub:
		return i.stack.Apply(values.OpSub)
	case tokens.KindMul:
		return i.stack.Apply(values.OpMul)
	case tokens.KindDiv:
		return i.stack.Apply(values.OpDiv)
	case tokens.KindEqual:
		return i.stack.Apply(values.OpEqual)
	case tokens.KindNotEqual:
		return i.stack.Apply(values.OpNotEqual)
	case tokens.KindLessThan:
		return i.stack.Apply(values.OpLessThan)
	case tokens.KindGreaterThan:
		return i.stack.Apply(values.OpGreaterThan)
	case tokens.KindIndex:
		return i.stack.Apply(values.OpIndex)

	case tokens.KindPrint:
		return i.stack.Print(i.output)
	case tokens.KindPopDiscard:
		_, err := i.stack.Pop()
		return err
	case tokens.KindClearStack:
		i.stack.Clear()

	case tokens.KindAssign:
		value, err := i.stack.Pop()
		if err != nil {
			return err
		}
		i.scopes.Set(tok.Name, value)

	case tokens.KindAccess:
		return i.access(tok)

	case tokens.KindConditional:
		return i.conditional()

	case tokens.KindBodyOpen:
		i.open(tok)
	case tokens.KindBodyClose:
		return i.close()
	case tokens.KindLoop:
		i.loopPending = true
	case tokens.KindBreak:
		return i.breakOut()

	case tokens.KindElse, tokens.KindDefine:
		// an else after a taken branch, or a definition met in normal flow: skip the body
		if err := i.tokenizer.Seek(tokens.BodyOpen); errors.Is(err, tokens.ErrNotFound) {
			return fmt.Errorf("%w after %s", tokens.ErrMissingBody, tok.Kind)
		} else if err != nil {
			return err
		}
		return i.tokenizer.SkipBody()

	default:
		panic(fmt.Errorf("unexpected token kind %v", tok.Kind))
	}

	return nil
}

func (i *Interpreter) access(tok tokens.Token) error {
	if value, ok := i.scopes.Get(tok.Name); ok {
		i.stack.Push(value)
		return nil
	}
	body, ok := i.scopes.Function(tok.Name)
	if !ok {
		return fmt.Errorf("%w: %s at scope depth %d", values.ErrUnknownName, tok.Name, i.scopes.Depth())
	}
	i.callReturn = i.tokenizer.Mark()
	i.callName = tok.Name
	i.callPending = true
	i.tokenizer.Reset(body)
	i.scopes.Push()
	return nil
}

func (i *Interpreter) conditional() error {
	value, err := i.stack.Pop()
	if err != nil {
		return err
	}
	b, ok := value.(values.Bool)
	if !ok {
		return fmt.Errorf("%w: conditional needs bool, got %s", values.ErrTypeMismatch, value.Type())
	}
	if b {
		return nil
	}
	if err := i.tokenizer.SkipBody(); err != nil {
		return err
	}
	next, err := i.tokenizer.Peek()
	if err != nil {
		return err
	}
	if next.Kind == tokens.KindElse {
		// the body after the else runs as a plain body
		if _, err := i.tokenizer.Next(); err != nil {
			return err
		}
		body, err := i.tokenizer.Peek()
		if err != nil {
			return err
		}
		if body.Kind != tokens.KindBodyOpen {
			return tokens.WithPos(
				fmt.Errorf("%w: expecting {, got %s", tokens.ErrMissingBody, body),
				i.tokenizer.Source(),
				body.Pos,
			)
		}
	}
	return nil
}

func (i *Interpreter) open(tok tokens.Token) {
	switch {
	case i.loopPending:
		i.frames = append(i.frames, LoopFrame{
			Open:   tok.Pos,
			Resume: i.tokenizer.Mark(),
		})
		i.loopPending = false
	case i.callPending:
		i.frames = append(i.frames, FunctionFrame{
			Name:   i.callName,
			Open:   tok.Pos,
			Return: i.callReturn,
		})
		i.callPending = false
	default:
		i.frames = append(i.frames, PlainFrame{
			Open: tok.Pos,
		})
	}
}

func (i *Interpreter) popFrame() {
	i.frames[len(i.frames)-1] = nil
	i.frames = i.frames[:len(i.frames)-1]
}

func (i *Interpreter) close() error {
	if len(i.frames) == 0 {
		return ErrUnmatchedClose
	}
	switch frame := i.frames[len(i.frames)-1].(type) {
	case PlainFrame:
		i.popFrame()
	case LoopFrame:
		i.tokenizer.Reset(frame.Resume)
	case FunctionFrame:
		i.tokenizer.Reset(frame.Return)
		i.popFrame()
		return i.scopes.Pop()
	}
	return nil
}

func (i *Interpreter) breakOut() error {
	for len(i.frames) > 0 {
		switch frame := i.frames[len(i.frames)-1].(type) {
		case PlainFrame:
			i.popFrame()
		case LoopFrame:
			i.tokenizer.Reset(frame.Open)
			if err := i.tokenizer.SkipBody(); err != nil {
				return err
			}
			i.popFrame()
			return nil
		case FunctionFrame:
			// acts as a return
			i.tokenizer.Reset(frame.Return)
			i.popFrame()
			return i.scopes.Pop()
		}
	}
	return ErrBreakOutsideLoop
}
