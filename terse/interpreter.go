package terse

import (
	"io"
	"log/slog"
	"slices"

	"github.com/reusee/terse/logs"
	"github.com/reusee/terse/scopes"
	"github.com/reusee/terse/tokens"
	"github.com/reusee/terse/values"
)

// Interpreter executes one program directly from its source text.
// It owns all its state; separate interpreters share nothing.
type Interpreter struct {
	Logger logs.Logger
	// Trace logs every executed token at debug level.
	Trace bool

	tokenizer *tokens.Tokenizer
	stack     values.Stack
	scopes    *scopes.Store
	frames    []Frame
	output    io.Writer

	// set by a loop mark or a function call, consumed by the next body open
	loopPending bool
	callPending bool
	callName    string
	callReturn  tokens.Pos

	steps int
}

// New registers the functions of source. Print writes to output.
func New(source *tokens.Source, output io.Writer) (*Interpreter, error) {
	tokenizer := tokens.NewTokenizer(source)
	store := scopes.New()
	if err := store.Register(tokenizer); err != nil {
		return nil, err
	}
	return &Interpreter{
		Logger:    slog.New(slog.DiscardHandler),
		tokenizer: tokenizer,
		scopes:    store,
		output:    output,
	}, nil
}

// State is a snapshot of an interpreter.
type State struct {
	Stack     []values.Value
	Scopes    []map[string]values.Value
	Frames    []Frame
	Functions map[string]tokens.Pos
	Cursor    tokens.Pos
	Steps     int
}

func (i *Interpreter) State() State {
	return State{
		Stack:     i.stack.Values(),
		Scopes:    i.scopes.Scopes(),
		Frames:    slices.Clone(i.frames),
		Functions: i.scopes.Functions(),
		Cursor:    i.tokenizer.Mark(),
		Steps:     i.steps,
	}
}

func (i *Interpreter) Source() *tokens.Source {
	return i.tokenizer.Source()
}
