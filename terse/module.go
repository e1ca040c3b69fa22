package terse

import (
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/terse/cmds"
	"github.com/reusee/terse/configs"
	"github.com/reusee/terse/logs"
	"github.com/reusee/terse/tokens"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

// Output is where print writes.
type Output io.Writer

func (Module) Output() Output {
	return os.Stdout
}

type Trace bool

var traceFlag = cmds.Switch("-trace")

func (Module) Trace(
	loader configs.Loader,
) Trace {
	return Trace(*traceFlag || configs.First[bool](loader, "trace"))
}

// NewInterpreter builds an isolated interpreter for source.
type NewInterpreter func(source *tokens.Source) (*Interpreter, error)

func (Module) NewInterpreter(
	logger logs.Logger,
	output Output,
	trace Trace,
) NewInterpreter {
	return func(source *tokens.Source) (*Interpreter, error) {
		interpreter, err := New(source, output)
		if err != nil {
			return nil, err
		}
		interpreter.Logger = logger
		interpreter.Trace = bool(trace)
		return interpreter, nil
	}
}
