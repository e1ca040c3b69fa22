package main

import (
	"context"

	"github.com/reusee/dscope"
	"github.com/reusee/terse/terse"
	"github.com/reusee/terse/debugs"
	"github.com/reusee/terse/logs"
	"github.com/reusee/terse/sources"
	"github.com/reusee/terse/terseconfigs"
)

type Module struct {
	dscope.Module
	Terse   terse.Module
	Debugs  debugs.Module
	Sources sources.Module
	Configs terseconfigs.Module
}

// RunPrograms runs each program in its own interpreter, in order, stopping at the first failure.
type RunPrograms func(ctx context.Context, refs []string) error

func (Module) RunPrograms(
	load sources.Load,
	newInterpreter terse.NewInterpreter,
	newSpan logs.NewSpan,
	tapOnError debugs.TapOnError,
	tap debugs.Tap,
	logger logs.Logger,
) RunPrograms {
	return func(ctx context.Context, refs []string) error {
		for _, ref := range refs {
			ctx, _ := newSpan(ctx, "")

			source, err := load(ctx, ref)
			if err != nil {
				return logs.WrapSpan(ctx, err)
			}
			interpreter, err := newInterpreter(source)
			if err != nil {
				return logs.WrapSpan(ctx, err)
			}
			if err := interpreter.Run(ctx); err != nil {
				logger.ErrorContext(ctx, "program failed", "source", source.Name)
				if tapOnError {
					tap(ctx, source.Name, debugs.StateGlobals(source, interpreter.State()))
				}
				return logs.WrapSpan(ctx, err)
			}
		}
		return nil
	}
}
