package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/terse/cmds"
	"github.com/reusee/terse/configs"
	"github.com/reusee/terse/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a starlark REPL on stdin with globals bound.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		mappings := make(starlark.StringDict)
		for name, value := range globals {
			mappings[name] = toStarlarkValue(value)
		}

		thread := &starlark.Thread{
			Name: what,
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, mappings)
	}
}

type TapOnError bool

var tapFlag = cmds.Switch("-tap")

func (Module) TapOnError(
	loader configs.Loader,
) TapOnError {
	return TapOnError(*tapFlag || configs.First[bool](loader, "tap_on_error"))
}
