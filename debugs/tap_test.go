package debugs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/terse/configs"
	"github.com/reusee/terse/modes"
	"github.com/reusee/terse/values"
)

func TestTap(t *testing.T) {
	dscope.New(
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Call(func(
		tap Tap,
	) {
		// stdin is not interactive under test, the REPL returns at once
		tap(t.Context(), "test", map[string]any{
			"stack": []values.Value{values.Int(42)},
		})
	})
}

func TestTapOnError(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Call(func(
		tapOnError TapOnError,
	) {
		if tapOnError {
			t.Fatal("should be off by default")
		}
	})
}
