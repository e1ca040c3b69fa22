package debugs

import (
	"fmt"

	"github.com/reusee/terse/terse"
	"github.com/reusee/terse/tokens"
	"github.com/reusee/terse/values"
)

func position(source *tokens.Source, pos tokens.Pos) string {
	line, col := source.Position(pos)
	return fmt.Sprintf("%d:%d", line, col)
}

// StateGlobals exposes an interpreter snapshot to a tap session.
func StateGlobals(source *tokens.Source, state terse.State) map[string]any {
	frames := make([]string, 0, len(state.Frames))
	for _, frame := range state.Frames {
		frames = append(frames, fmt.Sprintf("%s at %s", frame, position(source, frame.OpenedAt())))
	}

	functions := make(map[string]string, len(state.Functions))
	for name, pos := range state.Functions {
		functions[name] = position(source, pos)
	}

	return map[string]any{
		"source":    source.Name,
		"stack":     state.Stack,
		"scopes":    state.Scopes,
		"frames":    frames,
		"functions": functions,
		"cursor":    position(source, state.Cursor),
		"steps":     state.Steps,

		// lookup resolves a variable the way an access does, innermost scope first
		"lookup": func(name string) string {
			for i := len(state.Scopes) - 1; i >= 0; i-- {
				if value, ok := state.Scopes[i][name]; ok {
					return value.String()
				}
			}
			return values.Placeholder
		},

		"function": func(name string) string {
			if pos, ok := state.Functions[name]; ok {
				return position(source, pos)
			}
			return ""
		},
	}
}
