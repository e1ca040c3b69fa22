package terse

import (
	"fmt"

	"github.com/reusee/terse/tokens"
)

var (
	ErrUnmatchedClose   = fmt.Errorf("%w: unmatched body close", tokens.ErrStructural)
	ErrUnclosedBody     = fmt.Errorf("%w: unclosed body", tokens.ErrStructural)
	ErrBreakOutsideLoop = fmt.Errorf("%w: break outside a loop", tokens.ErrStructural)
)
