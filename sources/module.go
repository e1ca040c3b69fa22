package sources

import (
	"github.com/reusee/dscope"
	"github.com/reusee/terse/logs"
	"github.com/reusee/terse/nets"
)

type Module struct {
	dscope.Module
	Logs logs.Module
	Nets nets.Module
}
