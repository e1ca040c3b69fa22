package terseconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/terse/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
