package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/terse/cmds"
	"github.com/reusee/terse/modes"
)

var programs = cmds.Collect[string]("run")

func main() {
	cmds.Execute(os.Args[1:])

	if len(*programs) == 0 {
		fmt.Fprintln(os.Stderr, "usage: terse [flags] run <file|url|-> [run ...]")
		cmds.GlobalExecutor.PrintUsage(os.Stderr)
		os.Exit(2)
	}

	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		runPrograms RunPrograms,
	) {
		if err := runPrograms(context.Background(), *programs); err != nil {
			fmt.Fprint(os.Stderr, err)
			fmt.Fprintln(os.Stderr)
			os.Exit(1)
		}
	})
}
