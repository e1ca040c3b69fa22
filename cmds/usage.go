package cmds

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

func (e *Executor) PrintUsage(w io.Writer) {
	printCommands(w, e.commands, 0)
}

func printCommands(w io.Writer, commands map[string]*Command, depth int) {
	printed := make(map[*Command]bool)
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if command == nil || printed[command] {
			continue
		}
		printed[command] = true

		var names []string
		for _, n := range slices.Sorted(maps.Keys(commands)) {
			if commands[n] == command {
				names = append(names, n)
			}
		}
		line := strings.Repeat("  ", depth) + strings.Join(names, ", ")
		if command.Func.IsValid() {
			for i := range command.Func.Type().NumIn() {
				line += " <" + command.Func.Type().In(i).String() + ">"
			}
		}
		if command.Description != "" {
			line += "\t" + command.Description
		}
		fmt.Fprintln(w, line)

		if len(command.Subs) > 0 {
			printCommands(w, command.Subs, depth+1)
		}
	}
}
