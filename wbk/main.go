package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/wagerbook/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
)

// completion describes the CLI surface for shell completion. It only needs
// the subcommand names; flags are completed by the subcommands themselves.
var completion = &complete.Command{
	Sub: map[string]*complete.Command{
		"add":     {},
		"rm":      {},
		"tx":      {},
		"reset":   {},
		"daily":   {},
		"monthly": {},
		"summary": {},
		"import":  {},
		"export":  {},
		"fmt":     {},
		"topic":   {},
	},
}

func main() {
	name := path.Base(os.Args[0])
	completion.Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
