// Command msr reports market shares of product categories across
// marketplaces and years.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path"

	"github.com/etnz/marketshare/cmd"
	"github.com/google/subcommands"
)

func main() {
	log.SetFlags(0)
	if err := cmd.RegisterFlags(flag.CommandLine); err != nil {
		log.Fatal(err)
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	cmd.Completion(commander, flag.CommandLine).Complete("msr")

	flag.Parse()

	if name := flag.Arg(0); name != "" && !registered(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

func registered(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		found = found || cmd.Name() == name
	})
	return found
}
