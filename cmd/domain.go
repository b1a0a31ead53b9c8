package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/marketshare/renderer"
	"github.com/google/subcommands"
)

type domainCmd struct{}

func (*domainCmd) Name() string     { return "domain" }
func (*domainCmd) Synopsis() string { return "list the marketplaces, years and categories of the feed" }
func (*domainCmd) Usage() string {
	return `msr domain

  Lists the distinct marketplaces, years and categories of the feed, the values
  accepted by the -m, -y and -c selection flags.
`
}

func (*domainCmd) SetFlags(*flag.FlagSet) {}

func (*domainCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	v, err := openView(ctx, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading feed: %v\n", err)
		return subcommands.ExitFailure
	}
	dom := v.d.Domain()
	if global.JSON {
		return printJSON(dom)
	}
	printMarkdown(renderer.DomainMarkdown(dom))
	return subcommands.ExitSuccess
}
