package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bettrack"
	"github.com/etnz/bettrack/renderer"
	"github.com/google/subcommands"
)

type trendCmd struct{}

func (*trendCmd) Name() string     { return "trend" }
func (*trendCmd) Synopsis() string { return "cumulative profit over time" }
func (*trendCmd) Usage() string {
	return `trend

  Shows the cumulative profit of settled wagers in chronological order,
  starting from a zero baseline.
`
}

func (c *trendCmd) SetFlags(f *flag.FlagSet) {}

func (c *trendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	st, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	records, err := st.Wagers()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderTrend(bettrack.TrendSeries(records)))
	return subcommands.ExitSuccess
}
