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

type statsCmd struct {
	month     string
	bookmaker string
	category  string
}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "aggregate performance with breakdowns" }
func (*statsCmd) Usage() string {
	return `stats [-month <YYYY-MM>] [-bookmaker <name>] [-category <name>]

  Computes profit, yield and win rate over the matching wagers, with
  breakdowns by category and bookmaker. Filters combine; "all" or an empty
  value leaves a dimension open.
`
}

func (c *statsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "month", "", "restrict to one calendar month (YYYY-MM)")
	f.StringVar(&c.bookmaker, "bookmaker", "", "restrict to one bookmaker")
	f.StringVar(&c.category, "category", "", "restrict to one category")
}

func (c *statsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var month bettrack.MonthKey
	if c.month != "" && c.month != bettrack.FilterAll {
		var err error
		if month, err = bettrack.ParseMonthKey(c.month); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}

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
	filter := bettrack.Filter{Month: month, Bookmaker: c.bookmaker, Category: c.category}
	printMarkdown(renderer.RenderStats(bettrack.NewStats(records, filter)))
	return subcommands.ExitSuccess
}
