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

type historyCmd struct {
	query string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "list wagers, most recent first" }
func (*historyCmd) Usage() string {
	return `history [-q <term>]

  Lists the whole ledger, most recent first. -q keeps only the wagers whose
  bookmaker, category or notes contain the term, case insensitively.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "search term")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.RenderHistory(bettrack.Search(records, c.query), c.query))
	return subcommands.ExitSuccess
}
