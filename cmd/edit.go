package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bettrack"
	"github.com/google/subcommands"
)

type editCmd struct {
	id        int64
	date      string
	bookmaker string
	category  string
	stake     string
	odds      string
	ret       string
	notes     string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit an existing wager" }
func (*editCmd) Usage() string {
	return `edit -id <id> [-d <date>] [-b <bookmaker>] [-c <category>] [-s <stake>] [-o <odds>] [-r <return>] [-n <notes>]

  Edits the given fields of a wager. The status is untouched, use 'settle'
  to decide a pending wager; a slots record re-derives its status from the
  edited numbers. The return is never recomputed on edit.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "id of the wager to edit")
	f.StringVar(&c.date, "d", "", "date and time of the wager")
	f.StringVar(&c.bookmaker, "b", "", "bookmaker or venue")
	f.StringVar(&c.category, "c", "", "category")
	f.StringVar(&c.stake, "s", "", "amount staked")
	f.StringVar(&c.odds, "o", "", "decimal odds")
	f.StringVar(&c.ret, "r", "", "potential or final return")
	f.StringVar(&c.notes, "n", "", "free notes")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 {
		fmt.Fprintln(os.Stderr, "-id is required")
		return subcommands.ExitUsageError
	}

	st, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	existing, err := st.Wager(c.id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// only the flags actually given override the existing fields.
	set := make(map[string]bool)
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	edited := existing
	if set["d"] {
		if edited.OccurredAt, err = bettrack.ParseDateTime(c.date); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}
	if set["b"] {
		edited.Bookmaker = c.bookmaker
	}
	if set["c"] {
		edited.Category = c.category
	}
	if set["s"] {
		if edited.Stake, err = parseAmount(c.stake); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}
	if set["o"] {
		if edited.Odds, err = parseOdds(c.odds); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}
	if set["r"] {
		if edited.PotentialReturn, err = parseAmount(c.ret); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}
	if set["n"] {
		edited.Notes = c.notes
	}

	revised, err := bettrack.ReviseWager(existing, edited)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := st.UpdateWager(revised); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating wager: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated wager %d (%s)\n", revised.ID, revised.Status)
	return subcommands.ExitSuccess
}
