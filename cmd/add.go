package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bettrack"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addCmd struct {
	date      string
	bookmaker string
	category  string
	stake     string
	odds      string
	ret       string
	notes     string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new wager" }
func (*addCmd) Usage() string {
	return `add -b <bookmaker> -c <category> -s <stake> [-o <odds>] [-r <return>] [-d <date>] [-n <notes>]

  Records a wager. An odds based wager starts pending, with a potential
  return of stake times odds unless -r is given. A slots session settles
  immediately from its final return.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "date and time of the wager (default now)")
	f.StringVar(&c.bookmaker, "b", "", "bookmaker or venue")
	f.StringVar(&c.category, "c", "", "category: football, tennis, basketball, esports, slots or free text")
	f.StringVar(&c.stake, "s", "", "amount staked")
	f.StringVar(&c.odds, "o", "", "decimal odds (ignored for slots)")
	f.StringVar(&c.ret, "r", "", "potential return, or the final return for slots")
	f.StringVar(&c.notes, "n", "", "free notes")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.bookmaker == "" || c.category == "" || c.stake == "" {
		fmt.Fprintln(os.Stderr, "-b, -c and -s are required")
		return subcommands.ExitUsageError
	}
	if c.odds == "" && !bettrack.OutcomeImmediate(c.category) {
		fmt.Fprintln(os.Stderr, "-o is required for odds based categories")
		return subcommands.ExitUsageError
	}

	on := bettrack.Now()
	if c.date != "" {
		var err error
		if on, err = bettrack.ParseDateTime(c.date); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}
	stake, err := parseAmount(c.stake)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	odds := decimal.NewFromInt(1)
	if c.odds != "" {
		if odds, err = parseOdds(c.odds); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}
	ret := bettrack.M(0, *currency)
	if c.ret != "" {
		if ret, err = parseAmount(c.ret); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}

	rec, err := bettrack.NewWager(on, c.bookmaker, c.category, stake, odds, ret, c.notes)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	st, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	id, err := st.AddWager(rec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording wager: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded wager %d (%s)\n", id, rec.Status)
	return subcommands.ExitSuccess
}
