package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bettrack"
	"github.com/google/subcommands"
)

type settleCmd struct {
	id   int64
	won  bool
	lost bool
}

func (*settleCmd) Name() string     { return "settle" }
func (*settleCmd) Synopsis() string { return "decide a pending wager as won or lost" }
func (*settleCmd) Usage() string {
	return `settle -id <id> -won|-lost

  Decides a pending wager. Settled and void wagers cannot be settled again.
`
}

func (c *settleCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "id of the wager to settle")
	f.BoolVar(&c.won, "won", false, "the wager was won")
	f.BoolVar(&c.lost, "lost", false, "the wager was lost")
}

func (c *settleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 || c.won == c.lost {
		fmt.Fprintln(os.Stderr, "-id and exactly one of -won or -lost are required")
		return subcommands.ExitUsageError
	}
	outcome := bettrack.StatusWon
	if c.lost {
		outcome = bettrack.StatusLost
	}

	st, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	rec, err := st.Wager(c.id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	settled, err := rec.QuickSettle(outcome)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := st.UpdateWager(settled); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating wager: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Settled wager %d as %s (%s)\n", settled.ID, settled.Status, settled.Profit().SignedString())
	return subcommands.ExitSuccess
}
