package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteCmd struct {
	id  int64
	yes bool
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a wager from the ledger" }
func (*deleteCmd) Usage() string {
	return `delete -id <id> [-y]

  Deletes a wager after confirmation. -y skips the prompt.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "id of the wager to delete")
	f.BoolVar(&c.yes, "y", false, "do not ask for confirmation")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	rec, err := st.Wager(c.id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	prompt := fmt.Sprintf("Delete wager %d (%s, %s, %s)?", rec.ID, rec.Bookmaker, rec.Category, rec.Stake)
	if !c.yes && !confirm(prompt) {
		fmt.Println("Aborted.")
		return subcommands.ExitSuccess
	}
	if err := st.DeleteWager(c.id); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting wager: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted wager %d\n", c.id)
	return subcommands.ExitSuccess
}
