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

type bankrollCmd struct {
	add     string
	capital string
	set     string
	balance string
}

func (*bankrollCmd) Name() string     { return "bankroll" }
func (*bankrollCmd) Synopsis() string { return "list and manage bankrolls" }
func (*bankrollCmd) Usage() string {
	return `bankroll [-add <name> -capital <amount>] [-set <name> -balance <amount>]

  Without flags, lists the bankrolls with their balance and change since the
  initial capital. -add creates a new bankroll, -set records a new balance.
`
}

func (c *bankrollCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.add, "add", "", "name of a new bankroll to create")
	f.StringVar(&c.capital, "capital", "", "initial capital of the new bankroll")
	f.StringVar(&c.set, "set", "", "name of the bankroll to update")
	f.StringVar(&c.balance, "balance", "", "new balance of the bankroll")
}

func (c *bankrollCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	st, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	switch {
	case c.add != "":
		if c.capital == "" {
			fmt.Fprintln(os.Stderr, "-capital is required with -add")
			return subcommands.ExitUsageError
		}
		capital, err := parseAmount(c.capital)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		b := bettrack.BankrollRecord{Name: c.add, InitialCapital: capital, CurrentBalance: capital}
		if _, err := st.AddBankroll(b); err != nil {
			fmt.Fprintf(os.Stderr, "Error adding bankroll: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Added bankroll %q with %s\n", c.add, capital)
		return subcommands.ExitSuccess

	case c.set != "":
		if c.balance == "" {
			fmt.Fprintln(os.Stderr, "-balance is required with -set")
			return subcommands.ExitUsageError
		}
		balance, err := parseAmount(c.balance)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		if err := st.SetBankrollBalance(c.set, balance); err != nil {
			fmt.Fprintf(os.Stderr, "Error updating bankroll: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Bankroll %q balance set to %s\n", c.set, balance)
		return subcommands.ExitSuccess
	}

	bankrolls, err := st.Bankrolls()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading bankrolls: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderBankrolls(bankrolls))
	return subcommands.ExitSuccess
}
