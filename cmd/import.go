package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bettrack"
	"github.com/google/subcommands"
)

type importCmd struct {
	input string
	yes   bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the ledger with a JSON backup" }
func (*importCmd) Usage() string {
	return `import -i <file> [-y]

  Validates a JSON backup and, after confirmation, replaces the whole
  ledger with its records. An invalid backup leaves the ledger untouched.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "backup file to read")
	f.BoolVar(&c.yes, "y", false, "do not ask for confirmation")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.input == "" {
		fmt.Fprintln(os.Stderr, "-i is required")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(c.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", c.input, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	records, err := bettrack.ImportWagers(in, *currency)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	prompt := fmt.Sprintf("Replace the whole ledger with %d records from %s?", len(records), c.input)
	if !c.yes && !confirm(prompt) {
		fmt.Println("Aborted.")
		return subcommands.ExitSuccess
	}

	st, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	if err := st.ReplaceWagers(records); err != nil {
		fmt.Fprintf(os.Stderr, "Error replacing ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d wagers from %s\n", len(records), c.input)
	return subcommands.ExitSuccess
}
