package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bettrack"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the whole ledger to a JSON backup" }
func (*exportCmd) Usage() string {
	return `export [-o <file>]

  Writes every wager to a JSON backup file. The default file name carries
  today's date.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "backup file to write (default bettrack-backup-<date>.json)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.output == "" {
		c.output = bettrack.BackupFilename(bettrack.Now())
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

	out, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := bettrack.ExportWagers(out, records); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing backup: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported %d wagers to %s\n", len(records), c.output)
	return subcommands.ExitSuccess
}
