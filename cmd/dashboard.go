package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/etnz/bettrack"
	"github.com/etnz/bettrack/renderer"
	"github.com/google/subcommands"
)

type dashboardCmd struct {
	watch bool
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "current month performance and recent activity" }
func (*dashboardCmd) Usage() string {
	return `dashboard [-w]

  Shows the current month count, profit and yield with the latest wagers.
  With -w, keeps running and re-renders whenever the store changes.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.watch, "w", false, "watch the store and re-render on change")
}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	st, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	render := func() subcommands.ExitStatus {
		records, err := st.Wagers()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading ledger: %v\n", err)
			return subcommands.ExitFailure
		}
		d := bettrack.NewDashboard(records, bettrack.ThisMonth(), 5)
		printMarkdown(renderer.RenderDashboard(d))
		return subcommands.ExitSuccess
	}

	if status := render(); status != subcommands.ExitSuccess || !c.watch {
		return status
	}

	// re-render on every store mutation until interrupted.
	changes := make(chan struct{}, 1)
	cancel := st.Subscribe(func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	defer cancel()

	log.Println("watching for changes, interrupt to quit")
	for range changes {
		if status := render(); status != subcommands.ExitSuccess {
			return status
		}
	}
	return subcommands.ExitSuccess
}
