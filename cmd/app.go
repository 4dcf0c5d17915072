// Package cmd implements the CLI application to manage the betting ledger.
package cmd

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/bettrack"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// Commands lists every subcommand of the application, for registration by a
// main package and for shell completion.
var Commands = []subcommands.Command{
	&addCmd{},
	&editCmd{},
	&settleCmd{},
	&deleteCmd{},
	&dashboardCmd{},
	&historyCmd{},
	&statsCmd{},
	&trendCmd{},
	&exportCmd{},
	&importCmd{},
	&bankrollCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dbFile = flag.String("db", envOr("BT_DB_FILE", "bettrack.db"), "Path to the ledger database file")
var currency = flag.String("currency", envOr("BT_CURRENCY", "PLN"), "Reporting currency code")

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

// openStore opens the app database, creating and seeding it on first use.
func openStore() (*bettrack.SQLiteStore, error) {
	if _, err := os.Stat(*dbFile); errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, database does not exist, creating an empty one instead")
	}
	return bettrack.OpenStore(*dbFile, *currency)
}

// printMarkdown renders markdown on the terminal, falling back to the raw
// text when rendering is not possible.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// confirm asks a yes/no question on the terminal, defaulting to no.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "y" || line == "yes"
}

// parseAmount parses a decimal amount in the app reporting currency.
func parseAmount(str string) (bettrack.Money, error) {
	return bettrack.ParseMoney(str, *currency)
}

func parseOdds(str string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(str)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid odds %q: %w", str, err)
	}
	return v, nil
}
