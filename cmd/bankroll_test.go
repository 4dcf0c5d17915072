package cmd

import (
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
)

func TestBankrollAdd(t *testing.T) {
	*dbFile = filepath.Join(t.TempDir(), "bettrack.db")
	*currency = "PLN"

	c := &bankrollCmd{add: "Side Pot", capital: "250"}
	if status := c.Execute(context.Background(), flag.NewFlagSet("bankroll", flag.ContinueOnError)); status != subcommands.ExitSuccess {
		t.Fatalf("Execute returned %v, want ExitSuccess", status)
	}

	st, err := openStore()
	if err != nil {
		t.Fatalf("openStore returned error: %v", err)
	}
	defer st.Close()

	pools, err := st.Bankrolls()
	if err != nil {
		t.Fatalf("Bankrolls returned error: %v", err)
	}
	// seeded default plus the new pool
	if len(pools) != 2 {
		t.Fatalf("got %d bankrolls, want 2", len(pools))
	}
	added := pools[1]
	if added.Name != "Side Pot" {
		t.Errorf("Name = %q, want %q", added.Name, "Side Pot")
	}
	if !added.InitialCapital.Equal(added.CurrentBalance) {
		t.Errorf("a new bankroll starts with balance %s equal to capital %s", added.CurrentBalance, added.InitialCapital)
	}
}
