package bettrack

import (
	"fmt"
	"strings"
)

// BankrollRecord is a named pool of capital tracked alongside the ledger.
// Balances are bookkeeping only: settlements never adjust them and no
// aggregation report reads them.
type BankrollRecord struct {
	ID             int64
	Name           string // unique
	InitialCapital Money
	CurrentBalance Money
}

// Validate checks that the record is storable.
func (b BankrollRecord) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return fmt.Errorf("bankroll needs a name")
	}
	if b.InitialCapital.IsNegative() {
		return fmt.Errorf("initial capital cannot be negative, got %s", b.InitialCapital)
	}
	return nil
}

// DefaultBankroll is the pool seeded into a fresh store.
func DefaultBankroll(currency string) BankrollRecord {
	capital := M(1000, currency)
	return BankrollRecord{Name: "Main Wallet", InitialCapital: capital, CurrentBalance: capital}
}
