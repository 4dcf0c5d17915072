package bettrack

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Status is the settlement state of a wager. A record holds exactly one
// status at a time.
type Status string

const (
	StatusPending Status = "pending"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
	StatusVoid    Status = "void"
)

// ParseStatus parses a status, case insensitively.
func ParseStatus(str string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(str)))
	switch s {
	case StatusPending, StatusWon, StatusLost, StatusVoid:
		return s, nil
	}
	return "", fmt.Errorf("invalid status %q: want pending, won, lost or void", str)
}

// Settled reports whether the status is a decided outcome. A void wager is
// cancelled, not decided.
func (s Status) Settled() bool { return s == StatusWon || s == StatusLost }

// Suggested categories. Category remains free text; these are only the
// common values offered by the UI and the completion.
const (
	Football   = "football"
	Tennis     = "tennis"
	Basketball = "basketball"
	Esports    = "esports"
	Slots      = "slots"
)

var SuggestedCategories = []string{Football, Tennis, Basketball, Esports, Slots}

// OutcomeImmediate reports whether the category resolves at entry time.
// A slots session has no pending phase: the record already knows what came
// back when it is written down.
func OutcomeImmediate(category string) bool {
	return strings.EqualFold(strings.TrimSpace(category), Slots)
}

// WagerRecord is a single ledger entry: one bet or one gambling session.
type WagerRecord struct {
	ID              int64
	OccurredAt      DateTime
	Stake           Money
	Odds            decimal.Decimal // decimal multiplier, 1.0 for outcome immediate categories
	PotentialReturn Money           // authoritative once set; the final return for settled records
	Bookmaker       string
	Category        string
	Status          Status
	Notes           string
}

var oddsOne = decimal.NewFromInt(1)

// NewWager builds a record ready to be stored.
//
// Odds based categories start pending; when no potential return is given it
// is computed as stake times odds, rounded to 2 decimals. This is the only
// moment the return is ever auto filled.
//
// Outcome immediate categories settle on the spot: odds are forced to 1.0
// and the status is derived from stake and return.
func NewWager(on DateTime, bookmaker, category string, stake Money, odds decimal.Decimal, potentialReturn Money, notes string) (WagerRecord, error) {
	r := WagerRecord{
		OccurredAt:      on,
		Stake:           stake,
		Odds:            odds,
		PotentialReturn: potentialReturn,
		Bookmaker:       strings.TrimSpace(bookmaker),
		Category:        strings.TrimSpace(category),
		Notes:           notes,
	}
	if OutcomeImmediate(r.Category) {
		r.Odds = oddsOne
		r.Status = DeriveOutcome(r.Stake, r.PotentialReturn)
	} else {
		if r.PotentialReturn.IsZero() {
			r.PotentialReturn = stake.Mul(odds).Round(2)
		}
		r.Status = StatusPending
	}
	if err := r.Validate(); err != nil {
		return WagerRecord{}, err
	}
	return r, nil
}

// ReviseWager applies an edit to an existing record.
//
// The id is immutable. An odds based record keeps its current status, use
// [WagerRecord.QuickSettle] to decide it; the return is never recomputed on
// edit, what was saved is authoritative. An outcome immediate record
// re-derives its status from the edited numbers.
func ReviseWager(existing, edited WagerRecord) (WagerRecord, error) {
	edited.ID = existing.ID
	edited.Bookmaker = strings.TrimSpace(edited.Bookmaker)
	edited.Category = strings.TrimSpace(edited.Category)
	if OutcomeImmediate(edited.Category) {
		edited.Odds = oddsOne
		edited.Status = DeriveOutcome(edited.Stake, edited.PotentialReturn)
	} else {
		edited.Status = existing.Status
	}
	if err := edited.Validate(); err != nil {
		return WagerRecord{}, err
	}
	return edited, nil
}

// QuickSettle decides a pending record as won or lost. Any other transition
// is rejected.
func (r WagerRecord) QuickSettle(outcome Status) (WagerRecord, error) {
	if r.Status != StatusPending {
		return WagerRecord{}, fmt.Errorf("wager %d is %s: only a pending wager can be settled", r.ID, r.Status)
	}
	if outcome != StatusWon && outcome != StatusLost {
		return WagerRecord{}, fmt.Errorf("invalid settle outcome %q: want won or lost", outcome)
	}
	r.Status = outcome
	return r, nil
}

// DeriveOutcome decides the status of an outcome immediate record from its
// numbers, by exact decimal comparison: more back than in is won, less is
// lost, break even is void.
func DeriveOutcome(stake, finalReturn Money) Status {
	switch {
	case finalReturn.GreaterThan(stake):
		return StatusWon
	case finalReturn.LessThan(stake):
		return StatusLost
	default:
		return StatusVoid
	}
}

// Validate checks that the record is storable.
func (r WagerRecord) Validate() error {
	if r.OccurredAt.IsZero() {
		return fmt.Errorf("wager needs a date")
	}
	if !r.Stake.IsPositive() {
		return fmt.Errorf("stake must be positive, got %s", r.Stake)
	}
	if !r.Odds.IsPositive() {
		return fmt.Errorf("odds must be positive, got %s", r.Odds)
	}
	if r.PotentialReturn.IsNegative() {
		return fmt.Errorf("potential return cannot be negative, got %s", r.PotentialReturn)
	}
	switch r.Status {
	case StatusPending, StatusWon, StatusLost, StatusVoid:
	default:
		return fmt.Errorf("invalid status %q", r.Status)
	}
	return nil
}

// Settled reports whether the record has a decided outcome.
func (r WagerRecord) Settled() bool { return r.Status.Settled() }

// Profit returns the realized profit of the record: return minus stake when
// won, the lost stake when lost, and zero for pending and void records.
func (r WagerRecord) Profit() Money {
	switch r.Status {
	case StatusWon:
		return r.PotentialReturn.Sub(r.Stake)
	case StatusLost:
		return r.Stake.Neg()
	default:
		return M(0, r.Stake.Currency())
	}
}

// Equal reports whether two records hold the same data.
func (r WagerRecord) Equal(o WagerRecord) bool {
	return r.ID == o.ID &&
		r.OccurredAt.Equal(o.OccurredAt) &&
		r.Stake.Equal(o.Stake) &&
		r.Odds.Equal(o.Odds) &&
		r.PotentialReturn.Equal(o.PotentialReturn) &&
		r.Bookmaker == o.Bookmaker &&
		r.Category == o.Category &&
		r.Status == o.Status &&
		r.Notes == o.Notes
}
