package bettrack

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

var testDate = NewDateTime(2026, time.March, 5, 18, 30)

func mustWager(t *testing.T, bookmaker, category string, stake Money, odds decimal.Decimal, ret Money) WagerRecord {
	t.Helper()
	r, err := NewWager(testDate, bookmaker, category, stake, odds, ret, "")
	if err != nil {
		t.Fatalf("NewWager returned error: %v", err)
	}
	return r
}

func TestNewWagerOddsBased(t *testing.T) {
	odds := decimal.RequireFromString("1.85")
	r := mustWager(t, "bet365", Football, M(100, "PLN"), odds, Money{})

	if r.Status != StatusPending {
		t.Errorf("Status = %q, want pending", r.Status)
	}
	// auto computed return: 100 * 1.85 = 185.00
	if !r.PotentialReturn.Equal(M(185, "PLN")) {
		t.Errorf("PotentialReturn = %s, want 185 PLN", r.PotentialReturn)
	}
}

func TestNewWagerReturnRounding(t *testing.T) {
	// 33.33 * 1.857 = 61.893... rounds to 61.89
	odds := decimal.RequireFromString("1.857")
	r := mustWager(t, "bet365", Tennis, M(33.33, "PLN"), odds, Money{})
	if !r.PotentialReturn.Equal(M(61.89, "PLN")) {
		t.Errorf("PotentialReturn = %s, want 61.89 PLN", r.PotentialReturn)
	}
}

func TestNewWagerExplicitReturn(t *testing.T) {
	// a caller supplied return is authoritative, never recomputed.
	odds := decimal.RequireFromString("2.0")
	r := mustWager(t, "bet365", Football, M(100, "PLN"), odds, M(150, "PLN"))
	if !r.PotentialReturn.Equal(M(150, "PLN")) {
		t.Errorf("PotentialReturn = %s, want 150 PLN", r.PotentialReturn)
	}
}

func TestNewWagerSlots(t *testing.T) {
	testCases := []struct {
		name  string
		stake Money
		ret   Money
		want  Status
	}{
		{name: "cash out above deposit", stake: M(100, "PLN"), ret: M(150, "PLN"), want: StatusWon},
		{name: "cash out below deposit", stake: M(100, "PLN"), ret: M(50, "PLN"), want: StatusLost},
		{name: "break even", stake: M(100, "PLN"), ret: M(100, "PLN"), want: StatusVoid},
		{name: "one cent above", stake: M(100, "PLN"), ret: M(100.01, "PLN"), want: StatusWon},
		{name: "one cent below", stake: M(100, "PLN"), ret: M(99.99, "PLN"), want: StatusLost},
		{name: "total loss", stake: M(100, "PLN"), ret: M(0, "PLN"), want: StatusLost},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// odds input is irrelevant for slots and must be forced to 1.0
			r := mustWager(t, "casino", Slots, tc.stake, decimal.RequireFromString("3.5"), tc.ret)
			if r.Status != tc.want {
				t.Errorf("Status = %q, want %q", r.Status, tc.want)
			}
			if !r.Odds.Equal(decimal.NewFromInt(1)) {
				t.Errorf("Odds = %s, want 1", r.Odds)
			}
		})
	}
}

func TestNewWagerValidation(t *testing.T) {
	odds := decimal.NewFromInt(2)
	testCases := []struct {
		name     string
		on       DateTime
		category string
		stake    Money
		odds     decimal.Decimal
	}{
		{name: "zero stake", on: testDate, category: Football, stake: M(0, "PLN"), odds: odds},
		{name: "negative stake", on: testDate, category: Football, stake: M(-10, "PLN"), odds: odds},
		{name: "zero odds", on: testDate, category: Football, stake: M(10, "PLN"), odds: decimal.Zero},
		{name: "negative odds", on: testDate, category: Football, stake: M(10, "PLN"), odds: decimal.NewFromInt(-1)},
		{name: "no date", category: Football, stake: M(10, "PLN"), odds: odds},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewWager(tc.on, "b", tc.category, tc.stake, tc.odds, Money{}, ""); err == nil {
				t.Error("NewWager should fail")
			}
		})
	}
}

func TestReviseWagerKeepsStatus(t *testing.T) {
	r := mustWager(t, "bet365", Football, M(100, "PLN"), decimal.NewFromInt(2), Money{})
	r.ID = 7
	settled, err := r.QuickSettle(StatusWon)
	if err != nil {
		t.Fatalf("QuickSettle returned error: %v", err)
	}

	edited := settled
	edited.Stake = M(120, "PLN")
	edited.Status = StatusPending // a stray status in the edit must be ignored
	got, err := ReviseWager(settled, edited)
	if err != nil {
		t.Fatalf("ReviseWager returned error: %v", err)
	}
	if got.Status != StatusWon {
		t.Errorf("Status = %q, want won", got.Status)
	}
	if got.ID != 7 {
		t.Errorf("ID = %d, want 7", got.ID)
	}
	// the return was saved once and must not be recomputed from the new stake.
	if !got.PotentialReturn.Equal(M(200, "PLN")) {
		t.Errorf("PotentialReturn = %s, want 200 PLN", got.PotentialReturn)
	}
}

func TestReviseWagerSlotsRederives(t *testing.T) {
	r := mustWager(t, "casino", Slots, M(100, "PLN"), decimal.NewFromInt(1), M(50, "PLN"))
	if r.Status != StatusLost {
		t.Fatalf("Status = %q, want lost", r.Status)
	}

	edited := r
	edited.PotentialReturn = M(180, "PLN")
	got, err := ReviseWager(r, edited)
	if err != nil {
		t.Fatalf("ReviseWager returned error: %v", err)
	}
	if got.Status != StatusWon {
		t.Errorf("Status = %q, want won after raising the return", got.Status)
	}
}

func TestQuickSettle(t *testing.T) {
	pending := mustWager(t, "bet365", Football, M(100, "PLN"), decimal.NewFromInt(2), Money{})

	won, err := pending.QuickSettle(StatusWon)
	if err != nil {
		t.Fatalf("QuickSettle returned error: %v", err)
	}
	if won.Status != StatusWon {
		t.Errorf("Status = %q, want won", won.Status)
	}

	// a settled record cannot be settled again
	if _, err := won.QuickSettle(StatusLost); err == nil {
		t.Error("QuickSettle on a won wager should fail")
	}
	// only won or lost are valid outcomes
	if _, err := pending.QuickSettle(StatusVoid); err == nil {
		t.Error("QuickSettle to void should fail")
	}
	if _, err := pending.QuickSettle(StatusPending); err == nil {
		t.Error("QuickSettle to pending should fail")
	}
}

func TestProfit(t *testing.T) {
	r := mustWager(t, "bet365", Football, M(100, "PLN"), decimal.NewFromInt(2), Money{})

	if got := r.Profit(); !got.IsZero() {
		t.Errorf("pending Profit = %s, want 0", got)
	}
	won, _ := r.QuickSettle(StatusWon)
	if got := won.Profit(); !got.Equal(M(100, "PLN")) {
		t.Errorf("won Profit = %s, want 100 PLN", got)
	}
	lost, _ := r.QuickSettle(StatusLost)
	if got := lost.Profit(); !got.Equal(M(-100, "PLN")) {
		t.Errorf("lost Profit = %s, want -100 PLN", got)
	}

	void := mustWager(t, "casino", Slots, M(100, "PLN"), decimal.NewFromInt(1), M(100, "PLN"))
	if got := void.Profit(); !got.IsZero() {
		t.Errorf("void Profit = %s, want 0", got)
	}
}

func TestParseStatus(t *testing.T) {
	if s, err := ParseStatus(" Won "); err != nil || s != StatusWon {
		t.Errorf("ParseStatus = %q, %v", s, err)
	}
	if _, err := ParseStatus("cancelled"); err == nil {
		t.Error("ParseStatus of unknown status should fail")
	}
}

func TestOutcomeImmediate(t *testing.T) {
	if !OutcomeImmediate("Slots") || !OutcomeImmediate(" slots ") {
		t.Error("slots should be outcome immediate, case insensitively")
	}
	if OutcomeImmediate(Football) || OutcomeImmediate("poker") {
		t.Error("odds based categories should not be outcome immediate")
	}
}
