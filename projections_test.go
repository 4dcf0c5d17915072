package bettrack

import "testing"

func TestNewest(t *testing.T) {
	records := sampleLedger(t)

	out := Newest(records, 2)
	if len(out) != 2 {
		t.Fatalf("got %d records, want 2", len(out))
	}
	if out[0].ID != 4 || out[1].ID != 3 {
		t.Errorf("order = %d, %d; want 4, 3", out[0].ID, out[1].ID)
	}

	// n <= 0 returns everything, input untouched
	all := Newest(records, 0)
	if len(all) != len(records) {
		t.Errorf("got %d records, want %d", len(all), len(records))
	}
	if records[0].ID != 1 {
		t.Error("input slice was reordered")
	}
}

func TestSearch(t *testing.T) {
	records := sampleLedger(t)
	records[0].Notes = "Derby Day special"

	testCases := []struct {
		term string
		want int
	}{
		{term: "", want: 4},
		{term: "bet365", want: 2},
		{term: "BET365", want: 2},
		{term: "football", want: 2},
		{term: "derby", want: 1},
		{term: "nothing here", want: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.term, func(t *testing.T) {
			if got := Search(records, tc.term); len(got) != tc.want {
				t.Errorf("Search(%q) returned %d records, want %d", tc.term, len(got), tc.want)
			}
		})
	}
}

func TestNewDashboard(t *testing.T) {
	records := sampleLedger(t)
	d := NewDashboard(records, "2026-03", 2)

	if d.Stats.Count != 3 {
		t.Errorf("month Count = %d, want 3", d.Stats.Count)
	}
	// all-time profit spans the whole ledger: +100 won, -50 lost
	if want := M(50, "PLN"); !d.AllTimeProfit.Equal(want) {
		t.Errorf("AllTimeProfit = %s, want %s", d.AllTimeProfit, want)
	}
	if len(d.Recent) != 2 {
		t.Fatalf("Recent has %d records, want 2", len(d.Recent))
	}
	// recent activity spans the whole ledger, not just the month
	if d.Recent[0].ID != 4 {
		t.Errorf("Recent[0].ID = %d, want 4", d.Recent[0].ID)
	}
}
