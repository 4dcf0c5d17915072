package renderer

import "github.com/etnz/bettrack"

// wagerRow is the flat, preformatted view of a record for markdown tables.
type wagerRow struct {
	ID        int64
	When      string
	Bookmaker string
	Category  string
	Stake     string
	Odds      string
	Return    string
	Status    string
	Profit    string
}

func newWagerRows(records []bettrack.WagerRecord) []wagerRow {
	rows := make([]wagerRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, wagerRow{
			ID:        r.ID,
			When:      r.OccurredAt.Format("2006-01-02 15:04"),
			Bookmaker: r.Bookmaker,
			Category:  r.Category,
			Stake:     r.Stake.String(),
			Odds:      r.Odds.StringFixed(2),
			Return:    r.PotentialReturn.String(),
			Status:    string(r.Status),
			Profit:    r.Profit().SignedString(),
		})
	}
	return rows
}
