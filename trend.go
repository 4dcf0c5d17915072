package bettrack

import "sort"

// TrendPoint is one step of the cumulative profit series.
type TrendPoint struct {
	When       DateTime
	Cumulative Money
	Start      bool // synthetic origin, not an actual record
}

// TrendSeries returns the running cumulative profit of every settled record,
// in chronological order, one point per record. The series opens with a
// synthetic zero point so a chart starts from the initial state. Records with
// equal timestamps keep their ledger order. Nil when nothing is settled.
func TrendSeries(records []WagerRecord) []TrendPoint {
	settled := make([]WagerRecord, 0, len(records))
	for _, r := range records {
		if r.Settled() {
			settled = append(settled, r)
		}
	}
	if len(settled) == 0 {
		return nil
	}
	sort.SliceStable(settled, func(i, j int) bool {
		return settled[i].OccurredAt.Before(settled[j].OccurredAt)
	})

	points := make([]TrendPoint, 0, len(settled)+1)
	total := M(0, settled[0].Stake.Currency())
	points = append(points, TrendPoint{When: settled[0].OccurredAt, Cumulative: total, Start: true})
	for _, r := range settled {
		total = total.Add(r.Profit())
		points = append(points, TrendPoint{When: r.OccurredAt, Cumulative: total})
	}
	return points
}
