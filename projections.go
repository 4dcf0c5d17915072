package bettrack

import (
	"sort"
	"strings"
)

// Newest returns up to n records, most recent first. n <= 0 means all.
// The input slice is left untouched.
func Newest(records []WagerRecord, n int) []WagerRecord {
	out := make([]WagerRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool { return out[j].OccurredAt.Before(out[i].OccurredAt) })
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Search returns the records whose bookmaker, category or notes contain
// term, case insensitively, most recent first. An empty term matches all.
func Search(records []WagerRecord, term string) []WagerRecord {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return Newest(records, 0)
	}
	var out []WagerRecord
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Bookmaker), term) ||
			strings.Contains(strings.ToLower(r.Category), term) ||
			strings.Contains(strings.ToLower(r.Notes), term) {
			out = append(out, r)
		}
	}
	return Newest(out, 0)
}

// Dashboard is the at-a-glance projection: performance of one month plus the
// latest activity and the all-time profit across the whole ledger.
type Dashboard struct {
	Month         MonthKey
	Stats         *Stats
	AllTimeProfit Money
	Recent        []WagerRecord
}

// NewDashboard computes the dashboard for the given month with up to
// 'recent' latest records.
func NewDashboard(records []WagerRecord, month MonthKey, recent int) *Dashboard {
	return &Dashboard{
		Month:         month,
		Stats:         NewStats(records, Filter{Month: month}),
		AllTimeProfit: NewStats(records, Filter{}).TotalProfit,
		Recent:        Newest(records, recent),
	}
}
