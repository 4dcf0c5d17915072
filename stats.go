package bettrack

import "sort"

// FilterAll is the sentinel value matching everything in a filter dimension,
// equivalent to leaving the dimension empty.
const FilterAll = "all"

// Filter restricts an aggregation to a subset of records. The zero value
// matches everything; set dimensions are AND combined.
type Filter struct {
	Month     MonthKey
	Bookmaker string
	Category  string
}

func matches(want, got string) bool {
	return want == "" || want == FilterAll || want == got
}

// Match reports whether the record satisfies every set dimension.
func (f Filter) Match(r WagerRecord) bool {
	return matches(string(f.Month), string(r.OccurredAt.MonthKey())) &&
		matches(f.Bookmaker, r.Bookmaker) &&
		matches(f.Category, r.Category)
}

// GroupStat is the settled performance of one category or one bookmaker.
type GroupStat struct {
	Name   string
	Staked Money
	Profit Money
	Count  int
	Yield  Percent
}

// Stats aggregates a ledger snapshot. Only won and lost records enter the
// money sums; pending and void records count in Count and nowhere else, so
// adding or voiding a wager never moves profit, yield or win rate.
type Stats struct {
	Filter       Filter
	Count        int // matching records, any status
	SettledCount int // won or lost
	Wins         int
	TotalStaked  Money // settled stakes only
	TotalProfit  Money
	Yield        Percent // profit over staked
	WinRate      Percent // wins over settled
	ByCategory   []GroupStat
	ByBookmaker  []GroupStat
}

// NewStats computes the aggregate of the snapshot under the filter, in a
// single pass. Sums are decimal exact; the percentages keep full precision
// and are rounded at render time only. Yield is zero when nothing was
// staked, win rate is zero when nothing is settled.
func NewStats(records []WagerRecord, filter Filter) *Stats {
	s := &Stats{Filter: filter}
	byCategory := make(map[string]*GroupStat)
	byBookmaker := make(map[string]*GroupStat)
	for _, r := range records {
		if !filter.Match(r) {
			continue
		}
		s.Count++
		if !r.Settled() {
			continue
		}
		s.SettledCount++
		if r.Status == StatusWon {
			s.Wins++
		}
		profit := r.Profit()
		s.TotalStaked = s.TotalStaked.Add(r.Stake)
		s.TotalProfit = s.TotalProfit.Add(profit)
		accumulate(byCategory, r.Category, r.Stake, profit)
		accumulate(byBookmaker, r.Bookmaker, r.Stake, profit)
	}
	s.Yield = yield(s.TotalProfit, s.TotalStaked)
	if s.SettledCount > 0 {
		s.WinRate = Percent(float64(s.Wins) / float64(s.SettledCount) * 100)
	}
	s.ByCategory = sortGroups(byCategory)
	s.ByBookmaker = sortGroups(byBookmaker)
	return s
}

func accumulate(groups map[string]*GroupStat, name string, stake, profit Money) {
	g, ok := groups[name]
	if !ok {
		g = &GroupStat{Name: name}
		groups[name] = g
	}
	g.Staked = g.Staked.Add(stake)
	g.Profit = g.Profit.Add(profit)
	g.Count++
}

// yield is profit over staked, as a percentage. Zero when nothing was staked.
func yield(profit, staked Money) Percent {
	if staked.IsZero() {
		return 0
	}
	return Percent(profit.Amount().Div(staked.Amount()).InexactFloat64() * 100)
}

// sortGroups orders the groups by profit, best first. Name breaks ties so
// the order is reproducible.
func sortGroups(groups map[string]*GroupStat) []GroupStat {
	out := make([]GroupStat, 0, len(groups))
	for _, g := range groups {
		g.Yield = yield(g.Profit, g.Staked)
		out = append(out, *g)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Profit.Equal(out[j].Profit) {
			return out[i].Profit.GreaterThan(out[j].Profit)
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// FilterOptions lists the distinct values present in the ledger for each
// filter dimension, for prompts and completion.
type FilterOptions struct {
	Months     []MonthKey // most recent first
	Bookmakers []string   // alphabetical
	Categories []string   // alphabetical
}

// NewFilterOptions scans the snapshot for the available filter values.
func NewFilterOptions(records []WagerRecord) FilterOptions {
	months := make(map[MonthKey]bool)
	bookmakers := make(map[string]bool)
	categories := make(map[string]bool)
	for _, r := range records {
		months[r.OccurredAt.MonthKey()] = true
		bookmakers[r.Bookmaker] = true
		categories[r.Category] = true
	}
	var o FilterOptions
	for m := range months {
		o.Months = append(o.Months, m)
	}
	sort.Slice(o.Months, func(i, j int) bool { return o.Months[i] > o.Months[j] })
	for b := range bookmakers {
		o.Bookmakers = append(o.Bookmakers, b)
	}
	sort.Strings(o.Bookmakers)
	for c := range categories {
		o.Categories = append(o.Categories, c)
	}
	sort.Strings(o.Categories)
	return o
}
