package renderer

import (
	"strings"

	"github.com/etnz/bettrack"
)

type statGroupView struct {
	Name   string
	Count  int
	Staked string
	Profit string
	Yield  string
}

type statsView struct {
	Scope        string
	Count        int
	SettledCount int
	Wins         int
	Staked       string
	Profit       string
	Yield        string
	WinRate      string
	Categories   []statGroupView
	Bookmakers   []statGroupView
}

// RenderStats renders the Stats aggregate to a markdown string.
func RenderStats(s *bettrack.Stats) string {
	v := statsView{
		Scope:        scope(s.Filter),
		Count:        s.Count,
		SettledCount: s.SettledCount,
		Wins:         s.Wins,
		Staked:       s.TotalStaked.String(),
		Profit:       s.TotalProfit.SignedString(),
		Yield:        s.Yield.SignedString(),
		WinRate:      s.WinRate.String(),
		Categories:   newGroupViews(s.ByCategory),
		Bookmakers:   newGroupViews(s.ByBookmaker),
	}
	partials := map[string]string{
		"stats_groups": "stats_groups.md",
	}
	return renderTemplate("stats", "stats.md", partials, v)
}

func newGroupViews(groups []bettrack.GroupStat) []statGroupView {
	views := make([]statGroupView, 0, len(groups))
	for _, g := range groups {
		views = append(views, statGroupView{
			Name:   g.Name,
			Count:  g.Count,
			Staked: g.Staked.String(),
			Profit: g.Profit.SignedString(),
			Yield:  g.Yield.SignedString(),
		})
	}
	return views
}

// scope names the filtered subset for the report title.
func scope(f bettrack.Filter) string {
	var parts []string
	for _, p := range []string{string(f.Month), f.Bookmaker, f.Category} {
		if p != "" && p != bettrack.FilterAll {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return "all time"
	}
	return strings.Join(parts, ", ")
}
