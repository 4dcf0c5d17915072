package renderer

import "github.com/etnz/bettrack"

type dashboardView struct {
	Month   string
	Count   int
	Profit  string
	Yield   string
	WinRate string
	AllTime string
	Recent  []wagerRow
}

// RenderDashboard renders the Dashboard projection to a markdown string.
func RenderDashboard(d *bettrack.Dashboard) string {
	v := dashboardView{
		Month:   string(d.Month),
		Count:   d.Stats.Count,
		Profit:  d.Stats.TotalProfit.SignedString(),
		Yield:   d.Stats.Yield.SignedString(),
		WinRate: d.Stats.WinRate.String(),
		AllTime: d.AllTimeProfit.SignedString(),
		Recent:  newWagerRows(d.Recent),
	}
	partials := map[string]string{
		"wager_rows": "wager_rows.md",
	}
	return renderTemplate("dashboard", "dashboard.md", partials, v)
}
