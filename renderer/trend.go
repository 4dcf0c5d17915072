package renderer

import "github.com/etnz/bettrack"

type trendPointView struct {
	When       string
	Cumulative string
}

type trendView struct {
	Points []trendPointView
}

// RenderTrend renders the cumulative profit series to a markdown string.
func RenderTrend(points []bettrack.TrendPoint) string {
	v := trendView{Points: make([]trendPointView, 0, len(points))}
	for _, p := range points {
		when := p.When.Format("2006-01-02 15:04")
		if p.Start {
			when = "start"
		}
		v.Points = append(v.Points, trendPointView{When: when, Cumulative: p.Cumulative.SignedString()})
	}
	return renderTemplate("trend", "trend.md", nil, v)
}
