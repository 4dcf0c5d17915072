package renderer

import "github.com/etnz/bettrack"

type historyView struct {
	Term string
	Rows []wagerRow
}

// RenderHistory renders a list of records, most recent first, to a markdown
// string. A non empty term is echoed in the title.
func RenderHistory(records []bettrack.WagerRecord, term string) string {
	v := historyView{Term: term, Rows: newWagerRows(records)}
	partials := map[string]string{
		"wager_rows": "wager_rows.md",
	}
	return renderTemplate("history", "history.md", partials, v)
}
