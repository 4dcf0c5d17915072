package renderer

import "github.com/etnz/bettrack"

type bankrollRow struct {
	Name    string
	Capital string
	Balance string
	Change  string
}

type bankrollsView struct {
	Rows []bankrollRow
}

// RenderBankrolls renders the capital pools to a markdown string.
func RenderBankrolls(pools []bettrack.BankrollRecord) string {
	v := bankrollsView{Rows: make([]bankrollRow, 0, len(pools))}
	for _, b := range pools {
		v.Rows = append(v.Rows, bankrollRow{
			Name:    b.Name,
			Capital: b.InitialCapital.String(),
			Balance: b.CurrentBalance.String(),
			Change:  b.CurrentBalance.Sub(b.InitialCapital).SignedString(),
		})
	}
	return renderTemplate("bankrolls", "bankrolls.md", nil, v)
}
