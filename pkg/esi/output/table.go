package output

import (
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"esicli/pkg/esi"
	"esicli/pkg/esi/models"
)

// rankingHeaders are the column titles, one per ranking key in
// esi.RankingKeys order, with the component weights.
var rankingHeaders = []string{
	"ESI",
	"Industrial Confidence (40%)",
	"Services Confidence (30%)",
	"Consumer Confidence (20%)",
	"Retail Trade Confidence (5%)",
	"Construction Confidence (5%)",
}

// RenderRankingsTable writes the rankings as a console table: one column
// per component, one row per rank. The top-ranked row is green, the
// bottom-ranked row red. When period is non-empty it becomes the table
// title.
func RenderRankingsTable(w io.Writer, rankings map[string]models.Ranking, period string) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	if period != "" {
		t.SetTitle("Rankings for %s", period)
	}

	header := make(table.Row, 0, len(rankingHeaders))
	for i, h := range rankingHeaders {
		if i == 0 {
			h = text.Bold.Sprint(h)
		}
		header = append(header, h)
	}
	t.AppendHeader(header)

	rows := len(rankings[esi.KeyESI])
	for i := 0; i < rows; i++ {
		var paint text.Colors
		switch i {
		case 0:
			paint = text.Colors{text.FgGreen}
		case rows - 1:
			paint = text.Colors{text.FgRed}
		}
		row := make(table.Row, 0, len(esi.RankingKeys))
		for _, key := range esi.RankingKeys {
			rv := rankings[key][i]
			cell := rv.Name + " (" + strconv.FormatFloat(rv.Value, 'g', -1, 64) + ")"
			if len(paint) > 0 {
				cell = paint.Sprint(cell)
			}
			row = append(row, cell)
		}
		t.AppendRow(row)
	}

	t.Render()
}
