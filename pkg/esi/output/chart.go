package output

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/wcharczuk/go-chart/v2"

	"esicli/pkg/esi"
	"esicli/pkg/esi/models"
)

// RenderHistoryChart renders a history series as an SVG line chart: one
// line per entity, x axis labeled with "YYYY-MM" periods. NaN points are
// dropped from their series; entities with fewer than two plottable
// points are omitted entirely (a line needs two points).
func RenderHistoryChart(series *models.HistorySeries, title string) ([]byte, error) {
	ticks := make([]chart.Tick, 0, len(series.Dates))
	for i, d := range series.Dates {
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: d.String()})
	}

	var lines []chart.Series
	for _, code := range esi.EntityCodes {
		vals := series.Countries[code]
		// Series align to the end of the shared axis.
		offset := len(series.Dates) - len(vals)
		var xs, ys []float64
		for i, v := range vals {
			if math.IsNaN(v) {
				continue
			}
			xs = append(xs, float64(offset+i))
			ys = append(ys, v)
		}
		if len(xs) < 2 {
			continue
		}
		lines = append(lines, chart.ContinuousSeries{
			Name:    code,
			XValues: xs,
			YValues: ys,
		})
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("no plottable series")
	}

	graph := chart.Chart{
		Title:  title,
		Width:  1024,
		Height: 512,
		XAxis: chart.XAxis{
			Ticks: ticks,
			Style: chart.Style{TextRotationDegrees: 90},
		},
		Series: lines,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.SVG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteHistoryChart renders the chart and writes it to path, or to w
// when path is empty.
func WriteHistoryChart(w io.Writer, path string, series *models.HistorySeries, title string) error {
	svg, err := RenderHistoryChart(series, title)
	if err != nil {
		return err
	}
	if path == "" {
		_, err = w.Write(svg)
		return err
	}
	return os.WriteFile(path, svg, 0644)
}
