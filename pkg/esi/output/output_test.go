package output

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esicli/pkg/esi"
	"esicli/pkg/esi/models"
)

// fakeRankings builds a minimal but complete rankings mapping: every
// component key present, 16 entries each.
func fakeRankings() map[string]models.Ranking {
	rankings := make(map[string]models.Ranking, len(esi.RankingKeys))
	for _, key := range esi.RankingKeys {
		ranking := make(models.Ranking, 0, len(esi.EntityCodes))
		for i, code := range esi.EntityCodes {
			ranking = append(ranking, models.RankedValue{
				Name:  esi.EntityNames[code],
				Value: 100 - float64(i),
			})
		}
		rankings[key] = ranking
	}
	return rankings
}

func TestRankingsToJSON(t *testing.T) {
	rankings := map[string]models.Ranking{
		esi.KeyESI: {
			{Name: "France", Value: 96.6},
			{Name: "United Kingdom", Value: math.NaN()},
		},
	}

	data, err := RankingsToJSON(rankings, false)
	require.NoError(t, err)
	assert.JSONEq(t, `{"esi":[["France",96.6],["United Kingdom",null]]}`, string(data))
}

func TestRenderRankingsTable(t *testing.T) {
	var buf bytes.Buffer
	RenderRankingsTable(&buf, fakeRankings(), "2020-9")

	out := buf.String()
	assert.Contains(t, out, "Rankings for 2020-9")
	assert.Contains(t, out, "Industrial Confidence (40%)")
	assert.Contains(t, out, "Europe (100)")
	assert.Contains(t, out, "United Kingdom (85)")
	// Header plus 16 data rows.
	assert.GreaterOrEqual(t, strings.Count(out, "\n"), 17)
}

func TestRenderRankingsTableNoTitle(t *testing.T) {
	var buf bytes.Buffer
	RenderRankingsTable(&buf, fakeRankings(), "")
	assert.NotContains(t, buf.String(), "Rankings for")
}

func TestRenderHistoryChart(t *testing.T) {
	series := &models.HistorySeries{
		Countries: make(map[string][]float64, len(esi.EntityCodes)),
		Dates: []models.Month{
			{Year: 2020, Month: time.July},
			{Year: 2020, Month: time.August},
			{Year: 2020, Month: time.September},
		},
	}
	for i, code := range esi.EntityCodes {
		series.Countries[code] = []float64{90 + float64(i), 91, math.NaN()}
	}

	svg, err := RenderHistoryChart(series, "ESI - Industrial Confidence (past 3 months)")
	require.NoError(t, err)

	out := string(svg)
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "2020-07")
}

func TestRenderHistoryChartEmpty(t *testing.T) {
	series := &models.HistorySeries{
		Countries: map[string][]float64{"de": {math.NaN(), math.NaN()}},
		Dates: []models.Month{
			{Year: 2020, Month: time.August},
			{Year: 2020, Month: time.September},
		},
	}
	_, err := RenderHistoryChart(series, "empty")
	assert.Error(t, err)
}
