package esi

import (
	"sort"
	"time"

	"esicli/pkg/esi/models"
)

// LatestRankings returns one descending ranking per component, built
// from each entity's most recent observation within the lookup window.
// With a nil month the window is [previous month, current month],
// tolerating the source's one-month publication lag; with a month given
// the window is that single month.
//
// If any entity has no row in the window the whole query fails with
// ErrDateOutOfRange; partial rankings are never returned.
func LatestRankings(cfg Config, month *models.Month) (map[string]models.Ranking, error) {
	var start, end models.Month
	if month == nil {
		end = models.MonthOf(time.Now())
		start = end.Prev()
	} else {
		start, end = *month, *month
	}

	tables, err := FetchTables(cfg)
	if err != nil {
		return nil, err
	}
	return RankingsInWindow(tables, start, end)
}

// RankingsInWindow builds the rankings from already-fetched tables for
// an explicit [start, end] window.
//
// Sorting is stable and descending by value. Every comparison against a
// NaN value is false, so missing values compare as equal to their
// neighbors and keep their catalog-order position instead of being
// pulled to either end. This mirrors the long-standing output of the
// tool and is deliberately left as is.
func RankingsInWindow(tables models.TableCollection, start, end models.Month) (map[string]models.Ranking, error) {
	latest := make(map[string]Components, len(EntityCodes))
	for _, code := range EntityCodes {
		row, ok := tables[code].SliceRange(start, end).LastRow()
		if !ok {
			return nil, ErrDateOutOfRange
		}
		c, err := componentsFromRow(row)
		if err != nil {
			return nil, &ImportError{Entity: code, Err: err}
		}
		latest[code] = c
	}

	rankings := make(map[string]models.Ranking, len(RankingKeys))
	for _, key := range RankingKeys {
		ranking := make(models.Ranking, 0, len(EntityCodes))
		for _, code := range EntityCodes {
			ranking = append(ranking, models.RankedValue{
				Name:  EntityNames[code],
				Value: latest[code].byKey(key),
			})
		}
		sort.SliceStable(ranking, func(i, j int) bool {
			return ranking[i].Value > ranking[j].Value
		})
		rankings[key] = ranking
	}
	return rankings, nil
}
