package stats

import (
	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/utils"
)

// YearLookup fetches all entries of a calendar year and indexes them by
// date key for cell lookups. It performs no classification; consumers
// derive per-cell intensity from entry fields themselves. Returns
// ErrNoData when the year holds no entries.
func (a *Aggregator) YearLookup(year int) (map[string]models.DayEntry, error) {
	start, end := utils.YearBounds(year)

	entries, err := a.store.GetEntriesInRange(start, end)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrNoData
	}

	lookup := make(map[string]models.DayEntry, len(entries))
	for _, e := range entries {
		lookup[e.Date] = e
	}
	return lookup, nil
}
