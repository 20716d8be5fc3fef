package domain

import (
	"sort"
	"time"
)

// LogFilter bounds a log query. Nil From/To means unbounded on that side;
// a Limit of zero or less means no truncation.
type LogFilter struct {
	From  *time.Time
	To    *time.Time
	Limit int64
}

// FilterEntries applies a LogFilter to an in-memory log: keep entries with
// From <= date <= To (inclusive on both ends, calendar comparison), order
// by date descending, then truncate to Limit. Entries sharing a date keep
// their insertion order; the sort is stable. An inverted range (From after
// To) simply matches nothing.
func FilterEntries(entries []Entry, f LogFilter) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if f.From != nil && e.Date.Before(*f.From) {
			continue
		}
		if f.To != nil && e.Date.After(*f.To) {
			continue
		}
		out = append(out, e)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})

	if f.Limit > 0 && int64(len(out)) > f.Limit {
		out = out[:f.Limit]
	}
	return out
}
