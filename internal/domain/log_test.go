package domain

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func entry(desc string, date time.Time) Entry {
	return Entry{Description: desc, Duration: 10, Date: date}
}

func TestFilterEntriesNoFilterReturnsAllNewestFirst(t *testing.T) {
	entries := []Entry{
		entry("a", day(2024, 1, 1)),
		entry("b", day(2024, 1, 3)),
		entry("c", day(2024, 1, 2)),
	}

	got := FilterEntries(entries, LogFilter{})
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	want := []string{"b", "c", "a"}
	for i, desc := range want {
		if got[i].Description != desc {
			t.Errorf("position %d: expected %q, got %q", i, desc, got[i].Description)
		}
	}
}

func TestFilterEntriesRangeIsInclusive(t *testing.T) {
	entries := []Entry{
		entry("before", day(2024, 1, 9)),
		entry("lower", day(2024, 1, 10)),
		entry("inside", day(2024, 1, 12)),
		entry("upper", day(2024, 1, 15)),
		entry("after", day(2024, 1, 16)),
	}

	from := day(2024, 1, 10)
	to := day(2024, 1, 15)
	got := FilterEntries(entries, LogFilter{From: &from, To: &to})

	if len(got) != 3 {
		t.Fatalf("expected 3 entries in [from, to], got %d", len(got))
	}
	for _, e := range got {
		if e.Date.Before(from) || e.Date.After(to) {
			t.Errorf("entry %q date %v outside [%v, %v]", e.Description, e.Date, from, to)
		}
	}
}

func TestFilterEntriesInvertedRangeIsEmptyNotError(t *testing.T) {
	entries := []Entry{entry("a", day(2024, 1, 12))}

	from := day(2024, 1, 15)
	to := day(2024, 1, 10)
	got := FilterEntries(entries, LogFilter{From: &from, To: &to})

	if len(got) != 0 {
		t.Fatalf("expected empty log for inverted range, got %d entries", len(got))
	}
}

func TestFilterEntriesLimitKeepsMostRecent(t *testing.T) {
	entries := []Entry{
		entry("oldest", day(2024, 1, 1)),
		entry("old", day(2024, 1, 2)),
		entry("mid", day(2024, 1, 3)),
		entry("new", day(2024, 1, 4)),
		entry("newest", day(2024, 1, 5)),
	}

	got := FilterEntries(entries, LogFilter{Limit: 2})
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Description != "newest" || got[1].Description != "new" {
		t.Errorf("expected the two most recent, got %q, %q", got[0].Description, got[1].Description)
	}
}

func TestFilterEntriesEqualDatesKeepInsertionOrder(t *testing.T) {
	d := day(2024, 1, 10)
	entries := []Entry{
		entry("first", d),
		entry("second", d),
		entry("third", d),
	}

	got := FilterEntries(entries, LogFilter{})
	want := []string{"first", "second", "third"}
	for i, desc := range want {
		if got[i].Description != desc {
			t.Errorf("position %d: expected %q, got %q", i, desc, got[i].Description)
		}
	}
}

func TestFilterEntriesZeroOrNegativeLimitMeansNoTruncation(t *testing.T) {
	entries := []Entry{
		entry("a", day(2024, 1, 1)),
		entry("b", day(2024, 1, 2)),
	}

	for _, limit := range []int64{0, -1} {
		got := FilterEntries(entries, LogFilter{Limit: limit})
		if len(got) != 2 {
			t.Errorf("limit %d: expected all entries, got %d", limit, len(got))
		}
	}
}
