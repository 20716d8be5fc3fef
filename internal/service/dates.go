package service

import (
	"errors"
	"regexp"
	"strconv"
	"time"
)

// Clock supplies the current time. Injected so "today" can be pinned in
// tests instead of read ambiently.
type Clock func() time.Time

// canonicalDayFormat is the fixed four-token rendering used for every date
// returned to callers: day-of-week, month, zero-padded day, year.
const canonicalDayFormat = "Mon Jan 02 2006"

// dayPattern is the syntactic yyyy-mm-dd check. It is deliberately not a
// calendar check: 2021-13-99 matches and is handled by parseDay.
var dayPattern = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`)

// matchDay reports whether the input contains a yyyy-mm-dd shaped date.
func matchDay(raw string) bool {
	return dayPattern.MatchString(raw)
}

// parseDay turns a syntactically valid date string into a UTC-midnight day.
// Lenient mode reads the matched digit groups and lets time.Date normalize
// out-of-range components (month 13 rolls into the next year). Strict mode
// rejects anything that is not a real calendar date.
func parseDay(raw string, strict bool) (time.Time, error) {
	if strict {
		return time.Parse("2006-01-02", raw)
	}

	groups := dayPattern.FindStringSubmatch(raw)
	if groups == nil {
		return time.Time{}, errors.New("malformed date")
	}
	year, _ := strconv.Atoi(groups[1])
	month, _ := strconv.Atoi(groups[2])
	day, _ := strconv.Atoi(groups[3])
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// localDay resolves "today" from the clock's LOCAL year/month/day, stored
// as UTC midnight of that calendar day. Rendering later reads UTC
// components, so the local read here is a deliberate asymmetry: an entry
// logged without a date lands on the submitter's calendar day.
func localDay(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// renderDay emits the canonical four-token string for a stored date. The
// transformation is idempotent: parsing a rendered day and rendering it
// again reproduces the same calendar day.
func renderDay(t time.Time) string {
	return t.UTC().Format(canonicalDayFormat)
}
