package service

import (
	"testing"
	"time"
)

func TestMatchDay(t *testing.T) {
	valid := []string{"2024-01-10", "1999-12-31", "2021-13-99"}
	for _, raw := range valid {
		if !matchDay(raw) {
			t.Errorf("expected %q to match", raw)
		}
	}

	invalid := []string{"", "2024/01/10", "Jan 10 2024", "2024-1-10", "10-01-2024x"}
	for _, raw := range invalid {
		if matchDay(raw) {
			t.Errorf("expected %q not to match", raw)
		}
	}
}

func TestParseDayLenient(t *testing.T) {
	got, err := parseDay("2024-01-10", false)
	if err != nil {
		t.Fatalf("parseDay: %v", err)
	}
	want := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestParseDayLenientNormalizesOverflow(t *testing.T) {
	// Month 13 is syntactically valid; lenient parsing rolls it into the
	// next year instead of rejecting.
	got, err := parseDay("2021-13-01", false)
	if err != nil {
		t.Fatalf("parseDay: %v", err)
	}
	want := time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestParseDayStrictRejectsImpossibleDates(t *testing.T) {
	if _, err := parseDay("2021-13-99", true); err == nil {
		t.Error("expected strict parse to reject 2021-13-99")
	}
	if _, err := parseDay("2024-02-30", true); err == nil {
		t.Error("expected strict parse to reject 2024-02-30")
	}
	if _, err := parseDay("2024-02-29", true); err != nil {
		t.Errorf("expected strict parse to accept the leap day: %v", err)
	}
}

func TestLocalDayUsesLocalComponents(t *testing.T) {
	// Shortly after local midnight in UTC+13 the UTC calendar day is still
	// the 10th; the resolved day must be the local 11th.
	loc := time.FixedZone("UTC+13", 13*60*60)
	now := time.Date(2024, time.January, 11, 0, 30, 0, 0, loc)

	got := localDay(now)
	want := time.Date(2024, time.January, 11, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestRenderDay(t *testing.T) {
	d := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	if got := renderDay(d); got != "Mon Jan 15 2024" {
		t.Errorf("expected %q, got %q", "Mon Jan 15 2024", got)
	}

	d = time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	if got := renderDay(d); got != "Wed Jan 10 2024" {
		t.Errorf("expected %q, got %q", "Wed Jan 10 2024", got)
	}
}

func TestRenderDayIsIdempotent(t *testing.T) {
	d := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	rendered := renderDay(d)

	reparsed, err := time.Parse(canonicalDayFormat, rendered)
	if err != nil {
		t.Fatalf("re-parsing rendered date: %v", err)
	}
	if again := renderDay(reparsed); again != rendered {
		t.Errorf("render not idempotent: %q then %q", rendered, again)
	}
}
