package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/kevink520/exercisetracker/internal/domain"
	"github.com/kevink520/exercisetracker/internal/repository"
)

// --- Error Definitions ---
var (
	ErrUserNotFound  = errors.New("unknown userId")
	ErrUsernameTaken = errors.New("username already taken")
	// ErrStorage wraps persistence failures. Not caller-fixable; the
	// API layer logs the detail and answers generically.
	ErrStorage = errors.New("storage failure")
)

// ValidationError marks caller-fixable input problems. The message is safe
// to surface verbatim.
type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

// --- Results ---
// Plain records built from validated fields, suitable for direct
// serialization. Persisted entities are never mutated to shape these.

// UserResult is returned by CreateUser.
type UserResult struct {
	ID       string
	Username string
}

// EntrySummary is returned by AddEntry: the owning user's identity plus
// the entry as stored, date already canonically rendered.
type EntrySummary struct {
	ID          string
	Username    string
	Description string
	Duration    int
	Date        string
}

// LogEntry is one rendered entry inside a LogResult.
type LogEntry struct {
	Description string
	Duration    int
	Date        string
}

// LogResult is returned by QueryLog. From/To echo the request bounds in
// canonical rendering when they were given. Count is the length of Log
// after filtering and truncation, never a cached total.
type LogResult struct {
	ID       string
	Username string
	From     string
	To       string
	Count    int
	Log      []LogEntry
}

// --- Service Interface ---

// TrackerService is the operation surface exposed to the HTTP layer. All
// inputs arrive as strings, as from form or query parameters, and are
// validated here rather than trusted from the boundary.
type TrackerService interface {
	CreateUser(ctx context.Context, username string) (*UserResult, error)
	AddEntry(ctx context.Context, userID, description, duration, date string) (*EntrySummary, error)
	QueryLog(ctx context.Context, userID, from, to, limit string) (*LogResult, error)
}

// --- Service Implementation ---

// trackerService implements TrackerService over a LogStore. It is the
// shared query/formatting layer: identical in contract whichever store
// backs it.
type trackerService struct {
	store       repository.LogStore
	clock       Clock
	strictDates bool
}

// NewTrackerService creates a new tracker service. A nil clock falls back
// to time.Now. strictDates switches the yyyy-mm-dd check from syntactic to
// full calendar validation.
func NewTrackerService(store repository.LogStore, clock Clock, strictDates bool) TrackerService {
	if clock == nil {
		clock = time.Now
	}
	return &trackerService{
		store:       store,
		clock:       clock,
		strictDates: strictDates,
	}
}

// CreateUser registers a username after trimming and uniqueness checking.
func (s *trackerService) CreateUser(ctx context.Context, username string) (*UserResult, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ValidationError("username is missing")
	}

	user, err := s.store.CreateUser(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, storageFailure(err)
	}

	return &UserResult{
		ID:       user.ID.Hex(),
		Username: user.Username,
	}, nil
}

// AddEntry validates and persists one exercise entry for the given user.
// Nothing is persisted unless every field validates.
func (s *trackerService) AddEntry(ctx context.Context, userID, description, duration, date string) (*EntrySummary, error) {
	userID = strings.TrimSpace(userID)
	description = strings.TrimSpace(description)
	duration = strings.TrimSpace(duration)
	if userID == "" || description == "" || duration == "" {
		return nil, ValidationError("one or more of the required fields are empty")
	}

	minutes, ok := parseInteger(duration)
	if !ok {
		return nil, ValidationError("the duration needs to be a number of minutes")
	}

	day, verr := s.resolveDay(strings.TrimSpace(date))
	if verr != nil {
		return nil, verr
	}

	entry := domain.Entry{
		Description: description,
		Duration:    minutes,
		Date:        day,
	}
	user, err := s.store.AppendEntry(ctx, userID, entry)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, storageFailure(err)
	}

	return &EntrySummary{
		ID:          user.ID.Hex(),
		Username:    user.Username,
		Description: entry.Description,
		Duration:    entry.Duration,
		Date:        renderDay(entry.Date),
	}, nil
}

// QueryLog returns the user's entries, bounded and ordered per the request.
func (s *trackerService) QueryLog(ctx context.Context, userID, from, to, limit string) (*LogResult, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ValidationError("missing userId")
	}

	var filter domain.LogFilter

	from = strings.TrimSpace(from)
	if from != "" {
		day, verr := s.parseBound(from, "from")
		if verr != nil {
			return nil, verr
		}
		filter.From = &day
	}

	to = strings.TrimSpace(to)
	if to != "" {
		day, verr := s.parseBound(to, "to")
		if verr != nil {
			return nil, verr
		}
		filter.To = &day
	}

	limit = strings.TrimSpace(limit)
	if limit != "" {
		n, ok := parseInteger(limit)
		if !ok {
			return nil, ValidationError("the 'limit' needs to be an integer")
		}
		if n > 0 {
			filter.Limit = int64(n)
		}
	}

	user, entries, err := s.store.FetchLog(ctx, userID, filter)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, storageFailure(err)
	}

	result := &LogResult{
		ID:       user.ID.Hex(),
		Username: user.Username,
		Count:    len(entries),
		Log:      make([]LogEntry, len(entries)),
	}
	for i, e := range entries {
		result.Log[i] = LogEntry{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        renderDay(e.Date),
		}
	}
	if filter.From != nil {
		result.From = renderDay(*filter.From)
	}
	if filter.To != nil {
		result.To = renderDay(*filter.To)
	}
	return result, nil
}

// resolveDay turns the optional date field into the effective entry day:
// the parsed value when given, else the clock's current local day.
func (s *trackerService) resolveDay(raw string) (time.Time, error) {
	if raw == "" {
		return localDay(s.clock()), nil
	}
	if !matchDay(raw) {
		return time.Time{}, ValidationError("the date should be in the format yyyy-mm-dd")
	}
	day, err := parseDay(raw, s.strictDates)
	if err != nil {
		return time.Time{}, ValidationError("the date is not a valid calendar date")
	}
	return day, nil
}

// parseBound validates and parses a from/to query bound, naming the field
// in the error.
func (s *trackerService) parseBound(raw, field string) (time.Time, error) {
	if !matchDay(raw) {
		return time.Time{}, ValidationError(fmt.Sprintf("the '%s' needs to be in the format yyyy-mm-dd", field))
	}
	day, err := parseDay(raw, s.strictDates)
	if err != nil {
		return time.Time{}, ValidationError(fmt.Sprintf("the '%s' is not a valid calendar date", field))
	}
	return day, nil
}

// parseInteger accepts any string representable as an integer, including
// float forms with no fractional remainder ("2.0" is 2, "2.5" is not).
func parseInteger(raw string) (int, bool) {
	if n, err := strconv.Atoi(raw); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

func storageFailure(err error) error {
	return fmt.Errorf("%w: %v", ErrStorage, err)
}
