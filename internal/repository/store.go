package repository

import (
	"context"
	"errors"

	"github.com/kevink520/exercisetracker/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// parseUserID maps an opaque string id to an ObjectID. A string that is
// not a valid ObjectID cannot name any stored user, so it is reported as
// ErrNotFound rather than a separate error kind.
func parseUserID(userID string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return primitive.NilObjectID, ErrNotFound
	}
	return id, nil
}

// normalizedStore implements LogStore over separate user and exercise
// collections joined by a weak userId reference. Appends are independent
// inserts and need no cross-entry coordination; range filtering, ordering
// and truncation are pushed down into the exercise query.
type normalizedStore struct {
	users     UserRepository
	exercises ExerciseRepository
}

// NewNormalizedStore composes a LogStore from the two normalized
// repositories.
func NewNormalizedStore(users UserRepository, exercises ExerciseRepository) LogStore {
	return &normalizedStore{users: users, exercises: exercises}
}

func (s *normalizedStore) CreateUser(ctx context.Context, username string) (*domain.User, error) {
	if existing, err := s.users.GetByUsername(ctx, username); err == nil && existing != nil {
		return nil, ErrDuplicate
	} else if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	user := &domain.User{Username: username}
	id, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id
	return user, nil
}

func (s *normalizedStore) AppendEntry(ctx context.Context, userID string, entry domain.Entry) (*domain.User, error) {
	id, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exercise := &domain.Exercise{
		UserID:      user.ID,
		Description: entry.Description,
		Duration:    entry.Duration,
		Date:        entry.Date,
	}
	if _, err := s.exercises.Create(ctx, exercise); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *normalizedStore) FetchLog(ctx context.Context, userID string, filter domain.LogFilter) (*domain.User, []domain.Entry, error) {
	id, err := parseUserID(userID)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	entries, err := s.exercises.GetByUserID(ctx, user.ID, filter)
	if err != nil {
		return nil, nil, err
	}
	return user, entries, nil
}

// denormalizedStore implements LogStore over a single collection of user
// documents with embedded logs. Appends are a single atomic update, so the
// cached count stays consistent by construction; filtering happens in
// memory over the embedded log.
type denormalizedStore struct {
	docs UserLogRepository
}

// NewDenormalizedStore composes a LogStore from the embedded-log
// repository.
func NewDenormalizedStore(docs UserLogRepository) LogStore {
	return &denormalizedStore{docs: docs}
}

func (s *denormalizedStore) CreateUser(ctx context.Context, username string) (*domain.User, error) {
	if existing, err := s.docs.GetByUsername(ctx, username); err == nil && existing != nil {
		return nil, ErrDuplicate
	} else if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	doc := &domain.UserDocument{
		Username: username,
		Count:    0,
		Log:      []domain.Entry{},
	}
	id, err := s.docs.Create(ctx, doc)
	if err != nil {
		return nil, err
	}
	doc.ID = id
	return doc.Identity(), nil
}

func (s *denormalizedStore) AppendEntry(ctx context.Context, userID string, entry domain.Entry) (*domain.User, error) {
	id, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}

	// No separate existence check: the update either matches the one
	// document or nothing, and a miss is the not-found case.
	doc, err := s.docs.AppendEntry(ctx, id, entry)
	if err != nil {
		return nil, err
	}
	return doc.Identity(), nil
}

func (s *denormalizedStore) FetchLog(ctx context.Context, userID string, filter domain.LogFilter) (*domain.User, []domain.Entry, error) {
	id, err := parseUserID(userID)
	if err != nil {
		return nil, nil, err
	}

	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return doc.Identity(), domain.FilterEntries(doc.Log, filter), nil
}
