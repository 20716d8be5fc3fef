package repository

import (
	"context"

	"github.com/kevink520/exercisetracker/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound  = RepositoryError("not found")
	ErrDuplicate = RepositoryError("duplicate")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for the normalized users collection.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// ExerciseRepository defines the interface for the normalized exercises
// collection, queried independently of the users collection.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	// GetByUserID returns the user's entries already filtered, ordered by
	// date descending, and truncated per the filter.
	GetByUserID(ctx context.Context, userID primitive.ObjectID, filter domain.LogFilter) ([]domain.Entry, error)
}

// UserLogRepository defines the interface for the denormalized layout,
// where each user document carries its own log and cached count.
type UserLogRepository interface {
	Create(ctx context.Context, doc *domain.UserDocument) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.UserDocument, error)
	GetByUsername(ctx context.Context, username string) (*domain.UserDocument, error)
	// AppendEntry pushes an entry onto the log and increments the cached
	// count as one atomic update, returning the matched document. Zero
	// matched documents means ErrNotFound.
	AppendEntry(ctx context.Context, id primitive.ObjectID, entry domain.Entry) (*domain.UserDocument, error)
}

// LogStore is the storage capability the service layer programs against.
// Both persistence strategies implement it, so the store is selected by
// configuration instead of duplicating call sites per layout. User ids
// cross this boundary as opaque strings; an id that cannot name a stored
// user yields ErrNotFound.
type LogStore interface {
	CreateUser(ctx context.Context, username string) (*domain.User, error)
	AppendEntry(ctx context.Context, userID string, entry domain.Entry) (*domain.User, error)
	FetchLog(ctx context.Context, userID string, filter domain.LogFilter) (*domain.User, []domain.Entry, error)
}
