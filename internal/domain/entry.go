package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Entry is a single logged activity. It is the value embedded in a
// UserDocument's log and the shape every query result is built from.
// Entries are immutable once created.
type Entry struct {
	Description string    `bson:"description" json:"description"`
	Duration    int       `bson:"duration" json:"duration"` // Minutes
	Date        time.Time `bson:"date" json:"date"`         // UTC midnight of the calendar day
}

// Exercise is the normalized representation of an Entry: a standalone
// record referencing its owner by id. The reference is weak; users are
// never deleted so no cascade exists.
type Exercise struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	Description string             `bson:"description" json:"description"`
	Duration    int                `bson:"duration" json:"duration"`
	Date        time.Time          `bson:"date" json:"date"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// Entry returns the value view of the record.
func (e *Exercise) Entry() Entry {
	return Entry{
		Description: e.Description,
		Duration:    e.Duration,
		Date:        e.Date,
	}
}
