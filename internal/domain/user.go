package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an identity record in the normalized layout. Users are created
// once at registration and never mutated or deleted.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username  string             `bson:"username" json:"username"` // Unique, case-sensitive
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// UserDocument is the denormalized layout: the identity plus the embedded
// exercise log and a cached count of its length. Count is incremented
// atomically with every append and must never drift from len(Log).
type UserDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username  string             `bson:"username" json:"username"`
	Count     int64              `bson:"count" json:"count"`
	Log       []Entry            `bson:"log" json:"log"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Identity returns the user-shaped view of a denormalized document.
func (d *UserDocument) Identity() *User {
	if d == nil {
		return nil
	}
	return &User{
		ID:        d.ID,
		Username:  d.Username,
		CreatedAt: d.CreatedAt,
	}
}
