package models

import (
	"bytes"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MatchPending = "pending"
	MatchActive  = "active"
	MatchBlocked = "blocked"
)

// Match records a mutual like between two users. The pair is unordered;
// UserA/UserB are always stored in canonical order (see NormalizePair) so a
// single equality filter finds the match regardless of who swiped last.
type Match struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserA  primitive.ObjectID `bson:"user_a" json:"user_a"`
	UserB  primitive.ObjectID `bson:"user_b" json:"user_b"`
	Status string             `bson:"status" json:"status"` // pending, active, blocked
}

// Other returns the participant that is not the given user.
func (m Match) Other(userID primitive.ObjectID) primitive.ObjectID {
	if m.UserA == userID {
		return m.UserB
	}
	return m.UserA
}

// NormalizePair returns the two ids in canonical (byte) order. Both storage
// and lookup go through this, so at most one match document can represent a
// given pair.
func NormalizePair(a, b primitive.ObjectID) (primitive.ObjectID, primitive.ObjectID) {
	if bytes.Compare(a[:], b[:]) > 0 {
		return b, a
	}
	return a, b
}
