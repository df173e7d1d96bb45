package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// RewardTransaction is an append-only ledger entry. The user's skillcoins
// field is a cached sum maintained by direct increment alongside these
// entries; the two are written by separate store calls and can drift if one
// write fails.
type RewardTransaction struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID primitive.ObjectID `bson:"user_id" json:"user_id"`
	Amount int                `bson:"amount" json:"amount"`
	Reason string             `bson:"reason" json:"reason"`
}
