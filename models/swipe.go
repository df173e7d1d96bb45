package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	SwipeLike = "like"
	SwipePass = "pass"
)

// Swipe is an immutable event: one user deciding on another. Repeated swipes
// between the same pair are allowed; records are never updated or deleted.
type Swipe struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID   primitive.ObjectID `bson:"user_id" json:"user_id"`
	TargetID primitive.ObjectID `bson:"target_id" json:"target_id"`
	Action   string             `bson:"action" json:"action"` // like or pass
}

// SwipeRequest is the POST /api/swipe payload.
type SwipeRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	TargetID string `json:"target_id" binding:"required"`
	Action   string `json:"action" binding:"required"`
}
