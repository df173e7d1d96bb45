package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	ModeChat  = "chat"
	ModeVideo = "video"
)

const (
	SessionScheduled = "scheduled"
	SessionCompleted = "completed"
	// SessionCancelled is defined in the schema but no endpoint reaches it.
	SessionCancelled = "cancelled"
)

// Session is a scheduled learning interaction bound to exactly one match.
// HostID and GuestID are snapshots of the match's user_a/user_b taken at
// creation time; later match mutations do not propagate.
type Session struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MatchID       primitive.ObjectID `bson:"match_id" json:"match_id"`
	HostID        primitive.ObjectID `bson:"host_id" json:"host_id"`
	GuestID       primitive.ObjectID `bson:"guest_id" json:"guest_id"`
	Topic         *string            `bson:"topic,omitempty" json:"topic"`
	ScheduledTime *string            `bson:"scheduled_time,omitempty" json:"scheduled_time"`
	Mode          string             `bson:"mode" json:"mode"`     // chat or video
	Status        string             `bson:"status" json:"status"` // scheduled, completed, cancelled
}

// SessionCreate is the POST /api/sessions payload. Topic and scheduled_time
// are stored as given, unvalidated.
type SessionCreate struct {
	MatchID       string  `json:"match_id" binding:"required"`
	Topic         *string `json:"topic"`
	ScheduledTime *string `json:"scheduled_time"`
	Mode          string  `json:"mode"`
}
