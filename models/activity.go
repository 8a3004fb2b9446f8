package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Activity actions. Activities are an append-only audit trail; they are never
// updated and only removed when their lead is cascade-deleted.
const (
	ActionCreated       = "created"
	ActionUpdated       = "updated"
	ActionStatusChanged = "status_changed"
	ActionNoteAdded     = "note_added"
)

type Activity struct {
	ID          primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Action      string                 `bson:"action" json:"action"`
	Description string                 `bson:"description" json:"description"`
	LeadID      *primitive.ObjectID    `bson:"lead_id,omitempty" json:"leadId,omitempty"`
	UserID      primitive.ObjectID     `bson:"user_id" json:"userId"`
	Metadata    map[string]interface{} `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt   time.Time              `bson:"created_at" json:"createdAt"`
}
