package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Note is a free-text annotation on a lead. Notes are immutable once created.
type Note struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Text      string             `bson:"text" json:"text" validate:"required"`
	LeadID    primitive.ObjectID `bson:"lead_id" json:"leadId"`
	UserID    primitive.ObjectID `bson:"user_id" json:"userId"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

type CreateNoteRequest struct {
	Text string `json:"text" validate:"required,min=1"`
}
