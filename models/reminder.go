package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Reminder is a scheduled follow-up bound to one lead and one user.
type Reminder struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title" validate:"required"`
	Message   string             `bson:"message" json:"message" validate:"required"`
	DueDate   time.Time          `bson:"due_date" json:"dueDate" validate:"required"`
	Completed bool               `bson:"completed" json:"completed"`
	LeadID    primitive.ObjectID `bson:"lead_id" json:"leadId"`
	UserID    primitive.ObjectID `bson:"user_id" json:"userId"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

type CreateReminderRequest struct {
	Title   string    `json:"title" validate:"required"`
	Message string    `json:"message" validate:"required"`
	DueDate time.Time `json:"dueDate" validate:"required"`
	LeadID  string    `json:"leadId" validate:"required"`
}

// UpdateReminderRequest carries a partial update; nil fields are left untouched.
type UpdateReminderRequest struct {
	Title     *string    `json:"title" validate:"omitempty,min=1"`
	Message   *string    `json:"message" validate:"omitempty,min=1"`
	DueDate   *time.Time `json:"dueDate"`
	Completed *bool      `json:"completed"`
}
