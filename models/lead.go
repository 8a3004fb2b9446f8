package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lead statuses. The pipeline is conceptually ordered but transitions are not
// enforced; any status may be set at any time.
const (
	StatusNew       = "New"
	StatusContacted = "Contacted"
	StatusQualified = "Qualified"
	StatusConverted = "Converted"
	StatusLost      = "Lost"
)

// Lead sources.
const (
	SourceWebsite  = "Website"
	SourceReferral = "Referral"
	SourceAd       = "Ad"
	SourceOther    = "Other"
)

var (
	LeadStatuses = []string{StatusNew, StatusContacted, StatusQualified, StatusConverted, StatusLost}
	LeadSources  = []string{SourceWebsite, SourceReferral, SourceAd, SourceOther}
)

// StatusChange is one entry of a lead's append-only status history.
type StatusChange struct {
	Status    string             `bson:"status" json:"status"`
	ChangedAt time.Time          `bson:"changed_at" json:"changedAt"`
	ChangedBy primitive.ObjectID `bson:"changed_by,omitempty" json:"changedBy,omitempty"`
}

type Lead struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        primitive.ObjectID `bson:"user_id" json:"userId"`
	Name          string             `bson:"name" json:"name" validate:"required"`
	Email         string             `bson:"email,omitempty" json:"email,omitempty" validate:"omitempty,email"`
	Phone         string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Company       string             `bson:"company,omitempty" json:"company,omitempty"`
	Source        string             `bson:"source" json:"source" validate:"required,lead_source"`
	Status        string             `bson:"status" json:"status" validate:"required,lead_status"`
	Tags          []string           `bson:"tags" json:"tags"`
	StatusHistory []StatusChange     `bson:"status_history" json:"statusHistory"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}

// LeadDetail is a lead with its attached records, as returned by the
// single-lead endpoint.
type LeadDetail struct {
	Lead       `bson:",inline"`
	Notes      []Note     `json:"notes"`
	Activities []Activity `json:"activities"`
	Reminders  []Reminder `json:"reminders"`
}

type CreateLeadRequest struct {
	Name    string   `json:"name" validate:"required"`
	Email   string   `json:"email" validate:"omitempty,email"`
	Phone   string   `json:"phone"`
	Company string   `json:"company"`
	Source  string   `json:"source" validate:"required,lead_source"`
	Status  string   `json:"status" validate:"omitempty,lead_status"`
	Tags    []string `json:"tags"`
}

// UpdateLeadRequest carries a partial update; nil fields are left untouched.
type UpdateLeadRequest struct {
	Name    *string   `json:"name" validate:"omitempty,min=1"`
	Email   *string   `json:"email" validate:"omitempty,email"`
	Phone   *string   `json:"phone"`
	Company *string   `json:"company"`
	Source  *string   `json:"source" validate:"omitempty,lead_source"`
	Status  *string   `json:"status" validate:"omitempty,lead_status"`
	Tags    *[]string `json:"tags"`
}

type LeadList struct {
	Leads []Lead `json:"leads"`
	Total int64  `json:"total"`
}
