package services

import (
	"context"
	"fmt"
	"time"

	"leadcrm/models"
	"leadcrm/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NoteService struct {
	*BaseService
	activityService *ActivityService
}

func NewNoteService() *NoteService {
	return &NoteService{
		BaseService:     NewBaseService(),
		activityService: NewActivityService(),
	}
}

// AddNote attaches a note to a lead the caller owns and records a note_added
// activity carrying a truncated preview of the text.
func (ns *NoteService) AddNote(leadID, userID primitive.ObjectID, req *models.CreateNoteRequest) (*models.Note, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := ns.collections.Leads().CountDocuments(ctx, bson.M{"_id": leadID, "user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to verify lead: %v", err)
	}
	if count == 0 {
		return nil, ErrLeadNotFound
	}

	note := &models.Note{
		ID:        primitive.NewObjectID(),
		LeadID:    leadID,
		UserID:    userID,
		Text:      req.Text,
		CreatedAt: time.Now(),
	}

	if _, err := ns.collections.Notes().InsertOne(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to create note: %v", err)
	}

	ns.activityService.Record(models.ActionNoteAdded,
		"Added a note",
		&leadID, userID,
		map[string]interface{}{"text": utils.Truncate(req.Text, 100)},
	)

	return note, nil
}

// GetNotes returns all notes for a lead the caller owns, newest first.
func (ns *NoteService) GetNotes(leadID, userID primitive.ObjectID) ([]models.Note, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := ns.collections.Leads().CountDocuments(ctx, bson.M{"_id": leadID, "user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to verify lead: %v", err)
	}
	if count == 0 {
		return nil, ErrLeadNotFound
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := ns.collections.Notes().Find(ctx, bson.M{"lead_id": leadID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get notes: %v", err)
	}
	defer cursor.Close(ctx)

	notes := []models.Note{}
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, fmt.Errorf("failed to decode notes: %v", err)
	}

	return notes, nil
}
