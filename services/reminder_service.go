package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"leadcrm/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrReminderNotFound = errors.New("reminder not found")

type ReminderService struct {
	*BaseService
}

// ReminderFilters narrows the reminder list query.
type ReminderFilters struct {
	Date      *time.Time
	Overdue   bool
	Completed *bool
}

func NewReminderService() *ReminderService {
	return &ReminderService{BaseService: NewBaseService()}
}

// CreateReminder attaches a reminder to a lead the caller owns.
func (rs *ReminderService) CreateReminder(userID primitive.ObjectID, req *models.CreateReminderRequest) (*models.Reminder, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	leadID, err := primitive.ObjectIDFromHex(req.LeadID)
	if err != nil {
		return nil, ErrLeadNotFound
	}

	count, err := rs.collections.Leads().CountDocuments(ctx, bson.M{"_id": leadID, "user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to verify lead: %v", err)
	}
	if count == 0 {
		return nil, ErrLeadNotFound
	}

	reminder := &models.Reminder{
		ID:        primitive.NewObjectID(),
		LeadID:    leadID,
		UserID:    userID,
		Title:     req.Title,
		Message:   req.Message,
		DueDate:   req.DueDate,
		Completed: false,
		CreatedAt: time.Now(),
	}

	if _, err := rs.collections.Reminders().InsertOne(ctx, reminder); err != nil {
		return nil, fmt.Errorf("failed to create reminder: %v", err)
	}

	return reminder, nil
}

// GetReminders lists the user's reminders sorted by due date ascending.
// Overdue means due before now and not completed; it overrides the date
// filter when both are set.
func (rs *ReminderService) GetReminders(userID primitive.ObjectID, filters *ReminderFilters) ([]models.Reminder, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	query := bson.M{"user_id": userID}
	if filters != nil {
		if filters.Overdue {
			query["due_date"] = bson.M{"$lt": time.Now()}
			query["completed"] = false
		} else {
			if filters.Date != nil {
				dayStart := startOfDay(*filters.Date)
				query["due_date"] = bson.M{
					"$gte": dayStart,
					"$lt":  dayStart.AddDate(0, 0, 1),
				}
			}
			if filters.Completed != nil {
				query["completed"] = *filters.Completed
			}
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "due_date", Value: 1}})
	cursor, err := rs.collections.Reminders().Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get reminders: %v", err)
	}
	defer cursor.Close(ctx)

	reminders := []models.Reminder{}
	if err := cursor.All(ctx, &reminders); err != nil {
		return nil, fmt.Errorf("failed to decode reminders: %v", err)
	}

	return reminders, nil
}

// UpdateReminder applies a partial update under the caller's ownership scope.
func (rs *ReminderService) UpdateReminder(reminderID, userID primitive.ObjectID, req *models.UpdateReminderRequest) (*models.Reminder, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	set := bson.M{}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Message != nil {
		set["message"] = *req.Message
	}
	if req.DueDate != nil {
		set["due_date"] = *req.DueDate
	}
	if req.Completed != nil {
		set["completed"] = *req.Completed
	}
	if len(set) == 0 {
		return nil, errors.New("no fields to update")
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Reminder
	err := rs.collections.Reminders().FindOneAndUpdate(ctx,
		bson.M{"_id": reminderID, "user_id": userID},
		bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrReminderNotFound
		}
		return nil, fmt.Errorf("failed to update reminder: %v", err)
	}

	return &updated, nil
}

// CompleteReminder marks a reminder done.
func (rs *ReminderService) CompleteReminder(reminderID, userID primitive.ObjectID) (*models.Reminder, error) {
	completed := true
	return rs.UpdateReminder(reminderID, userID, &models.UpdateReminderRequest{Completed: &completed})
}

// DeleteReminder removes a reminder under the caller's ownership scope.
func (rs *ReminderService) DeleteReminder(reminderID, userID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := rs.collections.Reminders().DeleteOne(ctx, bson.M{"_id": reminderID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("failed to delete reminder: %v", err)
	}
	if result.DeletedCount == 0 {
		return ErrReminderNotFound
	}

	return nil
}
