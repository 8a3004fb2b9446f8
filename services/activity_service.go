package services

import (
	"context"
	"fmt"
	"time"

	"leadcrm/models"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ActivityService struct {
	*BaseService
}

func NewActivityService() *ActivityService {
	return &ActivityService{BaseService: NewBaseService()}
}

// Record writes an activity entry. Activity emission is best effort: a write
// failure is logged and swallowed so it never fails the operation that
// produced it.
func (as *ActivityService) Record(action, description string, leadID *primitive.ObjectID, userID primitive.ObjectID, metadata map[string]interface{}) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	activity := &models.Activity{
		ID:          primitive.NewObjectID(),
		UserID:      userID,
		LeadID:      leadID,
		Action:      action,
		Description: description,
		Metadata:    metadata,
		CreatedAt:   time.Now(),
	}

	if _, err := as.collections.Activities().InsertOne(ctx, activity); err != nil {
		logrus.WithFields(logrus.Fields{
			"action":  action,
			"user_id": userID.Hex(),
			"error":   err.Error(),
		}).Error("Failed to record activity")
	}
}

// GetRecent returns the user's latest activities, newest first.
func (as *ActivityService) GetRecent(userID primitive.ObjectID, limit int) ([]models.Activity, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if limit <= 0 {
		limit = 10
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := as.collections.Activities().Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get activities: %v", err)
	}
	defer cursor.Close(ctx)

	activities := []models.Activity{}
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, fmt.Errorf("failed to decode activities: %v", err)
	}

	return activities, nil
}
