package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// RunMigrations executes all database migrations
func RunMigrations() error {
	log.Println("Running database migrations...")

	if err := backfillStatusHistory(); err != nil {
		return err
	}

	if err := backfillLeadTags(); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// backfillStatusHistory seeds a single history entry on leads written before
// status history tracking existed, so the last-entry-matches-current-status
// expectation holds for old documents too.
func backfillStatusHistory() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	collection := GetCollection(LeadsCollection)

	cursor, err := collection.Find(ctx, bson.M{
		"$or": []bson.M{
			{"status_history": bson.M{"$exists": false}},
			{"status_history": bson.M{"$size": 0}},
		},
	})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	migrated := 0
	for cursor.Next(ctx) {
		var lead struct {
			ID        interface{} `bson:"_id"`
			UserID    interface{} `bson:"user_id"`
			Status    string      `bson:"status"`
			CreatedAt time.Time   `bson:"created_at"`
		}
		if err := cursor.Decode(&lead); err != nil {
			return err
		}

		entry := bson.M{
			"status":     lead.Status,
			"changed_at": lead.CreatedAt,
			"changed_by": lead.UserID,
		}
		if _, err := collection.UpdateOne(ctx,
			bson.M{"_id": lead.ID},
			bson.M{"$set": bson.M{"status_history": []bson.M{entry}}},
		); err != nil {
			return err
		}
		migrated++
	}

	if migrated > 0 {
		log.Printf("Backfilled status history on %d leads", migrated)
	}
	return cursor.Err()
}

// backfillLeadTags normalizes leads missing a tags array to an empty slice so
// the list endpoints never serve null for it.
func backfillLeadTags() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	collection := GetCollection(LeadsCollection)

	result, err := collection.UpdateMany(ctx,
		bson.M{"tags": bson.M{"$exists": false}},
		bson.M{"$set": bson.M{"tags": []string{}}},
	)
	if err != nil {
		return err
	}

	if result.ModifiedCount > 0 {
		log.Printf("Normalized tags on %d leads", result.ModifiedCount)
	}
	return nil
}
