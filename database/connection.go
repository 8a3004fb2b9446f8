package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client   *mongo.Client
	database *mongo.Database
)

// SetClient sets the global MongoDB client (called by DatabaseManager)
func SetClient(c *mongo.Client) {
	client = c
}

// SetDatabase sets the global MongoDB database (called by DatabaseManager)
func SetDatabase(db *mongo.Database) {
	database = db
}

// GetClient returns the MongoDB client
func GetClient() *mongo.Client {
	return client
}

// GetDatabase returns the MongoDB database
func GetDatabase() *mongo.Database {
	return database
}

// GetCollection returns a MongoDB collection
func GetCollection(collectionName string) *mongo.Collection {
	if database == nil {
		panic(fmt.Sprintf("database not initialized when trying to get collection: %s. Make sure DatabaseManager.Initialize() is called first.", collectionName))
	}
	return database.Collection(collectionName)
}

// Ping checks the database connection
func Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if client == nil {
		return fmt.Errorf("database client not initialized")
	}

	return client.Ping(ctx, readpref.Primary())
}

// GetStats returns database statistics
func GetStats() (bson.M, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if database == nil {
		return nil, fmt.Errorf("database not initialized")
	}

	var stats bson.M
	result := database.RunCommand(ctx, bson.D{{Key: "dbStats", Value: 1}})
	err := result.Decode(&stats)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// CreateIndexes creates necessary database indexes
func CreateIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log.Println("Creating database indexes...")

	// Users collection indexes
	usersCollection := GetCollection(UsersCollection)
	userIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		},
	}

	if _, err := usersCollection.Indexes().CreateMany(ctx, userIndexes); err != nil {
		return fmt.Errorf("failed to create user indexes: %v", err)
	}

	// Leads collection indexes. Every lead query is scoped by user_id, and the
	// analytics counts filter on status/source plus created_at/updated_at.
	leadsCollection := GetCollection(LeadsCollection)
	leadIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "status", Value: 1}, {Key: "updated_at", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "source", Value: 1}},
		},
	}

	if _, err := leadsCollection.Indexes().CreateMany(ctx, leadIndexes); err != nil {
		return fmt.Errorf("failed to create lead indexes: %v", err)
	}

	// Notes collection indexes
	notesCollection := GetCollection(NotesCollection)
	noteIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "lead_id", Value: 1}, {Key: "created_at", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
		},
	}

	if _, err := notesCollection.Indexes().CreateMany(ctx, noteIndexes); err != nil {
		return fmt.Errorf("failed to create note indexes: %v", err)
	}

	// Activities collection indexes
	activitiesCollection := GetCollection(ActivitiesCollection)
	activityIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "lead_id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "action", Value: 1}},
		},
	}

	if _, err := activitiesCollection.Indexes().CreateMany(ctx, activityIndexes); err != nil {
		return fmt.Errorf("failed to create activity indexes: %v", err)
	}

	// Reminders collection indexes
	remindersCollection := GetCollection(RemindersCollection)
	reminderIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "due_date", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "completed", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "lead_id", Value: 1}},
		},
	}

	if _, err := remindersCollection.Indexes().CreateMany(ctx, reminderIndexes); err != nil {
		return fmt.Errorf("failed to create reminder indexes: %v", err)
	}

	log.Println("Database indexes created successfully")
	return nil
}
