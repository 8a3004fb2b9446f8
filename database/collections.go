package database

import "go.mongodb.org/mongo-driver/mongo"

// Collection names as constants to prevent typos
const (
	UsersCollection      = "users"
	LeadsCollection      = "leads"
	NotesCollection      = "notes"
	ActivitiesCollection = "activities"
	RemindersCollection  = "reminders"
)

// Collections provides typed access to all collections
type Collections struct {
	manager *Manager
}

// NewCollections creates a new collections instance
func NewCollections() *Collections {
	return &Collections{
		manager: GetManager(),
	}
}

func (c *Collections) Users() *mongo.Collection {
	return c.manager.GetCollection(UsersCollection)
}

func (c *Collections) Leads() *mongo.Collection {
	return c.manager.GetCollection(LeadsCollection)
}

func (c *Collections) Notes() *mongo.Collection {
	return c.manager.GetCollection(NotesCollection)
}

func (c *Collections) Activities() *mongo.Collection {
	return c.manager.GetCollection(ActivitiesCollection)
}

func (c *Collections) Reminders() *mongo.Collection {
	return c.manager.GetCollection(RemindersCollection)
}
