package config

import (
	"log"
	"time"

	"leadcrm/database"
)

// DatabaseManager handles database initialization and management
type DatabaseManager struct {
	manager *database.Manager
	config  *Config
}

// NewDatabaseManager creates a new database manager
func NewDatabaseManager(cfg *Config) *DatabaseManager {
	return &DatabaseManager{
		manager: database.GetManager(),
		config:  cfg,
	}
}

// Initialize initializes the database connection
func (dm *DatabaseManager) Initialize() error {
	log.Println("Initializing database connection...")

	dbConfig := &database.Config{
		MongoURI:        dm.config.MongoURI,
		DatabaseName:    dm.config.DBName,
		MaxPoolSize:     100,
		MinPoolSize:     10,
		MaxConnIdleTime: 30 * time.Second,
		ConnectTimeout:  10 * time.Second,
		ServerTimeout:   10 * time.Second,
		SocketTimeout:   10 * time.Second,
	}

	if err := dm.manager.Initialize(dbConfig); err != nil {
		return err
	}

	return nil
}

// SetupDatabase wires the global accessors, creates indexes and runs migrations
func (dm *DatabaseManager) SetupDatabase() error {
	database.SetClient(dm.manager.GetClient())
	database.SetDatabase(dm.manager.GetDatabase())

	if err := database.CreateIndexes(); err != nil {
		return err
	}

	if err := database.RunMigrations(); err != nil {
		return err
	}

	return nil
}

// Close gracefully closes the database connection
func (dm *DatabaseManager) Close() error {
	return dm.manager.Close()
}

// HealthCheck verifies database connectivity
func (dm *DatabaseManager) HealthCheck() error {
	return dm.manager.HealthCheck()
}
