package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildLeadQueryScopesByUser(t *testing.T) {
	userID := primitive.NewObjectID()

	query := buildLeadQuery(userID, nil)

	assert.Equal(t, bson.M{"user_id": userID}, query)
}

func TestBuildLeadQuerySearch(t *testing.T) {
	userID := primitive.NewObjectID()

	query := buildLeadQuery(userID, &LeadFilters{Search: "acme"})

	or, ok := query["$or"].([]bson.M)
	assert.True(t, ok)
	assert.Len(t, or, 3)

	regex := bson.M{"$regex": "acme", "$options": "i"}
	assert.Equal(t, regex, or[0]["name"])
	assert.Equal(t, regex, or[1]["email"])
	assert.Equal(t, regex, or[2]["phone"])
}

func TestBuildLeadQueryStatusAndSource(t *testing.T) {
	userID := primitive.NewObjectID()

	query := buildLeadQuery(userID, &LeadFilters{Status: "Converted", Source: "Referral"})

	assert.Equal(t, "Converted", query["status"])
	assert.Equal(t, "Referral", query["source"])
	assert.NotContains(t, query, "$or")
	assert.NotContains(t, query, "created_at")
}

func TestBuildLeadQueryDateRange(t *testing.T) {
	userID := primitive.NewObjectID()
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)

	query := buildLeadQuery(userID, &LeadFilters{StartDate: &start, EndDate: &end})

	createdAt, ok := query["created_at"].(bson.M)
	assert.True(t, ok)
	assert.Equal(t, start, createdAt["$gte"])
	assert.Equal(t, end, createdAt["$lte"])
}

func TestBuildLeadQueryOpenEndedRange(t *testing.T) {
	userID := primitive.NewObjectID()
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	query := buildLeadQuery(userID, &LeadFilters{StartDate: &start})

	createdAt, ok := query["created_at"].(bson.M)
	assert.True(t, ok)
	assert.Equal(t, start, createdAt["$gte"])
	assert.NotContains(t, createdAt, "$lte")
}
