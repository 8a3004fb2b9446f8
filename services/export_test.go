package services

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"leadcrm/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildLeadsCSVHeaderOnly(t *testing.T) {
	data, err := BuildLeadsCSV(nil)
	assert.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, []string{"Name", "Email", "Phone", "Company", "Source", "Status", "Created At"}, records[0])
}

func TestBuildLeadsCSVRecords(t *testing.T) {
	leads := []models.Lead{
		{
			Name:      "Jane Cooper",
			Email:     "jane@acme.test",
			Phone:     "+1 555 0100",
			Company:   "Acme",
			Source:    models.SourceReferral,
			Status:    models.StatusConverted,
			CreatedAt: time.Date(2025, time.February, 3, 18, 30, 0, 0, time.UTC),
		},
		{
			Name:      "Comma, Inc contact",
			Email:     "info@comma.test",
			Source:    models.SourceWebsite,
			Status:    models.StatusNew,
			CreatedAt: time.Date(2025, time.February, 4, 9, 0, 0, 0, time.UTC),
		},
	}

	data, err := BuildLeadsCSV(leads)
	assert.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 3)

	assert.Equal(t, []string{"Jane Cooper", "jane@acme.test", "+1 555 0100", "Acme", "Referral", "Converted", "2025-02-03"}, records[1])

	// Fields containing commas survive a round trip
	assert.Equal(t, "Comma, Inc contact", records[2][0])
	assert.Equal(t, "2025-02-04", records[2][6])
}
