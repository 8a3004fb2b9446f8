package utils

import (
	"testing"

	"leadcrm/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateCreateLeadRequest(t *testing.T) {
	req := &models.CreateLeadRequest{
		Name:   "Jane Cooper",
		Email:  "jane@acme.test",
		Source: models.SourceReferral,
	}

	assert.NoError(t, ValidateStruct(req))
}

func TestValidateRejectsUnknownSource(t *testing.T) {
	req := &models.CreateLeadRequest{
		Name:   "Jane Cooper",
		Email:  "jane@acme.test",
		Source: "carrier-pigeon",
	}

	err := ValidateStruct(req)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "source")
}

func TestValidateRejectsUnknownStatus(t *testing.T) {
	req := &models.CreateLeadRequest{
		Name:   "Jane Cooper",
		Email:  "jane@acme.test",
		Source: models.SourceWebsite,
		Status: "maybe",
	}

	err := ValidateStruct(req)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status")
}

func TestValidateAcceptsEveryKnownStatus(t *testing.T) {
	for _, status := range models.LeadStatuses {
		req := &models.CreateLeadRequest{
			Name:   "Jane Cooper",
			Source: models.SourceWebsite,
			Status: status,
		}
		assert.NoError(t, ValidateStruct(req), "status %q should be valid", status)
	}
}

func TestValidateRejectsBadEmail(t *testing.T) {
	req := &models.RegisterRequest{
		Name:     "Jane Cooper",
		Email:    "not-an-email",
		Password: "hunter22",
	}

	err := ValidateStruct(req)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "email")
}

func TestValidateRequiresPassword(t *testing.T) {
	req := &models.RegisterRequest{
		Name:  "Jane Cooper",
		Email: "jane@acme.test",
	}

	err := ValidateStruct(req)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "password")
}
