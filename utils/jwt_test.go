package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGenerateAndValidateToken(t *testing.T) {
	userID := primitive.NewObjectID()

	token, err := GenerateToken(userID, "jane@acme.test")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "jane@acme.test", claims.Email)
	assert.Equal(t, userID.Hex(), claims.Subject)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	token, err := GenerateToken(primitive.NewObjectID(), "jane@acme.test")
	assert.NoError(t, err)

	_, err = ValidateToken(token + "x")
	assert.Error(t, err)
}
