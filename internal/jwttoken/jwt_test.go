package jwttoken

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "quorum/pkg/domain-errors"
)

func newTestService() *Service {
	return NewService("test-signing-key", "http://localhost:8080", "quorum-console", 15*time.Minute)
}

func TestGenerateAndValidateActorToken(t *testing.T) {
	svc := newTestService()

	token, err := svc.GenerateActorToken("user-1", "Admin User", "Admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "Admin User", claims.ActorName)
	assert.Equal(t, "Admin", claims.Role)
}

func TestGenerateActorTokenRequiresActorID(t *testing.T) {
	svc := newTestService()

	_, err := svc.GenerateActorToken("  ", "Nameless", "Admin")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	svc := newTestService()
	other := NewService("different-key", "http://localhost:8080", "quorum-console", 15*time.Minute)

	token, err := svc.GenerateActorToken("user-1", "Admin User", "Admin")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := NewService("test-signing-key", "http://localhost:8080", "quorum-console", -1*time.Minute)

	token, err := svc.GenerateActorToken("user-1", "Admin User", "Admin")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := newTestService()

	_, err := svc.ValidateToken("not-a-jwt")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}
