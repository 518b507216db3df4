package auth_test

import (
	"context"
	"testing"
	"time"

	"review_platform/configs"
	"review_platform/internal/auth"
	"review_platform/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJwtVerifier(t *testing.T) {
	configs.SetAccessTokenSecret("test-secret")
	verifier := auth.NewJwtVerifier()

	tokenString, err := util.CreateToken("user-a", "alice", time.Hour)
	require.NoError(t, err)

	userData, err := verifier.Verify(context.Background(), tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user-a", userData.UserId)
	assert.Equal(t, "alice", userData.Username)
}

func TestJwtVerifierInvalidToken(t *testing.T) {
	configs.SetAccessTokenSecret("test-secret")
	verifier := auth.NewJwtVerifier()

	_, err := verifier.Verify(context.Background(), "bogus")
	assert.Error(t, err)
}

func TestNewVerifierUnknownProvider(t *testing.T) {
	t.Setenv("AUTH_PROVIDER", "ldap")
	configs.LoadEnvVariables()

	_, err := auth.NewVerifier(context.Background())
	assert.Error(t, err)
}
