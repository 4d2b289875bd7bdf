package token_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mediaverse/mediaverse/token"
	"github.com/mediaverse/mediaverse/users"
)

const testSecret = "test-signing-secret"

func testUser() *users.User {
	return &users.User{ID: "user-1", Name: "Ann Admin", Email: "a@x.com", IsAdmin: true}
}

func TestMintAndIntrospect(t *testing.T) {
	manager := token.NewManager(token.NewHMACSigner(testSecret), time.Hour)

	raw, expiresAt, err := manager.Mint(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	require.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 2*time.Second)

	introspection, err := manager.Introspect(raw)
	require.NoError(t, err)
	require.True(t, introspection.Active)
	require.Equal(t, "Ann Admin", *introspection.Name)
	require.Equal(t, "user-1", *introspection.Sub)
	require.Equal(t, expiresAt.Unix(), *introspection.Exp)
}

func TestIntrospectExpiredToken(t *testing.T) {
	manager := token.NewManager(token.NewHMACSigner(testSecret), time.Hour)

	// Mint in the past so the token is already expired.
	token.NowTimeFunc = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	raw, _, err := manager.Mint(testUser())
	token.NowTimeFunc = time.Now
	require.NoError(t, err)

	introspection, err := manager.Introspect(raw)
	require.NoError(t, err)
	require.False(t, introspection.Active)
}

func TestIntrospectRejectsTamperedSignature(t *testing.T) {
	minting := token.NewManager(token.NewHMACSigner("other-secret"), time.Hour)
	raw, _, err := minting.Mint(testUser())
	require.NoError(t, err)

	verifying := token.NewManager(token.NewHMACSigner(testSecret), time.Hour)
	introspection, err := verifying.Introspect(raw)
	require.Error(t, err)
	require.False(t, introspection.Active)
}

func TestIntrospectMalformedToken(t *testing.T) {
	manager := token.NewManager(token.NewHMACSigner(testSecret), time.Hour)

	for _, raw := range []string{"", "   ", "not-a-token", "a.b.c"} {
		introspection, _ := manager.Introspect(raw)
		require.False(t, introspection.Active, "token %q must be inactive", raw)
	}
}
