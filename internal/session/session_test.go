package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "session.json")
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestLoad_MissingFileIsLoggedOut(t *testing.T) {
	s, err := Load(sessionPath(t))
	require.NoError(t, err)

	assert.False(t, s.Authenticated())
	assert.Empty(t, s.Token())
	assert.Empty(t, s.UserID())
}

func TestSet_PersistsAcrossLoads(t *testing.T) {
	path := sessionPath(t)

	s, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("tok-123", "u1", "ada@example.com"))

	reloaded, err := Load(path)
	require.NoError(t, err)

	assert.True(t, reloaded.Authenticated())
	assert.Equal(t, "tok-123", reloaded.Token())
	assert.Equal(t, "u1", reloaded.UserID())
	assert.Equal(t, "ada@example.com", reloaded.Email())
}

func TestSet_FilePermissions(t *testing.T) {
	path := sessionPath(t)

	s, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("tok", "u1", "a@b.c"))

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), fi.Mode().Perm())
}

func TestClear_RemovesFile(t *testing.T) {
	path := sessionPath(t)

	s, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("tok", "u1", "a@b.c"))

	require.NoError(t, s.Clear())

	assert.False(t, s.Authenticated())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Clearing an already logged-out session is fine.
	require.NoError(t, s.Clear())
}

func TestLoad_CorruptFileIsLoggedOut(t *testing.T) {
	path := sessionPath(t)
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

	s, err := Load(path)
	require.NoError(t, err)
	assert.False(t, s.Authenticated())
}

func TestExpiresAt_ReadsClaimWithoutVerification(t *testing.T) {
	path := sessionPath(t)
	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)

	s, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(signedToken(t, exp), "u1", "a@b.c"))

	got, ok := s.ExpiresAt()
	require.True(t, ok)
	assert.Equal(t, exp.Unix(), got.Unix())
	assert.False(t, s.Expired())
}

func TestExpired_PastClaim(t *testing.T) {
	s, err := Load(sessionPath(t))
	require.NoError(t, err)
	require.NoError(t, s.Set(signedToken(t, time.Now().Add(-time.Hour)), "u1", "a@b.c"))

	assert.True(t, s.Expired())
}

func TestExpired_OpaqueTokenAssumedLive(t *testing.T) {
	s, err := Load(sessionPath(t))
	require.NoError(t, err)
	require.NoError(t, s.Set("not-a-jwt", "u1", "a@b.c"))

	_, ok := s.ExpiresAt()
	assert.False(t, ok)
	assert.False(t, s.Expired())
}
