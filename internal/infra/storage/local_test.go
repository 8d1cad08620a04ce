//go:build unit

package storage

import (
	"context"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"neighbiz/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocalStorage(t *testing.T, now time.Time) *LocalStorage {
	t.Helper()
	s, err := NewLocalStorage(config.StorageConfig{
		Provider:      ProviderLocal,
		LocalPath:     filepath.Join(t.TempDir(), "objects.db"),
		PublicBaseURL: "http://files.test/",
		SigningKey:    "secret",
	})
	require.NoError(t, err)
	s.now = func() time.Time { return now }
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// signedParams splits a signed URL into its key and query values.
func signedParams(t *testing.T, raw string) (string, url.Values) {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(u.Path, FilesPath))
	return strings.TrimPrefix(u.Path, FilesPath), u.Query()
}

func TestLocalStorage_PutGet(t *testing.T) {
	ctx := context.Background()
	s := newTestLocalStorage(t, time.Now())

	exists, err := s.Exists(ctx, "qrcodes/abc.png")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, s.Put(ctx, "qrcodes/abc.png", "image/png", []byte("png-bytes")))

	exists, err = s.Exists(ctx, "qrcodes/abc.png")
	require.NoError(t, err)
	assert.True(t, exists)

	data, contentType, err := s.Get("qrcodes/abc.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
	assert.Equal(t, "image/png", contentType)

	_, _, err = s.Get("qrcodes/missing.png")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestLocalStorage_SignedURLs(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 3, 0, 0, 0, time.UTC)
	s := newTestLocalStorage(t, now)

	t.Run("get url verifies until expiry", func(t *testing.T) {
		raw, err := s.PresignGet(ctx, "stores/1/logo.jpg", time.Hour)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(raw, "http://files.test"+FilesPath))

		key, q := signedParams(t, raw)
		assert.Equal(t, "stores/1/logo.jpg", key)
		require.NoError(t, s.Verify("GET", key, "", q.Get("exp"), q.Get("sig")))

		s.now = func() time.Time { return now.Add(time.Hour + time.Second) }
		defer func() { s.now = func() time.Time { return now } }()
		assert.ErrorIs(t, s.Verify("GET", key, "", q.Get("exp"), q.Get("sig")), ErrInvalidSignature)
	})

	t.Run("put url is bound to method and content type", func(t *testing.T) {
		raw, err := s.PresignPut(ctx, "stores/1/logo.jpg", "image/jpeg", 10*time.Minute)
		require.NoError(t, err)
		key, q := signedParams(t, raw)

		require.NoError(t, s.Verify("PUT", key, "image/jpeg", q.Get("exp"), q.Get("sig")))
		assert.ErrorIs(t, s.Verify("PUT", key, "image/png", q.Get("exp"), q.Get("sig")), ErrInvalidSignature)
		assert.ErrorIs(t, s.Verify("GET", key, "image/jpeg", q.Get("exp"), q.Get("sig")), ErrInvalidSignature)
		assert.ErrorIs(t, s.Verify("PUT", "stores/2/logo.jpg", "image/jpeg", q.Get("exp"), q.Get("sig")), ErrInvalidSignature)
	})

	t.Run("malformed expiry", func(t *testing.T) {
		assert.ErrorIs(t, s.Verify("GET", "k", "", "tomorrow", "00"), ErrInvalidSignature)
	})
}

func TestNewProvider(t *testing.T) {
	_, err := NewProvider(config.StorageConfig{Provider: "ftp"})
	assert.ErrorIs(t, err, ErrUnknownProvider)

	_, err = NewProvider(config.StorageConfig{Provider: ProviderLocal, LocalPath: filepath.Join(t.TempDir(), "x.db")})
	assert.Error(t, err, "local storage requires a signing key")
}
