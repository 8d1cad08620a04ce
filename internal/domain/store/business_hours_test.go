//go:build unit

package store_test

import (
	"testing"
	"time"

	"neighbiz/internal/domain/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBusinessHours(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		valid bool
	}{
		{name: "empty", raw: ``, valid: true},
		{name: "regular day", raw: `{"mon":{"open":"09:00","close":"18:00"}}`, valid: true},
		{name: "with break", raw: `{"tue":{"open":"09:00","close":"18:00","break":["12:00","13:00"]}}`, valid: true},
		{name: "closed day", raw: `{"sun":{"closed":true}}`, valid: true},
		{name: "closed with hours", raw: `{"sun":{"closed":true,"open":"09:00"}}`},
		{name: "unknown weekday", raw: `{"holiday":{"closed":true}}`},
		{name: "unknown key", raw: `{"mon":{"open":"09:00","close":"18:00","note":"x"}}`},
		{name: "open after close", raw: `{"mon":{"open":"19:00","close":"18:00"}}`},
		{name: "bad clock", raw: `{"mon":{"open":"9:00","close":"18:00"}}`},
		{name: "break outside hours", raw: `{"mon":{"open":"09:00","close":"18:00","break":["08:00","10:00"]}}`},
		{name: "break single value", raw: `{"mon":{"open":"09:00","close":"18:00","break":["12:00"]}}`},
		{name: "not an object", raw: `["mon"]`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			hours, err := store.ParseBusinessHours([]byte(c.raw))
			if c.valid {
				require.NoError(t, err)
				assert.NotNil(t, hours)
				return
			}
			require.ErrorIs(t, err, store.ErrInvalidBusinessHours)
		})
	}
}

func TestStore(t *testing.T) {
	now := time.Now()
	profile := store.Profile{
		Name:     "  Corner Cafe ",
		Category: "cafe",
		Phone:    "02-123-4567",
		Address:  "Seoul",
	}

	t.Run("create", func(t *testing.T) {
		s, err := store.NewStore(uuid.New(), profile, now)
		require.NoError(t, err)
		assert.Equal(t, "Corner Cafe", s.Name())
		assert.Equal(t, store.CategoryCafe, s.Category())
		assert.True(t, s.IsActive())
	})

	t.Run("empty category defaults to other", func(t *testing.T) {
		p := profile
		p.Category = ""
		s, err := store.NewStore(uuid.New(), p, now)
		require.NoError(t, err)
		assert.Equal(t, store.CategoryOther, s.Category())
	})

	t.Run("invalid category", func(t *testing.T) {
		p := profile
		p.Category = "casino"
		_, err := store.NewStore(uuid.New(), p, now)
		assert.ErrorIs(t, err, store.ErrInvalidCategory)
	})

	t.Run("empty name", func(t *testing.T) {
		p := profile
		p.Name = " "
		_, err := store.NewStore(uuid.New(), p, now)
		assert.ErrorIs(t, err, store.ErrEmptyStoreName)
	})

	t.Run("update keeps identity", func(t *testing.T) {
		s, err := store.NewStore(uuid.New(), profile, now)
		require.NoError(t, err)
		id := s.ID()

		p := s.Profile()
		p.Name = "Corner Bakery"
		p.Category = "bakery"
		require.NoError(t, s.UpdateProfile(p, now.Add(time.Minute)))
		assert.Equal(t, id, s.ID())
		assert.Equal(t, "Corner Bakery", s.Name())
		assert.Equal(t, store.CategoryBakery, s.Category())
	})
}
