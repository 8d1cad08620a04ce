//go:build unit

package user_test

import (
	"testing"

	"neighbiz/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhone(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "plain", input: "01012345678", want: "01012345678"},
		{name: "hyphenated", input: "010-1234-5678", want: "01012345678"},
		{name: "wrong prefix", input: "01112345678", errIs: user.ErrInvalidPhone},
		{name: "too short", input: "0101234567", errIs: user.ErrInvalidPhone},
		{name: "letters", input: "010abcdefgh", errIs: user.ErrInvalidPhone},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			phone, err := user.NewPhone(c.input)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, phone.Value())
		})
	}
}

func TestNewUsernameAndPassword(t *testing.T) {
	_, err := user.NewUsername("ab")
	assert.ErrorIs(t, err, user.ErrInvalidUsername)
	_, err = user.NewUsername("cafe_owner1")
	assert.NoError(t, err)

	_, err = user.NewPassword("short")
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
	_, err = user.NewPassword("longenough")
	assert.NoError(t, err)
}

func TestPrincipal(t *testing.T) {
	ownerID, storeID := uuid.New(), uuid.New()

	owner := user.NewOwnerPrincipal(ownerID, storeID)
	sid, err := owner.RequireOwner()
	require.NoError(t, err)
	assert.Equal(t, storeID, sid)
	_, err = owner.RequireConsumer()
	assert.ErrorIs(t, err, user.ErrNotConsumer)

	consumer := user.NewConsumerPrincipal(uuid.New())
	_, err = consumer.RequireOwner()
	assert.ErrorIs(t, err, user.ErrNotOwner)
	cid, err := consumer.RequireConsumer()
	require.NoError(t, err)
	assert.Equal(t, consumer.ID(), cid)

	_, err = user.NewKind("admin")
	assert.ErrorIs(t, err, user.ErrInvalidKind)
}
