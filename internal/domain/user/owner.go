package user

import (
	"time"

	"neighbiz/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOwnerNotFound    = errs.NotFound("OWNER_NOT_FOUND", "owner account not found")
	ErrUsernameTaken    = errs.Conflict("USERNAME_TAKEN", "username is already in use")
	ErrPhoneTaken       = errs.Conflict("PHONE_TAKEN", "phone number is already registered")
	ErrConsumerNotFound = errs.NotFound("CONSUMER_NOT_FOUND", "consumer account not found")
)

type Owner struct {
	id           uuid.UUID
	username     Username
	passwordHash string
	name         string
	phone        Phone
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewOwner(username Username, passwordHash, name string, phone Phone, now time.Time) (*Owner, error) {
	validName, err := validateName(name)
	if err != nil {
		return nil, err
	}
	return &Owner{
		id:           uuid.New(),
		username:     username,
		passwordHash: passwordHash,
		name:         validName,
		phone:        phone,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructOwner(id uuid.UUID, username, passwordHash, name, phone string, isActive bool, createdAt, updatedAt time.Time) *Owner {
	return &Owner{
		id:           id,
		username:     Username{value: username},
		passwordHash: passwordHash,
		name:         name,
		phone:        ReconstructPhone(phone),
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (o *Owner) ChangePasswordHash(hash string, now time.Time) {
	o.passwordHash = hash
	o.updatedAt = now
}

func (o *Owner) ID() uuid.UUID        { return o.id }
func (o *Owner) Username() Username   { return o.username }
func (o *Owner) PasswordHash() string { return o.passwordHash }
func (o *Owner) Name() string         { return o.name }
func (o *Owner) Phone() Phone         { return o.phone }
func (o *Owner) IsActive() bool       { return o.isActive }
func (o *Owner) CreatedAt() time.Time { return o.createdAt }
func (o *Owner) UpdatedAt() time.Time { return o.updatedAt }
