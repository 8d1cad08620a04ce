package store

import (
	"strings"
	"time"

	"neighbiz/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyStoreName   = errs.Validation("EMPTY_STORE_NAME", "store name cannot be empty")
	ErrStoreNameTooLong = errs.Validation("STORE_NAME_TOO_LONG", "store name is too long (max 50 characters)")
	ErrInvalidContact   = errs.Validation("INVALID_STORE_CONTACT", "store phone and address are required")
	ErrStoreNotFound    = errs.NotFound("STORE_NOT_FOUND", "store not found")
	ErrStoreInactive    = errs.Conflict("STORE_INACTIVE", "store is not active")
)

const (
	MaxStoreNameLength   = 50
	MaxAddressLength     = 255
	MaxDescriptionLength = 2000
)

type Store struct {
	id            uuid.UUID
	ownerID       uuid.UUID
	name          string
	category      Category
	phone         string
	address       string
	description   *string
	imageKey      *string
	businessHours BusinessHours
	isActive      bool
	createdAt     time.Time
	updatedAt     time.Time
}

type Profile struct {
	Name          string
	Category      string
	Phone         string
	Address       string
	Description   *string
	ImageKey      *string
	BusinessHours BusinessHours
}

func NewStore(ownerID uuid.UUID, p Profile, now time.Time) (*Store, error) {
	s := &Store{
		id:        uuid.New(),
		ownerID:   ownerID,
		isActive:  true,
		createdAt: now,
	}
	if err := s.apply(p, now); err != nil {
		return nil, err
	}
	return s, nil
}

func ReconstructStore(id, ownerID uuid.UUID, name string, category Category, phone, address string, description, imageKey *string, hours BusinessHours, isActive bool, createdAt, updatedAt time.Time) *Store {
	return &Store{
		id:            id,
		ownerID:       ownerID,
		name:          name,
		category:      category,
		phone:         phone,
		address:       address,
		description:   description,
		imageKey:      imageKey,
		businessHours: hours,
		isActive:      isActive,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// UpdateProfile replaces the whole profile; callers merge partial patches first.
func (s *Store) UpdateProfile(p Profile, now time.Time) error {
	return s.apply(p, now)
}

func (s *Store) apply(p Profile, now time.Time) error {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return ErrEmptyStoreName
	}
	if len([]rune(name)) > MaxStoreNameLength {
		return ErrStoreNameTooLong
	}
	category, err := NewCategory(p.Category)
	if err != nil {
		return err
	}
	phone := strings.TrimSpace(p.Phone)
	address := strings.TrimSpace(p.Address)
	if phone == "" || address == "" || len(address) > MaxAddressLength {
		return ErrInvalidContact
	}
	if p.Description != nil && len([]rune(*p.Description)) > MaxDescriptionLength {
		return errs.Wrap(ErrInvalidContact, "description too long")
	}
	if err := p.BusinessHours.Validate(); err != nil {
		return err
	}

	s.name = name
	s.category = category
	s.phone = phone
	s.address = address
	s.description = p.Description
	s.imageKey = p.ImageKey
	s.businessHours = p.BusinessHours
	s.updatedAt = now
	return nil
}

func (s *Store) Profile() Profile {
	return Profile{
		Name:          s.name,
		Category:      s.category.String(),
		Phone:         s.phone,
		Address:       s.address,
		Description:   s.description,
		ImageKey:      s.imageKey,
		BusinessHours: s.businessHours,
	}
}

func (s *Store) ID() uuid.UUID                { return s.id }
func (s *Store) OwnerID() uuid.UUID           { return s.ownerID }
func (s *Store) Name() string                 { return s.name }
func (s *Store) Category() Category           { return s.category }
func (s *Store) Phone() string                { return s.phone }
func (s *Store) Address() string              { return s.address }
func (s *Store) Description() *string         { return s.description }
func (s *Store) ImageKey() *string            { return s.imageKey }
func (s *Store) BusinessHours() BusinessHours { return s.businessHours }
func (s *Store) IsActive() bool               { return s.isActive }
func (s *Store) CreatedAt() time.Time         { return s.createdAt }
func (s *Store) UpdatedAt() time.Time         { return s.updatedAt }
