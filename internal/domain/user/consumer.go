package user

import (
	"time"

	"github.com/google/uuid"
)

// Consumer accounts are created on first successful phone login.
type Consumer struct {
	id          uuid.UUID
	phone       Phone
	isActive    bool
	lastLoginAt *time.Time
	createdAt   time.Time
}

func NewConsumer(phone Phone, now time.Time) *Consumer {
	return &Consumer{
		id:          uuid.New(),
		phone:       phone,
		isActive:    true,
		lastLoginAt: &now,
		createdAt:   now,
	}
}

func ReconstructConsumer(id uuid.UUID, phone string, isActive bool, lastLoginAt *time.Time, createdAt time.Time) *Consumer {
	return &Consumer{
		id:          id,
		phone:       ReconstructPhone(phone),
		isActive:    isActive,
		lastLoginAt: lastLoginAt,
		createdAt:   createdAt,
	}
}

func (c *Consumer) ID() uuid.UUID           { return c.id }
func (c *Consumer) Phone() Phone            { return c.phone }
func (c *Consumer) IsActive() bool          { return c.isActive }
func (c *Consumer) LastLoginAt() *time.Time { return c.lastLoginAt }
func (c *Consumer) CreatedAt() time.Time    { return c.createdAt }
