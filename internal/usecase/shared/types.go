package shared

import (
	"github.com/google/uuid"
)

// Minimal snapshot for command read operations
type StoreSnapshot struct {
	ID       uuid.UUID
	OwnerID  uuid.UUID
	Name     string
	IsActive bool
}
