package coupon

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventIssued  EventType = "coupon_issued"
	EventUsed    EventType = "coupon_used"
	EventExpired EventType = "coupon_expired"
)

// RequestMeta is what the transport knows about the caller's device.
type RequestMeta struct {
	IP         string
	UserAgent  string
	DeviceHash string
}

const maxMetaLength = 255

func (m RequestMeta) truncated() RequestMeta {
	cut := func(s string) string {
		if len(s) > maxMetaLength {
			return s[:maxMetaLength]
		}
		return s
	}
	return RequestMeta{IP: cut(m.IP), UserAgent: cut(m.UserAgent), DeviceHash: cut(m.DeviceHash)}
}

type EventLog struct {
	ID         uuid.UUID
	CouponID   uuid.UUID
	ConsumerID uuid.UUID
	Type       EventType
	Meta       RequestMeta
	CreatedAt  time.Time
}

func NewEventLog(c *Coupon, t EventType, meta RequestMeta, now time.Time) *EventLog {
	return &EventLog{
		ID:         uuid.New(),
		CouponID:   c.ID(),
		ConsumerID: c.ConsumerID(),
		Type:       t,
		Meta:       meta.truncated(),
		CreatedAt:  now,
	}
}
