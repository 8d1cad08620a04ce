package store

import (
	"encoding/json"
	"fmt"
	"time"

	"neighbiz/internal/pkg/errs"
)

var ErrInvalidBusinessHours = errs.Validation("INVALID_BUSINESS_HOURS", "invalid business hours")

var weekdays = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

// DayHours is either {"closed": true} or {"open","close"[,"break"]}.
type DayHours struct {
	Closed bool      `json:"closed,omitempty"`
	Open   string    `json:"open,omitempty"`
	Close  string    `json:"close,omitempty"`
	Break  *[]string `json:"break,omitempty"`
}

// BusinessHours is keyed by weekday abbreviation; missing days are unspecified.
type BusinessHours map[string]DayHours

func ParseBusinessHours(raw []byte) (BusinessHours, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return BusinessHours{}, nil
	}
	var generic map[string]map[string]json.RawMessage
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, errs.Wrap(ErrInvalidBusinessHours, "business hours must be an object of weekday objects")
	}
	for day, fields := range generic {
		if _, ok := fields["closed"]; ok && len(fields) > 1 {
			return nil, errs.Wrapf(ErrInvalidBusinessHours, "%s: closed day cannot have other keys", day)
		}
		for k := range fields {
			switch k {
			case "closed", "open", "close", "break":
			default:
				return nil, errs.Wrapf(ErrInvalidBusinessHours, "%s: unknown key %q", day, k)
			}
		}
	}

	var hours BusinessHours
	if err := json.Unmarshal(raw, &hours); err != nil {
		return nil, errs.Wrap(ErrInvalidBusinessHours, err.Error())
	}
	if err := hours.Validate(); err != nil {
		return nil, err
	}
	return hours, nil
}

func (h BusinessHours) Validate() error {
	for day, dh := range h {
		if !isWeekday(day) {
			return errs.Wrapf(ErrInvalidBusinessHours, "unknown day %q", day)
		}
		if err := dh.validate(); err != nil {
			return errs.Wrapf(err, "%s", day)
		}
	}
	return nil
}

func (d DayHours) validate() error {
	if d.Closed {
		if d.Open != "" || d.Close != "" || d.Break != nil {
			return errs.Wrap(ErrInvalidBusinessHours, "closed day cannot have hours")
		}
		return nil
	}
	open, err := parseClock(d.Open)
	if err != nil {
		return err
	}
	closing, err := parseClock(d.Close)
	if err != nil {
		return err
	}
	if !open.Before(closing) {
		return errs.Wrap(ErrInvalidBusinessHours, "open must be before close")
	}
	if d.Break == nil {
		return nil
	}
	br := *d.Break
	if len(br) != 2 {
		return errs.Wrap(ErrInvalidBusinessHours, "break must be [start, end]")
	}
	bs, err := parseClock(br[0])
	if err != nil {
		return err
	}
	be, err := parseClock(br[1])
	if err != nil {
		return err
	}
	if !bs.Before(be) || bs.Before(open) || be.After(closing) {
		return errs.Wrap(ErrInvalidBusinessHours, "break must fall within opening hours")
	}
	return nil
}

func (h BusinessHours) JSON() []byte {
	if h == nil {
		return []byte("{}")
	}
	b, err := json.Marshal(h)
	if err != nil {
		return []byte("{}")
	}
	return b
}

func parseClock(s string) (time.Time, error) {
	t, err := time.Parse("15:04", s)
	if err != nil || len(s) != 5 {
		return time.Time{}, errs.Wrap(ErrInvalidBusinessHours, fmt.Sprintf("time %q must be HH:MM", s))
	}
	return t, nil
}

func isWeekday(s string) bool {
	for _, d := range weekdays {
		if d == s {
			return true
		}
	}
	return false
}
