package policy

import "neighbiz/internal/pkg/errs"

var ErrUnsupportedDuration = errs.Validation("UNSUPPORTED_DURATION", "unsupported partnership duration")

type Duration string

const (
	DurationOneMonth    Duration = "1_month"
	DurationTwoMonths   Duration = "2_months"
	DurationThreeMonths Duration = "3_months"
	DurationSixMonths   Duration = "6_months"
	DurationOneYear     Duration = "1_year"
)

var durationDays = map[Duration]int{
	DurationOneMonth:    30,
	DurationTwoMonths:   60,
	DurationThreeMonths: 90,
	DurationSixMonths:   180,
	DurationOneYear:     365,
}

func NewDuration(s string) (Duration, error) {
	d := Duration(s)
	if _, ok := durationDays[d]; !ok {
		return "", ErrUnsupportedDuration
	}
	return d, nil
}

// Days maps the enum to a calendar day count.
func (d Duration) Days() (int, error) {
	days, ok := durationDays[d]
	if !ok {
		return 0, ErrUnsupportedDuration
	}
	return days, nil
}

func (d Duration) String() string { return string(d) }
