package clock

import "time"

// Clock resolves the organization's business day and wall time in one
// fixed zone, so devices in different time zones still punch against the
// same day boundary.
type Clock interface {
	// Today returns the business date formatted YYYY-MM-DD.
	Today() string
	// NowHHMM returns the wall time formatted HH:mm.
	NowHHMM() string
	Now() time.Time
}

type businessClock struct {
	loc *time.Location
	now func() time.Time
}

// New returns a Clock pinned to the named IANA zone. If the zone database
// is unavailable the organization default (IST, UTC+05:30) is used.
func New(timezone string) Clock {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.FixedZone("IST", 5*3600+1800)
	}
	return &businessClock{loc: loc, now: time.Now}
}

// NewAt returns a Clock with a fixed now function, for tests.
func NewAt(timezone string, now func() time.Time) Clock {
	c := New(timezone).(*businessClock)
	c.now = now
	return c
}

func (c *businessClock) Now() time.Time {
	return c.now().In(c.loc)
}

func (c *businessClock) Today() string {
	return c.Now().Format("2006-01-02")
}

func (c *businessClock) NowHHMM() string {
	return c.Now().Format("15:04")
}
