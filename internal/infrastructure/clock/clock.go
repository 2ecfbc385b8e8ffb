package clock

import (
	"antenna_ops/internal/usecase/interfaces"
	"fmt"
	"time"
)

// Clock reads the wall clock in the dashboard's time zone, so "today" is the local
// calendar day of the business rather than of the host.
type Clock struct {
	loc *time.Location
}

var _ interfaces.IClock = (*Clock)(nil)

// New loads the zone named by app.timezone ("Local", "UTC", "Africa/Addis_Ababa", ...).
func New(timezone string) (*Clock, error) {
	if timezone == "" || timezone == "Local" {
		return &Clock{loc: time.Local}, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown time zone %q: %w", timezone, err)
	}
	return &Clock{loc: loc}, nil
}

func (c *Clock) Now() time.Time {
	return time.Now().In(c.loc)
}
