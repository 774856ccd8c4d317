package clock

import (
	"fmt"
	"time"
)

// System reads the wall clock in the restaurant's time zone.
type System struct {
	loc *time.Location
}

func NewSystem(timeZone string) (*System, error) {
	if timeZone == "" {
		return &System{loc: time.Local}, nil
	}
	loc, err := time.LoadLocation(timeZone)
	if err != nil {
		return nil, fmt.Errorf("failed to load time zone %q: %w", timeZone, err)
	}
	return &System{loc: loc}, nil
}

func (s *System) Now() time.Time {
	return time.Now().In(s.loc)
}
