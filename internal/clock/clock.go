// Package clock renders dates in the user's timezone
package clock

import (
	"strconv"
	"time"
)

const DateLayout = "2006-01-02"

// Clock is a time source bound to a location
type Clock struct {
	Loc *time.Location
	Now func() time.Time
}

// New returns a wall clock in loc; nil means UTC
func New(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return Clock{Loc: loc, Now: time.Now}
}

// Fixed returns a clock frozen at t
func Fixed(t time.Time) Clock {
	return Clock{Loc: t.Location(), Now: func() time.Time { return t }}
}

func (c Clock) now() time.Time {
	if c.Now == nil {
		return time.Now().In(c.location())
	}
	return c.Now().In(c.location())
}

func (c Clock) location() *time.Location {
	if c.Loc == nil {
		return time.UTC
	}
	return c.Loc
}

// Today is the current date as YYYY-MM-DD
func (c Clock) Today() string {
	return c.now().Format(DateLayout)
}

// Tomorrow is the next date as YYYY-MM-DD
func (c Clock) Tomorrow() string {
	return c.now().AddDate(0, 0, 1).Format(DateLayout)
}

// Timestamp is the current instant as an ISO-8601 UTC string with milliseconds
func (c Clock) Timestamp() string {
	return c.now().UTC().Format("2006-01-02T15:04:05.000Z")
}

// UnixMilli is the current unix time in milliseconds
func (c Clock) UnixMilli() int64 {
	return c.now().UnixMilli()
}

// Millis is UnixMilli as an id suffix
func (c Clock) Millis() string {
	return strconv.FormatInt(c.UnixMilli(), 10)
}
