package entities

import (
	"errors"
	"time"
)

const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid calendar date")

// Date is a calendar date persisted as YYYY-MM-DD.
//
// Dates are compared as plain calendar components (local midnight), never as UTC
// timestamps, so a date typed in Addis Ababa stays the same day everywhere.
type Date string

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

// Parse returns the date as midnight UTC of its calendar components.
// Only the components matter; UTC is used so day arithmetic ignores DST.
func (d Date) Parse() (time.Time, error) {
	if d == "" {
		return time.Time{}, ErrInvalidDate
	}
	t, err := time.Parse(DateLayout, string(d))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func (d Date) Valid() bool {
	_, err := d.Parse()
	return err == nil
}

// AddDays shifts the date by n calendar days.
func (d Date) AddDays(n int) (Date, error) {
	t, err := d.Parse()
	if err != nil {
		return "", err
	}
	return DateOf(t.AddDate(0, 0, n)), nil
}

// DaysUntil returns the number of calendar days from d to other (negative when other is earlier).
func (d Date) DaysUntil(other Date) (int, error) {
	from, err := d.Parse()
	if err != nil {
		return 0, err
	}
	to, err := other.Parse()
	if err != nil {
		return 0, err
	}
	return daysFromCivil(to.Date()) - daysFromCivil(from.Date()), nil
}

// daysFromCivil counts days from 1970-01-01 in the proleptic Gregorian calendar.
func daysFromCivil(y int, m time.Month, d int) int {
	if m <= time.February {
		y--
	}
	era := y / 400
	if y < 0 && y%400 != 0 {
		era--
	}
	yoe := y - era*400
	mp := (int(m) + 9) % 12
	doy := (153*mp+2)/5 + d - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// Before reports whether d is strictly earlier than other. Unparseable dates sort first.
func (d Date) Before(other Date) bool {
	a, errA := d.Parse()
	b, errB := other.Parse()
	switch {
	case errA != nil && errB != nil:
		return false
	case errA != nil:
		return true
	case errB != nil:
		return false
	}
	return a.Before(b)
}

func (d Date) String() string {
	return string(d)
}
