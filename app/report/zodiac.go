package report

import (
	"errors"
	"strings"
	"time"
)

var ErrUnknownDate = errors.New("unrecognised birth date")

// first day of each sign, in calendar order starting from Capricorn's tail
var signStarts = []struct {
	month time.Month
	day   int
	sign  string
}{
	{time.January, 20, "Aquarius"},
	{time.February, 19, "Pisces"},
	{time.March, 21, "Aries"},
	{time.April, 20, "Taurus"},
	{time.May, 21, "Gemini"},
	{time.June, 21, "Cancer"},
	{time.July, 23, "Leo"},
	{time.August, 23, "Virgo"},
	{time.September, 23, "Libra"},
	{time.October, 23, "Scorpio"},
	{time.November, 22, "Sagittarius"},
	{time.December, 22, "Capricorn"},
}

var dateLayouts = []string{"2006-01-02", "01/02/2006", "2006/01/02", "January 2, 2006", "2 January 2006"}

// SunSignFor returns the tropical sun sign for a month and day.
func SunSignFor(month time.Month, day int) string {
	sign := "Capricorn"
	for _, s := range signStarts {
		if month > s.month || (month == s.month && day >= s.day) {
			sign = s.sign
		}
	}
	return sign
}

// SunSign parses a birth date string and returns its sun sign.
func SunSign(birthDate string) (string, error) {
	birthDate = strings.TrimSpace(birthDate)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, birthDate); err == nil {
			return SunSignFor(t.Month(), t.Day()), nil
		}
	}
	return "", ErrUnknownDate
}
