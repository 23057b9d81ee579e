package touch

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// parseTimestamp parses a timestamp in the [[CC]YY]MMDDhhmm[.ss] format used
// by touch -t. The result is in UTC. now supplies the year when the timestamp
// has none.
func parseTimestamp(s string, now time.Time) (time.Time, error) {
	invalid := func() (time.Time, error) {
		return time.Time{}, fmt.Errorf("%w '%s'", ErrInvalidTimestamp, s)
	}

	digits, secs, hasSecs := strings.Cut(s, ".")

	if !isDigits(digits) {
		return invalid()
	}

	var year int

	switch len(digits) {
	case 8:
		year = now.UTC().Year()
	case 10:
		// POSIX: 69-99 is 1969-1999, 00-68 is 2000-2068.
		year = atoi(digits[:2])
		if year >= 69 {
			year += 1900
		} else {
			year += 2000
		}

		digits = digits[2:]
	case 12:
		year = atoi(digits[:4])
		digits = digits[4:]
	default:
		return invalid()
	}

	month := atoi(digits[0:2])
	day := atoi(digits[2:4])
	hour := atoi(digits[4:6])
	minute := atoi(digits[6:8])

	second := 0
	if hasSecs {
		if len(secs) != 2 || !isDigits(secs) {
			return invalid()
		}

		second = atoi(secs)

		// A leap second is accepted but cannot be represented.
		if second == 60 {
			second = 59
		}
	}

	if month < 1 || month > 12 ||
		day < 1 || day > daysIn(time.Month(month), year) ||
		hour > 23 || minute > 59 || second > 59 {
		return invalid()
	}

	return time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC), nil
}

// daysIn returns the number of days in month m of year.
func daysIn(m time.Month, year int) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// atoi converts a string already checked with isDigits.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
