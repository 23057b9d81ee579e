package touch

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are the layouts accepted by touch -d, tried in order. Layouts
// without a zone are interpreted as UTC. A fractional second is accepted after
// any seconds field.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006-01-02:15:04:05",
	time.RFC1123,
	time.RFC1123Z,
	time.RFC822,
	time.RFC822Z,
	time.RFC850,
	time.ANSIC,
	time.UnixDate,
	time.RubyDate,
}

// parseDate parses the free-form date string given to touch -d. Besides the
// layouts above it accepts "now", "today" and "@SECONDS[.FRACTION]".
func parseDate(s string, now time.Time, extraLayouts []string) (time.Time, error) {
	value := strings.TrimSpace(s)

	switch strings.ToLower(value) {
	case "now":
		return now, nil
	case "today":
		y, m, d := now.UTC().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}

	if strings.HasPrefix(value, "@") {
		t, err := parseEpoch(value[1:])
		if err != nil {
			return time.Time{}, fmt.Errorf("%w '%s'", ErrInvalidDate, s)
		}

		return t, nil
	}

	for _, layouts := range [][]string{dateLayouts, extraLayouts} {
		for _, layout := range layouts {
			if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
				return t, nil
			}
		}
	}

	return time.Time{}, fmt.Errorf("%w '%s'", ErrInvalidDate, s)
}

// parseEpoch parses seconds since the Unix epoch with an optional fraction,
// e.g. "1230952380" or "-1.5".
func parseEpoch(s string) (time.Time, error) {
	whole, frac, hasFrac := strings.Cut(s, ".")

	secs, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return time.Time{}, err
	}

	var nsec int64
	if hasFrac {
		if !isDigits(frac) {
			return time.Time{}, strconv.ErrSyntax
		}

		if len(frac) > 9 {
			frac = frac[:9]
		}

		n, _ := strconv.ParseInt(frac, 10, 64)
		nsec = n * int64(math.Pow10(9-len(frac)))

		if strings.HasPrefix(whole, "-") {
			nsec = -nsec
		}
	}

	return time.Unix(secs, nsec).UTC(), nil
}
