package placement

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Display colors per expiry bucket.
const (
	ColorNoExpiry = "#3498db"
	ColorExpired  = "#7f8c8d"
	ColorCritical = "#e74c3c"
	ColorWarning  = "#f1c40f"
	ColorSafe     = "#2ecc71"
)

// Expiry dates arrive in a handful of shapes depending on how the CSV
// was authored.
var expiryLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Classify derives the time remaining before expiryRaw, evaluated at
// now. An absent, empty or "N/A" value means the item never expires.
// A value that parses to a past instant is reported as expired with
// zero hours left.
//
// A non-empty value that fails to parse is treated like "No Expiry" and
// ErrInvalidExpiry is returned alongside the result, so callers can
// surface the bad data without dropping the record.
func Classify(expiryRaw string, now time.Time) (TimeInfo, error) {
	noExpiry := TimeInfo{Text: "No Expiry", HoursLeft: math.Inf(1)}

	raw := strings.TrimSpace(expiryRaw)
	if raw == "" || raw == "N/A" {
		return noExpiry, nil
	}

	expiry, err := parseExpiry(raw)
	if err != nil {
		return noExpiry, fmt.Errorf("%w: %q", ErrInvalidExpiry, expiryRaw)
	}

	diffHours := expiry.Sub(now).Hours()
	if diffHours < 0 {
		return TimeInfo{Text: "Expired", HoursLeft: 0}, nil
	}

	return TimeInfo{
		Text:      fmt.Sprintf("Expires in %d hours", int(math.Floor(diffHours))),
		HoursLeft: diffHours,
	}, nil
}

func parseExpiry(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range expiryLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// ColorFor maps hours-remaining to a display color. Total over the
// reals plus +Inf: no expiry is blue, expired grey, under a day red,
// under three days yellow, otherwise green. Exactly 24 hours is yellow
// and exactly 72 is green.
func ColorFor(hoursLeft float64) string {
	switch {
	case math.IsInf(hoursLeft, 1):
		return ColorNoExpiry
	case hoursLeft <= 0:
		return ColorExpired
	case hoursLeft < 24:
		return ColorCritical
	case hoursLeft < 72:
		return ColorWarning
	default:
		return ColorSafe
	}
}
