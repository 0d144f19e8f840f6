// Package swimtime converts swim time strings as rendered by
// swimrankings.net into fractional seconds.
package swimtime

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Parse converts a swim time of the form "[[H:]M:]S.ms" into seconds.
// A trailing letter (the manual-timing marker, e.g. "1:23.45M") is
// stripped before parsing. A string without a colon is seconds-only.
func Parse(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("swimtime: empty time string")
	}

	last := rune(s[len(s)-1])
	if unicode.IsLetter(last) {
		s = s[:len(s)-1]
	}

	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("swimtime: too many components in %q", s)
	}

	seconds, err := strconv.ParseFloat(parts[len(parts)-1], 64)
	if err != nil {
		return 0, fmt.Errorf("swimtime: parse seconds of %q: %w", s, err)
	}
	if seconds < 0 || (len(parts) > 1 && seconds >= 60) {
		return 0, fmt.Errorf("swimtime: seconds out of range in %q", s)
	}

	total := seconds
	multiplier := float64(60)
	for i := len(parts) - 2; i >= 0; i-- {
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			return 0, fmt.Errorf("swimtime: parse component %q of %q: %w", parts[i], s, err)
		}
		if n < 0 || (i > 0 && n >= 60) {
			return 0, fmt.Errorf("swimtime: component out of range in %q", s)
		}
		total += float64(n) * multiplier
		multiplier *= 60
	}

	return total, nil
}
