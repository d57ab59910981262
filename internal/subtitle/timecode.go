package subtitle

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// parses an HH:MM:SS,mmm timestamp. Component ranges are not checked, so
// 00:75:00,000 is accepted as 75 minutes.
func ParseTimecode(s string) (time.Duration, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, &TimecodeError{Input: s, Reason: "expected HH:MM:SS,mmm"}
	}
	secs, millis, ok := strings.Cut(parts[2], ",")
	if !ok || strings.Contains(millis, ",") {
		return 0, &TimecodeError{Input: s, Reason: "expected HH:MM:SS,mmm"}
	}
	parts = []string{parts[0], parts[1], secs, millis}

	units := [4]time.Duration{
		time.Hour, time.Minute, time.Second, time.Millisecond,
	}

	var total time.Duration
	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return 0, &TimecodeError{
				Input:  s,
				Reason: fmt.Sprintf("component %q is not a non-negative integer", part),
			}
		}
		total += time.Duration(n) * units[i]
	}

	return total, nil
}

// renders d as HH:MM:SS,mmm
func FormatTimecode(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	millis := int(d.Milliseconds()) % 1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}
