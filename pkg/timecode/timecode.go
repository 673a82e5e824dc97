// Package timecode converts between human-readable "H:MM:SS" / "M:SS" time
// strings and integer seconds counts.
//
// Parsing is deliberately lenient (malformed input defaults to zero) so that
// interactive callers can accept free text; ValidateTimeFormat exists for
// gating input before the lenient parse is trusted.
package timecode

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// timeFormatRegexp matches 1 to 3 groups of 1-2 digits separated by colons,
// anchored start to end. Purely syntactic: "99:99" is accepted.
var timeFormatRegexp = regexp.MustCompile(`^\d{1,2}(:\d{1,2}){0,2}$`)

// isoDurationRegexp matches ISO-8601 durations of the form PT#H#M#S.
var isoDurationRegexp = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// FormatTime renders a seconds count as "M:SS" below one hour and "H:MM:SS"
// at or above. Fractional input is floored. Minutes and seconds are
// zero-padded to two digits; hours are not padded and have no upper bound.
func FormatTime(seconds float64) string {
	total := int(math.Floor(seconds))
	hours := total / 3600
	minutes := (total % 3600) / 60
	remaining := total % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, remaining)
	}
	return fmt.Sprintf("%d:%02d", minutes, remaining)
}

// ParseTimeToSeconds converts a colon-separated time string into seconds.
// Each segment is parsed as an integer; unparsable or missing segments read
// as 0. One segment is seconds, two is minutes:seconds, three is
// hours:minutes:seconds. Anything else (including the empty string) yields 0.
func ParseTimeToSeconds(text string) int {
	segments := strings.Split(text, ":")

	parts := make([]int, len(segments))
	for i, segment := range segments {
		n, err := strconv.Atoi(strings.TrimSpace(segment))
		if err != nil {
			n = 0
		}
		parts[i] = n
	}

	switch len(parts) {
	case 1:
		return parts[0]
	case 2:
		return parts[0]*60 + parts[1]
	case 3:
		return parts[0]*3600 + parts[1]*60 + parts[2]
	}

	return 0
}

// ValidateTimeFormat reports whether text is syntactically a time string:
// 1-3 groups of one to two digits separated by colons. It does not bound
// minute or second values below 60.
func ValidateTimeFormat(text string) bool {
	return timeFormatRegexp.MatchString(text)
}

// FormatISODuration converts an ISO-8601 duration ("PT1H2M3S") into the
// display form used for saved videos. Input that is not PT-prefixed, or that
// does not parse, is returned unchanged.
func FormatISODuration(duration string) string {
	if !strings.HasPrefix(duration, "PT") {
		return duration
	}

	match := isoDurationRegexp.FindStringSubmatch(duration)
	if match == nil {
		return duration
	}

	hours, _ := strconv.Atoi(zeroIfEmpty(match[1]))
	minutes, _ := strconv.Atoi(zeroIfEmpty(match[2]))
	seconds, _ := strconv.Atoi(zeroIfEmpty(match[3]))

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

func zeroIfEmpty(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
