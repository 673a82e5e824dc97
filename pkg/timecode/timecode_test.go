package timecode

import "testing"

func TestFormatTime(t *testing.T) {
	cases := []struct {
		seconds  float64
		expected string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{65, "1:05"},
		{65.9, "1:05"}, // fractional input is floored
		{599, "9:59"},
		{600, "10:00"},
		{3599, "59:59"},
		{3600, "1:00:00"},
		{5025, "1:23:45"},
		{36610, "10:10:10"},
		{360000, "100:00:00"}, // hours are unpadded and unbounded
	}

	for _, c := range cases {
		if got := FormatTime(c.seconds); got != c.expected {
			t.Errorf("FormatTime(%v) = %q, expected %q", c.seconds, got, c.expected)
		}
	}
}

func TestParseTimeToSeconds(t *testing.T) {
	cases := []struct {
		text     string
		expected int
	}{
		{"5", 5},
		{"1:5", 65},
		{"1:05", 65},
		{"12:34", 754},
		{"1:23:45", 5025},
		{"99:99", 6039}, // lenient: values past 59 still denote seconds
		{"", 0},
		{"abc", 0},
		{"1:abc", 60}, // malformed segment defaults to zero
		{"a:b:c:d", 0}, // more than three segments
		{"1:2:3:4", 0},
	}

	for _, c := range cases {
		if got := ParseTimeToSeconds(c.text); got != c.expected {
			t.Errorf("ParseTimeToSeconds(%q) = %d, expected %d", c.text, got, c.expected)
		}
	}
}

func TestValidateTimeFormat(t *testing.T) {
	valid := []string{"5", "05", "1:23", "12:34:56", "99:99", "0:00"}
	for _, s := range valid {
		if !ValidateTimeFormat(s) {
			t.Errorf("ValidateTimeFormat(%q) = false, expected true", s)
		}
	}

	invalid := []string{"", "abc", "1:234", "123", "1:2:3:4", ":05", "1:", "1::5", "-1:05", "1.5"}
	for _, s := range invalid {
		if ValidateTimeFormat(s) {
			t.Errorf("ValidateTimeFormat(%q) = true, expected false", s)
		}
	}
}

// Format of a parsed valid string must reproduce the string up to
// zero-padding normalization.
func TestFormatParseNormalization(t *testing.T) {
	cases := []struct {
		text       string
		normalized string
	}{
		{"5", "0:05"},
		{"1:5", "1:05"},
		{"1:05", "1:05"},
		{"12:34:56", "12:34:56"},
		{"1:23:45", "1:23:45"},
	}

	for _, c := range cases {
		if !ValidateTimeFormat(c.text) {
			t.Fatalf("precondition failed: %q should validate", c.text)
		}
		got := FormatTime(float64(ParseTimeToSeconds(c.text)))
		if got != c.normalized {
			t.Errorf("FormatTime(ParseTimeToSeconds(%q)) = %q, expected %q", c.text, got, c.normalized)
		}
	}
}

func TestFormatISODuration(t *testing.T) {
	cases := []struct {
		duration string
		expected string
	}{
		{"PT1H2M3S", "1:02:03"},
		{"PT15M33S", "15:33"},
		{"PT45S", "0:45"},
		{"PT2H", "2:00:00"},
		{"3:21", "3:21"},     // already display form, passed through
		{"PTgarbage", "PTgarbage"},
	}

	for _, c := range cases {
		if got := FormatISODuration(c.duration); got != c.expected {
			t.Errorf("FormatISODuration(%q) = %q, expected %q", c.duration, got, c.expected)
		}
	}
}
