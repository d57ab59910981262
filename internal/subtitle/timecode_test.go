package subtitle

import (
	"errors"
	"testing"
	"time"
)

func TestParseTimecode(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"00:00:00,000", 0},
		{"00:00:01,000", time.Second},
		{"01:02:03,004", time.Hour + 2*time.Minute + 3*time.Second + 4*time.Millisecond},
		{"00:75:00,000", 75 * time.Minute},
		{"100:00:00,500", 100*time.Hour + 500*time.Millisecond},
		{"0:0:5,7", 5*time.Second + 7*time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimecode(tt.input)
			if err != nil {
				t.Fatalf("ParseTimecode(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseTimecode(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTimecodeMalformed(t *testing.T) {
	inputs := []string{
		"",
		"00:00:01",
		"00:00:01.000",
		"00:00:01,000,000",
		"00:00:00:01,000",
		"00:aa:01,000",
		"00:-1:01,000",
		"00:+1:01,000",
		"00::01,000",
		"00:00:01, 000",
		"00,00:01:000",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseTimecode(input)
			if err == nil {
				t.Fatalf("expected error for %q", input)
			}
			if !errors.Is(err, ErrMalformedTimecode) {
				t.Errorf("expected ErrMalformedTimecode, got %v", err)
			}
			var tcErr *TimecodeError
			if !errors.As(err, &tcErr) || tcErr.Input != input {
				t.Errorf("expected TimecodeError for %q, got %v", input, err)
			}
		})
	}
}

func TestFormatTimecode(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00,000"},
		{1500 * time.Millisecond, "00:00:01,500"},
		{time.Hour + 2*time.Minute + 3*time.Second + 4*time.Millisecond, "01:02:03,004"},
		{-time.Second, "00:00:00,000"},
	}

	for _, tt := range tests {
		if got := FormatTimecode(tt.d); got != tt.want {
			t.Errorf("FormatTimecode(%v) = %q, want %q", tt.d, got, tt.want)
		}
		if tt.d >= 0 {
			back, err := ParseTimecode(tt.want)
			if err != nil || back != tt.d {
				t.Errorf("ParseTimecode(%q) = %v, %v; want %v", tt.want, back, err, tt.d)
			}
		}
	}
}
