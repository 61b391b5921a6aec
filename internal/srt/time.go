package srt

import (
	"errors"
	"fmt"
	"time"
)

// width of a HH:MM:SS,mmm timestamp
const timestampWidth = 12

var ErrTimestampMismatch = errors.New("timestamp does not match HH:MM:SS,mmm")

// single point on the subtitle timeline, millisecond precision
type Time struct {
	Hours        int
	Minutes      int
	Seconds      int
	Milliseconds int
}

// reports whether s is exactly DD:DD:DD,DDD
func matchTimestamp(s string) bool {
	if len(s) != timestampWidth {
		return false
	}
	for i := 0; i < timestampWidth; i++ {
		c := s[i]
		switch i {
		case 2, 5:
			if c != ':' {
				return false
			}
		case 8:
			if c != ',' {
				return false
			}
		default:
			if c < '0' || c > '9' {
				return false
			}
		}
	}
	return true
}

// digits converts an already validated run of ASCII digits
func digits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}

// DecodeTime extracts the four fields of a timestamp such as
// "00:00:01,620". It does no range checking beyond the fixed shape.
func DecodeTime(s string) (Time, error) {
	if !matchTimestamp(s) {
		return Time{}, fmt.Errorf("%w: %q", ErrTimestampMismatch, s)
	}
	return Time{
		Hours:        digits(s[0:2]),
		Minutes:      digits(s[3:5]),
		Seconds:      digits(s[6:8]),
		Milliseconds: digits(s[9:12]),
	}, nil
}

// mustDecodeTime is used by the parser after it has already checked the
// token shape, so a mismatch here is a bug in the parser itself.
func mustDecodeTime(s string) Time {
	t, err := DecodeTime(s)
	if err != nil {
		panic("srt: internal invariant violated: decoding pre-validated timestamp: " + err.Error())
	}
	return t
}

// TimeFromDuration splits d into timestamp fields. Negative durations clamp to zero.
func TimeFromDuration(d time.Duration) Time {
	if d < 0 {
		d = 0
	}
	ms := int(d / time.Millisecond)
	return Time{
		Hours:        ms / 3600000,
		Minutes:      ms / 60000 % 60,
		Seconds:      ms / 1000 % 60,
		Milliseconds: ms % 1000,
	}
}

// total elapsed seconds
func (t Time) TotalSeconds() float64 {
	return float64(t.Hours)*3600 +
		float64(t.Minutes)*60 +
		float64(t.Seconds) +
		float64(t.Milliseconds)/1000
}

func (t Time) Duration() time.Duration {
	return time.Duration(t.Hours)*time.Hour +
		time.Duration(t.Minutes)*time.Minute +
		time.Duration(t.Seconds)*time.Second +
		time.Duration(t.Milliseconds)*time.Millisecond
}

// Display is the human form; the hour field is left out when it is zero.
func (t Time) Display() string {
	if t.Hours == 0 {
		return fmt.Sprintf("%d:%02d,%03d", t.Minutes, t.Seconds, t.Milliseconds)
	}
	return fmt.Sprintf(
		"%d:%02d:%02d,%03d",
		t.Hours,
		t.Minutes,
		t.Seconds,
		t.Milliseconds,
	)
}

// Canonical is the zero-padded on-disk form, always with hours.
func (t Time) Canonical() string {
	return fmt.Sprintf(
		"%02d:%02d:%02d,%03d",
		t.Hours,
		t.Minutes,
		t.Seconds,
		t.Milliseconds,
	)
}
