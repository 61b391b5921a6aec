package srt

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTime(t *testing.T) {
	tests := []struct {
		input   string
		want    Time
		seconds float64
	}{
		{"00:00:01,620", Time{0, 0, 1, 620}, 1.62},
		{"01:02:03,004", Time{1, 2, 3, 4}, 3723.004},
		{"00:00:00,000", Time{}, 0},
		{"99:59:59,999", Time{99, 59, 59, 999}, 359999.999},
		// no range checks past the fixed shape
		{"00:75:80,000", Time{0, 75, 80, 0}, 4580},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := DecodeTime(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.InDelta(t, tt.seconds, got.TotalSeconds(), 1e-9)
		})
	}
}

func TestDecodeTimeRejectsWrongShape(t *testing.T) {
	inputs := []string{
		"",
		"0:00:01,620",
		"00:00:01.620",
		"00:00:01,62",
		"00:00:01,6200",
		"00-00-01,620",
		"0a:00:01,620",
		" 00:00:01,620",
		"00:00:01,620 ",
		"x00:00:01,620",
		"００:00:01,620",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			got, err := DecodeTime(input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrTimestampMismatch))
			assert.Equal(t, Time{}, got)
		})
	}
}

func TestMustDecodeTimePanicsOnMismatch(t *testing.T) {
	assert.PanicsWithValue(
		t,
		`srt: internal invariant violated: decoding pre-validated timestamp: timestamp does not match HH:MM:SS,mmm: "bad"`,
		func() { mustDecodeTime("bad") },
	)
	assert.NotPanics(t, func() { mustDecodeTime("00:00:01,000") })
}

func TestTimeDisplay(t *testing.T) {
	tests := []struct {
		time Time
		want string
	}{
		{Time{0, 0, 0, 720}, "0:00,720"},
		{Time{0, 0, 1, 620}, "0:01,620"},
		{Time{0, 12, 5, 9}, "12:05,009"},
		{Time{1, 2, 3, 4}, "1:02:03,004"},
		{Time{27, 0, 0, 0}, "27:00:00,000"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.time.Display())
		})
	}
}

func TestTimeCanonicalKeepsZeroHours(t *testing.T) {
	assert.Equal(t, "00:00:00,720", Time{0, 0, 0, 720}.Canonical())
	assert.Equal(t, "01:02:03,004", Time{1, 2, 3, 4}.Canonical())
	assert.Equal(t, "123:00:09,050", Time{123, 0, 9, 50}.Canonical())
}

func TestTimeDuration(t *testing.T) {
	tm := Time{1, 2, 3, 4}
	assert.Equal(
		t,
		time.Hour+2*time.Minute+3*time.Second+4*time.Millisecond,
		tm.Duration(),
	)
	assert.Equal(t, tm, TimeFromDuration(tm.Duration()))
	assert.Equal(t, Time{}, TimeFromDuration(-time.Second))
	assert.Equal(t, Time{0, 0, 1, 500}, TimeFromDuration(1500*time.Millisecond+400*time.Microsecond))
}

func TestIntervalSeconds(t *testing.T) {
	forward := Interval{Start: Time{0, 0, 1, 620}, End: Time{0, 0, 5, 910}}
	assert.InDelta(t, 4.29, forward.Seconds(), 1e-9)

	inverted := Interval{Start: Time{0, 0, 5, 0}, End: Time{0, 0, 1, 0}}
	assert.InDelta(t, -4.0, inverted.Seconds(), 1e-9)
}
