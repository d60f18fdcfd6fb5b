package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "valid morning", value: "09:00", wantErr: false},
		{name: "valid midnight", value: "00:00", wantErr: false},
		{name: "valid last minute", value: "23:59", wantErr: false},
		{name: "missing leading zero", value: "9:00", wantErr: true},
		{name: "out of range hour", value: "24:00", wantErr: true},
		{name: "out of range minute", value: "10:60", wantErr: true},
		{name: "empty", value: "", wantErr: true},
		{name: "garbage", value: "abcde", wantErr: true},
		{name: "with seconds", value: "10:00:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := TimeString(tt.value).Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeFormat)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	m, err := TimeString("10:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 630, m)

	m, err = TimeString("00:00").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 0, m)

	_, err = TimeString("bad").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		minutes int
		want    string
	}{
		{name: "plain add", start: "09:00", minutes: 120, want: "11:00"},
		{name: "over the hour", start: "10:45", minutes: 30, want: "11:15"},
		{name: "wraps past midnight", start: "23:30", minutes: 60, want: "00:30"},
		{name: "negative shift", start: "01:00", minutes: -120, want: "23:00"},
		{name: "zero", start: "12:00", minutes: 0, want: "12:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TimeString(tt.start).AddMinutes(tt.minutes)
			require.NoError(t, err)
			assert.Equal(t, TimeString(tt.want), got)
		})
	}

	_, err := TimeString("bad").AddMinutes(30)
	assert.Error(t, err)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.False(t, TimeString("11:00").IsBefore("10:00"))

	assert.True(t, TimeString("11:00").IsAfter("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))

	// Некорректные значения сравниваются как false
	assert.False(t, TimeString("bad").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("bad"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:30"))
	assert.Equal(t, TimeString("10:30"), ts)

	// TIME колонки приходят как "HH:MM:SS"
	require.NoError(t, ts.Scan("10:30:00"))
	assert.Equal(t, TimeString("10:30"), ts)

	require.NoError(t, ts.Scan([]byte("14:15")))
	assert.Equal(t, TimeString("14:15"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 9, 15, 16, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("16:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestNewTimeString(t *testing.T) {
	got := NewTimeString(time.Date(2026, 9, 15, 9, 5, 30, 0, time.UTC))
	assert.Equal(t, TimeString("09:05"), got)
}
