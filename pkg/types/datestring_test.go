package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid date", input: "2025-06-13", wantErr: false},
		{name: "valid leap day", input: "2024-02-29", wantErr: false},
		{name: "invalid leap day", input: "2025-02-29", wantErr: true},
		{name: "wrong separator", input: "2025/06/13", wantErr: true},
		{name: "missing day", input: "2025-06", wantErr: true},
		{name: "with time", input: "2025-06-13 10:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDateStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDateString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, d.String())
		})
	}
}

func TestDateString_Comparisons(t *testing.T) {
	a := DateString("2025-06-10")
	b := DateString("2025-06-13")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsAfter(a))
	assert.False(t, a.IsBefore(a))
}

func TestDateString_AddDays(t *testing.T) {
	d := DateString("2025-06-30")

	next, err := d.AddDays(1)
	require.NoError(t, err)
	assert.Equal(t, DateString("2025-07-01"), next)

	prev, err := d.AddDays(-30)
	require.NoError(t, err)
	assert.Equal(t, DateString("2025-05-31"), prev)
}

func TestDateString_Weekday(t *testing.T) {
	// 2025-06-09 - понедельник
	wd, err := DateString("2025-06-09").Weekday()
	require.NoError(t, err)
	assert.Equal(t, time.Monday, wd)

	wd, err = DateString("2025-06-14").Weekday()
	require.NoError(t, err)
	assert.Equal(t, time.Saturday, wd)
}

func TestDateString_DaysUntil(t *testing.T) {
	a := DateString("2025-06-10")
	b := DateString("2025-06-13")

	days, err := a.DaysUntil(b)
	require.NoError(t, err)
	assert.Equal(t, 3, days)

	days, err = b.DaysUntil(a)
	require.NoError(t, err)
	assert.Equal(t, -3, days)
}

func TestNewDateString_DropsTimeOfDay(t *testing.T) {
	ts := time.Date(2025, 6, 13, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, DateString("2025-06-13"), NewDateString(ts))
}
