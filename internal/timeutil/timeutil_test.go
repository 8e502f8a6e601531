package timeutil

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-11-09")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 11, 9, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("2024-11-09T18:30:00+07:00")
	require.NoError(t, err)
	assert.Equal(t, 9, d.Day())

	for _, bad := range []string{"", "09/11/2024", "2024-13-01", "tomorrow"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseClock(t *testing.T) {
	m, err := ParseClock("06:30")
	require.NoError(t, err)
	assert.Equal(t, 390, m)

	_, err = ParseClock("25:00")
	assert.Error(t, err)
}

func TestDaysBetween(t *testing.T) {
	a, _ := ParseDate("2024-07-15")
	b, _ := ParseDate("2024-07-20")
	assert.Equal(t, 5, DaysBetween(a, b))
	assert.Equal(t, -5, DaysBetween(b, a))
}

func TestTimestampJSON(t *testing.T) {
	ts := NewTimestamp(time.Date(2024, 11, 9, 14, 45, 0, 0, time.UTC))

	b, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-11-09 14:45"`, string(b))

	var back Timestamp
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, ts.Equal(back.Time))

	assert.Error(t, json.Unmarshal([]byte(`"not a time"`), &back))
}
