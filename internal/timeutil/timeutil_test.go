package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHumanSecs(t *testing.T) {
	cases := map[int]string{
		0:    "0m",
		59:   "0m",
		1500: "25m",
		3600: "1h 00m",
		3900: "1h 05m",
	}

	for secs, want := range cases {
		assert.Equal(t, want, HumanSecs(secs))
	}
}

func TestRoundToStartAndEnd(t *testing.T) {
	ts := time.Date(2024, 5, 1, 13, 45, 12, 99, time.UTC)

	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), RoundToStart(ts))
	assert.Equal(t, time.Date(2024, 5, 1, 23, 59, 59, 0, time.UTC), RoundToEnd(ts))
}

func TestFromStrAbsolute(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	got, err := fromStr("2024-05-01", now)
	require.NoError(t, err)

	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.May, got.Month())
	assert.Equal(t, 1, got.Day())
}

func TestFromStrInvalid(t *testing.T) {
	_, err := fromStr("not a date at all", time.Now())

	assert.Error(t, err)
}
