package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomo/internal/timeutil"
)

func filterContext(t *testing.T, flags map[string]string) *cli.Context {
	t.Helper()

	set := flag.NewFlagSet("stats", flag.ContinueOnError)

	for _, name := range []string{"period", "since", "until", "ticket"} {
		_ = set.String(name, "", "")
	}

	for k, v := range flags {
		require.NoError(t, set.Set(k, v))
	}

	return cli.NewContext(&cli.App{}, set, nil)
}

func TestFilter(t *testing.T) {
	now := time.Date(2024, 5, 10, 15, 30, 0, 0, time.Local)

	cases := []struct {
		Flags     map[string]string
		WantStart time.Time
		WantEnd   time.Time
		Name      string
		Tickets   []string
	}{
		{
			Name:      "defaults to the last 7 days",
			Flags:     map[string]string{},
			WantStart: time.Date(2024, 5, 4, 0, 0, 0, 0, time.Local),
			WantEnd:   timeutil.RoundToEnd(now),
		},
		{
			Name:      "today",
			Flags:     map[string]string{"period": "today"},
			WantStart: time.Date(2024, 5, 10, 0, 0, 0, 0, time.Local),
			WantEnd:   timeutil.RoundToEnd(now),
		},
		{
			Name:      "yesterday",
			Flags:     map[string]string{"period": "yesterday"},
			WantStart: time.Date(2024, 5, 9, 0, 0, 0, 0, time.Local),
			WantEnd:   time.Date(2024, 5, 9, 23, 59, 59, 0, time.Local),
		},
		{
			Name:      "all time with tickets",
			Flags:     map[string]string{"period": "all-time", "ticket": "T1, T2,,"},
			WantStart: time.Time{},
			WantEnd:   timeutil.RoundToEnd(now),
			Tickets:   []string{"T1", "T2"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			f, err := filter(filterContext(t, tc.Flags), now)
			require.NoError(t, err)

			assert.Equal(t, tc.WantStart, f.StartTime)
			assert.Equal(t, tc.WantEnd, f.EndTime)
			assert.Equal(t, tc.Tickets, f.Tickets)
		})
	}
}

func TestFilterInvalidPeriod(t *testing.T) {
	_, err := filter(filterContext(t, map[string]string{"period": "fortnight"}), time.Now())

	assert.ErrorIs(t, err, errInvalidPeriod)
}
