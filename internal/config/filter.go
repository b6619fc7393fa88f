package config

import (
	"slices"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomo/internal/timeutil"
)

// FilterConfig selects the recorded periods that a report covers.
type FilterConfig struct {
	StartTime time.Time
	EndTime   time.Time
	Tickets   []string
}

// getTimeRange returns the start and end time according to the
// specified time period.
func getTimeRange(period timeutil.Period, now time.Time) (start, end time.Time) {
	end = timeutil.RoundToEnd(now)

	switch period {
	case timeutil.PeriodAllTime:
		return time.Time{}, end
	case timeutil.PeriodYesterday:
		start = timeutil.RoundToStart(now.AddDate(0, 0, timeutil.Range[period]))
		return start, timeutil.RoundToEnd(start)
	default:
		start = timeutil.RoundToStart(now.AddDate(0, 0, timeutil.Range[period]))
		return start, end
	}
}

// Filter builds a FilterConfig from the period, since, until and ticket
// flags. It defaults to the last 7 days.
func Filter(ctx *cli.Context) (*FilterConfig, error) {
	return filter(ctx, time.Now())
}

func filter(ctx *cli.Context, now time.Time) (*FilterConfig, error) {
	period := timeutil.Period(ctx.String("period"))
	if period == "" {
		period = timeutil.Period7Days
	}

	if !slices.Contains(timeutil.PeriodCollection, period) {
		return nil, errInvalidPeriod
	}

	f := &FilterConfig{}

	f.StartTime, f.EndTime = getTimeRange(period, now)

	if since := ctx.String("since"); since != "" {
		t, err := timeutil.FromStr(since)
		if err != nil {
			return nil, errInvalidDate.Fmt(since).Wrap(err)
		}

		f.StartTime = t
	}

	if until := ctx.String("until"); until != "" {
		t, err := timeutil.FromStr(until)
		if err != nil {
			return nil, errInvalidDate.Fmt(until).Wrap(err)
		}

		f.EndTime = t
	}

	if !f.StartTime.Before(f.EndTime) {
		return nil, errInvalidDateRange
	}

	if tickets := ctx.String("ticket"); tickets != "" {
		for _, t := range strings.Split(tickets, ",") {
			if t = strings.TrimSpace(t); t != "" {
				f.Tickets = append(f.Tickets, t)
			}
		}
	}

	return f, nil
}
