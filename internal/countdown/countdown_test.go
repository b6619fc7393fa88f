package countdown_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/pomo/internal/countdown"
	"github.com/ayoisaiah/pomo/internal/ledger"
)

type snapshot struct {
	State     countdown.State
	Remaining int
	Running   bool
	OnBreak   bool
}

func snap(e *countdown.Engine) snapshot {
	return snapshot{
		Remaining: e.Remaining(),
		Running:   e.Running(),
		OnBreak:   e.OnBreak(),
		State:     e.State(),
	}
}

// runToExpiry ticks a running engine until it expires and returns the
// expiry tick.
func runToExpiry(t *testing.T, e *countdown.Engine) countdown.Tick {
	t.Helper()

	for e.Remaining() > 0 {
		require.Equal(t, countdown.TickCountdown, e.Tick().Kind)
	}

	tick := e.Tick()
	require.Equal(t, countdown.TickExpired, tick.Kind)

	return tick
}

func TestNewEngine(t *testing.T) {
	e := countdown.New()

	assert.Equal(t, snapshot{
		Remaining: 1500,
		State:     countdown.Idle,
	}, snap(e))
	assert.Equal(t, "25:00", e.Clock())
}

func TestTickCountsDown(t *testing.T) {
	e := countdown.New()
	e.Start()

	for k := 1; k <= 1500; k++ {
		tick := e.Tick()

		require.Equal(t, countdown.TickCountdown, tick.Kind)
		require.Equal(t, 1500-k, e.Remaining())
		require.Equal(t, countdown.FormatClock(1500-k), tick.Text)
	}

	assert.True(t, e.Running())
	assert.Equal(t, "00:00", e.Clock())
}

func TestExpiry(t *testing.T) {
	e := countdown.New()
	e.Start()

	tick := runToExpiry(t, e)

	assert.Equal(t, countdown.MsgTimesUp, tick.Text)
	assert.False(t, tick.WasBreak)
	assert.False(t, e.Running())
	assert.True(t, e.OnBreak())
	assert.Equal(t, countdown.Expired, e.State())

	before := snap(e)

	next := e.Tick()
	assert.Equal(t, countdown.TickIgnored, next.Kind)
	assert.False(t, next.Updated())
	assert.Equal(t, before, snap(e))
}

func TestStartAtZeroIsNoop(t *testing.T) {
	e := countdown.New()
	e.Start()
	runToExpiry(t, e)

	before := snap(e)

	e.Start()

	assert.Equal(t, before, snap(e))
}

func TestStartWhileRunningIsNoop(t *testing.T) {
	e := countdown.New()
	e.Start()
	e.Tick()

	before := snap(e)

	e.Start()

	assert.Equal(t, before, snap(e))
}

func TestPause(t *testing.T) {
	e := countdown.New()
	e.Start()
	e.Tick()
	e.Pause()

	assert.False(t, e.Running())
	assert.Equal(t, countdown.Idle, e.State())

	tick := e.Tick()
	assert.Equal(t, countdown.TickIgnored, tick.Kind)
	assert.Equal(t, 1499, e.Remaining())

	e.Pause()
	assert.False(t, e.Running())
}

func TestToggle(t *testing.T) {
	e := countdown.New()

	e.Toggle()
	assert.True(t, e.Running())

	e.Toggle()
	assert.False(t, e.Running())
}

func TestReset(t *testing.T) {
	cases := []struct {
		prepare func(e *countdown.Engine)
		name    string
	}{
		{
			name:    "idle",
			prepare: func(*countdown.Engine) {},
		},
		{
			name: "running",
			prepare: func(e *countdown.Engine) {
				e.Start()
				e.Tick()
			},
		},
		{
			name: "expired on break",
			prepare: func(e *countdown.Engine) {
				e.Start()

				for range 1501 {
					e.Tick()
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := countdown.New()
			tc.prepare(e)

			e.Reset()

			assert.Equal(t, snapshot{
				Remaining: 1500,
				State:     countdown.Idle,
			}, snap(e))
		})
	}
}

func TestBreakAlternation(t *testing.T) {
	e := countdown.New(countdown.WithWorkDuration(3 * time.Second))

	want := []struct {
		text     string
		wasBreak bool
		onBreak  bool
	}{
		{countdown.MsgTimesUp, false, true},
		{countdown.MsgBreakOver, true, false},
		{countdown.MsgTimesUp, false, true},
		{countdown.MsgBreakOver, true, false},
	}

	for i, w := range want {
		e.Reload()
		e.Start()

		tick := runToExpiry(t, e)

		assert.Equal(t, w.text, tick.Text, "cycle %d", i)
		assert.Equal(t, w.wasBreak, tick.WasBreak, "cycle %d", i)
		assert.Equal(t, w.onBreak, e.OnBreak(), "cycle %d", i)
	}
}

func TestReloadUsesBreakDuration(t *testing.T) {
	e := countdown.New(
		countdown.WithWorkDuration(2*time.Second),
		countdown.WithBreakDuration(time.Second),
	)

	e.Start()
	runToExpiry(t, e)

	e.Reload()
	assert.Equal(t, 1, e.Remaining())
	assert.True(t, e.OnBreak())
	assert.False(t, e.Running())

	e.Start()
	tick := runToExpiry(t, e)
	assert.Equal(t, countdown.MsgBreakOver, tick.Text)

	e.Reload()
	assert.Equal(t, 2, e.Remaining())
}

func TestResetIgnoresBreakDuration(t *testing.T) {
	e := countdown.New(countdown.WithBreakDuration(time.Minute))

	e.Start()
	runToExpiry(t, e)
	e.Reset()

	assert.Equal(t, 1500, e.Remaining())
	assert.False(t, e.OnBreak())
}

func TestTickCreditsCurrentTask(t *testing.T) {
	l := ledger.New()
	e := countdown.New(countdown.WithCrediter(l))

	id, _, ok := l.AddTask("A", "")
	require.True(t, ok)

	e.Start()

	var last countdown.Tick
	for range 5 {
		last = e.Tick()
	}

	task, _ := l.Get(id)
	assert.Equal(t, 5, task.SecondsSpent)
	assert.Equal(t, "24:55", last.Text)

	e.Pause()
	e.Tick()

	task, _ = l.Get(id)
	assert.Equal(t, 5, task.SecondsSpent)
}

func TestFormatClock(t *testing.T) {
	cases := map[int]string{
		0:    "00:00",
		59:   "00:59",
		60:   "01:00",
		1500: "25:00",
		5999: "99:59",
		6000: "100:00",
		-3:   "00:00",
	}

	for secs, want := range cases {
		assert.Equal(t, want, countdown.FormatClock(secs))
	}
}
