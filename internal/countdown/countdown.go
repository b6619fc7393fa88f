// Package countdown implements the pomodoro countdown engine. The engine owns
// the remaining seconds of the current period, whether it is running, and
// whether the period is a break. It advances only when Tick is called, once
// per elapsed second, by whatever front end drives it.
package countdown

import (
	"fmt"
	"time"
)

const (
	// DefaultWorkDuration is the length of a work period.
	DefaultWorkDuration = 25 * time.Minute
	// DefaultBreakDuration is the length of a break period. It only takes
	// effect through Reload.
	DefaultBreakDuration = 5 * time.Minute
)

const (
	MsgTimesUp    = "Time's Up!"
	MsgBreakOver  = "Break Over!"
	secondsPerMin = 60
)

// State is the engine-level state derived from its fields.
type State string

const (
	Idle    State = "idle"
	Running State = "running"
	Expired State = "expired"
)

// Crediter receives one credit per running second. A task ledger implements
// it; it must be a no-op when nothing is selected.
type Crediter interface {
	CreditCurrentTask(seconds int)
}

// TickKind describes what a call to Tick did.
type TickKind int

const (
	// TickIgnored means the engine was not running; nothing changed and the
	// display should keep its last text.
	TickIgnored TickKind = iota
	// TickCountdown means one second was consumed.
	TickCountdown
	// TickExpired means the period just ended.
	TickExpired
)

// Tick is the outcome of a single call to Engine.Tick.
type Tick struct {
	Text string
	Kind TickKind
	// WasBreak is set on expiry when the period that ended was a break.
	WasBreak bool
}

// Updated reports whether the tick produced new display text.
func (t Tick) Updated() bool {
	return t.Kind != TickIgnored
}

// Option configures an Engine.
type Option func(*Engine)

// WithWorkDuration overrides the work period length. Fractions of a second
// are discarded.
func WithWorkDuration(d time.Duration) Option {
	return func(e *Engine) {
		e.workSecs = durationToSecs(d)
	}
}

// WithBreakDuration overrides the break period length used by Reload.
func WithBreakDuration(d time.Duration) Option {
	return func(e *Engine) {
		e.breakSecs = durationToSecs(d)
	}
}

// WithCrediter attaches the receiver of per-second task credit.
func WithCrediter(c Crediter) Option {
	return func(e *Engine) {
		e.crediter = c
	}
}

// Engine is the countdown state machine. It is not safe for concurrent use;
// every method must be called from the goroutine that owns the engine.
type Engine struct {
	crediter  Crediter
	remaining int
	workSecs  int
	breakSecs int
	running   bool
	onBreak   bool
}

// New returns an idle engine loaded with the work duration.
func New(opts ...Option) *Engine {
	e := &Engine{
		workSecs:  durationToSecs(DefaultWorkDuration),
		breakSecs: durationToSecs(DefaultBreakDuration),
	}

	for _, opt := range opts {
		opt(e)
	}

	e.remaining = e.workSecs

	return e
}

// Start begins counting down. It does nothing if the engine is already
// running or if no time remains.
func (e *Engine) Start() {
	if !e.running && e.remaining > 0 {
		e.running = true
	}
}

// Pause stops counting down.
func (e *Engine) Pause() {
	e.running = false
}

// Toggle pauses a running engine or starts an idle one.
func (e *Engine) Toggle() {
	if e.running {
		e.Pause()
		return
	}

	e.Start()
}

// Reset stops the engine, clears the break flag and reloads the work
// duration.
func (e *Engine) Reset() {
	e.running = false
	e.onBreak = false
	e.remaining = e.workSecs
}

// Reload stops the engine and loads the duration of the phase indicated by
// the break flag, leaving the flag untouched. After a work period expires
// the flag is set, so Reload prepares a break; after a break it prepares
// work.
func (e *Engine) Reload() {
	e.running = false

	if e.onBreak {
		e.remaining = e.breakSecs
		return
	}

	e.remaining = e.workSecs
}

// Tick performs the per-second transition. It must be called once per
// elapsed second whether or not the engine is running.
func (e *Engine) Tick() Tick {
	if !e.running {
		return Tick{Kind: TickIgnored}
	}

	if e.remaining > 0 {
		e.remaining--

		if e.crediter != nil {
			e.crediter.CreditCurrentTask(1)
		}

		return Tick{
			Kind: TickCountdown,
			Text: FormatClock(e.remaining),
		}
	}

	e.running = false

	t := Tick{
		Kind:     TickExpired,
		Text:     MsgTimesUp,
		WasBreak: e.onBreak,
	}

	if e.onBreak {
		t.Text = MsgBreakOver
	}

	e.onBreak = !e.onBreak

	return t
}

// Remaining returns the seconds left in the current period.
func (e *Engine) Remaining() int {
	return e.remaining
}

// Running reports whether the engine is counting down.
func (e *Engine) Running() bool {
	return e.running
}

// OnBreak reports whether the current period is a break.
func (e *Engine) OnBreak() bool {
	return e.onBreak
}

// State derives the engine state from its fields.
func (e *Engine) State() State {
	switch {
	case e.running:
		return Running
	case e.remaining == 0:
		return Expired
	default:
		return Idle
	}
}

// Clock returns the remaining time formatted as MM:SS.
func (e *Engine) Clock() string {
	return FormatClock(e.remaining)
}

// FormatClock formats seconds as MM:SS. There is no hour field, so values of
// 100 minutes or more widen the minute field.
func FormatClock(secs int) string {
	if secs < 0 {
		secs = 0
	}

	return fmt.Sprintf("%02d:%02d", secs/secondsPerMin, secs%secondsPerMin)
}

func durationToSecs(d time.Duration) int {
	secs := int(d / time.Second)
	if secs < 0 {
		return 0
	}

	return secs
}
