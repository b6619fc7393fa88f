package timer

import (
	"fmt"
	"log/slog"
	"os/exec"
	"sync"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/pomo/internal/apperr"
	"github.com/ayoisaiah/pomo/internal/config"
	"github.com/ayoisaiah/pomo/internal/models"
)

var errSessionCmd = &apperr.Error{
	Message: "unable to run session command",
}

const (
	sampleRate   = beep.SampleRate(44100)
	toneFreq     = 880
	toneDuration = 400 * time.Millisecond
)

// Notifier is told about every period that expires. Implementations are
// called off the UI goroutine and receive a copy of the period.
type Notifier interface {
	Notify(p models.Period, msg string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(p models.Period, msg string)

func (f NotifierFunc) Notify(p models.Period, msg string) {
	f(p, msg)
}

// DesktopNotifier shows a system notification, plays a short tone and runs
// the configured session command.
type DesktopNotifier struct {
	sessionCmd string
	once       sync.Once
	initErr    error
	popup      bool
	sound      bool
}

// NewDesktopNotifier configures a notifier from cfg.
func NewDesktopNotifier(cfg *config.Config) *DesktopNotifier {
	return &DesktopNotifier{
		popup:      cfg.Notifications.Enabled,
		sound:      cfg.Notifications.Enabled && cfg.Notifications.Sound,
		sessionCmd: cfg.Settings.Cmd,
	}
}

func (n *DesktopNotifier) Notify(p models.Period, msg string) {
	if n.popup {
		body := "Start a break when you are ready"
		if p.Phase == models.PhaseBreak {
			body = "Time to get back to work"
		}

		if p.TicketID != "" {
			body = fmt.Sprintf("%s (%s)", body, p.TicketID)
		}

		if err := beeep.Notify(msg, body, ""); err != nil {
			slog.Error("unable to display notification", slog.Any("error", err))
		}
	}

	if n.sound {
		if err := n.playTone(); err != nil {
			slog.Error("unable to play sound", slog.Any("error", err))
		}
	}

	if err := runSessionCmd(n.sessionCmd); err != nil {
		slog.Error("session command failed", slog.Any("error", err))
	}
}

// playTone blocks until a short sine tone has played.
func (n *DesktopNotifier) playTone() error {
	n.once.Do(func() {
		n.initErr = speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	})

	if n.initErr != nil {
		return n.initErr
	}

	tone, err := generators.SineTone(sampleRate, toneFreq)
	if err != nil {
		return err
	}

	quiet := &effects.Gain{
		Streamer: beep.Take(sampleRate.N(toneDuration), tone),
		Gain:     -0.7,
	}

	done := make(chan struct{})

	speaker.Play(beep.Seq(quiet, beep.Callback(func() {
		close(done)
	})))

	<-done

	return nil
}

// runSessionCmd executes the specified command.
func runSessionCmd(sessionCmd string) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return errSessionCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	//nolint:gosec // the command comes from the user's own config
	cmd := exec.Command(cmdSlice[0], cmdSlice[1:]...)

	if err := cmd.Run(); err != nil {
		return errSessionCmd.Wrap(err)
	}

	return nil
}
