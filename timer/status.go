package timer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/ayoisaiah/pomo/internal/apperr"
	"github.com/ayoisaiah/pomo/internal/countdown"
	"github.com/ayoisaiah/pomo/internal/ledger"
	"github.com/ayoisaiah/pomo/internal/models"
	"github.com/ayoisaiah/pomo/internal/osutil"
	"github.com/ayoisaiah/pomo/store"
)

var errReadStatus = &apperr.Error{
	Message: "unable to read status file",
}

// Status is the snapshot written to the status file on every tick so that
// `pomo status` can report on a running instance.
type Status struct {
	UpdatedAt time.Time    `json:"updated_at"`
	Phase     models.Phase `json:"phase"`
	State     string       `json:"state"`
	Clock     string       `json:"clock"`
	TicketID  string       `json:"ticket_id,omitempty"`
	Remaining int          `json:"remaining"`
}

func snapshot(
	e *countdown.Engine,
	l *ledger.Ledger,
	clock string,
	now time.Time,
) Status {
	s := Status{
		Phase:     models.PhaseWork,
		State:     string(e.State()),
		Remaining: e.Remaining(),
		Clock:     clock,
		UpdatedAt: now,
	}

	if e.OnBreak() {
		s.Phase = models.PhaseBreak
	}

	if t, ok := l.Current(); ok {
		s.TicketID = t.TicketID
	}

	return s
}

func writeStatusFile(path string, s Status) error {
	if path == "" {
		return nil
	}

	b, err := json.Marshal(s)
	if err != nil {
		return err
	}

	return os.WriteFile(path, b, osutil.FilePermission)
}

// ReportStatus prints the status of the instance that currently holds the
// database. Nothing is printed if no instance is running.
func ReportStatus(w io.Writer, dbPath, statusPath string) error {
	locked, err := store.Locked(dbPath)
	if err != nil || !locked {
		return err
	}

	b, err := os.ReadFile(statusPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return errReadStatus.Wrap(err)
	}

	var s Status

	if err := json.Unmarshal(b, &s); err != nil {
		return errReadStatus.Wrap(err)
	}

	_, err = fmt.Fprintln(w, formatStatus(s))

	return err
}

func formatStatus(s Status) string {
	text := "[Work]"
	if s.Phase == models.PhaseBreak {
		text = "[Break]"
	}

	text = fmt.Sprintf("%s %s (%s)", text, s.Clock, s.State)

	if s.TicketID != "" {
		text += " >>> " + s.TicketID
	}

	return text
}
