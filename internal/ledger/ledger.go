// Package ledger keeps the ordered list of tasks worked on during a run and
// tracks which one is currently receiving time.
package ledger

import (
	"fmt"
	"unicode/utf8"
)

const (
	// MaxTicketIDLen is the maximum number of runes kept from a ticket ID.
	MaxTicketIDLen = 32
	// MaxDescriptionLen is the maximum number of runes kept from a
	// description.
	MaxDescriptionLen = 256
)

const secondsPerMin = 60

// TaskID is a handle to a task. It is the task's 1-based position in the
// ledger; the zero value refers to no task.
type TaskID int

// Task is a named unit of work and the time spent on it.
type Task struct {
	TicketID     string `json:"ticket_id"`
	Description  string `json:"description"`
	ID           TaskID `json:"id"`
	SecondsSpent int    `json:"seconds_spent"`
}

// Label renders the task for display.
func (t Task) Label() string {
	return fmt.Sprintf(
		"%s — %d min — %s",
		t.TicketID,
		t.SecondsSpent/secondsPerMin,
		t.Description,
	)
}

// Row is a rendered task with its presentation hint.
type Row struct {
	Label   string
	ID      TaskID
	Current bool
}

// Ledger is an append-only list of tasks with a current-task reference.
// It is not safe for concurrent use.
type Ledger struct {
	tasks   []*Task
	current TaskID
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// AddTask appends a task and selects it. An empty ticket ID is rejected
// without error; whitespace is not trimmed. Overlong values are truncated.
func (l *Ledger) AddTask(ticketID, description string) (TaskID, string, bool) {
	if ticketID == "" {
		return 0, "", false
	}

	t := &Task{
		ID:          TaskID(len(l.tasks) + 1),
		TicketID:    truncate(ticketID, MaxTicketIDLen),
		Description: truncate(description, MaxDescriptionLen),
	}

	l.tasks = append(l.tasks, t)
	l.current = t.ID

	return t.ID, t.Label(), true
}

// Select makes the task with the given id current. Unknown ids are ignored.
func (l *Ledger) Select(id TaskID) bool {
	if l.get(id) == nil {
		return false
	}

	l.current = id

	return true
}

// CreditCurrentTask adds seconds to the current task, if any.
func (l *Ledger) CreditCurrentTask(seconds int) {
	if t := l.get(l.current); t != nil && seconds > 0 {
		t.SecondsSpent += seconds
	}
}

// Current returns a copy of the current task.
func (l *Ledger) Current() (Task, bool) {
	t := l.get(l.current)
	if t == nil {
		return Task{}, false
	}

	return *t, true
}

// Get returns a copy of the task with the given id.
func (l *Ledger) Get(id TaskID) (Task, bool) {
	t := l.get(id)
	if t == nil {
		return Task{}, false
	}

	return *t, true
}

// RenderLabel returns the label of the task with the given id and whether it
// is the current task.
func (l *Ledger) RenderLabel(id TaskID) (label string, current bool, ok bool) {
	t := l.get(id)
	if t == nil {
		return "", false, false
	}

	return t.Label(), id == l.current, true
}

// Tasks returns copies of all tasks in insertion order.
func (l *Ledger) Tasks() []Task {
	out := make([]Task, len(l.tasks))

	for i, t := range l.tasks {
		out[i] = *t
	}

	return out
}

// Rows renders every task in insertion order.
func (l *Ledger) Rows() []Row {
	rows := make([]Row, len(l.tasks))

	for i, t := range l.tasks {
		rows[i] = Row{
			ID:      t.ID,
			Label:   t.Label(),
			Current: t.ID == l.current,
		}
	}

	return rows
}

// Len returns the number of tasks.
func (l *Ledger) Len() int {
	return len(l.tasks)
}

func (l *Ledger) get(id TaskID) *Task {
	if id < 1 || int(id) > len(l.tasks) {
		return nil
	}

	return l.tasks[id-1]
}

// truncate keeps the first limit runes of s. Bytes are never rewritten, so
// invalid UTF-8 counts one rune per bad byte and is kept as is.
func truncate(s string, limit int) string {
	offset := 0

	for n := 0; n < limit && offset < len(s); n++ {
		_, size := utf8.DecodeRuneInString(s[offset:])
		offset += size
	}

	return s[:offset]
}
