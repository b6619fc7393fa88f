// Package models defines the records persisted by the store
package models

import (
	"time"
)

// Phase names the kind of period that was counted down.
type Phase string

const (
	PhaseWork  Phase = "work"
	PhaseBreak Phase = "break"
)

// Period is a countdown period that ran to expiry.
type Period struct {
	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	Phase     Phase         `json:"phase"`
	TicketID  string        `json:"ticket_id,omitempty"`
	Duration  time.Duration `json:"duration"`
}
