package store

import (
	"time"

	"github.com/ayoisaiah/pomo/internal/models"
)

// DB is the database storage interface.
type DB interface {
	// SavePeriod records a period that ran to expiry
	SavePeriod(p *models.Period) error
	// GetPeriods returns the periods that started within [start, end],
	// oldest first, restricted to tickets if any are given
	GetPeriods(start, end time.Time, tickets []string) ([]models.Period, error)
	// Close ends the database connection
	Close() error
}
