// Package store connects to the data store and records completed periods
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"slices"
	"time"

	bolt "go.etcd.io/bbolt"
	berrors "go.etcd.io/bbolt/errors"

	"github.com/ayoisaiah/pomo/internal/apperr"
	"github.com/ayoisaiah/pomo/internal/models"
	"github.com/ayoisaiah/pomo/internal/osutil"
	"github.com/ayoisaiah/pomo/internal/timeutil"
)

const periodBucket = "periods"

var ErrRunning = &apperr.Error{
	Message: "is pomo already running? Only one instance can be active at a time",
}

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// SavePeriod stores p keyed by its start time. An existing record with the
// same key is overwritten.
func (c *Client) SavePeriod(p *models.Period) error {
	value, err := json.Marshal(p)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(periodBucket)).Put(timeutil.ToKey(p.StartTime), value)
	})
}

func (c *Client) GetPeriods(
	start, end time.Time,
	tickets []string,
) ([]models.Period, error) {
	var periods []models.Period

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(periodBucket)).Cursor()
		lower := timeutil.ToKey(start)
		upper := timeutil.ToKey(end)

		for k, v := cur.Seek(lower); k != nil && bytes.Compare(k, upper) <= 0; k, v = cur.Next() {
			var p models.Period

			if err := json.Unmarshal(v, &p); err != nil {
				return err
			}

			if len(tickets) > 0 && !slices.Contains(tickets, p.TicketID) {
				continue
			}

			periods = append(periods, p)
		}

		return nil
	})

	return periods, err
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string, timeout time.Duration) (*bolt.DB, error) {
	db, err := bolt.Open(
		pathToDB,
		osutil.FilePermission,
		&bolt.Options{Timeout: timeout},
	)
	if err != nil {
		if errors.Is(err, berrors.ErrTimeout) {
			return nil, ErrRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath, 1*time.Second)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(periodBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Client{db}, nil
}

// Locked reports whether another process holds the database at dbPath.
func Locked(dbPath string) (bool, error) {
	// opening a missing file would create it
	if _, err := os.Stat(dbPath); errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	db, err := openDB(dbPath, 100*time.Millisecond)
	if errors.Is(err, ErrRunning) {
		return true, nil
	}

	if err != nil {
		return false, err
	}

	return false, db.Close()
}
