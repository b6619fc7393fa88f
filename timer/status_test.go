package timer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/pomo/internal/config"
	"github.com/ayoisaiah/pomo/internal/models"
	"github.com/ayoisaiah/pomo/internal/testutil"
	"github.com/ayoisaiah/pomo/store"
)

type statusFileCase struct {
	name string
	path string
}

func (tc statusFileCase) Output() ([]byte, string) {
	b, err := os.ReadFile(tc.path)
	if err != nil {
		return []byte(err.Error()), tc.name
	}

	return b, tc.name
}

func runningModel(t *testing.T, statusPath string) *Model {
	t.Helper()

	m := New(
		testConfig(25*time.Minute, 5*time.Minute, config.TaskSpec{TicketID: "A"}),
		WithStatusFile(statusPath),
		WithNow(func() time.Time { return epoch.Add(5 * time.Second) }),
	)

	send(m, keyPress("s"))
	send(m, ticks(5)...)

	return m
}

func TestStatusFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "status.json")

	runningModel(t, path)

	testutil.CompareGoldenFile(t, statusFileCase{
		name: "status_running",
		path: path,
	})
}

func TestReportStatus(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "pomo.db")
	statusPath := filepath.Join(dir, "status.json")

	runningModel(t, statusPath)

	var buf bytes.Buffer

	// nothing holds the database
	require.NoError(t, ReportStatus(&buf, dbPath, statusPath))
	assert.Empty(t, buf.String())

	c, err := store.NewClient(dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
	})

	require.NoError(t, ReportStatus(&buf, dbPath, statusPath))
	assert.Equal(t, "[Work] 24:55 (running) >>> A\n", buf.String())
}

func TestReportStatusMissingFile(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "pomo.db")

	c, err := store.NewClient(dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
	})

	var buf bytes.Buffer

	err = ReportStatus(&buf, dbPath, filepath.Join(dir, "status.json"))
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestReportStatusCorruptFile(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "pomo.db")
	statusPath := filepath.Join(dir, "status.json")

	require.NoError(t, os.WriteFile(statusPath, []byte("{"), 0o600))

	c, err := store.NewClient(dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
	})

	err = ReportStatus(&bytes.Buffer{}, dbPath, statusPath)
	assert.ErrorIs(t, err, errReadStatus)
}

func TestFormatStatus(t *testing.T) {
	cases := []struct {
		name string
		want string
		in   Status
	}{
		{
			name: "break without task",
			in: Status{
				Phase: models.PhaseBreak,
				State: "idle",
				Clock: "05:00",
			},
			want: "[Break] 05:00 (idle)",
		},
		{
			name: "finished work",
			in: Status{
				Phase:    models.PhaseWork,
				State:    "expired",
				Clock:    "Time's Up!",
				TicketID: "T-9",
			},
			want: "[Work] Time's Up! (expired) >>> T-9",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, formatStatus(tc.in))
		})
	}
}
