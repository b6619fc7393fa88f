package timer

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/pomo/internal/models"
	"github.com/ayoisaiah/pomo/internal/osutil"
)

func TestRunSessionCmd(t *testing.T) {
	assert.NoError(t, runSessionCmd(""))

	err := runSessionCmd(`echo "unterminated`)
	assert.ErrorIs(t, err, errSessionCmd)

	if runtime.GOOS == osutil.Windows {
		t.Skip("skipping shell command checks in Windows")
	}

	assert.NoError(t, runSessionCmd("true"))
	assert.ErrorIs(t, runSessionCmd("false"), errSessionCmd)
}

func TestNotifierFunc(t *testing.T) {
	var got models.Period

	n := NotifierFunc(func(p models.Period, _ string) {
		got = p
	})

	n.Notify(models.Period{Phase: models.PhaseBreak}, "")

	assert.Equal(t, models.PhaseBreak, got.Phase)
}
