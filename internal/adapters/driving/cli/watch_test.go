package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubRunner records the Run call and returns a fixed error.
type stubRunner struct {
	called bool
	err    error
}

func (r *stubRunner) Run(_ context.Context) error {
	r.called = true
	return r.err
}

func TestWatchCmd_Use(t *testing.T) {
	assert.Equal(t, "watch", watchCmd.Use)
}

func TestWatchCmd_RequiresRunner(t *testing.T) {
	_, err := execute(t, "watch")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "import watcher not configured")
}

func TestWatchCmd_RunsWatcher(t *testing.T) {
	runner := &stubRunner{}
	SetImportRunner(runner)
	defer func() { importRunner = nil }()

	out, err := execute(t, "watch")

	assert.NoError(t, err)
	assert.True(t, runner.called)
	assert.Contains(t, out, "Watching for files to import")
}

func TestWatchCmd_IgnoresContextCanceled(t *testing.T) {
	runner := &stubRunner{err: context.Canceled}
	SetImportRunner(runner)
	defer func() { importRunner = nil }()

	_, err := execute(t, "watch")

	assert.NoError(t, err)
}

func TestWatchCmd_PropagatesErrors(t *testing.T) {
	runner := &stubRunner{err: errors.New("no import directory")}
	SetImportRunner(runner)
	defer func() { importRunner = nil }()

	_, err := execute(t, "watch")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no import directory")
}
