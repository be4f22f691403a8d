package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingReporter captures the message a Failer surfaces.
type recordingReporter struct {
	messages []string
}

func (r *recordingReporter) Report(message string) {
	r.messages = append(r.messages, message)
}

// envMap returns an environment accessor backed by a fixed map.
func envMap(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

// TestHeadless_Report verifies the stderr-style fallback output.
func TestHeadless_Report(t *testing.T) {
	var buf bytes.Buffer
	h := &Headless{Out: &buf}

	h.Report("No suitable port found.")
	assert.Equal(t, "warp-journal: No suitable port found.\n", buf.String())
}

// TestNewReporter_Selection verifies the display heuristic: Windows and
// macOS always get the dialog, Linux only with an X11 or Wayland
// session, everything else falls back to stderr.
func TestNewReporter_Selection(t *testing.T) {
	assert.IsType(t, &Dialog{}, NewReporter("windows", envMap(nil)))
	assert.IsType(t, &Dialog{}, NewReporter("darwin", envMap(nil)))

	assert.IsType(t, &Headless{}, NewReporter("linux", envMap(nil)))
	assert.IsType(t, &Dialog{}, NewReporter("linux", envMap(map[string]string{"DISPLAY": ":0"})))
	assert.IsType(t, &Dialog{}, NewReporter("linux", envMap(map[string]string{"WAYLAND_DISPLAY": "wayland-0"})))
}

// TestFailer_Fatal verifies the fatal protocol: the message reaches the
// reporter and the process exit is requested with status 1.
func TestFailer_Fatal(t *testing.T) {
	rec := &recordingReporter{}
	f := NewFailer(nil, rec)

	var exitCode = -1
	f.exit = func(code int) { exitCode = code }

	f.Fatal("Warp Journal is only designed to run on Windows, Linux, or macOS.")

	require.Len(t, rec.messages, 1)
	assert.Contains(t, rec.messages[0], "only designed to run")
	assert.Equal(t, 1, exitCode)
}
