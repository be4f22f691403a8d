package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// envMap returns an environment accessor backed by a fixed map, so each
// platform's rules can be tested without mutating the process environment.
func envMap(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

// TestBaseDataDir_Windows verifies that the Windows path is derived from
// the roaming application-data variable.
func TestBaseDataDir_Windows(t *testing.T) {
	r := newResolverWithEnv("windows", envMap(map[string]string{
		"APPDATA": `C:\Users\trailblazer\AppData\Roaming`,
	}), nil)

	dir, err := r.BaseDataDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(`C:\Users\trailblazer\AppData\Roaming`, "warp-journal"), dir)
}

// TestBaseDataDir_WindowsMissingAppData verifies that a missing APPDATA
// variable is reported as an error rather than producing a relative path.
func TestBaseDataDir_WindowsMissingAppData(t *testing.T) {
	r := newResolverWithEnv("windows", envMap(nil), nil)

	_, err := r.BaseDataDir()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "APPDATA")
}

// TestBaseDataDir_LinuxXDGOverride verifies that XDG_DATA_HOME takes
// priority over the default data directory on Linux.
func TestBaseDataDir_LinuxXDGOverride(t *testing.T) {
	r := newResolverWithEnv("linux", envMap(map[string]string{
		"XDG_DATA_HOME": "/custom/data",
		"HOME":          "/home/trailblazer",
	}), nil)

	dir, err := r.BaseDataDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/custom/data", "warp-journal"), dir)
}

// TestBaseDataDir_LinuxDefault verifies the ~/.local/share fallback when
// no XDG override is present.
func TestBaseDataDir_LinuxDefault(t *testing.T) {
	r := newResolverWithEnv("linux", envMap(map[string]string{
		"HOME": "/home/trailblazer",
	}), nil)

	dir, err := r.BaseDataDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/trailblazer", ".local", "share", "warp-journal"), dir)
}

// TestBaseDataDir_DarwinDefault verifies the Application Support fallback
// on macOS, and that the XDG override also applies there.
func TestBaseDataDir_DarwinDefault(t *testing.T) {
	r := newResolverWithEnv("darwin", envMap(map[string]string{
		"HOME": "/Users/trailblazer",
	}), nil)

	dir, err := r.BaseDataDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/Users/trailblazer", "Library", "Application Support", "warp-journal"), dir)

	withXDG := newResolverWithEnv("darwin", envMap(map[string]string{
		"XDG_DATA_HOME": "/Users/trailblazer/xdg",
	}), nil)
	dir, err = withXDG.BaseDataDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/Users/trailblazer/xdg", "warp-journal"), dir)
}

// TestBaseDataDir_Unsupported verifies that unknown OS identifiers fail
// with the ErrUnsupportedPlatform sentinel.
func TestBaseDataDir_Unsupported(t *testing.T) {
	r := newResolverWithEnv("plan9", envMap(nil), nil)

	_, err := r.BaseDataDir()
	assert.ErrorIs(t, err, ErrUnsupportedPlatform)
}

// TestEnsureDataDir_Creates verifies that the directory tree is created
// when absent, and that a second call is idempotent.
func TestEnsureDataDir_Creates(t *testing.T) {
	root := t.TempDir()
	r := newResolverWithEnv("linux", envMap(map[string]string{
		"XDG_DATA_HOME": root,
	}), nil)

	dir, err := r.EnsureDataDir()
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Idempotent on an existing directory.
	again, err := r.EnsureDataDir()
	require.NoError(t, err)
	assert.Equal(t, dir, again)
}

// TestEnsureDataDir_PathConflict verifies that a regular file occupying
// the data directory path is reported as ErrPathConflict, the fatal
// path-vs-file condition.
func TestEnsureDataDir_PathConflict(t *testing.T) {
	root := t.TempDir()
	occupied := filepath.Join(root, "warp-journal")
	require.NoError(t, os.WriteFile(occupied, []byte("not a directory"), 0o644))

	r := newResolverWithEnv("linux", envMap(map[string]string{
		"XDG_DATA_HOME": root,
	}), nil)

	_, err := r.EnsureDataDir()
	assert.ErrorIs(t, err, ErrPathConflict)
}
