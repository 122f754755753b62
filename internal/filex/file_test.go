package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureParentDir_CreatesDirectory(t *testing.T) {
	tmp := t.TempDir()
	want := filepath.Join(tmp, "state", "devfeed.db")

	got, err := EnsureParentDir(want)
	require.NoError(t, err)
	require.Equal(t, want, got)

	fi, err := os.Stat(filepath.Dir(want))
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")

	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), fi.Mode().Perm()&0o700)
	}
}

func TestEnsureParentDir_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "devfeed.db")

	first, err := EnsureParentDir(path)
	require.NoError(t, err)
	second, err := EnsureParentDir(path)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEnsureParentDir_BareName(t *testing.T) {
	got, err := EnsureParentDir("devfeed.db")
	require.NoError(t, err)
	require.Equal(t, "devfeed.db", got)
}

func TestEnsureParentDir_FailsIfFileBlocksDirectory(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "state")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	_, err := EnsureParentDir(filepath.Join(blocker, "devfeed.db"))
	require.Error(t, err, "should fail when a file exists where the directory goes")
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/alice")

	got, err := ExpandHome("~/.devfeed/devfeed.db")
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/home/alice", ".devfeed", "devfeed.db"), got)

	got, err = ExpandHome("/tmp/x.db")
	require.NoError(t, err)
	require.Equal(t, "/tmp/x.db", got)
}
