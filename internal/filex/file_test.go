package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	got, err := ExpandHome("~/.narvi/narvi.db")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".narvi", "narvi.db"), got)

	got, err = ExpandHome("~")
	require.NoError(t, err)
	require.Equal(t, home, got)

	got, err = ExpandHome("/abs/~/x")
	require.NoError(t, err)
	require.Equal(t, "/abs/~/x", got)

	got, err = ExpandHome("~other/x")
	require.NoError(t, err)
	require.Equal(t, "~other/x", got)
}

func TestEnsureParentDir_CreatesDirectory(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "state", "narvi.db")

	got, err := EnsureParentDir(file)
	require.NoError(t, err)
	require.Equal(t, file, got)

	fi, err := os.Stat(filepath.Dir(file))
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")

	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), fi.Mode().Perm()&0o700)
	}

	_, err = os.Stat(file)
	require.True(t, os.IsNotExist(err), "must not create the file itself")
}

func TestEnsureParentDir_Idempotent(t *testing.T) {
	file := filepath.Join(t.TempDir(), "state", "narvi.db")

	first, err := EnsureParentDir(file)
	require.NoError(t, err)
	second, err := EnsureParentDir(file)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEnsureParentDir_FailsIfFileWithSameNameExists(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "state"), []byte("x"), 0o600))

	_, err := EnsureParentDir(filepath.Join(tmp, "state", "narvi.db"))
	require.Error(t, err, "should fail when a file exists with the same name")
}
