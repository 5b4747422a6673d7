package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	return func() { _ = os.Chdir(old) }
}

func TestEnsureDir_RelativePathResolvesAgainstCWD(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	got, err := EnsureDir("export")
	require.NoError(t, err)

	want := filepath.Join(tmp, "export")
	require.Equal(t, want, got)

	fi, err := os.Stat(want)
	require.NoError(t, err)
	require.True(t, fi.IsDir())
}

func TestEnsureDir_AbsolutePathUsedAsIs(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "nested", "export")

	got, err := EnsureDir(target)
	require.NoError(t, err)
	require.Equal(t, target, got)

	fi, err := os.Stat(target)
	require.NoError(t, err)
	require.True(t, fi.IsDir())
}

func TestEnsureDir_Idempotent(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	first, err := EnsureDir("export")
	require.NoError(t, err)

	second, err := EnsureDir("export")
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEnsureDir_FailsIfFileWithSameNameExists(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	require.NoError(t, os.WriteFile("export", []byte("x"), 0o660))

	_, err := EnsureDir("export")
	require.Error(t, err)
}

func TestSaveDownload_WritesFile(t *testing.T) {
	dir := t.TempDir()

	path, err := SaveDownload(dir, "resume.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "resume.pdf"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte("%PDF-1.4"), content)
}

func TestSaveDownload_StripsDirectoryComponents(t *testing.T) {
	dir := t.TempDir()

	path, err := SaveDownload(dir, "../../etc/resume.pdf", []byte("x"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "resume.pdf"), path)
}

func TestSaveDownload_RejectsEmptyName(t *testing.T) {
	dir := t.TempDir()

	_, err := SaveDownload(dir, "..", []byte("x"))
	require.Error(t, err)
}
