package tasks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, dir := range []string{"b-task", "a-task"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, "tasks", dir), 0o755))
	}
	// arquivo solto em tasks/ não é pasta de task
	require.NoError(t, os.WriteFile(filepath.Join(root, "tasks", "README.md"), []byte("x"), 0o644))
	return root
}

func TestFoldersSorted(t *testing.T) {
	root := writeTree(t)

	folders, err := Folders(root)
	require.NoError(t, err)
	require.Len(t, folders, 2)
	assert.Equal(t, filepath.Join(root, "tasks", "a-task"), folders[0])
	assert.Equal(t, filepath.Join(root, "tasks", "b-task"), folders[1])
}

func TestFoldersMissingRoot(t *testing.T) {
	_, err := Folders(t.TempDir())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSelect(t *testing.T) {
	root := writeTree(t)

	found, missing := Select(root, []string{"b-task", "nope", "a-task"})
	assert.Equal(t, []string{
		filepath.Join(root, "tasks", "b-task"),
		filepath.Join(root, "tasks", "a-task"),
	}, found)
	assert.Equal(t, []string{"nope"}, missing)
}

func TestFilesTaskFirst(t *testing.T) {
	folder := filepath.Join(writeTree(t), "tasks", "a-task")
	for _, name := range []string{"z.txt", "a.txt", "task.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(folder, name), []byte("x"), 0o644))
	}
	// subdiretório é ignorado
	require.NoError(t, os.MkdirAll(filepath.Join(folder, "sub"), 0o755))

	files, err := Files(folder)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(folder, "task.md"),
		filepath.Join(folder, "a.txt"),
		filepath.Join(folder, "z.txt"),
	}, files)
}

func TestFilesWithoutTaskMD(t *testing.T) {
	folder := filepath.Join(writeTree(t), "tasks", "b-task")
	require.NoError(t, os.WriteFile(filepath.Join(folder, "notes.txt"), []byte("x"), 0o644))

	files, err := Files(folder)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(folder, "notes.txt")}, files)
}
