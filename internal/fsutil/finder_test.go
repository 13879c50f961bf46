package fsutil

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/pizzabuilder/internal/testutil"
)

func TestFindFilesByExtension(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"b.hcl":          "",
		"a.hcl":          "",
		"notes.txt":      "",
		"sub/c.hcl":      "",
		"sub/deep/d.hcl": "",
	})

	files, err := FindFilesByExtension([]string{dir}, ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.hcl"),
		filepath.Join(dir, "b.hcl"),
		filepath.Join(dir, "sub", "c.hcl"),
		filepath.Join(dir, "sub", "deep", "d.hcl"),
	}, files)
}

func TestFindFilesByExtension_FilesAndDuplicates(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{"menu.hcl": "", "menu.txt": ""})
	file := filepath.Join(dir, "menu.hcl")

	files, err := FindFilesByExtension([]string{file, dir, filepath.Join(dir, "menu.txt")}, ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{file}, files)
}

func TestFindFilesByExtension_MissingPath(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	files, err := FindFilesByExtension([]string{missing}, ".hcl")
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), missing)
	assert.Nil(t, files)
}

func TestFindFilesByExtension_EmptyExtensionPanics(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = FindFilesByExtension([]string{"."}, "")
	})
}
