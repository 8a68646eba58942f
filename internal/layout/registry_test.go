package layout

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCreatesEveryDirectory(t *testing.T) {
	root := t.TempDir()

	reg, err := Resolve(root)
	require.NoError(t, err)

	for _, name := range reg.Names() {
		dir, err := reg.Get(name)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(dir, reg.Root()+string(filepath.Separator)),
			"%s should live under the root, got %s", name, dir)

		info, err := os.Stat(dir)
		require.NoError(t, err, "%s should exist after Resolve", name)
		assert.True(t, info.IsDir())

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries, "%s should be created empty", name)
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	root := t.TempDir()

	first, err := Resolve(root)
	require.NoError(t, err)

	// Drop a file into an existing directory; a second Resolve must not
	// disturb it.
	raw, err := first.Get(Raw)
	require.NoError(t, err)
	marker := filepath.Join(raw, "dataset.csv")
	require.NoError(t, os.WriteFile(marker, []byte("a,b\n"), 0o644))

	second, err := Resolve(root)
	require.NoError(t, err)
	assert.Equal(t, first.All(), second.All())

	_, err = os.Stat(marker)
	assert.NoError(t, err, "existing files must survive re-resolution")
}

func TestResolveRelativeRoot(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	reg, err := Resolve("proj")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(reg.Root()))

	logs, err := reg.Get(Logs)
	require.NoError(t, err)
	_, err = os.Stat(logs)
	assert.NoError(t, err)
}

func TestGetUnknownName(t *testing.T) {
	reg, err := Resolve(t.TempDir())
	require.NoError(t, err)

	_, err = reg.Get("nonexistent-name")
	assert.ErrorIs(t, err, ErrUnknownName)

	var unknownErr *UnknownNameError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "nonexistent-name", unknownErr.Name)
}

func TestValidateRejectsFileOnIntermediateSegment(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "data"), []byte("not a dir"), 0o644))

	_, err := Validate(root)
	assert.ErrorIs(t, err, ErrPathConflict)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, filepath.Join(root, "data"), conflict.Path)

	// Resolve goes through the same validation and must not create
	// anything when it fails.
	_, err = Resolve(root)
	assert.ErrorIs(t, err, ErrPathConflict)
	_, statErr := os.Stat(filepath.Join(root, "logs"))
	assert.True(t, os.IsNotExist(statErr), "no directory may be created on conflict")
}

func TestValidateRejectsFileOnLeafSegment(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "logs"), nil, 0o644))

	_, err := Validate(root)
	assert.ErrorIs(t, err, ErrPathConflict)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, Logs, conflict.Name)
}

func TestMissingTracksResolution(t *testing.T) {
	root := t.TempDir()

	reg, err := Validate(root)
	require.NoError(t, err)

	missing, err := reg.Missing()
	require.NoError(t, err)
	assert.Len(t, missing, len(reg.Names()))

	_, err = Resolve(root)
	require.NoError(t, err)

	missing, err = reg.Missing()
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestResolvePermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions do not bind root")
	}

	root := t.TempDir()
	require.NoError(t, os.Chmod(root, 0o555))
	t.Cleanup(func() { _ = os.Chmod(root, 0o755) })

	_, err := Resolve(root)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrPermission), "expected a permission error, got %v", err)
}
