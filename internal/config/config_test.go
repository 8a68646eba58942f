package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootEnvOverride(t *testing.T) {
	t.Setenv(RootEnv, "/srv/projects/analysis")
	assert.Equal(t, "/srv/projects/analysis", Root())
}

func TestFindRootLocatesMarkedAncestor(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "data"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(root, "logs"), 0o755))

	deep := filepath.Join(root, "notebooks", "experiments")
	require.NoError(t, os.MkdirAll(deep, 0o755))

	got, ok := findRoot(deep)
	require.True(t, ok)
	assert.Equal(t, root, got)
}

func TestIsProjectRoot(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, isProjectRoot(dir))

	require.NoError(t, os.Mkdir(filepath.Join(dir, "data"), 0o755))
	assert.False(t, isProjectRoot(dir), "one marker is not enough")

	require.NoError(t, os.Mkdir(filepath.Join(dir, "logs"), 0o755))
	assert.True(t, isProjectRoot(dir))
}

func TestIsProjectRootRejectsFileMarker(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data"), nil, 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "logs"), 0o755))

	assert.False(t, isProjectRoot(dir))
}

func TestRootEnvBeatsMarkerSearch(t *testing.T) {
	marked := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(marked, "data"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(marked, "logs"), 0o755))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(marked))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Setenv(RootEnv, "/elsewhere")
	assert.Equal(t, "/elsewhere", Root())
}
