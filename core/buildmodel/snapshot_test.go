package buildmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const snapshotData = `
root: .
directories:
  .:
    subdirectories:
      - src
    targets:
      - app
  src:
    targets:
      - core
targets:
  app:
    type: EXECUTABLE
    link_libraries:
      - core
  core:
    type: STATIC_LIBRARY
  App::app:
    aliased_target: app
  custom:
    type: SOMETHING_NEW
`

func TestParseSnapshotProperties(t *testing.T) {
	snap, err := ParseSnapshot([]byte(snapshotData))
	require.NoError(t, err)

	libs, ok := snap.TargetProperty("app", PropLinkLibraries)
	assert.True(t, ok)
	assert.Equal(t, []string{"core"}, libs)

	subdirs, ok := snap.DirectoryProperty(".", PropSubdirectories)
	assert.True(t, ok)
	assert.Equal(t, []string{"src"}, subdirs)

	targets, ok := snap.DirectoryProperty("src", PropBuildsystemTargets)
	assert.True(t, ok)
	assert.Equal(t, []string{"core"}, targets)

	_, ok = snap.DirectoryProperty("nowhere", PropBuildsystemTargets)
	assert.False(t, ok)
}

func TestIsTarget(t *testing.T) {
	snap, err := ParseSnapshot([]byte(snapshotData))
	require.NoError(t, err)

	assert.True(t, snap.IsTarget("app"))
	assert.True(t, snap.IsTarget("App::app"))
	assert.False(t, snap.IsTarget("Qt5::Core"))
}

func TestTypeOf(t *testing.T) {
	snap, err := ParseSnapshot([]byte(snapshotData))
	require.NoError(t, err)

	assert.Equal(t, Executable, TypeOf(snap, "app"))
	assert.Equal(t, StaticLibrary, TypeOf(snap, "core"))

	// Unset and unrecognized types both map to Unknown.
	assert.Equal(t, Unknown, TypeOf(snap, "App::app"))
	assert.Equal(t, Unknown, TypeOf(snap, "custom"))
	assert.Equal(t, Unknown, TypeOf(snap, "missing"))
}

func TestAliasedTarget(t *testing.T) {
	snap, err := ParseSnapshot([]byte(snapshotData))
	require.NoError(t, err)

	real, ok := AliasedTarget(snap, "App::app")
	assert.True(t, ok)
	assert.Equal(t, "app", real)

	_, ok = AliasedTarget(snap, "app")
	assert.False(t, ok)
}

func TestParseSnapshotDefaultsRoot(t *testing.T) {
	snap, err := ParseSnapshot([]byte("directories: {}\ntargets: {}"))
	require.NoError(t, err)
	assert.Equal(t, ".", snap.Root)
}
