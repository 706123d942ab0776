package collector

import (
	"testing"

	"github.com/mhalstead/linkgraph/core/buildmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const collectorModel = `
root: .
directories:
  .:
    subdirectories:
      - src
      - _deps/fmt-src
      - missing
    targets:
      - app
  src:
    subdirectories:
      - src/util
    targets:
      - core
  src/util:
    targets:
      - util
  _deps/fmt-src:
    targets:
      - fmt
`

func loadModel(t *testing.T) *buildmodel.Snapshot {
	t.Helper()
	snap, err := buildmodel.ParseSnapshot([]byte(collectorModel))
	require.NoError(t, err)
	return snap
}

func TestCollectGathersWholeTree(t *testing.T) {
	c := New(loadModel(t), nil)
	targets := c.Collect(".")
	assert.ElementsMatch(t, []string{"app", "core", "util", "fmt"}, targets)
}

func TestCollectSkipsFetchedSubtrees(t *testing.T) {
	c := New(loadModel(t), []string{"_deps"})
	targets := c.Collect(".")
	assert.ElementsMatch(t, []string{"app", "core", "util"}, targets)
}

func TestCollectToleratesUninspectableDirectories(t *testing.T) {
	// "missing" is declared as a subdirectory but the model cannot answer
	// for it; the partial result is still valid.
	c := New(loadModel(t), []string{"_deps"})
	targets := c.Collect(".")
	assert.Contains(t, targets, "app")
	assert.Contains(t, targets, "core")
}

func TestCollectFromSubdirectory(t *testing.T) {
	c := New(loadModel(t), nil)
	targets := c.Collect("src")
	assert.ElementsMatch(t, []string{"core", "util"}, targets)
}
