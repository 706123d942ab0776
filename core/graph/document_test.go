package graph

import (
	"testing"

	"github.com/mhalstead/linkgraph/core/buildmodel"
	"github.com/mhalstead/linkgraph/core/collector"
	"github.com/mhalstead/linkgraph/core/deps"
	"github.com/mhalstead/linkgraph/core/filter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioModel = `
root: .
directories:
  .:
    targets:
      - core
      - app
      - App::app
      - legacy_test
targets:
  core:
    type: STATIC_LIBRARY
  app:
    type: EXECUTABLE
    link_libraries:
      - core
      - "$<LINK_ONLY:Qt5::Core>"
  App::app:
    aliased_target: app
  legacy_test:
    type: EXECUTABLE
    link_libraries:
      - core
`

func assemble(t *testing.T, modelData string, excludeTargets, excludeDeps []string) Document {
	t.Helper()
	model, err := buildmodel.ParseSnapshot([]byte(modelData))
	require.NoError(t, err)

	collected := collector.New(model, nil).Collect(".")
	retained := filter.New(model, excludeTargets).Apply(collected)
	res := deps.NewResolver(model, excludeDeps).Normalize(retained)
	return Assemble(model, res)
}

func TestAssembleAnnotatesAliasedTargets(t *testing.T) {
	doc := assemble(t, scenarioModel, []string{`.*_test`}, nil)

	require.Len(t, doc, 2)
	assert.Equal(t, "STATIC_LIBRARY", doc["core"].Type)
	assert.Empty(t, doc["core"].Dependencies)

	app := doc["app"]
	assert.Equal(t, "EXECUTABLE", app.Type)
	assert.Contains(t, app.Dependencies, "core")
	assert.Equal(t, "App", app.Package)
	assert.Equal(t, "App::app", app.Alias)
}

func TestAssembleDropsExcludedTargets(t *testing.T) {
	doc := assemble(t, scenarioModel, []string{`.*_test`}, nil)
	_, ok := doc["legacy_test"]
	assert.False(t, ok)
}

func TestAssembleKeepsOpaqueExternals(t *testing.T) {
	doc := assemble(t, scenarioModel, []string{`.*_test`}, nil)
	assert.Equal(t, []string{"Qt5::Core", "core"}, doc["app"].Dependencies)
}

func TestAssembleRespectsDependencyExcludes(t *testing.T) {
	doc := assemble(t, scenarioModel, []string{`.*_test`}, []string{`Qt5::.*`})
	assert.Equal(t, []string{"core"}, doc["app"].Dependencies)
}

func TestDocumentIsDeterministic(t *testing.T) {
	first, err := assemble(t, scenarioModel, []string{`.*_test`}, nil).MarshalIndentJSON()
	require.NoError(t, err)
	second, err := assemble(t, scenarioModel, []string{`.*_test`}, nil).MarshalIndentJSON()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEmptyDocumentIsValid(t *testing.T) {
	doc := assemble(t, scenarioModel, []string{`.*`}, nil)
	assert.Empty(t, doc)

	data, err := doc.MarshalIndentJSON()
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))
}
