package deps

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRefPlain(t *testing.T) {
	ref := ParseRef("core")
	assert.Equal(t, RefPlain, ref.Kind)
	assert.Equal(t, "core", ref.Name)
	assert.Empty(t, ref.Package)
}

func TestParseRefNamespaced(t *testing.T) {
	ref := ParseRef("Qt5::Core")
	assert.Equal(t, RefNamespaced, ref.Kind)
	assert.Equal(t, "Qt5::Core", ref.Name)
	assert.Equal(t, "Qt5", ref.Package)
	assert.Equal(t, "Core", ref.Member)
}

func TestParseRefGenex(t *testing.T) {
	ref := ParseRef("$<LINK_ONLY:Qt5::Core>")
	assert.Equal(t, RefGenex, ref.Kind)
	assert.Equal(t, "Qt5::Core", ref.Name)
	assert.Equal(t, "Qt5", ref.Package)
	assert.Equal(t, "Core", ref.Member)
}

func TestParseRefGenexPlainInner(t *testing.T) {
	ref := ParseRef("$<LINK_ONLY:core>")
	assert.Equal(t, RefGenex, ref.Kind)
	assert.Equal(t, "core", ref.Name)
	assert.Empty(t, ref.Package)
}

func TestUnwrapIsOrderIndependent(t *testing.T) {
	raw := []string{
		"$<LINK_ONLY:Qt5::Core>",
		"$<LINK_ONLY:core>",
		"Threads::Threads",
		"m",
	}
	want := map[string]string{
		"$<LINK_ONLY:Qt5::Core>": "Qt5::Core",
		"$<LINK_ONLY:core>":      "core",
		"Threads::Threads":       "Threads::Threads",
		"m":                      "m",
	}

	// Forward and reverse order must give the same per-string result.
	for i := range raw {
		assert.Equal(t, want[raw[i]], ParseRef(raw[i]).Name)
	}
	for i := len(raw) - 1; i >= 0; i-- {
		assert.Equal(t, want[raw[i]], ParseRef(raw[i]).Name)
	}
}

func TestUnwrapRepeatedIsDeterministic(t *testing.T) {
	first := ParseRef("$<LINK_ONLY:Qt5::Core>")
	second := ParseRef("$<LINK_ONLY:Qt5::Core>")
	assert.Equal(t, first, second)
}

func TestHasGenexArtifacts(t *testing.T) {
	assert.True(t, HasGenexArtifacts("$<CONFIG:Debug>"))
	assert.True(t, HasGenexArtifacts("left<over"))
	assert.False(t, HasGenexArtifacts("Qt5::Core"))
	assert.False(t, HasGenexArtifacts("core"))
}
