package filter

import (
	"regexp"

	"github.com/mhalstead/linkgraph/core/buildmodel"
	"github.com/mhalstead/linkgraph/core/logger"
	"github.com/mhalstead/linkgraph/core/shared"
)

// CTest registers one housekeeping target per dashboard mode and step. They
// are build targets like any other, so they show up in BUILDSYSTEM_TARGETS
// and have to be dropped by exact name.
var (
	dashboardModes = []string{"Experimental", "Nightly", "Continuous"}
	dashboardSteps = []string{
		"", "MemoryCheck", "Start", "Update", "Configure",
		"Build", "Test", "Coverage", "MemCheck", "Submit",
	}
	housekeeping = buildHousekeeping()
)

func buildHousekeeping() map[string]struct{} {
	set := make(map[string]struct{}, len(dashboardModes)*len(dashboardSteps))
	for _, mode := range dashboardModes {
		for _, step := range dashboardSteps {
			set[mode+step] = struct{}{}
		}
	}
	return set
}

type Filter struct {
	model    buildmodel.Model
	excludes []*regexp.Regexp
}

func New(model buildmodel.Model, excludePatterns []string) *Filter {
	return &Filter{
		model:    model,
		excludes: shared.CompilePatterns(excludePatterns),
	}
}

// Apply reduces the collected targets to the ones that represent actual
// build artifacts: housekeeping targets, utility targets, and anything
// matching an exclude pattern are removed. The result is sorted and
// deduplicated; applying the same filter again changes nothing.
func (f *Filter) Apply(targets []string) []string {
	retained := make([]string, 0, len(targets))
	for _, name := range targets {
		if _, ok := housekeeping[name]; ok {
			logger.Debug("Dropping dashboard target: %s", name)
			continue
		}
		if buildmodel.TypeOf(f.model, name) == buildmodel.Utility {
			logger.Debug("Dropping utility target: %s", name)
			continue
		}
		if shared.MatchesAny(name, f.excludes) {
			logger.Debug("Dropping excluded target: %s", name)
			continue
		}
		retained = append(retained, name)
	}
	return shared.SortedUnique(retained)
}
