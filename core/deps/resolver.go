package deps

import (
	"regexp"
	"strings"

	"github.com/mhalstead/linkgraph/core/buildmodel"
	"github.com/mhalstead/linkgraph/core/logger"
	"github.com/mhalstead/linkgraph/core/shared"
)

// Annotation records that a real target is reachable through a namespaced
// alias.
type Annotation struct {
	Package string
	Alias   string
}

// Result is the normalized view of the retained targets: per-target
// dependency lists, alias annotations keyed by real target name, and the
// global allowed-dependency set the assembler and emitter consult.
type Result struct {
	Targets      []string
	Dependencies map[string][]string
	Annotations  map[string]Annotation
	Allowed      []string
}

type Resolver struct {
	model    buildmodel.Model
	excludes []*regexp.Regexp
}

func NewResolver(model buildmodel.Model, excludePatterns []string) *Resolver {
	return &Resolver{
		model:    model,
		excludes: shared.CompilePatterns(excludePatterns),
	}
}

// Normalize splits the retained names into real targets and aliases,
// resolves the aliases, and normalizes every link dependency. Dependency
// exclude patterns are applied to the unwrapped name before alias
// resolution, so an excluded alias never contributes an annotation.
func (r *Resolver) Normalize(retained []string) *Result {
	res := &Result{
		Dependencies: make(map[string][]string),
		Annotations:  make(map[string]Annotation),
	}

	var targets []string
	for _, name := range retained {
		if real, ok := buildmodel.AliasedTarget(r.model, name); ok {
			r.recordAlias(res, name, real)
			continue
		}
		targets = append(targets, name)
	}
	res.Targets = shared.SortedUnique(targets)

	var all []string
	for _, target := range res.Targets {
		raw, _ := r.model.TargetProperty(target, buildmodel.PropLinkLibraries)
		normalized := make([]string, 0, len(raw))
		for _, dep := range raw {
			name, ok := r.normalizeDep(res, dep)
			if !ok {
				continue
			}
			normalized = append(normalized, name)
		}
		res.Dependencies[target] = normalized
		all = append(all, normalized...)
	}

	allowed := make([]string, 0, len(all))
	for _, name := range all {
		if HasGenexArtifacts(name) {
			continue
		}
		allowed = append(allowed, name)
	}
	res.Allowed = shared.SortedUnique(allowed)
	return res
}

// normalizeDep turns one raw dependency string into its final name, or
// reports that the reference should be dropped.
func (r *Resolver) normalizeDep(res *Result, raw string) (string, bool) {
	ref := ParseRef(raw)
	name := ref.Name

	if shared.MatchesAny(name, r.excludes) {
		logger.Debug("Dropping excluded dependency: %s", name)
		return "", false
	}

	if ref.Kind == RefGenex && !r.model.IsTarget(name) && !strings.Contains(name, namespaceSep) {
		// The wrapper held a condition or payload, not a target name.
		logger.Debug("Dropping generator expression %q (unwraps to %q)", raw, name)
		return "", false
	}

	if real, ok := buildmodel.AliasedTarget(r.model, name); ok {
		r.recordAlias(res, name, real)
		return real, true
	}

	if ref.Kind == RefNamespaced && !r.model.IsTarget(name) {
		logger.Info("Still need to figure out %s", name)
	}

	return name, true
}

func (r *Resolver) recordAlias(res *Result, alias, real string) {
	if !r.model.IsTarget(real) {
		logger.Info("Still need to figure out %s (alias of %s)", alias, real)
		return
	}
	pkg := alias
	if idx := strings.Index(alias, namespaceSep); idx >= 0 {
		pkg = alias[:idx]
	}
	res.Annotations[real] = Annotation{Package: pkg, Alias: alias}
}
