package graph

import (
	"encoding/json"

	"github.com/mhalstead/linkgraph/core/buildmodel"
	"github.com/mhalstead/linkgraph/core/deps"
	"github.com/mhalstead/linkgraph/core/shared"
)

// Entry is one target's row in the Graph Document. Package and Alias are
// only present for targets reachable through a namespaced alias.
type Entry struct {
	Type         string   `json:"type"`
	Dependencies []string `json:"dependencies"`
	Package      string   `json:"package,omitempty"`
	Alias        string   `json:"alias,omitempty"`
}

// Document maps target name to its entry. encoding/json serializes map
// keys in sorted order, which together with the sorted dependency lists
// makes the output byte-identical across runs.
type Document map[string]Entry

// Assemble combines the normalized result into the final document. Each
// target's dependencies are intersected with the allowed set; anything
// outside it is excluded or unresolved noise.
func Assemble(model buildmodel.Model, res *deps.Result) Document {
	allowed := make(map[string]struct{}, len(res.Allowed))
	for _, name := range res.Allowed {
		allowed[name] = struct{}{}
	}

	doc := make(Document, len(res.Targets))
	for _, target := range res.Targets {
		kept := []string{}
		for _, dep := range res.Dependencies[target] {
			if _, ok := allowed[dep]; ok {
				kept = append(kept, dep)
			}
		}
		entry := Entry{
			Type:         string(buildmodel.TypeOf(model, target)),
			Dependencies: shared.SortedUnique(kept),
		}
		if ann, ok := res.Annotations[target]; ok {
			entry.Package = ann.Package
			entry.Alias = ann.Alias
		}
		doc[target] = entry
	}
	return doc
}

func (d Document) MarshalIndentJSON() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
