package emitter

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"text/template"

	"github.com/mhalstead/linkgraph/core/graph"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var graphTemplate = template.Must(
	template.ParseFS(templateFS, "templates/graph.puml.tmpl"))

const GraphFileName = "graph.puml"

type Node struct {
	ID    string
	Name  string
	Label string
}

type Frame struct {
	Name  string
	Nodes []Node
}

type Edge struct {
	From string
	To   string
}

// Diagram is the template input: the project's own targets in one frame
// (when a namespace is configured), one frame per external namespace,
// loose nodes for everything else, and the retained edges.
type Diagram struct {
	ProjectFrame *Frame
	Frames       []Frame
	Nodes        []Node
	Edges        []Edge
}

// Emitter turns a Graph Document into PlantUML description files.
type Emitter struct {
	namespace string
}

func New(namespace string) *Emitter {
	return &Emitter{namespace: namespace}
}

// EmitAll writes the whole-graph diagram plus one focused diagram per
// target, and returns the written file paths.
func (e *Emitter) EmitAll(doc graph.Document, outputDir string) ([]string, error) {
	var files []string

	path := filepath.Join(outputDir, GraphFileName)
	if err := e.emit(e.buildDiagram(doc), path); err != nil {
		return files, err
	}
	files = append(files, path)

	for _, target := range sortedStringKeys(doc) {
		focused := e.buildDiagram(focusOn(doc, target))
		path := filepath.Join(outputDir, NodeID(target)+".puml")
		if err := e.emit(focused, path); err != nil {
			return files, err
		}
		files = append(files, path)
	}
	return files, nil
}

func (e *Emitter) emit(d Diagram, path string) error {
	var buf bytes.Buffer
	if err := graphTemplate.Execute(&buf, d); err != nil {
		return fmt.Errorf("failed to render diagram template: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write diagram %s: %w", path, err)
	}
	return nil
}

// focusOn reduces the document to one target and its direct dependencies.
func focusOn(doc graph.Document, target string) graph.Document {
	focused := graph.Document{target: doc[target]}
	for _, dep := range doc[target].Dependencies {
		if entry, ok := doc[dep]; ok {
			entry.Dependencies = nil
			focused[dep] = entry
		}
	}
	return focused
}

func (e *Emitter) buildDiagram(doc graph.Document) Diagram {
	var d Diagram

	var project []Node
	for _, name := range sortedStringKeys(doc) {
		project = append(project, Node{
			ID:    NodeID(name),
			Name:  name,
			Label: strings.ToLower(doc[name].Type),
		})
	}

	external := make(map[string][]Node)
	var loose []Node
	for _, ext := range externalDeps(doc) {
		node := Node{ID: NodeID(ext), Name: ext}
		pkg, _, namespaced := strings.Cut(ext, "::")
		switch {
		case namespaced && pkg != e.namespace:
			external[pkg] = append(external[pkg], node)
		default:
			loose = append(loose, node)
		}
	}

	if e.namespace != "" {
		d.ProjectFrame = &Frame{Name: e.namespace, Nodes: project}
	} else {
		d.Nodes = append(d.Nodes, project...)
	}
	for _, pkg := range sortedStringKeys(external) {
		d.Frames = append(d.Frames, Frame{Name: pkg, Nodes: external[pkg]})
	}
	d.Nodes = append(d.Nodes, loose...)

	for _, name := range sortedStringKeys(doc) {
		for _, dep := range doc[name].Dependencies {
			d.Edges = append(d.Edges, Edge{From: NodeID(name), To: NodeID(dep)})
		}
	}
	return d
}

// externalDeps lists the dependencies that appear in the document without
// having an entry of their own, sorted.
func externalDeps(doc graph.Document) []string {
	seen := make(map[string]struct{})
	for _, entry := range doc {
		for _, dep := range entry.Dependencies {
			if _, ok := doc[dep]; !ok {
				seen[dep] = struct{}{}
			}
		}
	}
	return sortedStringKeys(seen)
}

var unsafeIDChars = regexp.MustCompile(`[^A-Za-z0-9_]`)

// NodeID maps a target or dependency name to a PlantUML-safe identifier.
// "Qt5::Core" becomes "Qt5__Core".
func NodeID(name string) string {
	return unsafeIDChars.ReplaceAllString(name, "_")
}

func sortedStringKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
