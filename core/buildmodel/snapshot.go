package buildmodel

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Snapshot is a Model backed by a YAML dump of the build, produced by the
// build itself (a configure-time script walks the directory and target
// properties and writes them out). Directory keys are paths relative to the
// snapshot root, "." for the root itself.
type Snapshot struct {
	Root        string                       `yaml:"root"`
	Directories map[string]snapshotDirectory `yaml:"directories"`
	Targets     map[string]snapshotTarget    `yaml:"targets"`
}

type snapshotDirectory struct {
	Subdirectories []string `yaml:"subdirectories"`
	Targets        []string `yaml:"targets"`
}

type snapshotTarget struct {
	Type          string   `yaml:"type"`
	LinkLibraries []string `yaml:"link_libraries"`
	AliasedTarget string   `yaml:"aliased_target"`
}

func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read build model %s: %w", path, err)
	}
	snap, err := ParseSnapshot(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse build model %s: %w", path, err)
	}
	return snap, nil
}

func ParseSnapshot(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	if snap.Root == "" {
		snap.Root = "."
	}
	return &snap, nil
}

func (s *Snapshot) TargetProperty(target, key string) ([]string, bool) {
	t, ok := s.Targets[target]
	if !ok {
		return nil, false
	}
	switch key {
	case PropType:
		if t.Type == "" {
			return nil, false
		}
		return []string{t.Type}, true
	case PropLinkLibraries:
		return t.LinkLibraries, true
	case PropAliasedTarget:
		if t.AliasedTarget == "" {
			return nil, false
		}
		return []string{t.AliasedTarget}, true
	}
	return nil, false
}

func (s *Snapshot) DirectoryProperty(dir, key string) ([]string, bool) {
	d, ok := s.Directories[dir]
	if !ok {
		return nil, false
	}
	switch key {
	case PropSubdirectories:
		return d.Subdirectories, true
	case PropBuildsystemTargets:
		return d.Targets, true
	}
	return nil, false
}

func (s *Snapshot) IsTarget(name string) bool {
	_, ok := s.Targets[name]
	return ok
}
