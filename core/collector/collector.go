package collector

import (
	"strings"

	"github.com/mhalstead/linkgraph/core/buildmodel"
	"github.com/mhalstead/linkgraph/core/logger"
)

// Collector gathers every build target declared in a directory and its
// descendants. Subdirectory entries in the model are paths relative to the
// model root, so recursion just follows them as-is.
type Collector struct {
	model       buildmodel.Model
	fetchedDirs []string
}

func New(model buildmodel.Model, fetchedDirs []string) *Collector {
	return &Collector{
		model:       model,
		fetchedDirs: fetchedDirs,
	}
}

// Collect returns the targets declared under root, in traversal order.
// Order does not matter downstream; everything gets sorted later.
func (c *Collector) Collect(root string) []string {
	var targets []string
	c.collect(root, &targets)
	return targets
}

func (c *Collector) collect(dir string, acc *[]string) {
	if c.isFetched(dir) {
		logger.Debug("Skipping fetched subtree: %s", dir)
		return
	}

	declared, ok := c.model.DirectoryProperty(dir, buildmodel.PropBuildsystemTargets)
	if !ok {
		// A directory the model cannot answer for yields a partial
		// graph, not a failed run.
		logger.Warn("Cannot inspect directory %s, skipping subtree", dir)
		return
	}
	*acc = append(*acc, declared...)

	subdirs, _ := c.model.DirectoryProperty(dir, buildmodel.PropSubdirectories)
	for _, sub := range subdirs {
		c.collect(sub, acc)
	}
}

func (c *Collector) isFetched(dir string) bool {
	for _, segment := range strings.Split(dir, "/") {
		for _, fetched := range c.fetchedDirs {
			if segment == fetched {
				return true
			}
		}
	}
	return false
}
