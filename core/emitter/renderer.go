package emitter

import (
	"os/exec"

	"github.com/mhalstead/linkgraph/core/logger"
)

const renderTool = "plantuml"

// Render invokes the external renderer once, blocking, over all emitted
// diagram files. A missing or failing renderer degrades the run to "no
// images", it never fails it.
func Render(files []string, extraArgs []string) {
	if len(files) == 0 {
		return
	}

	toolPath, err := exec.LookPath(renderTool)
	if err != nil {
		logger.Warn("%s not found on PATH, skipping render", renderTool)
		return
	}

	args := append(append([]string{}, extraArgs...), files...)
	logger.Debug("Rendering %d diagram(s) with %s %v", len(files), renderTool, extraArgs)
	out, err := exec.Command(toolPath, args...).CombinedOutput()
	if err != nil {
		logger.Warn("Render failed: %v\n%s", err, out)
		return
	}
	logger.Info("Rendered %d diagram(s)", len(files))
}
