/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mhalstead/linkgraph/core/logger"
	"github.com/spf13/cobra"
)

var force bool

const starterConfig = `namespace: ""
model: build-model.yaml
source_dir: .
output_dir: dep-graph
exclude_targets: []
exclude_dependencies: []
fetched_dirs:
  - _deps
skip_render: false
render_args: []
`

const starterModel = `root: .
directories:
  .:
    subdirectories: []
    targets: []
targets: {}
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter linkgraph.yaml and build-model.yaml",
	Long:  `Creates a starter configuration and an empty build-model snapshot in the current directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.SetVerbose(verbose)
		logger.Debug("init called")

		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}

		files := map[string]string{
			"linkgraph.yaml":   starterConfig,
			"build-model.yaml": starterModel,
		}
		for name, content := range files {
			path := filepath.Join(wd, name)
			if _, err := os.Stat(path); err == nil && !force {
				fmt.Printf("%s already exists. Use --force to overwrite.\n", name)
				continue
			}
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", name, err)
			}
			fmt.Printf("Wrote %s\n", name)
		}

		fmt.Printf("Next Steps:\n")
		fmt.Printf("  - dump your build into build-model.yaml\n")
		fmt.Printf("  - linkgraph generate\n")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&force, "force", false, "Force overwrite existing files")
}
