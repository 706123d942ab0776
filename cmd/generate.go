/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/mhalstead/linkgraph/core/config"
	"github.com/mhalstead/linkgraph/core/generator"
	"github.com/mhalstead/linkgraph/core/logger"
	"github.com/spf13/cobra"
)

var (
	namespaceFlag  string
	modelFlag      string
	sourceDirFlag  string
	outputDirFlag  string
	excludeTargets []string
	excludeDeps    []string
	skipRenderFlag bool
	renderArgsFlag []string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the dependency graph and diagrams",
	Long:  `Runs the full pipeline once: collect, filter, normalize, assemble, emit, render.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.SetVerbose(verbose)
		logger.Debug("generate called")

		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		if err := generator.New(cfg).Run(); err != nil {
			return fmt.Errorf("failed to generate dependency graph: %w", err)
		}
		return nil
	},
}

// addPipelineFlags registers the flags shared by generate and watch.
func addPipelineFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&namespaceFlag, "namespace", "", "Namespace grouping this project's targets")
	cmd.Flags().StringVar(&modelFlag, "model", "", "Path to the build-model snapshot")
	cmd.Flags().StringVar(&sourceDirFlag, "source-dir", "", "Directory to start collection from")
	cmd.Flags().StringVar(&outputDirFlag, "output-dir", "", "Directory for generated files (cleared at run start)")
	cmd.Flags().StringArrayVar(&excludeTargets, "exclude-target", nil, "Regex removing matching targets (repeatable)")
	cmd.Flags().StringArrayVar(&excludeDeps, "exclude-dependency", nil, "Regex removing matching dependencies (repeatable)")
	cmd.Flags().BoolVar(&skipRenderFlag, "skip-render", false, "Do not invoke the external renderer")
	cmd.Flags().StringArrayVar(&renderArgsFlag, "render-arg", nil, "Extra argument forwarded to the renderer (repeatable)")
}

// resolveConfig loads linkgraph.yaml and lets explicitly-set flags win.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("namespace") {
		cfg.Namespace = namespaceFlag
	}
	if flags.Changed("model") {
		cfg.Model = modelFlag
	}
	if flags.Changed("source-dir") {
		cfg.SourceDir = sourceDirFlag
	}
	if flags.Changed("output-dir") {
		cfg.OutputDir = outputDirFlag
	}
	if flags.Changed("exclude-target") {
		cfg.ExcludeTargets = excludeTargets
	}
	if flags.Changed("exclude-dependency") {
		cfg.ExcludeDependencies = excludeDeps
	}
	if flags.Changed("skip-render") {
		cfg.SkipRender = skipRenderFlag
	}
	if flags.Changed("render-arg") {
		cfg.RenderArgs = renderArgsFlag
	}
	return cfg, nil
}

func init() {
	rootCmd.AddCommand(generateCmd)
	addPipelineFlags(generateCmd)
}
