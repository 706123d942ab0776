/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mhalstead/linkgraph/core/generator"
	"github.com/mhalstead/linkgraph/core/logger"
	"github.com/mhalstead/linkgraph/core/watcher"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate the graph whenever the build model changes",
	Long: `Watches the build-model snapshot and linkgraph.yaml, and re-runs
generation (debounced) on every change. Rendering is skipped in watch mode
unless explicitly configured otherwise.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.SetVerbose(verbose)
		logger.Debug("watch called")

		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("skip-render") {
			cfg.SkipRender = true
		}

		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}

		watchFiles := []string{
			cfg.Model,
			filepath.Join(wd, "linkgraph.yaml"),
		}
		fw, err := watcher.NewFileWatcher(watchFiles)
		if err != nil {
			return fmt.Errorf("failed to create watcher: %w", err)
		}
		defer fw.Close()

		regenerate := func() error {
			if err := generator.New(cfg).Run(); err != nil {
				// Keep watching; a broken snapshot mid-edit is normal.
				logger.Error("Generation failed: %v", err)
			}
			return nil
		}
		fw.FileWatcher.AddOnStartFunc(regenerate)
		fw.FileWatcher.AddOnChangeFunc(regenerate)

		logger.Info("Watching %s for changes...", cfg.Model)
		return fw.Watch()
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	addPipelineFlags(watchCmd)
}
