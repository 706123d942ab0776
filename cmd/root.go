/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "linkgraph",
	Short: "Generate link-dependency graphs from a build-model snapshot.",
	Long: `Linkgraph reads a snapshot of a CMake-style build (directories,
targets, link libraries, aliases), filters out housekeeping and utility
targets, resolves aliases and generator expressions, and emits a JSON
graph document plus PlantUML diagrams of how the artifacts link together.`,
}

var verbose bool

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose output")
}
