/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/mhalstead/linkgraph/core/version"
	"github.com/spf13/cobra"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the version of linkgraph",
	Long:  `Displays the version of linkgraph.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("linkgraph %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
