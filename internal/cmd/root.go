package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mindflow",
	Short: "Mind Flow developer CLI",
	Long:  `mindflow bundles local utilities for the Mind Flow coaching agent: a terminal chat loop and a demo-data generator.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
