package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robstonner/mediapipe"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the library version this binary was built from",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("matrixsub", mediapipe.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
