package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "matrixsub",
	Short: "Run the MatrixSubtract calculator over generated frames",
	Long: `matrixsub drives a single MatrixSubtract calculator node outside of any
graph: it wires the MINUEND/SUBTRAHEND tags you choose, feeds the node
randomly generated matrix frames, and prints one subtraction result per
frame timestamp.`,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
}
