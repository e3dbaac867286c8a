// Command taskd runs the chore rotation HTTP service.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "v0.1.0"

var (
	configPath string
	listenAddr string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "taskd",
	Short: "Chore rotation service",
	Long: `taskd assigns a catalog of recurring chores to a roster of people,
rotates the assignment automatically on the designated weekday, and exposes
the current mapping over HTTP.`,
}

func init() {
	rootCmd.Version = version
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to YAML configuration file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	serveCmd.Flags().StringVar(&listenAddr, "addr", "", "Listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra prints errors, but we exit with non-zero status
		os.Exit(1)
	}
}
