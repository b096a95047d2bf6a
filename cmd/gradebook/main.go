// Package main is the entry point for the gradebook CLI.
//
// Gradebook can be used either as a library (SDK) or as a standalone binary
// with YAML configuration. This CLI provides the standalone binary approach:
// an interactive terminal session over one in-memory roster.
//
// Usage:
//
//	gradebook session -c config.yaml  # Start an interactive session
//	gradebook validate -c config.yaml # Validate configuration
//	gradebook version                 # Show version info
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set by GoReleaser at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd is the base command when called without subcommands.
// It just displays help - actual functionality is in subcommands.
var rootCmd = &cobra.Command{
	Use:   "gradebook",
	Short: "An interactive student grade roster",
	Long: `Gradebook is an in-memory student record manager for one session.

It keeps an ordered roster of students with numeric grades, enforces a
per-student grade modification budget, computes aggregate statistics,
and exports a CSV report. All state lives only for the duration of the
session.

Quick start:
  1. Run: gradebook session
  2. Type "add Ana Pérez 85" and then "help" for the full command list
  3. Type "quit" when done (all state is discarded)

Example config:
  title: Sistema de Gestión de Notas
  modification_limit: 3
  grading: five-point`,
	// No Run/RunE means this just shows help when called without subcommands
}

// Execute runs the root command.
// This is the main entry point called from main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error, just exit with code 1
		os.Exit(1)
	}
}

func main() {
	Execute()
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, and build date of this gradebook binary.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gradebook %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}

func init() {
	// Register subcommands with root
	rootCmd.AddCommand(versionCmd)
}
