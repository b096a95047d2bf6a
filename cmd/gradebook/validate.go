package main

import (
	"fmt"

	"github.com/GIUSEPPESAN21/gradebook/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// validateCmd validates a config file without starting a session.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a config file",
	Long: `Validate a gradebook configuration file without starting a session.

This command parses the YAML, expands environment variables, and validates
all fields. It's useful for CI/CD pipelines or pre-deployment checks.

Exit codes:
  0 - Config is valid
  1 - Config is invalid (error details printed to stderr)

Example:
  gradebook validate -c config.yaml
  gradebook validate --config /etc/gradebook/config.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringP("config", "c", "", "path to config file (required)")
	_ = validateCmd.MarkFlagRequired("config")
}

func runValidate(cmd *cobra.Command, args []string) error {
	// a local .env may supply values for ${VAR} expansion in the config
	_ = godotenv.Load()

	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	fmt.Printf("Config is valid!\n")
	fmt.Printf("  Grade range:        %v to %v\n", cfg.Grading.Min, cfg.Grading.Max)
	fmt.Printf("  Pass threshold:     %v\n", cfg.Grading.PassThreshold)
	fmt.Printf("  Modification limit: %d\n", cfg.ModificationLimit)
	fmt.Printf("  Export filename:    %s\n", cfg.Export.Filename)

	return nil
}
