package config

import (
	"github.com/GIUSEPPESAN21/gradebook"
)

// Options converts parsed configuration into SDK option values.
//
// The returned slice is ready to pass to [gradebook.New]; callers may
// append further options (a logger, a custom classifier) before doing so.
func Options(cfg *Config) []gradebook.Option {
	opts := []gradebook.Option{
		gradebook.WithGradeRange(cfg.Grading.Min, cfg.Grading.Max),
		gradebook.WithPassThreshold(cfg.Grading.PassThreshold),
		gradebook.WithModificationLimit(cfg.ModificationLimit),
		gradebook.WithExportFilename(cfg.Export.Filename),
	}

	if cfg.Title != "" {
		opts = append(opts, gradebook.WithTitle(cfg.Title))
	}

	return opts
}
