// Package pipeline runs the pomdeps inspection stages in order.
//
// This package implements the load → validate → locate → fetch → extract
// sequence shared by every command, so the command handlers stay thin and
// never duplicate the configuration logic.
//
// # Architecture
//
// The pipeline consists of two parts:
//
//  1. [LoadConfig]: read the configuration document and validate it
//  2. [Runner.Run]: derive the descriptor URL, fetch it and extract the
//     dependencies that match the configured filter
//
// Every stage is synchronous and fails fast; nothing is retried or cached.
//
// # Usage
//
//	cfg, err := pipeline.LoadConfig("config.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	runner := pipeline.NewRunner(nil, logger)
//	report, err := runner.Run(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, d := range report.Dependencies {
//	    fmt.Println(d.Coordinate())
//	}
package pipeline

import (
	"github.com/matzehuels/pomdeps/pkg/config"
	"github.com/matzehuels/pomdeps/pkg/maven"
)

// Report is the outcome of a successful run.
type Report struct {
	Config       *config.Config     // validated configuration the run used
	URL          string             // descriptor URL that was fetched
	Dependencies []maven.Dependency // filtered, in document order; may be empty
}

// Filtered reports whether a filter narrowed the dependency list.
func (r *Report) Filtered() bool {
	return r.Config.FilterSubstring != ""
}

// LoadConfig reads the configuration document at path and validates it.
func LoadConfig(path string) (*config.Config, error) {
	raw, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return config.Validate(raw)
}
