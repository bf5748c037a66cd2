package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pomdeps/pkg/config"
	"github.com/matzehuels/pomdeps/pkg/maven"
	"github.com/matzehuels/pomdeps/pkg/observability"
)

// Runner executes the descriptor stages for a validated configuration.
//
// The Runner holds no per-run state; it only carries its collaborators.
type Runner struct {
	Client *maven.Client
	Logger *log.Logger
}

// NewRunner creates a runner with the given client and logger.
// If client is nil, a default [maven.Client] is used.
// If logger is nil, log.Default() is used.
func NewRunner(client *maven.Client, logger *log.Logger) *Runner {
	if client == nil {
		client = maven.NewClient(nil)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Client: client,
		Logger: logger,
	}
}

// URL derives the descriptor URL for cfg.
func (r *Runner) URL(cfg *config.Config) (string, error) {
	return maven.BuildDescriptorURL(cfg.PackageName, cfg.RepoURL, cfg.Version)
}

// Run derives the descriptor URL from cfg, fetches the descriptor and
// extracts the dependencies matching cfg.FilterSubstring.
//
// Errors from each stage are returned as soon as they occur: INVALID_FORMAT
// for a bad coordinate, FETCH_ERROR for retrieval failures and PARSE_ERROR
// (prefixed with the URL) for malformed descriptors.
func (r *Runner) Run(ctx context.Context, cfg *config.Config) (*Report, error) {
	url, err := r.URL(cfg)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("derived descriptor url", "package", cfg.PackageName, "version", cfg.Version, "url", url)

	fetchStart := time.Now()
	text, err := r.Client.FetchDescriptor(ctx, url)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("fetched descriptor",
		"bytes", len(text),
		"duration", time.Since(fetchStart).Round(time.Millisecond))

	extractStart := time.Now()
	deps, err := maven.ParseDescriptor(text, cfg.FilterSubstring)
	observability.Extract().OnExtractComplete(ctx, url, len(deps), time.Since(extractStart), err)
	if err != nil {
		return nil, fmt.Errorf("descriptor %s: %w", url, err)
	}
	r.Logger.Debug("extracted dependencies",
		"kept", len(deps),
		"filter", cfg.FilterSubstring)

	return &Report{
		Config:       cfg,
		URL:          url,
		Dependencies: deps,
	}, nil
}
