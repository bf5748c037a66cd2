package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pomdeps/pkg/pipeline"
)

// configCommand validates the configuration file and prints its settings.
func (c *CLI) configCommand() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Validate the configuration file and print its settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			logger.Debug("loading configuration", "path", path)

			cfg, err := pipeline.LoadConfig(path)
			if err != nil {
				return err
			}
			printSettings(c.Out, cfg)
			return nil
		},
	}

	addConfigFlag(cmd, &path)
	return cmd
}

// depsCommand fetches the configured descriptor and lists its dependencies.
func (c *CLI) depsCommand() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "deps",
		Short: "List the dependencies declared in the configured artifact's POM",
		Long: `Load and validate the configuration, fetch the artifact's POM from the
configured repository and list every declared dependency whose groupId or
artifactId contains filter_substring.`,
		Example: `  pomdeps deps
  pomdeps deps -c pomdeps.yaml -v`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			start := time.Now()

			cfg, err := pipeline.LoadConfig(path)
			if err != nil {
				return err
			}
			logger.Debug("configuration loaded", "path", path, "package", cfg.PackageName, "version", cfg.Version)

			report, err := c.newRunner().Run(ctx, cfg)
			if err != nil {
				return err
			}
			logElapsed(logger, start, "listed dependencies", "count", len(report.Dependencies))

			printReport(c.Out, report)
			return nil
		},
	}

	addConfigFlag(cmd, &path)
	return cmd
}

// urlCommand prints the descriptor URL without fetching it.
func (c *CLI) urlCommand() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "url",
		Short: "Print the POM URL for the configured artifact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := pipeline.LoadConfig(path)
			if err != nil {
				return err
			}
			url, err := c.newRunner().URL(cfg)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.Out, url)
			return nil
		},
	}

	addConfigFlag(cmd, &path)
	return cmd
}
