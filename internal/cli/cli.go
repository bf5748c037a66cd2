// Package cli implements the pomdeps command-line interface.
package cli

import (
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pomdeps/pkg/buildinfo"
	"github.com/matzehuels/pomdeps/pkg/config"
	"github.com/matzehuels/pomdeps/pkg/maven"
	"github.com/matzehuels/pomdeps/pkg/observability"
	"github.com/matzehuels/pomdeps/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "pomdeps"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogWarn  = log.WarnLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Out    io.Writer // report output (stdout in main)

	// HTTPClient is used for descriptor requests; nil means maven.NewHTTPClient.
	HTTPClient *http.Client
}

// New creates a new CLI instance writing reports to out and logs to logw.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logw, level),
		Out:    out,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// InstallHooks routes fetch and extract events to the CLI logger.
func (c *CLI) InstallHooks() {
	h := &logHooks{logger: c.Logger}
	observability.SetFetchHooks(h)
	observability.SetExtractHooks(h)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "pomdeps lists the dependencies declared in a Maven descriptor",
		Long: `pomdeps reads a configuration file naming a Maven coordinate, repository and
version, fetches the artifact's POM and lists the dependencies it declares,
optionally narrowed by a substring filter.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Out)

	// A bare invocation runs the dependency report.
	deps := c.depsCommand()
	root.RunE = deps.RunE
	root.Flags().AddFlag(deps.Flags().Lookup("config"))

	root.AddCommand(c.configCommand())
	root.AddCommand(deps)
	root.AddCommand(c.urlCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Shared Helpers
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(maven.NewClient(c.HTTPClient), c.Logger)
}

// addConfigFlag registers the --config/-c flag on cmd.
func addConfigFlag(cmd *cobra.Command, path *string) {
	cmd.Flags().StringVarP(path, "config", "c", config.DefaultPath, "path to the configuration file (JSON, YAML or TOML)")
	_ = cmd.MarkFlagFilename("config", configExtensions...)
}
