package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/autgroup/pkg/buildinfo"
	"github.com/matzehuels/autgroup/pkg/cache"
	"github.com/matzehuels/autgroup/pkg/pipeline"
)

// appName names the binary and the XDG directories.
const appName = "autgroup"

// Log levels for main, which does not import charmbracelet/log itself.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI is the state shared by all subcommands. Config is filled in by the
// root command's PersistentPreRunE, so subcommands read it only from RunE.
type CLI struct {
	Logger *log.Logger
	Config Config

	configPath string    // --config
	out        io.Writer // results; status lines go to uiOut
}

// New returns a CLI logging to w at level, writing results to stdout.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), Config: defaultConfig(), out: os.Stdout}
}

// SetLogLevel changes the level of c.Logger; main uses it for --verbose.
func (c *CLI) SetLogLevel(level log.Level) { c.Logger.SetLevel(level) }

// SetOutput redirects command results.
func (c *CLI) SetOutput(w io.Writer) { c.out = w }

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "autgroup computes automorphism groups of graphs",
		Long: `autgroup computes the automorphism group of a simple undirected graph: its exact
order, a generating set of automorphisms, and the vertex orbits.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, unknown, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			for _, k := range unknown {
				c.Logger.Warn("unknown config key", "key", k)
			}
			c.Config = cfg
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/autgroup/config.toml)")

	root.AddCommand(
		c.computeCommand(),
		c.renderCommand(),
		c.exploreCommand(),
		c.serveCommand(),
		c.cacheCommand(),
		c.completionCommand(),
	)

	return root
}

// newRunner opens the configured cache (or none) and returns a Runner over
// it. The caller closes the Runner.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cc, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	var keyer cache.Keyer
	if prefix := c.Config.Cache.KeyPrefix; prefix != "" {
		keyer = cache.NewScopedKeyer(nil, prefix)
	}
	return pipeline.NewRunner(cc, keyer, c.Logger), nil
}

// newCache opens the configured backend. A config that names no usable
// directory only disables caching; a backend that fails to open is an error.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	cfg, err := c.Config.cacheConfig()
	if err != nil {
		c.Logger.Warn("caching disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	cfg.Logger = c.Logger
	return cache.Open(ctx, cfg)
}
