package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/autgroup/pkg/cache"
	"github.com/matzehuels/autgroup/pkg/errors"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the result cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every cached result in the configured backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cc, err := c.newCache(ctx, false)
			if err != nil {
				return err
			}
			defer cc.Close()

			cl, ok := cc.(cache.Clearer)
			if !ok {
				return errors.New(errors.ErrCodeUnsupported, "cache backend %q cannot be cleared", c.Config.Cache.Backend)
			}

			fc, isFile := cc.(*cache.FileCache)
			count := 0
			if isFile {
				if count, err = fc.Len(); err != nil {
					return err
				}
			}
			if err := cl.Clear(ctx); err != nil {
				return err
			}

			if isFile {
				printSuccess("Cleared %d cached results", count)
				printDetail("Directory: %s", fc.Dir())
			} else {
				printSuccess("Cleared the %s cache", c.Config.Cache.Backend)
			}
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.Config.cacheConfig()
			if err != nil {
				return err
			}
			if cfg.Dir == "" {
				return errors.New(errors.ErrCodeUnsupported, "cache backend %q has no directory", cfg.Backend)
			}
			fmt.Fprintln(c.out, cfg.Dir)
			return nil
		},
	}
}
