package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/autgroup/pkg/io"
	"github.com/matzehuels/autgroup/pkg/pipeline"
)

// searchFlags are the flags shared by every command that runs a search.
// Unset flags fall back to the config file.
type searchFlags struct {
	family  string
	workers int
	timeout time.Duration
	verify  bool
	noCache bool
	refresh bool
}

func (f *searchFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.family, "family", "", "use a built-in graph instead of a file ("+familyNames+")")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "parallel subtree workers (default from config)")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "search time limit, 0 for none (default from config)")
	cmd.Flags().BoolVar(&f.verify, "verify", false, "cross-check the group order with Schreier-Sims")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "ignore cached results and recompute")
	_ = cmd.RegisterFlagCompletionFunc("family", familyCompletions)
}

// options merges the flags that were set on top of the config defaults.
func (f *searchFlags) options(cmd *cobra.Command, cfg Config) pipeline.Options {
	opts := cfg.pipelineOptions()
	if cmd.Flags().Changed("workers") {
		opts.Workers = f.workers
	}
	if cmd.Flags().Changed("timeout") {
		opts.Timeout = f.timeout
	}
	if f.verify {
		opts.Verify = true
	}
	opts.Refresh = f.refresh
	return opts
}

// runSearch loads the input graph and computes its group, with a spinner and
// progress logging. A search that stopped early returns its partial result
// alongside the error.
func (c *CLI) runSearch(cmd *cobra.Command, args []string, f *searchFlags) (*pipeline.Result, string, error) {
	ctx := cmd.Context()
	d, name, err := loadDescriptor(args, f.family)
	if err != nil {
		return nil, "", err
	}

	runner, err := c.newRunner(ctx, f.noCache)
	if err != nil {
		return nil, "", err
	}
	defer runner.Close()

	opts := f.options(cmd, c.Config)
	opts.Logger = c.Logger
	sl := newSearchLogger(ctx, opts.Timeout)
	sl.attach(&opts)

	c.Logger.Debug("loaded graph", "source", name, "vertices", d.N, "edges", len(d.Edges))
	spinner := newSpinner(ctx, fmt.Sprintf("Searching %s (%s)...", name, sizeLabel(d)))
	sl.spinner = spinner
	spinner.Start()
	res, err := runner.Execute(ctx, d, opts)
	spinner.Stop()
	sl.finish(res, err)

	if errors.Is(ctx.Err(), context.Canceled) {
		printWarning("Interrupted")
		return res, name, ctx.Err()
	}
	if loops := d.SelfLoops(); loops > 0 {
		printWarning("Ignored %d self-loops", loops)
	}
	return res, name, err
}

// computeOpts holds the flags of the compute command.
type computeOpts struct {
	searchFlags
	format string
	output string
}

// computeCommand creates the compute command.
func (c *CLI) computeCommand() *cobra.Command {
	opts := computeOpts{format: pipeline.FormatJSON}

	cmd := &cobra.Command{
		Use:   "compute [file|-]",
		Short: "Compute the automorphism group of a graph",
		Long: `Compute the automorphism group of a simple undirected graph.

The graph is a JSON descriptor {"n": 4, "edges": [[0,1],[1,2],[2,3]]} read from
a file, from stdin with -, or a built-in family given with --family.

The result lists the exact group order, a generating set and the vertex orbits.
If the search hits --timeout, the partial result is still written, marked as
degraded, and the command exits with an error.`,
		Example: `  autgroup compute graph.json
  autgroup compute --family petersen --format yaml
  cat graph.json | autgroup compute - -o group.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pipeline.ValidateFormat(opts.format); err != nil {
				return err
			}
			res, _, err := c.runSearch(cmd, args, &opts.searchFlags)
			if res == nil || res.Result == nil {
				return err
			}
			if werr := c.writeResult(res.Result, opts.format, opts.output); werr != nil {
				return werr
			}
			printSummary(summary{
				vertices:   res.Stats.Vertices,
				edges:      res.Stats.Edges,
				order:      res.Result.Order.String(),
				generators: res.Result.NumGenerators,
				orbits:     len(res.Result.Orbits),
				cached:     res.Cached,
				degraded:   res.Result.Degraded,
			})
			if err != nil {
				return err
			}
			if res.Result.NumGenerators > 0 {
				printNextStep("Draw it", renderHint(args, opts.family))
			}
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: json, yaml")
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(pipeline.ValidFormats, cobra.ShellCompDirectiveNoFileComp))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

// writeResult writes r to path, or to the command output if path is empty.
func (c *CLI) writeResult(r *pkgio.Result, format, path string) error {
	if path == "" {
		return pkgio.Write(r, format, c.out)
	}
	if err := pkgio.Export(r, format, path); err != nil {
		return err
	}
	printFile(path)
	return nil
}

func renderHint(args []string, family string) string {
	if family != "" {
		return fmt.Sprintf("autgroup render --family %s -o graph.svg", family)
	}
	if len(args) > 0 && args[0] != "-" {
		return fmt.Sprintf("autgroup render %s -o graph.svg", args[0])
	}
	return "autgroup render graph.json -o graph.svg"
}
