package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/autgroup/pkg/errors"
	"github.com/matzehuels/autgroup/pkg/graph"
	pkgio "github.com/matzehuels/autgroup/pkg/io"
	"github.com/matzehuels/autgroup/pkg/perm"
	"github.com/matzehuels/autgroup/pkg/render/nodelink"
)

const (
	formatSVG = "svg"
	formatDOT = "dot"
)

var renderFormats = []string{formatSVG, formatDOT}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	searchFlags
	output    string // output file; derived from the input file when empty
	format    string // "svg" or "dot"
	layout    string // graphviz layout engine
	generator int    // index of the generator to highlight, -1 for none
	title     string
}

// renderCommand creates the render command, which draws a graph with its
// vertices colored by orbit.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		format:    formatSVG,
		layout:    string(nodelink.LayoutCirco),
		generator: -1,
	}

	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Draw a graph with vertices colored by orbit",
		Long: `Draw a graph as SVG (or Graphviz DOT) with vertices in the same orbit of the
automorphism group sharing a color. --generator k outlines the vertices moved by
the k-th generator and prints its cycle notation as the caption.

Without -o, the drawing is written next to the input file, or to stdout for
stdin and --family input.`,
		Example: `  autgroup render graph.json
  autgroup render --family petersen --generator 0 -o petersen.svg
  autgroup render --family hypercube:3 --format dot --layout neato`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateFormat(opts.format, renderFormats...); err != nil {
				return err
			}
			opts.format = strings.ToLower(opts.format)
			layout, err := nodelink.ParseLayout(opts.layout)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidInput, err, "render")
			}

			res, name, searchErr := c.runSearch(cmd, args, &opts.searchFlags)
			if res == nil || res.Result == nil {
				return searchErr
			}

			data, err := renderGroup(cmd.Context(), res.Graph, res.Result, layout, &opts, name)
			if err != nil {
				return err
			}
			c.Logger.Debugf("Generated %s: %d bytes", opts.format, len(data))

			if err := c.writeDrawing(data, outputPath(opts.output, args, opts.format)); err != nil {
				return err
			}
			printKeyValue("order", res.Result.Order.String())
			printKeyValue("orbits", fmt.Sprint(len(res.Result.Orbits)))
			if opts.generator >= 0 {
				printKeyValue("highlight", perm.Perm(res.Result.Generators[opts.generator]).String())
			}
			return searchErr
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg, dot")
	cmd.Flags().StringVar(&opts.layout, "layout", opts.layout, "graphviz layout: circo, neato, dot, fdp")
	cmd.Flags().IntVar(&opts.generator, "generator", opts.generator, "highlight the vertices moved by this generator (0-based)")
	cmd.Flags().StringVar(&opts.title, "title", "", "caption above the drawing (default: input name and group order)")
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(renderFormats, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("layout", cobra.FixedCompletions(
		[]string{"circo", "neato", "dot", "fdp"}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// renderGroup draws g colored by the orbits of r.
func renderGroup(ctx context.Context, g *graph.Graph, r *pkgio.Result, layout nodelink.Layout, opts *renderOpts, name string) ([]byte, error) {
	nlOpts := nodelink.Options{Orbits: r.Orbits, Title: opts.title}
	if nlOpts.Title == "" {
		nlOpts.Title = fmt.Sprintf("%s  |Aut| = %s", name, r.Order)
	}
	if opts.generator >= 0 {
		if opts.generator >= len(r.Generators) {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"generator %d out of range: the group has %d generators", opts.generator, len(r.Generators))
		}
		nlOpts.Highlight = perm.Perm(r.Generators[opts.generator])
	}

	dot := nodelink.ToDOT(g, nlOpts)
	if opts.format == formatDOT {
		return []byte(dot), nil
	}
	svg, err := nodelink.RenderSVG(ctx, dot, layout)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render svg")
	}
	return svg, nil
}

// outputPath derives the output file. An explicit path wins; otherwise a file
// input becomes <input>.<format> and anything else goes to stdout ("").
func outputPath(output string, args []string, format string) string {
	if output != "" {
		return output
	}
	if len(args) == 0 || args[0] == "-" {
		return ""
	}
	input := args[0]
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
}

func (c *CLI) writeDrawing(data []byte, path string) error {
	if path == "" {
		_, err := c.out.Write(data)
		return err
	}
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	printFile(path)
	return nil
}
