package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/autgroup/pkg/errors"
	"github.com/matzehuels/autgroup/pkg/graph"
	pkgio "github.com/matzehuels/autgroup/pkg/io"
)

// maxFamilySize bounds the size parameter of --family so a typo cannot ask
// for a graph with billions of edges.
const maxFamilySize = 1 << 16

// familyNames lists the accepted --family forms, for help text.
const familyNames = "petersen, complete:N, empty:N, path:N, cycle:N, star:N, hypercube:D"

// parseFamily builds a named graph such as "petersen" or "cycle:12".
func parseFamily(spec string) (*graph.Graph, error) {
	name, arg, hasArg := strings.Cut(strings.ToLower(strings.TrimSpace(spec)), ":")
	if name == "petersen" {
		if hasArg {
			return nil, errors.New(errors.ErrCodeInvalidInput, "family petersen takes no size")
		}
		return graph.Petersen(), nil
	}
	if !hasArg {
		return nil, errors.New(errors.ErrCodeInvalidInput, "family %q needs a size, e.g. %s:5 (known: %s)", name, name, familyNames)
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "family %s: invalid size %q", name, arg)
	}
	if n > maxFamilySize {
		return nil, errors.New(errors.ErrCodeTooLarge, "family %s: size %d exceeds %d", name, n, maxFamilySize)
	}

	switch name {
	case "complete":
		return graph.Complete(n), nil
	case "empty":
		return graph.Empty(n), nil
	case "path":
		return graph.Path(n), nil
	case "cycle":
		if n < 3 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "family cycle needs at least 3 vertices, got %d", n)
		}
		return graph.Cycle(n), nil
	case "star":
		return graph.Star(n), nil
	case "hypercube":
		if n > 16 {
			return nil, errors.New(errors.ErrCodeTooLarge, "family hypercube: dimension %d exceeds 16", n)
		}
		return graph.Hypercube(n), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidInput, "unknown family %q (known: %s)", name, familyNames)
}

// loadDescriptor reads a descriptor from path ("-" for stdin) or builds one
// from a family. Exactly one of the two must be given.
func loadDescriptor(args []string, family string) (*pkgio.Descriptor, string, error) {
	switch {
	case family != "" && len(args) > 0:
		return nil, "", errors.New(errors.ErrCodeInvalidInput, "give either a file or --family, not both")
	case family != "":
		g, err := parseFamily(family)
		if err != nil {
			return nil, "", err
		}
		return pkgio.FromGraph(g), family, nil
	case len(args) == 0:
		return nil, "", errors.New(errors.ErrCodeInvalidInput, "no graph given: pass a JSON file, - for stdin, or --family")
	}

	path := args[0]
	if path != "-" {
		if err := errors.ValidatePath(path); err != nil {
			return nil, "", err
		}
	}
	d, err := pkgio.ImportJSON(path)
	if err != nil {
		return nil, "", err
	}
	name := path
	if path == "-" {
		name = "stdin"
	}
	return d, name, nil
}

// sizeLabel formats a graph size for status lines.
func sizeLabel(d *pkgio.Descriptor) string {
	return fmt.Sprintf("%d vertices, %d edges", d.N, len(d.Edges))
}
