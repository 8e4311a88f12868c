package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// exploreCommand creates the explore command, which computes a group and
// opens an interactive browser over its generators.
func (c *CLI) exploreCommand() *cobra.Command {
	var opts searchFlags

	cmd := &cobra.Command{
		Use:   "explore [file|-]",
		Short: "Browse the generators of a graph's automorphism group",
		Long: `Compute the automorphism group of a graph and browse its generators in the
terminal. Each generator is shown in cycle notation with every vertex colored by
its orbit, matching the colors of the render command.`,
		Example: `  autgroup explore --family petersen
  autgroup explore graph.json --timeout 2m`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, name, searchErr := c.runSearch(cmd, args, &opts)
			if res == nil || res.Result == nil {
				return searchErr
			}

			if res.Result.NumGenerators == 0 {
				printInfo("The automorphism group of %s is trivial; nothing to explore", name)
				return searchErr
			}

			model := NewGeneratorListModel(name, res.Result)
			p := tea.NewProgram(model, tea.WithContext(cmd.Context()), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return err
			}
			return searchErr
		},
	}

	opts.register(cmd)
	return cmd
}
