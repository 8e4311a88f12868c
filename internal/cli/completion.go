package cli

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// completionCommand prints a shell completion script. Besides subcommands,
// the scripts complete --family, --format and --layout values.
func (c *CLI) completionCommand() *cobra.Command {
	shells := map[string]func(*cobra.Command, io.Writer) error{
		"bash":       func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) },
		"zsh":        func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) },
		"fish":       func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
		"powershell": func(root *cobra.Command, w io.Writer) error { return root.GenPowerShellCompletionWithDesc(w) },
	}

	return &cobra.Command{
		Use:   "completion bash|zsh|fish|powershell",
		Short: "Print a shell completion script",
		Long: `Print a completion script for autgroup to stdout.

  bash        source <(autgroup completion bash)
  zsh         autgroup completion zsh > "${fpath[1]}/_autgroup"
  fish        autgroup completion fish > ~/.config/fish/completions/autgroup.fish
  powershell  autgroup completion powershell | Out-String | Invoke-Expression

Start a new shell after installing the script.`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return shells[args[0]](cmd.Root(), c.out)
		},
	}
}

// familyCompletions suggests --family values. Sized families complete to
// "name:" so the shell waits for the size.
func familyCompletions(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, form := range strings.Split(familyNames, ", ") {
		name, sized := strings.CutSuffix(form, ":N")
		if !sized {
			name, sized = strings.CutSuffix(form, ":D")
		}
		if sized {
			name += ":"
		}
		if strings.HasPrefix(name, toComplete) {
			out = append(out, name)
		}
	}
	return out, cobra.ShellCompDirectiveNoSpace | cobra.ShellCompDirectiveNoFileComp
}
