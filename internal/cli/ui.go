package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/autgroup/pkg/render"
)

// uiOut receives status lines. Results go to stdout, so status goes to stderr
// and piping a command's output stays clean.
var uiOut io.Writer = os.Stderr

// =============================================================================
// Theme
// =============================================================================

// ANSI 256 colors shared by the status lines, the spinner and the explorer.
const (
	colorAccent = lipgloss.Color("36")  // teal: headings, numbers
	colorOK     = lipgloss.Color("35")  // green
	colorWarn   = lipgloss.Color("220") // amber
	colorCmd    = lipgloss.Color("75")  // light blue: suggested commands
	colorText   = lipgloss.Color("255")
	colorSubtle = lipgloss.Color("245")
	colorMuted  = lipgloss.Color("240")
)

func fg(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

var (
	styleTitle   = fg(colorAccent).Bold(true)
	styleNumber  = fg(colorAccent)
	styleMuted   = fg(colorMuted)
	styleSubtle  = fg(colorSubtle)
	styleText    = fg(colorText)
	styleWarn    = fg(colorWarn)
	styleOK      = fg(colorOK)
	styleCommand = fg(colorCmd)
	styleKey     = fg(colorSubtle).Width(12)
)

// orbitStyle colors a vertex the way the SVG renderer colors orbit i, so a
// terminal listing and a drawing of the same group agree.
func orbitStyle(i int) lipgloss.Style {
	return fg(lipgloss.Color(render.PaletteColor(i)))
}

// =============================================================================
// Status lines
// =============================================================================

// status prints "<icon> msg" to uiOut.
func status(icon string, iconStyle lipgloss.Style, msg string) {
	fmt.Fprintln(uiOut, iconStyle.Render(icon)+" "+msg)
}

func printSuccess(format string, args ...any) {
	status("✓", styleOK, fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	status("!", styleWarn, styleWarn.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	status("›", styleSubtle, fmt.Sprintf(format, args...))
}

// printDetail prints an indented, muted line under a status line.
func printDetail(format string, args ...any) {
	fmt.Fprintln(uiOut, "  "+styleMuted.Render(fmt.Sprintf(format, args...)))
}

// printFile reports a file the command wrote.
func printFile(path string) {
	fmt.Fprintln(uiOut, "  "+styleMuted.Render("→")+" "+styleText.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Fprintln(uiOut, styleKey.Render(key)+" "+styleText.Render(value))
}

// printNextStep suggests a follow-up command.
func printNextStep(description, cmd string) {
	fmt.Fprintln(uiOut, styleMuted.Render(description+":")+" "+styleCommand.Render(cmd))
}

// =============================================================================
// Group summary
// =============================================================================

// summary is what printSummary shows about one computation.
type summary struct {
	vertices, edges int
	order           string
	generators      int
	orbits          int
	cached          bool
	degraded        bool
}

// origin labels where a result came from. An incomplete search wins over a
// cache hit since degraded results are never cached anyway.
func (s summary) origin() string {
	switch {
	case s.degraded:
		return styleWarn.Render("incomplete")
	case s.cached:
		return styleOK.Render("cached")
	default:
		return styleSubtle.Render("fresh")
	}
}

// printSummary prints
//
//	✓ |Aut| = 120
//	  10 vertices · 15 edges · 2 generators · 1 orbits · fresh
func printSummary(s summary) {
	printSuccess("|Aut| = %s", styleNumber.Render(s.order))
	facts := strings.Join([]string{
		fmt.Sprintf("%d vertices", s.vertices),
		fmt.Sprintf("%d edges", s.edges),
		fmt.Sprintf("%d generators", s.generators),
		fmt.Sprintf("%d orbits", s.orbits),
	}, " · ")
	fmt.Fprintln(uiOut, "  "+styleMuted.Render(facts+" · ")+s.origin())
}
