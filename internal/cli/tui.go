package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	pkgio "github.com/matzehuels/autgroup/pkg/io"
	"github.com/matzehuels/autgroup/pkg/perm"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorMuted)
	detailBoxStyle    = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorMuted).
				Padding(0, 1)
)

// maxCycleWidth truncates the cycle column of the generator table.
const maxCycleWidth = 48

// =============================================================================
// GeneratorListModel - Interactive generator browser
// =============================================================================

// GeneratorListModel is the bubbletea model of the explore command: a
// scrollable table of generators and a detail pane for the one under the
// cursor, with every vertex colored by its orbit.
type GeneratorListModel struct {
	Title      string
	Order      string
	Generators []perm.Perm
	Orbits     [][]int
	Degraded   bool

	Cursor int
	Offset int
	Height int

	// orbitOf maps each vertex to the index of its orbit.
	orbitOf []int
}

// NewGeneratorListModel creates a model for the group r.
func NewGeneratorListModel(title string, r *pkgio.Result) GeneratorListModel {
	gens := make([]perm.Perm, len(r.Generators))
	n := 0
	for i, g := range r.Generators {
		gens[i] = perm.Perm(g)
		n = max(n, len(g))
	}
	for _, o := range r.Orbits {
		for _, v := range o {
			n = max(n, v+1)
		}
	}
	orbitOf := make([]int, n)
	for i, o := range r.Orbits {
		for _, v := range o {
			orbitOf[v] = i
		}
	}
	return GeneratorListModel{
		Title:      title,
		Order:      r.Order.String(),
		Generators: gens,
		Orbits:     r.Orbits,
		Degraded:   r.Degraded,
		Height:     10,
		orbitOf:    orbitOf,
	}
}

func (m GeneratorListModel) Init() tea.Cmd {
	return nil
}

func (m GeneratorListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Generators)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			if len(m.Generators) > 0 {
				m.Cursor = len(m.Generators) - 1
				m.Offset = max(0, m.Cursor-m.Height+1)
			}
		}
	case tea.WindowSizeMsg:
		// leave room for the header and the detail pane
		m.Height = max(msg.Height-16, 3)
		if m.Cursor >= m.Offset+m.Height {
			m.Offset = m.Cursor - m.Height + 1
		}
	}
	return m, nil
}

func (m GeneratorListModel) View() string {
	var b strings.Builder

	header := fmt.Sprintf("%s  |Aut| = %s", m.Title, m.Order)
	b.WriteString(styleTitle.Render(header))
	if m.Degraded {
		b.WriteString("  " + styleWarn.Render("(incomplete)"))
	}
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  g/G first/last  q quit"))
	b.WriteString("\n\n")
	b.WriteString(m.orbitLegend())
	b.WriteString("\n\n")

	if len(m.Generators) == 0 {
		b.WriteString(listDimStyle.Render("The group is trivial: no generators."))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Generators))
	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		g := m.Generators[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{
			cursor,
			strconv.Itoa(i),
			g.Order().String(),
			strconv.Itoa(len(g.Support())),
			truncate(g.String(), maxCycleWidth),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorSubtle).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorMuted)).
		Headers("", "#", "Order", "Moves", "Cycles").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			if col == 4 {
				return listDimStyle
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Generators))))
	b.WriteString("\n\n")
	b.WriteString(detailBoxStyle.Render(m.detail(m.Generators[m.Cursor])))
	b.WriteString("\n")

	return b.String()
}

// detail renders the full cycle notation of g, coloring each vertex by orbit.
func (m GeneratorListModel) detail(g perm.Perm) string {
	var b strings.Builder
	fmt.Fprintf(&b, "generator %d  order %s  moves %d vertices\n\n", m.Cursor, g.Order(), len(g.Support()))
	for _, c := range g.Cycles() {
		b.WriteString("(")
		for i, v := range c {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString(m.vertex(v))
		}
		b.WriteString(")")
	}
	return b.String()
}

// orbitLegend lists the orbits, each in its color.
func (m GeneratorListModel) orbitLegend() string {
	parts := make([]string, len(m.Orbits))
	for i, o := range m.Orbits {
		parts[i] = orbitStyle(i).Render(fmt.Sprintf("O%d×%d", i, len(o)))
	}
	return listDimStyle.Render("orbits ") + strings.Join(parts, " ")
}

func (m GeneratorListModel) vertex(v int) string {
	s := strconv.Itoa(v)
	if v < 0 || v >= len(m.orbitOf) {
		return s
	}
	return orbitStyle(m.orbitOf[v]).Render(s)
}

// =============================================================================
// Helpers
// =============================================================================

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	return s[:width-1] + "…"
}
