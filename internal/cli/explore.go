package cli

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"charm.land/bubbles/v2/progress"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/mkarlsen/magnitude/internal/scale"
	"github.com/spf13/cobra"
)

// visibleRows is the number of catalog rows shown at once.
const visibleRows = 12

// Theme holds the color scheme for the explore display.
type Theme struct {
	Title    lipgloss.Color
	Selected lipgloss.Color
	Detail   lipgloss.Color
	Hint     lipgloss.Color
}

// defaultTheme provides default colors.
var defaultTheme = Theme{
	Title:    lipgloss.Color("#5FAFD7"), // light blue
	Selected: lipgloss.Color("#00D787"), // green
	Detail:   lipgloss.Color("#D7D787"), // pale yellow
	Hint:     lipgloss.Color("#6C6C6C"), // dim gray
}

func (t Theme) titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Title).Bold(true)
}

func (t Theme) selectedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Selected).Bold(true)
}

func (t Theme) detailStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Detail)
}

func (t Theme) hintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Hint).Italic(true)
}

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Browse the catalog interactively",
	Long: `Browse the catalog in an interactive size-sorted view. Each object shows
its position on a log scale between the smallest and largest entries.

Keys: up/down or j/k to move, / to filter, esc to clear, q to quit.`,
	RunE: runExplore,
}

func runExplore(cmd *cobra.Command, args []string) error {
	all := engine.List()
	if len(all) == 0 {
		return fmt.Errorf("catalog is empty")
	}

	p := tea.NewProgram(newExploreModel(all))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("explore UI error: %w", err)
	}
	return nil
}

// exploreModel is the bubbletea model for the catalog browser.
type exploreModel struct {
	all      []scale.Summary // size-ascending
	filtered []scale.Summary
	cursor   int
	filter   string
	typing   bool
	bar      progress.Model
	theme    Theme
	logMin   float64
	logMax   float64
}

func newExploreModel(all []scale.Summary) exploreModel {
	sortBySize(all)

	bar := progress.New(
		progress.WithDefaultBlend(),
		progress.WithWidth(40),
	)

	m := exploreModel{
		all:    all,
		bar:    bar,
		theme:  defaultTheme,
		logMin: math.Log10(all[0].Meters),
		logMax: math.Log10(all[len(all)-1].Meters),
	}
	m.applyFilter()
	return m
}

func sortBySize(summaries []scale.Summary) {
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Meters < summaries[j].Meters
	})
}

// Init returns the initial command.
func (m exploreModel) Init() tea.Cmd {
	return m.bar.Init()
}

// Update handles messages and returns the updated model.
func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case progress.FrameMsg:
		var cmd tea.Cmd
		m.bar, cmd = m.bar.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m exploreModel) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.typing {
		switch key {
		case "enter":
			m.typing = false
		case "esc":
			m.typing = false
			m.filter = ""
			m.applyFilter()
		case "backspace":
			if len(m.filter) > 0 {
				m.filter = m.filter[:len(m.filter)-1]
				m.applyFilter()
			}
		default:
			if len(key) == 1 {
				m.filter += key
				m.applyFilter()
			}
		}
		return m, nil
	}

	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
	case "/":
		m.typing = true
	case "esc":
		m.filter = ""
		m.applyFilter()
	}
	return m, nil
}

func (m *exploreModel) applyFilter() {
	query := strings.ToLower(m.filter)
	m.filtered = m.filtered[:0]
	for _, s := range m.all {
		if query == "" ||
			strings.Contains(strings.ToLower(s.Name), query) ||
			strings.Contains(strings.ToLower(s.Description), query) {
			m.filtered = append(m.filtered, s)
		}
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
}

// View renders the browser.
func (m exploreModel) View() tea.View {
	return tea.NewView(m.renderContent())
}

func (m exploreModel) renderContent() string {
	var b strings.Builder

	b.WriteString(m.theme.titleStyle().Render("Magnitude Explorer"))
	b.WriteString(fmt.Sprintf("  %d objects", len(m.filtered)))
	b.WriteString("\n")

	if m.typing || m.filter != "" {
		b.WriteString(fmt.Sprintf("Filter: %s\n", m.filter))
	}
	b.WriteString("\n")

	if len(m.filtered) == 0 {
		b.WriteString("No matching objects.\n\n")
		b.WriteString(m.theme.hintStyle().Render("esc to clear the filter, q to quit"))
		b.WriteString("\n")
		return b.String()
	}

	start := m.cursor - visibleRows/2
	if start > len(m.filtered)-visibleRows {
		start = len(m.filtered) - visibleRows
	}
	if start < 0 {
		start = 0
	}
	end := start + visibleRows
	if end > len(m.filtered) {
		end = len(m.filtered)
	}

	for i := start; i < end; i++ {
		s := m.filtered[i]
		line := fmt.Sprintf("%s  %s", s.Formatted, s.Name)
		if i == m.cursor {
			b.WriteString(m.theme.selectedStyle().Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderDetail(m.filtered[m.cursor]))
	b.WriteString("\n")
	b.WriteString(m.theme.hintStyle().Render("up/down move · / filter · q quit"))
	b.WriteString("\n")

	return b.String()
}

// renderDetail shows the selected object with its log-scale position between
// the smallest and largest catalog entries.
func (m exploreModel) renderDetail(s scale.Summary) string {
	var b strings.Builder

	b.WriteString(m.theme.detailStyle().Render(fmt.Sprintf("%s · %s (%s scale)",
		s.Name, s.Formatted, scale.Group(s.Meters))))
	b.WriteString("\n")
	if s.Description != "" {
		b.WriteString(s.Description)
		b.WriteString("\n")
	}
	if len(s.Tags) > 0 {
		b.WriteString(m.theme.hintStyle().Render(fmt.Sprintf("Tags: %v", s.Tags)))
		b.WriteString("\n")
	}

	b.WriteString(m.bar.ViewAs(m.logPosition(s.Meters)))
	b.WriteString("\n")

	return b.String()
}

func (m exploreModel) logPosition(meters float64) float64 {
	if m.logMax == m.logMin || meters <= 0 {
		return 0
	}
	pct := (math.Log10(meters) - m.logMin) / (m.logMax - m.logMin)
	return math.Max(0, math.Min(1, pct))
}
