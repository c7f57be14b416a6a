// Package tui provides a Bubble Tea terminal user interface for the
// passband checker.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/astrophot/passband/internal/passband"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	letterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// maxHistory bounds the lookup log shown under the input.
const maxHistory = 8

// lookup is one past parse attempt and its outcome.
type lookup struct {
	input string
	pb    passband.Passband
	err   error
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	textInput   textinput.Model
	catalog     *passband.Catalog
	history     []lookup
	showCatalog bool

	width  int
	height int
}

// NewModel creates a new TUI model over the given catalog.
func NewModel(catalog *passband.Catalog) Model {
	ti := textinput.New()
	ti.Placeholder = `filter name, e.g. "Johnson V" or "V (Cousins)"`
	ti.Focus()
	ti.CharLimit = 80
	ti.Width = 50

	return Model{
		textInput: ti,
		catalog:   catalog,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			input := strings.TrimSpace(m.textInput.Value())
			if input == "" {
				return m, nil
			}
			pb, err := m.catalog.Parse(input)
			m.history = append(m.history, lookup{input: input, pb: pb, err: err})
			if len(m.history) > maxHistory {
				m.history = m.history[len(m.history)-maxHistory:]
			}
			m.textInput.SetValue("")
			return m, nil

		case "tab":
			m.showCatalog = !m.showCatalog
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🔭 Passband Checker"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Resolve photometric filter names to canonical passbands"))
	b.WriteString("\n\n")

	b.WriteString(subtitleStyle.Render("Filter name:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	if m.showCatalog {
		b.WriteString(m.viewCatalog())
	} else {
		b.WriteString(m.viewHistory())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("enter: check • tab: toggle catalog • esc: quit"))

	return b.String()
}

func (m Model) viewHistory() string {
	if len(m.history) == 0 {
		return dimStyle.Render("No lookups yet.") + "\n"
	}

	var b strings.Builder
	// Most recent first.
	for i := len(m.history) - 1; i >= 0; i-- {
		l := m.history[i]
		if l.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("✗ %q: %v", l.input, l.err)))
		} else {
			system := "no system"
			if l.pb.System.Identified() {
				system = string(l.pb.System)
			}
			b.WriteString(successStyle.Render(fmt.Sprintf("✓ %q", l.input)))
			b.WriteString(dimStyle.Render(" → "))
			b.WriteString(letterStyle.Render(l.pb.Letter))
			b.WriteString(dimStyle.Render(fmt.Sprintf(" (%s, %d nm)", system, l.pb.Wavelength)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewCatalog() string {
	var b strings.Builder

	for _, pb := range m.catalog.All() {
		var systems []string
		for _, system := range m.catalog.Systems() {
			letters, _ := m.catalog.SystemLetters(system)
			if strings.Contains(letters, pb.Letter) {
				systems = append(systems, string(system))
			}
		}
		b.WriteString(fmt.Sprintf("%s  %s  %s\n",
			letterStyle.Render(pb.Letter),
			dimStyle.Render(fmt.Sprintf("%6d nm", pb.Wavelength)),
			strings.Join(systems, ", ")))
	}

	return boxStyle.Render(strings.TrimRight(b.String(), "\n")) + "\n"
}

// Run starts the TUI over the given catalog.
func Run(catalog *passband.Catalog) error {
	p := tea.NewProgram(NewModel(catalog), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
