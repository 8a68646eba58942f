// Package tui contains the interactive browser over the project layout.
package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"labkit/internal/layout"
)

var (
	appStyle = lipgloss.NewStyle().
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#7C3AED")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10B981"))

	missingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B")).
			Italic(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

type entry struct {
	name    string
	path    string
	exists  bool
	entries int
}

// Browser is the bubbletea model listing the layout directories with
// their on-disk status.
type Browser struct {
	reg     *layout.Registry
	entries []entry
	cursor  int
	width   int
	height  int
}

// NewBrowser creates a browser over a validated registry.
func NewBrowser(reg *layout.Registry) *Browser {
	b := &Browser{reg: reg}
	b.reload()
	return b
}

func (b *Browser) reload() {
	b.entries = b.entries[:0]
	for _, name := range b.reg.Names() {
		path, err := b.reg.Get(name)
		if err != nil {
			continue
		}
		e := entry{name: name, path: path}
		if items, err := os.ReadDir(path); err == nil {
			e.exists = true
			e.entries = len(items)
		}
		b.entries = append(b.entries, e)
	}
}

// Init initializes the model
func (b *Browser) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser
func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return b, tea.Quit
		case "up", "k":
			if b.cursor > 0 {
				b.cursor--
			}
		case "down", "j":
			if b.cursor < len(b.entries)-1 {
				b.cursor++
			}
		case "r":
			b.reload()
		}
	}
	return b, nil
}

// View renders the browser
func (b *Browser) View() string {
	s := titleStyle.Render("Project layout: "+b.reg.Root()) + "\n"

	for i, e := range b.entries {
		status := "missing"
		if e.exists {
			status = fmt.Sprintf("%d entries", e.entries)
		}

		line := fmt.Sprintf("%-10s %-40s %s", e.name, e.path, status)
		if i == b.cursor {
			// Selected rows take the highlight style whole; nested
			// styles would break the background run.
			s += selectedStyle.Render("> "+line) + "\n"
			continue
		}

		styled := missingStyle.Render(status)
		if e.exists {
			styled = okStyle.Render(status)
		}
		s += fmt.Sprintf("  %-10s %-40s %s\n", e.name, e.path, styled)
	}

	s += "\n" + helpStyle.Render("↑/↓ move · r refresh · q quit")
	return appStyle.Render(s)
}
