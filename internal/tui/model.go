// Package tui provides an interactive terminal browser for pathway
// resolution: type a description, see the ranked pathways.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ernestocullari/audience-pathways/internal/cli"
	"github.com/ernestocullari/audience-pathways/internal/model"
	"github.com/ernestocullari/audience-pathways/internal/service"
)

// resolveTimeout bounds one fetch-and-resolve round trip.
const resolveTimeout = 30 * time.Second

// resultMsg carries a finished resolution back into the update loop.
type resultMsg struct {
	result *model.ResolutionResult
	err    error
}

// Model is the bubbletea model for interactive resolution.
type Model struct {
	fetcher   service.DatasetFetcher
	resolver  service.Resolver
	input     textinput.Model
	result    *model.ResolutionResult
	err       error
	sheetName string
	resolving bool
	quitting  bool
}

// NewModel creates the interactive resolution model.
func NewModel(fetcher service.DatasetFetcher, resolver service.Resolver, sheetName string) Model {
	input := textinput.New()
	input.Placeholder = "Describe your target audience..."
	input.Focus()
	input.CharLimit = 200
	input.Width = 60

	return Model{
		fetcher:   fetcher,
		resolver:  resolver,
		sheetName: sheetName,
		input:     input,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			query := strings.TrimSpace(m.input.Value())
			if query == "" || m.resolving {
				return m, nil
			}
			m.resolving = true
			m.err = nil
			m.result = nil
			return m, m.resolveCmd(query)
		}

	case resultMsg:
		m.resolving = false
		m.result = msg.result
		m.err = msg.err
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(cli.FormatTitle("Audience Pathways"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.resolving:
		b.WriteString(cli.SubtleStyle.Render("Searching taxonomy..."))
	case m.err != nil:
		b.WriteString(cli.FormatError(m.err.Error()))
	case m.result != nil:
		b.WriteString(cli.FormatResolution(m.result))
	}

	b.WriteString("\n")
	b.WriteString(cli.SubtleStyle.Render("enter: resolve · esc: quit"))
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// resolveCmd fetches the taxonomy and resolves the query off the update loop.
func (m Model) resolveCmd(query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), resolveTimeout)
		defer cancel()

		dataset, err := m.fetcher.Fetch(ctx, m.sheetName)
		if err != nil {
			return resultMsg{err: fmt.Errorf("fetching taxonomy: %w", err)}
		}

		result := m.resolver.Resolve(query, dataset)
		return resultMsg{result: &result}
	}
}

// Run starts the interactive session and blocks until it exits.
func Run(fetcher service.DatasetFetcher, resolver service.Resolver, sheetName string) error {
	program := tea.NewProgram(NewModel(fetcher, resolver, sheetName))
	_, err := program.Run()
	return err
}
