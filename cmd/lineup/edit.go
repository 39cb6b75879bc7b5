package main

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/milk9111/battingorder/lineup"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the batting order interactively",
	Long: `Keys:
  up/down, k/j   select a row
  K/J, shift+up/down   move the selected player
  r   shuffle    s   save    d   discard (reset)    q   quit`,
	Args: cobra.NoArgs,
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd.Context(), 0)
	if err != nil {
		return err
	}
	defer s.Close()

	p := tea.NewProgram(newEditModel(cmd.Context(), s.manager),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	_, err = p.Run()
	return err
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	rowStyle      = lipgloss.NewStyle().PaddingLeft(2)
	selectedStyle = lipgloss.NewStyle().PaddingLeft(1).Bold(true).Foreground(lipgloss.Color("11"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

type editModel struct {
	ctx      context.Context
	manager  *lineup.Manager
	selected int
	status   string
	err      error
}

func newEditModel(ctx context.Context, m *lineup.Manager) editModel {
	return editModel{ctx: ctx, manager: m}
}

func (m editModel) Init() tea.Cmd {
	return nil
}

func (m editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.status = ""
	m.err = nil
	last := m.manager.Current().Len() - 1

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < last {
			m.selected++
		}
	case "shift+up", "K":
		if m.manager.MoveUp(m.selected) {
			m.selected--
		}
	case "shift+down", "J":
		if m.manager.MoveDown(m.selected) {
			m.selected++
		}
	case "r":
		m.err = m.manager.Shuffle()
	case "s":
		if m.err = m.manager.Save(m.ctx); m.err == nil {
			m.status = "Layout Saved"
		}
	case "d":
		if m.err = m.manager.Discard(m.ctx); m.err == nil {
			m.status = "Order Reset"
			m.selected = 0
		}
	}
	return m, nil
}

func (m editModel) View() string {
	var sb strings.Builder

	title := "Batting order"
	if m.manager.Dirty() {
		title += " *"
	}
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n\n")

	cur := m.manager.Current()
	for i := 0; i < cur.Len(); i++ {
		p, _ := m.manager.PlayerAt(i)
		line := fmt.Sprintf("%2d. %-12s %s", i+1, p.DisplayName, p.ID)
		if i == m.selected {
			sb.WriteString(selectedStyle.Render(">" + line))
		} else {
			sb.WriteString(rowStyle.Render(line))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	switch {
	case m.err != nil:
		sb.WriteString(errorStyle.Render(m.err.Error()))
	case m.status != "":
		sb.WriteString(statusStyle.Render(m.status))
	}
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("↑/↓ select · shift+↑/↓ move · r shuffle · s save · d reset · q quit"))
	sb.WriteString("\n")
	return sb.String()
}
