package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/valdigraph/pkg/arc"
	"github.com/matzehuels/valdigraph/pkg/errors"
	"github.com/matzehuels/valdigraph/pkg/session"
)

var (
	listDimStyle   = lipgloss.NewStyle().Foreground(colorDim)
	statusOKStyle  = lipgloss.NewStyle().Foreground(colorGreen)
	statusErrStyle = lipgloss.NewStyle().Foreground(colorRed)
)

// =============================================================================
// ArcBrowserModel - Interactive arc browser
// =============================================================================

// ArcBrowserModel is the bubbletea model listing the arcs of a session.
// The selected arc can be inverted or deleted; w writes the document.
type ArcBrowserModel struct {
	Session *session.Session
	Arcs    []arc.Arc
	Cursor  int
	Offset  int
	Height  int
	Dirty   bool
	Status  string
	Failed  bool

	save func(*session.Session) (string, error)
}

// NewArcBrowserModel creates a browser over sess. save writes the document
// and returns the path written.
func NewArcBrowserModel(sess *session.Session, save func(*session.Session) (string, error)) ArcBrowserModel {
	return ArcBrowserModel{
		Session: sess,
		Arcs:    sess.Arcs(),
		Height:  15,
		save:    save,
	}
}

func (m ArcBrowserModel) Init() tea.Cmd {
	return nil
}

func (m ArcBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.move(-1)
		case "down", "j":
			m.move(1)
		case "h":
			m.Session.SetHide(!m.Session.Hide())
			m.reload()
			m.setStatus(nil, hideStatus(m.Session.Hide()))
		case "i":
			if a, ok := m.selected(); ok {
				err := m.Session.InvertEdge(a.Source, a.Target)
				m.afterEdit(err, fmt.Sprintf("inverted %s %s %s", a.Source, iconArrow, a.Target))
			}
		case "d":
			if a, ok := m.selected(); ok {
				err := m.Session.DeleteEdge(a.Source, a.Target)
				m.afterEdit(err, fmt.Sprintf("deleted %s %s %s", a.Source, iconArrow, a.Target))
			}
		case "w":
			path, err := m.save(m.Session)
			if err == nil {
				m.Dirty = false
			}
			m.setStatus(err, "wrote "+path)
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m *ArcBrowserModel) move(delta int) {
	next := m.Cursor + delta
	if next < 0 || next >= len(m.Arcs) {
		return
	}
	m.Cursor = next
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m ArcBrowserModel) selected() (arc.Arc, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.Arcs) {
		return arc.Arc{}, false
	}
	return m.Arcs[m.Cursor], true
}

func (m *ArcBrowserModel) afterEdit(err error, ok string) {
	if err == nil {
		m.Dirty = true
		m.reload()
	}
	m.setStatus(err, ok)
}

// reload refreshes the arc list and keeps the cursor in range.
func (m *ArcBrowserModel) reload() {
	m.Arcs = m.Session.Arcs()
	if m.Cursor >= len(m.Arcs) {
		m.Cursor = len(m.Arcs) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	if m.Offset > m.Cursor {
		m.Offset = m.Cursor
	}
}

func (m *ArcBrowserModel) setStatus(err error, ok string) {
	m.Failed = err != nil
	if err != nil {
		m.Status = errors.UserMessage(err)
		return
	}
	m.Status = ok
}

func hideStatus(hide bool) string {
	if hide {
		return "hiding arcs with a median endpoint"
	}
	return "showing all arcs"
}

func (m ArcBrowserModel) View() string {
	var b strings.Builder

	title := "Arcs"
	if m.Dirty {
		title += " (modified)"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  i invert  d delete  h hide  w write  q quit"))
	b.WriteString("\n\n")

	if len(m.Arcs) == 0 {
		b.WriteString(listDimStyle.Render("  no arcs to draw"))
	} else {
		b.WriteString(m.table())
	}
	b.WriteString("\n\n")

	if m.Status != "" {
		style := statusOKStyle
		if m.Failed {
			style = statusErrStyle
		}
		b.WriteString(style.Render("  " + m.Status))
		b.WriteString("\n")
	}
	if len(m.Arcs) > 0 {
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Arcs))))
	}
	return b.String()
}

func (m ArcBrowserModel) table() string {
	end := min(m.Offset+m.Height, len(m.Arcs))
	visible := m.Arcs[m.Offset:end]

	rows := make([][]string, len(visible))
	for i, a := range visible {
		cursor := "  "
		if m.Offset+i == m.Cursor {
			cursor = "▸ "
		}
		rows[i] = []string{cursor, a.Source, a.Target, a.Type.String(), a.ForwardText(), a.BackwardText()}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("", "Source", "Target", "Arc", "r(s,t)", "r(t,s)").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if row < 0 || row >= len(visible) {
				return lipgloss.NewStyle()
			}
			base := lipgloss.NewStyle()
			if col == 3 {
				base = arcStyle(visible[row].Type)
			}
			if m.Offset+row == m.Cursor {
				return base.Bold(true)
			}
			return base
		}).
		Render()
}

// =============================================================================
// Command
// =============================================================================

func (c *CLI) browseCommand() *cobra.Command {
	var flags saveFlags
	cmd := &cobra.Command{
		Use:   "browse <file>",
		Short: "Browse and edit the arcs of a document interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := c.open(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			save := func(s *session.Session) (string, error) {
				return c.save(cmd.OutOrStdout(), s, args[0], flags)
			}
			final, err := tea.NewProgram(NewArcBrowserModel(sess, save), tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}
			if m, ok := final.(ArcBrowserModel); ok && m.Dirty {
				printWarning(cmd.OutOrStdout(), "unsaved changes discarded")
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
