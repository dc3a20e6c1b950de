package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/valdigraph/pkg/arc"
	"github.com/matzehuels/valdigraph/pkg/graph"
	"github.com/matzehuels/valdigraph/pkg/session"
	"github.com/matzehuels/valdigraph/pkg/valuation"
)

func (c *CLI) inspectCommand() *cobra.Command {
	var (
		hide    bool
		asJSON  bool
		actions bool
	)
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print the document header, actions and classified arcs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := c.open(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			sess.SetHide(hide)
			out := cmd.OutOrStdout()
			if asJSON {
				return graph.Write(out, sess.View())
			}
			printSummary(out, sess)
			if actions {
				fmt.Fprintln(out)
				fmt.Fprintln(out, actionTable(sess))
			}
			arcs := sess.Arcs()
			fmt.Fprintln(out)
			if len(arcs) == 0 {
				printInfo(out, "No arcs to draw")
				return nil
			}
			fmt.Fprintln(out, arcTable(arcs))
			return nil
		},
	}
	cmd.Flags().BoolVar(&hide, "hide", false, "hide arcs with a median endpoint")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the renderer view as JSON")
	cmd.Flags().BoolVar(&actions, "actions", false, "also list the actions")
	return cmd
}

func printSummary(w io.Writer, sess *session.Session) {
	g := sess.Digraph()
	d := g.Domain()
	p := sess.Project()

	fmt.Fprintln(w, StyleTitle.Render(displayName(p.Name, p.ID)))
	printKeyValue(w, "type", string(sess.Type()))
	printKeyValue(w, "domain", fmt.Sprintf("[%s, %s] med %s",
		valuation.Format(d.Min), valuation.Format(d.Max), valuation.Format(d.Med)))
	printKeyValue(w, "actions", strconv.Itoa(g.Len()))
	if p.Author != "" {
		printKeyValue(w, "author", p.Author)
	}
	if sess.Pairwise() != nil {
		printKeyValue(w, "pairwise", "yes")
	}
	counts := arc.Counts(g)
	drawn := 0
	for t, n := range counts {
		if t.Drawn() {
			drawn += n
		}
	}
	printKeyValue(w, "arcs", strconv.Itoa(drawn))
}

func displayName(name, id string) string {
	switch {
	case name != "":
		return name
	case id != "":
		return id
	}
	return "untitled"
}

func actionTable(sess *session.Session) string {
	var rows [][]string
	for _, a := range sess.Digraph().Actions() {
		rows = append(rows, []string{a.ID, a.Name, a.Comment})
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("ID", "Name", "Comment").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			return lipgloss.NewStyle()
		}).
		Render()
}

func arcTable(arcs []arc.Arc) string {
	rows := make([][]string, len(arcs))
	for i, a := range arcs {
		rows[i] = []string{a.Source, a.Target, a.Type.String(), a.ForwardText(), a.BackwardText()}
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("Source", "Target", "Arc", "r(s,t)", "r(t,s)").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if col == 2 && row >= 0 && row < len(arcs) {
				return arcStyle(arcs[row].Type)
			}
			return lipgloss.NewStyle()
		}).
		Render()
}
