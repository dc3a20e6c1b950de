package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/valdigraph/pkg/session"
	"github.com/matzehuels/valdigraph/pkg/store"
	"github.com/matzehuels/valdigraph/pkg/xmcda"
)

func (c *CLI) snapshotCommand() *cobra.Command {
	var sf storeFlags
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Keep named copies of documents in a file or MongoDB store",
	}
	sf.register(cmd.PersistentFlags())

	withStore := func(ctx context.Context, fn func(store.Store) error) error {
		st, err := c.openStore(ctx, sf)
		if err != nil {
			return err
		}
		defer st.Close()
		return fn(st)
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "save <file> <name>",
		Short: "Store a document under a name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := c.open(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return withStore(cmd.Context(), func(st store.Store) error {
				if err := sess.Persist(cmd.Context(), st, args[1], xmcda.Metadata{}); err != nil {
					return err
				}
				printSuccess(cmd.OutOrStdout(), "Stored %s as %s", args[0], args[1])
				return nil
			})
		},
	})

	var restore saveFlags
	openCmd := &cobra.Command{
		Use:   "open <name> <file>",
		Short: "Write a stored snapshot to a document file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := session.New(0, 1, session.WithLogger(c.Logger))
			if err != nil {
				return err
			}
			return withStore(cmd.Context(), func(st store.Store) error {
				if err := sess.Restore(cmd.Context(), st, args[0]); err != nil {
					return err
				}
				path, err := c.save(cmd.OutOrStdout(), sess, args[1], restore)
				if err != nil {
					return err
				}
				if path != stdoutPath {
					printSuccess(cmd.OutOrStdout(), "Restored %s", args[0])
					printFile(cmd.OutOrStdout(), path)
				}
				return nil
			})
		},
	}
	restore.register(openCmd)
	cmd.AddCommand(openCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List stored snapshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), func(st store.Store) error {
				list, err := st.List(cmd.Context())
				if err != nil {
					return err
				}
				if len(list) == 0 {
					printInfo(cmd.OutOrStdout(), "No snapshots")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), snapshotTable(list))
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a stored snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), func(st store.Store) error {
				if err := st.Delete(cmd.Context(), args[0]); err != nil {
					return err
				}
				printSuccess(cmd.OutOrStdout(), "Deleted snapshot %s", args[0])
				return nil
			})
		},
	})

	return cmd
}

func snapshotTable(list []store.Entry) string {
	rows := make([][]string, len(list))
	for i, e := range list {
		rows[i] = []string{e.Name, e.Type, fmt.Sprint(e.Actions), e.UpdatedAt.Local().Format(time.DateTime)}
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("Name", "Type", "Actions", "Updated").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			return lipgloss.NewStyle()
		}).
		Render()
}
