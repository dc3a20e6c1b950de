package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/valdigraph/pkg/session"
)

func (c *CLI) nodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "node",
		Short: "Add, edit or delete actions",
	}
	cmd.AddCommand(c.nodeAddCommand())
	cmd.AddCommand(c.nodeEditCommand())
	cmd.AddCommand(c.nodeDeleteCommand())
	return cmd
}

func (c *CLI) nodeAddCommand() *cobra.Command {
	var name, comment string
	cmd := c.editCommand("add <file> <id>", "Add an action to a general graph", 2,
		func(sess *session.Session, args []string) (string, error) {
			if err := sess.AddNode(args[0], name, comment); err != nil {
				return "", err
			}
			return fmt.Sprintf("Added action %s", args[0]), nil
		})
	cmd.Flags().StringVar(&name, "name", "", "display name (default: the id)")
	cmd.Flags().StringVar(&comment, "comment", "", "free-text comment")
	return cmd
}

func (c *CLI) nodeEditCommand() *cobra.Command {
	var name, comment string
	cmd := c.editCommand("edit <file> <id>", "Change the name or comment of an action", 2,
		func(sess *session.Session, args []string) (string, error) {
			if err := sess.EditNode(args[0], name, comment); err != nil {
				return "", err
			}
			return fmt.Sprintf("Updated action %s", args[0]), nil
		})
	cmd.Flags().StringVar(&name, "name", "", "new display name (empty keeps the current one)")
	cmd.Flags().StringVar(&comment, "comment", "", "new comment (empty keeps the current one)")
	return cmd
}

func (c *CLI) nodeDeleteCommand() *cobra.Command {
	return c.editCommand("delete <file> <id>", "Delete an action and its relation entries", 2,
		func(sess *session.Session, args []string) (string, error) {
			if err := sess.DeleteNode(args[0]); err != nil {
				return "", err
			}
			return fmt.Sprintf("Deleted action %s", args[0]), nil
		})
}
