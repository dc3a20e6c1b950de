package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/valdigraph/pkg/errors"
	"github.com/matzehuels/valdigraph/pkg/session"
)

func (c *CLI) edgeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edge",
		Short: "Connect, edit, invert or delete relation pairs",
	}
	cmd.AddCommand(c.edgeConnectCommand())
	cmd.AddCommand(c.edgeEditCommand())
	cmd.AddCommand(c.edgeDeleteCommand())
	cmd.AddCommand(c.edgeInvertCommand())
	cmd.AddCommand(c.edgeInspectCommand())
	return cmd
}

func (c *CLI) edgeConnectCommand() *cobra.Command {
	return c.editCommand("connect <file> <a> <b>", "Mark a pair as pending so it gets drawn before it has values", 3,
		func(sess *session.Session, args []string) (string, error) {
			if err := sess.ConnectEdge(args[0], args[1]); err != nil {
				return "", err
			}
			return fmt.Sprintf("Connected %s %s %s", args[0], iconArrow, args[1]), nil
		})
}

func (c *CLI) edgeEditCommand() *cobra.Command {
	cmd := c.editCommand("edit <file> <a> <b> <forward> <backward>", "Set r(a,b) and r(b,a)", 5,
		func(sess *session.Session, args []string) (string, error) {
			fwd, err := parseValue("forward", args[2])
			if err != nil {
				return "", err
			}
			bwd, err := parseValue("backward", args[3])
			if err != nil {
				return "", err
			}
			if err := sess.EditEdge(args[0], args[1], fwd, bwd); err != nil {
				return "", err
			}
			d := sess.Digraph()
			return fmt.Sprintf("Set %s %s %s to %s / %s", args[0], iconArrow, args[1],
				d.Value(args[0], args[1]), d.Value(args[1], args[0])), nil
		})
	cmd.Example = "  valdigraph edge edit cars.xml a1 a2 0.8 0.2"
	return cmd
}

func (c *CLI) edgeDeleteCommand() *cobra.Command {
	cmd := c.editCommand("delete <file> <a> <b>", "Clear both directions of a pair", 3,
		func(sess *session.Session, args []string) (string, error) {
			if err := sess.DeleteEdge(args[0], args[1]); err != nil {
				return "", err
			}
			return fmt.Sprintf("Deleted %s %s %s", args[0], iconArrow, args[1]), nil
		})
	cmd.Long = `Delete clears r(a,b) and r(b,a). Documents store every pair, so the
saved file records a cleared pair as the median, which reloads as a
symmetric-neutral arc.`
	return cmd
}

func (c *CLI) edgeInvertCommand() *cobra.Command {
	return c.editCommand("invert <file> <a> <b>", "Mirror both directions of a pair across the median", 3,
		func(sess *session.Session, args []string) (string, error) {
			if err := sess.InvertEdge(args[0], args[1]); err != nil {
				return "", err
			}
			return fmt.Sprintf("Inverted %s %s %s", args[0], iconArrow, args[1]), nil
		})
}

func (c *CLI) edgeInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file> <a> <b>",
		Short: "Print the pairwise comparison records behind a pair",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := c.open(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			comp, err := sess.InspectEdge(args[1], args[2])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(comp)
		},
	}
}

func parseValue(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "%s value %q is not a number", name, s)
	}
	return v, nil
}
