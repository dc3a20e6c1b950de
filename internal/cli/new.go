package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/valdigraph/pkg/errors"
	"github.com/matzehuels/valdigraph/pkg/session"
	"github.com/matzehuels/valdigraph/pkg/valuation"
)

func (c *CLI) newCommand() *cobra.Command {
	var (
		flags   saveFlags
		lo      float64
		hi      float64
		actions []string
		force   bool
	)
	cmd := &cobra.Command{
		Use:   "new <file>",
		Short: "Create an empty general graph",
		Long: `Create a general graph with the given valuation domain and optional actions.
The file is written as a JSON bundle when it ends in .json, as XMCDA-2 otherwise.`,
		Example: `  valdigraph new cars.xml --actions a1,a2,a3
  valdigraph new votes.json --min -1 --max 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if flags.output == "" && !force {
				if _, err := os.Stat(path); err == nil {
					return errors.New(errors.ErrCodeInvalidInput, "%s already exists (use --force to overwrite)", path)
				}
			}

			sess, err := session.New(lo, hi, session.WithLogger(c.Logger))
			if err != nil {
				return err
			}
			for _, id := range actions {
				if err := sess.AddNode(strings.TrimSpace(id), "", ""); err != nil {
					return err
				}
			}
			out, err := c.save(cmd.OutOrStdout(), sess, path, flags)
			if err != nil {
				return err
			}
			if out != stdoutPath {
				d := sess.Digraph().Domain()
				printSuccess(cmd.OutOrStdout(), "Created graph with %d actions on [%s, %s]", sess.Digraph().Len(),
					valuation.Format(d.Min), valuation.Format(d.Max))
				printFile(cmd.OutOrStdout(), out)
				printNextStep(cmd.OutOrStdout(), "Connect two actions", "valdigraph edge connect "+out+" <a> <b>")
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&lo, "min", valuation.DefaultMin, "valuation minimum")
	cmd.Flags().Float64Var(&hi, "max", valuation.DefaultMax, "valuation maximum")
	cmd.Flags().StringSliceVar(&actions, "actions", nil, "action ids to add (comma-separated)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	flags.register(cmd)
	return cmd
}
