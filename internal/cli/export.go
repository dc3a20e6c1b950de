package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) exportCommand() *cobra.Command {
	var flags saveFlags
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write a document in another format or with a new header",
		Long: `Export re-encodes a document. XMCDA-2 output drops the pairwise comparison
table; the JSON bundle keeps it. Header fields come from --metadata (TOML or
YAML), then --author and --valuation, then the header of the input document.`,
		Example: `  valdigraph export cars.json -o cars.xml
  valdigraph export cars.xml -o - --valuation integer
  valdigraph export cars.xml -o cars.json --metadata header.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.output == "" && flags.format == "" {
				return fmt.Errorf("nothing to do: set --output or --format")
			}
			sess, err := c.open(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			path, err := c.save(cmd.OutOrStdout(), sess, args[0], flags)
			if err != nil {
				return err
			}
			if path != stdoutPath {
				printSuccess(cmd.OutOrStdout(), "Exported %d actions", sess.Digraph().Len())
				printFile(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
