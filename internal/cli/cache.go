package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/valdigraph/pkg/cache"
)

func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the local render cache",
	}
	cmd.AddCommand(
		c.cacheMaintainCommand("clear", "Delete all cached renders", "Cleared %d cached entries", (*cache.FileCache).Clear),
		c.cacheMaintainCommand("prune", "Delete expired cached renders", "Pruned %d expired entries", (*cache.FileCache).Prune),
		c.cacheStatsCommand(),
		c.cachePathCommand(),
	)
	return cmd
}

// localCache opens the default file cache, or returns nil when it was never
// created.
func localCache() (*cache.FileCache, string, error) {
	dir, err := cache.DefaultDir()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, dir, nil
	}
	fc, err := cache.NewFileCache(dir)
	return fc, dir, err
}

func (c *CLI) cacheMaintainCommand(use, short, done string, op func(*cache.FileCache) (int, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fc, dir, err := localCache()
			if err != nil {
				return err
			}
			if fc == nil {
				printInfo(out, "Cache is empty")
				return nil
			}
			n, err := op(fc)
			if err != nil {
				return fmt.Errorf("%s cache: %w", use, err)
			}
			c.Logger.Debug("cache maintenance", "op", use, "entries", n, "dir", dir)
			printSuccess(out, done, n)
			printDetail(out, "Directory: %s", dir)
			return nil
		},
	}
}

func (c *CLI) cacheStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the size of the render cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fc, dir, err := localCache()
			if err != nil {
				return err
			}
			var st cache.Stats
			if fc != nil {
				if st, err = fc.Stats(); err != nil {
					return err
				}
			}
			printKeyValue(out, "Directory", dir)
			printKeyValue(out, "Entries", strconv.Itoa(st.Entries))
			printKeyValue(out, "Expired", strconv.Itoa(st.Expired))
			printKeyValue(out, "Size", formatBytes(st.Bytes))
			return nil
		},
	}
}

func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cache.DefaultDir()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
