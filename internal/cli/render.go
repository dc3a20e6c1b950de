package cli

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/valdigraph/pkg/httputil"
	"github.com/matzehuels/valdigraph/pkg/pipeline"
	"github.com/matzehuels/valdigraph/pkg/render/nodelink"
)

// renderOpts holds the flags of the render command.
type renderOpts struct {
	output   string   // output file, or base path with several formats
	formats  []string // dot, svg, pdf, png
	hide     bool     // drop arcs with a median endpoint
	detailed bool     // names and comments in node labels
	labels   bool     // relation values at arc ends
	scale    float64  // PNG resolution factor
	refresh  bool     // re-render and overwrite cached artifacts
	cache    cacheFlags
}

func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts
	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Draw the arc diagram of a document",
		Long: `Render draws every classified pair as an arc with Graphviz. PDF and PNG
output need rsvg-convert on the PATH. Rendered artifacts are cached by the
content of the drawn view.`,
		Example: `  valdigraph render cars.xml
  valdigraph render cars.xml -o cars.png --labels --hide
  valdigraph render cars.xml -f svg,dot -o out/cars`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], opts)
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (several)")
	cmd.Flags().StringSliceVarP(&opts.formats, "format", "f", nil, "output format(s): svg (default), dot, pdf, png")
	cmd.Flags().BoolVar(&opts.hide, "hide", false, "hide arcs with a median endpoint")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show action names and comments")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "show relation values at the arc ends")
	cmd.Flags().Float64Var(&opts.scale, "scale", pipeline.DefaultScale, "PNG resolution factor")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached renders")
	opts.cache.register(cmd)
	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input string, opts renderOpts) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if len(opts.formats) == 0 {
		format := pipeline.DefaultFormat
		if opts.output != "" {
			format = nodelink.FormatFromPath(opts.output)
		}
		opts.formats = []string{format}
	}

	sess, err := c.open(ctx, input)
	if err != nil {
		return err
	}
	sess.SetHide(opts.hide)

	runner, err := c.newRunner(ctx, opts.cache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	spin := newSpinner(ctx, cmd.ErrOrStderr(), "Rendering diagram...").Start()
	res, err := runner.Execute(ctx, sess.View(), pipeline.Options{
		Formats:  opts.formats,
		Detailed: opts.detailed,
		Labels:   opts.labels,
		Scale:    opts.scale,
		Refresh:  opts.refresh,
	})
	spin.Stop()
	if err != nil {
		return err
	}
	prog.done("Rendered diagram")

	printSuccess(out, "Rendered %s", strings.Join(opts.formats, ", "))
	printStats(out, res.Stats.Actions, res.Stats.Arcs, res.CacheHit)
	for _, format := range opts.formats {
		path := outputPath(input, opts.output, format, len(opts.formats) > 1)
		if err := os.WriteFile(path, res.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(out, path)
	}
	return nil
}

// outputPath names the artifact of one format. With a single format an
// explicit output is used as is; otherwise the format becomes the extension
// of the output (or input) base path.
func outputPath(input, output, format string, multi bool) string {
	if output != "" && !multi {
		return output
	}
	base := output
	if base == "" {
		base = input
		if httputil.IsURL(input) {
			base = path.Base(strings.SplitN(input, "?", 2)[0])
		}
	}
	return strings.TrimSuffix(base, filepath.Ext(base)) + "." + format
}
