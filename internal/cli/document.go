package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/valdigraph/pkg/errors"
	"github.com/matzehuels/valdigraph/pkg/httputil"
	sio "github.com/matzehuels/valdigraph/pkg/io"
	"github.com/matzehuels/valdigraph/pkg/session"
	"github.com/matzehuels/valdigraph/pkg/xmcda"
)

// stdoutPath as --output writes the document to standard output.
const stdoutPath = "-"

// saveFlags control where and how a document is written.
type saveFlags struct {
	output    string // target path; empty rewrites the input
	format    string // xml or bundle; empty infers from the target path
	metadata  string // TOML or YAML file with header fields
	author    string
	valuation string
}

func (f *saveFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", `output file, "-" for stdout (default: rewrite the input)`)
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "document format: xml, bundle (default: from file extension)")
	cmd.Flags().StringVar(&f.metadata, "metadata", "", "TOML or YAML file with document header fields")
	cmd.Flags().StringVar(&f.author, "author", "", "author written to the document header")
	cmd.Flags().StringVar(&f.valuation, "valuation", "", "valuation type: standard, integer")
}

// meta returns the header overrides: the metadata file first, then the
// individual flags on top.
func (f *saveFlags) meta() (xmcda.Metadata, error) {
	var m xmcda.Metadata
	if f.metadata != "" {
		var err error
		if m, err = xmcda.LoadMetadata(f.metadata); err != nil {
			return xmcda.Metadata{}, err
		}
	}
	if f.author != "" {
		m.Author = f.author
	}
	if f.valuation != "" {
		m.ValuationType = f.valuation
	}
	return m, nil
}

// target resolves the output path and format for a document read from input.
func (f *saveFlags) target(input string) (string, sio.Format, error) {
	path := f.output
	if path == "" {
		if httputil.IsURL(input) {
			return "", "", errors.New(errors.ErrCodeInvalidInput, "cannot rewrite remote document %s; pass --output", input)
		}
		path = input
	}
	if f.format != "" {
		format, err := sio.ParseFormat(f.format)
		return path, format, err
	}
	if path == stdoutPath {
		return path, sio.FormatFromPath(input), nil
	}
	return path, sio.FormatFromPath(path), nil
}

// open loads the document at path, a file or an http(s) URL, into a new
// session.
func (c *CLI) open(ctx context.Context, path string) (*session.Session, error) {
	if !httputil.IsURL(path) {
		sess, err := session.Open(path, session.WithLogger(c.Logger))
		if err != nil {
			return nil, err
		}
		c.Logger.Debug("opened document", "path", path, "type", sess.Type(), "actions", sess.Digraph().Len())
		return sess, nil
	}

	data, err := httputil.Fetch(ctx, nil, path)
	if err != nil {
		return nil, err
	}
	l, err := sio.Read(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	sess := session.FromDocument(l, session.WithLogger(c.Logger))
	c.Logger.Debug("fetched document", "url", path, "bytes", len(data), "type", sess.Type(), "actions", sess.Digraph().Len())
	return sess, nil
}

// save writes sess according to f and returns the path written. The target
// is only touched once the document encoded without error.
func (c *CLI) save(stdout io.Writer, sess *session.Session, input string, f saveFlags) (string, error) {
	path, format, err := f.target(input)
	if err != nil {
		return "", err
	}
	meta, err := f.meta()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := sess.Save(&buf, format, meta); err != nil {
		return "", err
	}
	if path == stdoutPath {
		_, err := stdout.Write(buf.Bytes())
		return path, err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	c.Logger.Debug("saved document", "path", path, "format", format, "bytes", buf.Len())
	return path, nil
}

// editCommand builds a command that opens args[0], applies one edit and
// saves the result.
func (c *CLI) editCommand(use, short string, nargs int, apply func(sess *session.Session, args []string) (string, error)) *cobra.Command {
	var flags saveFlags
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(nargs),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := c.open(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			msg, err := apply(sess, args[1:])
			if err != nil {
				return err
			}
			path, err := c.save(cmd.OutOrStdout(), sess, args[0], flags)
			if err != nil {
				return err
			}
			if path != stdoutPath {
				printSuccess(cmd.OutOrStdout(), "%s", msg)
				printFile(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
