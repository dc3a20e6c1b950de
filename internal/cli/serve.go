package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/valdigraph/internal/server"
	"github.com/matzehuels/valdigraph/pkg/session"
	"github.com/matzehuels/valdigraph/pkg/store"
	"github.com/matzehuels/valdigraph/pkg/valuation"
)

const shutdownTimeout = 10 * time.Second

func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		origins   []string
		snapshots bool
		cf        cacheFlags
		sf        storeFlags
	)
	cmd := &cobra.Command{
		Use:   "serve [file]",
		Short: "Serve one editing session over HTTP",
		Long: `Serve exposes a session to browser renderers. It starts from the given
document, or from an empty general graph on [0, 1]. Edits live in memory;
fetch /api/document or save a snapshot to keep them.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var sess *session.Session
			var err error
			if len(args) == 1 {
				sess, err = c.open(ctx, args[0])
			} else {
				sess, err = session.New(valuation.DefaultMin, valuation.DefaultMax, session.WithLogger(c.Logger))
			}
			if err != nil {
				return err
			}

			runner, err := c.newRunner(ctx, cf)
			if err != nil {
				return err
			}
			defer runner.Close()

			opts := []server.Option{
				server.WithLogger(c.Logger),
				server.WithAllowedOrigins(origins...),
				server.WithRunner(runner),
			}
			if snapshots || sf.mongoURI != "" || sf.dir != "" {
				var st store.Store
				if st, err = c.openStore(ctx, sf); err != nil {
					return err
				}
				defer st.Close()
				opts = append(opts, server.WithStore(st))
			}

			srv := &http.Server{
				Addr:              addr,
				Handler:           server.New(sess, opts...).Handler(),
				ReadHeaderTimeout: 10 * time.Second,
			}
			return c.listen(ctx, srv)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "localhost:8080", "listen address")
	cmd.Flags().StringSliceVar(&origins, "origin", nil, "allowed CORS origin (repeatable, default localhost)")
	cmd.Flags().BoolVar(&snapshots, "snapshots", false, "enable the snapshot endpoints with the default store")
	cf.register(cmd)
	sf.register(cmd.Flags())
	return cmd
}

// listen serves until ctx is cancelled, then shuts down gracefully.
func (c *CLI) listen(ctx context.Context, srv *http.Server) error {
	errc := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", "http://"+srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return ctx.Err()
}
