package session

import (
	"bytes"
	"context"

	sio "github.com/matzehuels/valdigraph/pkg/io"
	"github.com/matzehuels/valdigraph/pkg/store"
	"github.com/matzehuels/valdigraph/pkg/xmcda"
)

// Persist saves the session into st under name, in bundle form so the
// pairwise table survives.
func (s *Session) Persist(ctx context.Context, st store.Store, name string, meta xmcda.Metadata) error {
	if err := store.ValidateName(name); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := s.Save(&buf, sio.FormatBundle, meta); err != nil {
		return err
	}
	err := st.Put(ctx, store.Entry{
		Name:    name,
		Type:    string(s.typ),
		Actions: s.graph.Len(),
		Data:    buf.Bytes(),
	})
	if err != nil {
		return err
	}
	s.logger.Debug("snapshot stored", "id", s.ID, "name", name, "bytes", buf.Len())
	return nil
}

// Restore replaces the session content with the snapshot name from st.
// On failure the session is unchanged.
func (s *Session) Restore(ctx context.Context, st store.Store, name string) error {
	e, err := st.Get(ctx, name)
	if err != nil {
		return err
	}
	return s.Load(bytes.NewReader(e.Data))
}
