package session

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/valdigraph/pkg/arc"
	"github.com/matzehuels/valdigraph/pkg/digraph"
	"github.com/matzehuels/valdigraph/pkg/errors"
	"github.com/matzehuels/valdigraph/pkg/graph"
	sio "github.com/matzehuels/valdigraph/pkg/io"
	"github.com/matzehuels/valdigraph/pkg/observability"
	"github.com/matzehuels/valdigraph/pkg/xmcda"
)

// Session is an editable valued digraph.
type Session struct {
	ID string

	graph    *digraph.Digraph
	typ      digraph.GraphType
	pairwise sio.PairwiseTable
	project  xmcda.Project
	hide     bool
	view     graph.Graph
	logger   *log.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

func newSession(g *digraph.Digraph, opts []Option) *Session {
	s := &Session{
		ID:     uuid.NewString(),
		graph:  g,
		typ:    digraph.General,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// New starts a session on an empty general graph with domain [min, max].
// It fails with INVALID_INPUT unless min < max.
func New(min, max float64, opts ...Option) (*Session, error) {
	g, err := digraph.NewWithBounds(min, max)
	if err != nil {
		return nil, err
	}
	s := newSession(g, opts)
	s.refresh()
	return s, nil
}

// FromDocument starts a session on a loaded document.
func FromDocument(l *sio.Loaded, opts ...Option) *Session {
	s := newSession(l.Document.Graph, opts)
	s.install(l)
	return s
}

// Open starts a session on the document at path.
func Open(path string, opts ...Option) (*Session, error) {
	l, err := sio.Import(path)
	if err != nil {
		return nil, err
	}
	return FromDocument(l, opts...), nil
}

// Digraph returns the session's digraph. Callers must not modify it; use the
// edit operations instead.
func (s *Session) Digraph() *digraph.Digraph { return s.graph }

// Type returns the graph type.
func (s *Session) Type() digraph.GraphType { return s.typ }

// Pairwise returns the pairwise comparison table, nil for general graphs.
func (s *Session) Pairwise() sio.PairwiseTable { return s.pairwise }

// Project returns the header of the last loaded document.
func (s *Session) Project() xmcda.Project { return s.project }

// Hide reports whether suppressible arcs are hidden.
func (s *Session) Hide() bool { return s.hide }

// SetHide toggles suppressible arcs and reclassifies.
func (s *Session) SetHide(hide bool) {
	s.hide = hide
	s.refresh()
}

// View returns the renderer view computed by the last operation.
func (s *Session) View() graph.Graph { return s.view }

// Arcs returns the drawable arcs under the current hide flag.
func (s *Session) Arcs() []arc.Arc { return arc.Compute(s.graph, s.hide) }

// Reset replaces the session with an empty general graph on [min, max].
// Actions, relation and pairwise table are discarded and hide is cleared.
// The session is unchanged if the bounds are rejected.
func (s *Session) Reset(min, max float64) error {
	g, err := digraph.NewWithBounds(min, max)
	if err != nil {
		return err
	}
	s.graph = g
	s.typ = digraph.General
	s.pairwise = nil
	s.project = xmcda.Project{}
	s.hide = false
	s.refresh()
	s.logger.Debug("session reset", "id", s.ID, "min", min, "max", max)
	return nil
}

// Load replaces the session content with the document read from r, either a
// bundle or a bare XMCDA-2 document. The hide flag is kept. On failure the
// session is unchanged.
func (s *Session) Load(r io.Reader) error {
	start := time.Now()
	l, err := sio.Read(r)
	if err != nil {
		observability.Edit().OnLoad("", 0, time.Since(start), err)
		return err
	}
	s.install(l)
	observability.Edit().OnLoad(string(l.Format), s.graph.Len(), time.Since(start), nil)
	s.logger.Debug("document loaded", "id", s.ID, "format", l.Format, "type", s.typ, "actions", s.graph.Len())
	return nil
}

func (s *Session) install(l *sio.Loaded) {
	s.graph = l.Document.Graph
	s.typ = l.Document.Type
	s.pairwise = l.Pairwise
	s.project = l.Document.Project
	s.refresh()
}

// Metadata returns the export header for this session: fields set in
// override win, then the loaded document's own header, then the defaults.
func (s *Session) Metadata(override xmcda.Metadata) xmcda.Metadata {
	base := xmcda.MetadataFromProject(s.project)
	pick := func(v, fallback string) string {
		if v != "" {
			return v
		}
		return fallback
	}
	return xmcda.Metadata{
		FileName:      pick(override.FileName, base.FileName),
		Name:          pick(override.Name, base.Name),
		RelationName:  pick(override.RelationName, base.RelationName),
		RelationType:  override.RelationType,
		Category:      override.Category,
		Subcategory:   override.Subcategory,
		Author:        pick(override.Author, base.Author),
		Reference:     pick(override.Reference, base.Reference),
		ValuationType: override.ValuationType,
	}.WithDefaults()
}

// Snapshot returns what [sio.Write] needs to save the session.
func (s *Session) Snapshot(meta xmcda.Metadata) sio.Snapshot {
	return sio.Snapshot{Graph: s.graph, Pairwise: s.pairwise, Metadata: s.Metadata(meta)}
}

// Save writes the session in the given format. Nothing is written to w if
// encoding fails.
func (s *Session) Save(w io.Writer, format sio.Format, meta xmcda.Metadata) error {
	start := time.Now()
	var buf bytes.Buffer
	err := sio.Write(&buf, s.Snapshot(meta), format)
	if err == nil {
		_, err = w.Write(buf.Bytes())
		if err != nil {
			err = fmt.Errorf("write document: %w", err)
		}
	}
	observability.Edit().OnSave(string(format), buf.Len(), time.Since(start), err)
	return err
}

// refresh recomputes the renderer view in a full classification pass.
func (s *Session) refresh() {
	s.view = graph.Build(s.graph, s.typ, s.hide)
}

// edit applies fn to a clone of the digraph and swaps it in only if fn
// succeeds, so failed edits leave no trace.
func (s *Session) edit(op string, fn func(g *digraph.Digraph) error) error {
	start := time.Now()
	next := s.graph.Clone()
	err := fn(next)
	observability.Edit().OnEdit(op, time.Since(start), err)
	if err != nil {
		s.logger.Debug("edit rejected", "op", op, "code", errors.GetCode(err), "err", err)
		return err
	}
	s.graph = next
	s.refresh()
	s.logger.Debug("edit applied", "op", op, "actions", s.graph.Len(), "arcs", len(s.view.Links))
	return nil
}

func (s *Session) requireGeneral(op string) error {
	if s.typ != digraph.General {
		return errors.New(errors.ErrCodeUnsupported, "%s is not possible on %s graphs", op, s.typ)
	}
	return nil
}

func requireDistinct(a, b string) error {
	if a == b {
		return errors.New(errors.ErrCodeInvalidInput, "edge endpoints must differ, got %q twice", a)
	}
	return nil
}
