package server

import (
	"bytes"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/valdigraph/pkg/buildinfo"
	"github.com/matzehuels/valdigraph/pkg/errors"
	"github.com/matzehuels/valdigraph/pkg/graph"
	sio "github.com/matzehuels/valdigraph/pkg/io"
	"github.com/matzehuels/valdigraph/pkg/pipeline"
	"github.com/matzehuels/valdigraph/pkg/render/nodelink"
	"github.com/matzehuels/valdigraph/pkg/session"
	"github.com/matzehuels/valdigraph/pkg/xmcda"
)

type healthResponse struct {
	Status  string         `json:"status"`
	Session string         `json:"session"`
	Build   buildinfo.Info `json:"build"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	var id string
	_ = s.withSession(func(sess *session.Session) error {
		id = sess.ID
		return nil
	})
	s.respondJSON(w, http.StatusOK, healthResponse{Status: "ok", Session: id, Build: buildinfo.Get()})
}

// getGraph returns the renderer view. A hide query parameter sets the hide
// flag first.
func (s *Server) getGraph(w http.ResponseWriter, r *http.Request) {
	var hide *bool
	if q := r.URL.Query().Get("hide"); q != "" {
		b, err := strconv.ParseBool(q)
		if err != nil {
			s.respondError(w, errors.New(errors.ErrCodeInvalidInput, "hide must be a boolean, got %q", q))
			return
		}
		hide = &b
	}
	s.view(w, http.StatusOK, func(sess *session.Session) error {
		if hide != nil {
			sess.SetHide(*hide)
		}
		return nil
	})
}

type newGraphRequest struct {
	Min *float64 `json:"min" validate:"required"`
	Max *float64 `json:"max" validate:"required"`
}

func (s *Server) newGraph(w http.ResponseWriter, r *http.Request) {
	var req newGraphRequest
	if err := decodeBody(r, &req); err != nil {
		s.respondError(w, err)
		return
	}
	s.view(w, http.StatusCreated, func(sess *session.Session) error {
		return sess.Reset(*req.Min, *req.Max)
	})
}

func (s *Server) putDocument(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxDocumentBytes))
	if err != nil {
		s.respondError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "read document"))
		return
	}
	s.view(w, http.StatusOK, func(sess *session.Session) error {
		return sess.Load(bytes.NewReader(data))
	})
}

func (s *Server) getDocument(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	format := sio.FormatXML
	if f := q.Get("format"); f != "" {
		var err error
		if format, err = sio.ParseFormat(f); err != nil {
			s.respondError(w, err)
			return
		}
	}
	meta := xmcda.Metadata{ValuationType: q.Get("valuation"), Author: q.Get("author")}

	var buf bytes.Buffer
	err := s.withSession(func(sess *session.Session) error {
		return sess.Save(&buf, format, meta)
	})
	if err != nil {
		s.respondError(w, err)
		return
	}

	contentType, name := "application/xml", "digraph.xml"
	if format == sio.FormatBundle {
		contentType, name = "application/json", "digraph.json"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

type addNodeRequest struct {
	ID      string `json:"id" validate:"required,max=256"`
	Name    string `json:"name" validate:"max=256"`
	Comment string `json:"comment" validate:"max=4096"`
}

func (s *Server) addNode(w http.ResponseWriter, r *http.Request) {
	var req addNodeRequest
	if err := decodeBody(r, &req); err != nil {
		s.respondError(w, err)
		return
	}
	s.view(w, http.StatusCreated, func(sess *session.Session) error {
		return sess.AddNode(req.ID, req.Name, req.Comment)
	})
}

type editNodeRequest struct {
	Name    string `json:"name" validate:"max=256"`
	Comment string `json:"comment" validate:"max=4096"`
}

func (s *Server) editNode(w http.ResponseWriter, r *http.Request) {
	var req editNodeRequest
	if err := decodeBody(r, &req); err != nil {
		s.respondError(w, err)
		return
	}
	id := chi.URLParam(r, "id")
	s.view(w, http.StatusOK, func(sess *session.Session) error {
		return sess.EditNode(id, req.Name, req.Comment)
	})
}

func (s *Server) deleteNode(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.view(w, http.StatusOK, func(sess *session.Session) error {
		return sess.DeleteNode(id)
	})
}

type editEdgeRequest struct {
	Forward  *float64 `json:"forward" validate:"required"`
	Backward *float64 `json:"backward" validate:"required"`
}

func (s *Server) editEdge(w http.ResponseWriter, r *http.Request) {
	var req editEdgeRequest
	if err := decodeBody(r, &req); err != nil {
		s.respondError(w, err)
		return
	}
	a, b := edgeParams(r)
	s.view(w, http.StatusOK, func(sess *session.Session) error {
		return sess.EditEdge(a, b, *req.Forward, *req.Backward)
	})
}

func (s *Server) deleteEdge(w http.ResponseWriter, r *http.Request) {
	a, b := edgeParams(r)
	s.view(w, http.StatusOK, func(sess *session.Session) error {
		return sess.DeleteEdge(a, b)
	})
}

func (s *Server) connectEdge(w http.ResponseWriter, r *http.Request) {
	a, b := edgeParams(r)
	s.view(w, http.StatusOK, func(sess *session.Session) error {
		return sess.ConnectEdge(a, b)
	})
}

func (s *Server) invertEdge(w http.ResponseWriter, r *http.Request) {
	a, b := edgeParams(r)
	s.view(w, http.StatusOK, func(sess *session.Session) error {
		return sess.InvertEdge(a, b)
	})
}

func (s *Server) inspectEdge(w http.ResponseWriter, r *http.Request) {
	a, b := edgeParams(r)
	var c session.Comparison
	err := s.withSession(func(sess *session.Session) error {
		var err error
		c, err = sess.InspectEdge(a, b)
		return err
	})
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, c)
}

func edgeParams(r *http.Request) (string, string) {
	return chi.URLParam(r, "a"), chi.URLParam(r, "b")
}

// view applies fn under the session lock and answers with the refreshed
// renderer view.
func (s *Server) view(w http.ResponseWriter, status int, fn func(*session.Session) error) {
	var out any
	err := s.withSession(func(sess *session.Session) error {
		if err := fn(sess); err != nil {
			return err
		}
		out = sess.View()
		return nil
	})
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, status, out)
}

var renderContentTypes = map[string]string{
	nodelink.FormatDOT: "text/vnd.graphviz",
	nodelink.FormatSVG: "image/svg+xml",
	nodelink.FormatPDF: "application/pdf",
	nodelink.FormatPNG: "image/png",
}

// render draws the current view. Query parameters: format (default svg),
// detailed and labels (booleans).
func (s *Server) render(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	format := q.Get("format")
	if format == "" {
		format = pipeline.DefaultFormat
	}
	opts := pipeline.Options{Formats: []string{format}}
	for name, dst := range map[string]*bool{"detailed": &opts.Detailed, "labels": &opts.Labels} {
		if v := q.Get(name); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				s.respondError(w, errors.New(errors.ErrCodeInvalidInput, "%s must be a boolean, got %q", name, v))
				return
			}
			*dst = b
		}
	}

	var v graph.Graph
	_ = s.withSession(func(sess *session.Session) error {
		v = sess.View()
		return nil
	})
	res, err := s.runner.Execute(r.Context(), v, opts)
	if err != nil {
		s.respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", renderContentTypes[format])
	if res.CacheHit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}
