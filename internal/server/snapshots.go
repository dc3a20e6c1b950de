package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/valdigraph/pkg/errors"
	"github.com/matzehuels/valdigraph/pkg/session"
	"github.com/matzehuels/valdigraph/pkg/store"
	"github.com/matzehuels/valdigraph/pkg/xmcda"
)

type snapshotRequest struct {
	Name string `validate:"required,max=128,printascii"`
}

// snapshotName validates the {name} route parameter.
func snapshotName(r *http.Request) (string, error) {
	req := snapshotRequest{Name: chi.URLParam(r, "name")}
	if err := validate.Struct(req); err != nil {
		return "", errors.New(errors.ErrCodeInvalidInput, "%s", formatValidationError(err))
	}
	if err := store.ValidateName(req.Name); err != nil {
		return "", err
	}
	return req.Name, nil
}

func (s *Server) requireStore() error {
	if s.store == nil {
		return errors.New(errors.ErrCodeUnsupported, "no snapshot store configured")
	}
	return nil
}

func (s *Server) listSnapshots(w http.ResponseWriter, r *http.Request) {
	if err := s.requireStore(); err != nil {
		s.respondError(w, err)
		return
	}
	list, err := s.store.List(r.Context())
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, list)
}

func (s *Server) saveSnapshot(w http.ResponseWriter, r *http.Request) {
	name, err := snapshotName(r)
	if err == nil {
		err = s.requireStore()
	}
	if err == nil {
		err = s.withSession(func(sess *session.Session) error {
			return sess.Persist(r.Context(), s.store, name, xmcda.Metadata{})
		})
	}
	if err != nil {
		s.respondError(w, err)
		return
	}
	e, err := s.store.Get(r.Context(), name)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, e.Info())
}

func (s *Server) openSnapshot(w http.ResponseWriter, r *http.Request) {
	name, err := snapshotName(r)
	if err == nil {
		err = s.requireStore()
	}
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.view(w, http.StatusOK, func(sess *session.Session) error {
		return sess.Restore(r.Context(), s.store, name)
	})
}

func (s *Server) deleteSnapshot(w http.ResponseWriter, r *http.Request) {
	name, err := snapshotName(r)
	if err == nil {
		err = s.requireStore()
	}
	if err == nil {
		err = s.store.Delete(r.Context(), name)
	}
	if err != nil {
		s.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
