package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/valdigraph/pkg/cache"
	"github.com/matzehuels/valdigraph/pkg/errors"
	"github.com/matzehuels/valdigraph/pkg/pipeline"
	"github.com/matzehuels/valdigraph/pkg/session"
	"github.com/matzehuels/valdigraph/pkg/store"
)

func newStoreServer(t *testing.T) *httptest.Server {
	t.Helper()
	sess, err := session.New(0, 1)
	if err != nil {
		t.Fatal(err)
	}
	st, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	logger := log.New(io.Discard)
	srv := New(sess,
		WithLogger(logger),
		WithStore(st),
		WithRunner(pipeline.NewRunner(c, logger)),
	)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestSnapshots(t *testing.T) {
	ts := newStoreServer(t)
	expectStatus(t, do(t, ts, http.MethodPost, "/api/nodes", `{"id":"a"}`), http.StatusCreated)
	expectStatus(t, do(t, ts, http.MethodPost, "/api/nodes", `{"id":"b"}`), http.StatusCreated)

	resp := do(t, ts, http.MethodPut, "/api/snapshots/draft", "")
	expectStatus(t, resp, http.StatusOK)
	var info store.Entry
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		t.Fatal(err)
	}
	if info.Name != "draft" || info.Actions != 2 || info.Data != nil {
		t.Errorf("saved = %+v", info)
	}

	expectStatus(t, do(t, ts, http.MethodPost, "/api/graph", `{"min":0,"max":1}`), http.StatusCreated)

	resp = do(t, ts, http.MethodPost, "/api/snapshots/draft/open", "")
	expectStatus(t, resp, http.StatusOK)
	if v := decodeView(t, resp); len(v.Nodes) != 2 {
		t.Errorf("restored nodes = %+v", v.Nodes)
	}

	resp = do(t, ts, http.MethodGet, "/api/snapshots", "")
	expectStatus(t, resp, http.StatusOK)
	var list []store.Entry
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].Name != "draft" {
		t.Errorf("list = %+v", list)
	}

	expectStatus(t, do(t, ts, http.MethodDelete, "/api/snapshots/draft", ""), http.StatusNoContent)
	resp = do(t, ts, http.MethodPost, "/api/snapshots/draft/open", "")
	expectStatus(t, resp, http.StatusNotFound)

	resp = do(t, ts, http.MethodPut, "/api/snapshots/.hidden", "")
	expectStatus(t, resp, http.StatusBadRequest)
}

func TestSnapshotsWithoutStore(t *testing.T) {
	ts := newTestServer(t)
	resp := do(t, ts, http.MethodGet, "/api/snapshots", "")
	expectStatus(t, resp, http.StatusConflict)
	if e := decodeError(t, resp); e.Code != errors.ErrCodeUnsupported {
		t.Errorf("code = %s", e.Code)
	}
}

func TestRenderDOT(t *testing.T) {
	ts := newStoreServer(t)
	expectStatus(t, do(t, ts, http.MethodPost, "/api/nodes", `{"id":"a"}`), http.StatusCreated)
	expectStatus(t, do(t, ts, http.MethodPost, "/api/nodes", `{"id":"b"}`), http.StatusCreated)
	expectStatus(t, do(t, ts, http.MethodPut, "/api/edges/a/b", `{"forward":1,"backward":0}`), http.StatusOK)

	resp := do(t, ts, http.MethodGet, "/api/render?format=dot&labels=true", "")
	expectStatus(t, resp, http.StatusOK)
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `"a" -> "b"`) {
		t.Errorf("dot = %s", body)
	}
	if got := resp.Header.Get("X-Cache"); got != "MISS" {
		t.Errorf("first X-Cache = %q", got)
	}
	if got := resp.Header.Get("Content-Type"); got != "text/vnd.graphviz" {
		t.Errorf("Content-Type = %q", got)
	}

	resp = do(t, ts, http.MethodGet, "/api/render?format=dot&labels=true", "")
	if got := resp.Header.Get("X-Cache"); got != "HIT" {
		t.Errorf("second X-Cache = %q", got)
	}

	expectStatus(t, do(t, ts, http.MethodGet, "/api/render?format=gif", ""), http.StatusBadRequest)
	expectStatus(t, do(t, ts, http.MethodGet, "/api/render?labels=perhaps", ""), http.StatusBadRequest)
}
