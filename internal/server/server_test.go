package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/valdigraph/pkg/errors"
	"github.com/matzehuels/valdigraph/pkg/graph"
	"github.com/matzehuels/valdigraph/pkg/session"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	sess, err := session.New(0, 1)
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	srv := New(sess, WithLogger(log.New(io.Discard)))
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func do(t *testing.T, ts *httptest.Server, method, path, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, ts.URL+path, r)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func expectStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()
	if resp.StatusCode != want {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("%s %s: status = %d, want %d (body %s)",
			resp.Request.Method, resp.Request.URL.Path, resp.StatusCode, want, body)
	}
}

func decodeView(t *testing.T, resp *http.Response) graph.Graph {
	t.Helper()
	var v graph.Graph
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode view: %v", err)
	}
	return v
}

func decodeError(t *testing.T, resp *http.Response) errorResponse {
	t.Helper()
	var e errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&e); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	return e
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	resp := do(t, ts, http.MethodGet, "/health", "")
	expectStatus(t, resp, http.StatusOK)

	var h healthResponse
	if err := json.NewDecoder(resp.Body).Decode(&h); err != nil {
		t.Fatal(err)
	}
	if h.Status != "ok" || h.Session == "" {
		t.Errorf("health = %+v", h)
	}
	if resp.Header.Get("Content-Type") != "application/json" {
		t.Errorf("Content-Type = %q", resp.Header.Get("Content-Type"))
	}
}

func TestEditFlow(t *testing.T) {
	ts := newTestServer(t)

	expectStatus(t, do(t, ts, http.MethodPost, "/api/nodes", `{"id":"a","name":"Alpha"}`), http.StatusCreated)
	expectStatus(t, do(t, ts, http.MethodPost, "/api/nodes", `{"id":"b"}`), http.StatusCreated)

	resp := do(t, ts, http.MethodPost, "/api/edges/a/b/connect", "")
	expectStatus(t, resp, http.StatusOK)
	v := decodeView(t, resp)
	if len(v.Links) != 1 || v.Links[0].Type != -1 {
		t.Fatalf("after connect links = %+v, want one init link", v.Links)
	}

	resp = do(t, ts, http.MethodPut, "/api/edges/a/b", `{"forward":0.8,"backward":0.2}`)
	expectStatus(t, resp, http.StatusOK)
	v = decodeView(t, resp)
	if len(v.Links) != 1 || v.Links[0].Value != "0.80" || v.Links[0].Value2 != "0.20" {
		t.Fatalf("after edit links = %+v", v.Links)
	}

	resp = do(t, ts, http.MethodPost, "/api/edges/a/b/invert", "")
	expectStatus(t, resp, http.StatusOK)
	v = decodeView(t, resp)
	if len(v.Links) != 1 || v.Links[0].Value != "0.20" || v.Links[0].Value2 != "0.80" {
		t.Fatalf("after invert links = %+v", v.Links)
	}

	expectStatus(t, do(t, ts, http.MethodPut, "/api/nodes/a", `{"name":"A","comment":"first"}`), http.StatusOK)

	resp = do(t, ts, http.MethodDelete, "/api/edges/a/b", "")
	expectStatus(t, resp, http.StatusOK)
	if v = decodeView(t, resp); len(v.Links) != 0 {
		t.Fatalf("after delete links = %+v", v.Links)
	}

	resp = do(t, ts, http.MethodDelete, "/api/nodes/b", "")
	expectStatus(t, resp, http.StatusOK)
	if v = decodeView(t, resp); len(v.Nodes) != 1 || v.Nodes[0].FullName != "A" {
		t.Fatalf("after delete node nodes = %+v", v.Nodes)
	}
}

func TestErrors(t *testing.T) {
	ts := newTestServer(t)
	expectStatus(t, do(t, ts, http.MethodPost, "/api/nodes", `{"id":"a"}`), http.StatusCreated)
	expectStatus(t, do(t, ts, http.MethodPost, "/api/nodes", `{"id":"b"}`), http.StatusCreated)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		code   errors.Code
	}{
		{"duplicate node", http.MethodPost, "/api/nodes", `{"id":"a"}`, http.StatusConflict, errors.ErrCodeDuplicateID},
		{"missing id", http.MethodPost, "/api/nodes", `{"name":"x"}`, http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"unknown field", http.MethodPost, "/api/nodes", `{"id":"c","colour":"red"}`, http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"out of range", http.MethodPut, "/api/edges/a/b", `{"forward":1.5,"backward":0}`, http.StatusUnprocessableEntity, errors.ErrCodeOutOfRange},
		{"missing backward", http.MethodPut, "/api/edges/a/b", `{"forward":0.5}`, http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"unknown node", http.MethodPut, "/api/nodes/zz", `{"name":"x"}`, http.StatusNotFound, errors.ErrCodeNotFound},
		{"comparison on general", http.MethodGet, "/api/edges/a/b/comparison", "", http.StatusConflict, errors.ErrCodeUnsupported},
		{"bad hide", http.MethodGet, "/api/graph?hide=maybe", "", http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"bad format", http.MethodGet, "/api/document?format=csv", "", http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"bad bounds", http.MethodPost, "/api/graph", `{"min":1,"max":0}`, http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"malformed document", http.MethodPut, "/api/document", `<XMCDA><alternatives>`, http.StatusUnprocessableEntity, errors.ErrCodeMalformedDocument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, ts, tt.method, tt.path, tt.body)
			expectStatus(t, resp, tt.status)
			e := decodeError(t, resp)
			if !e.Error || e.Code != tt.code || e.Message == "" {
				t.Errorf("error body = %+v, want code %s", e, tt.code)
			}
		})
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	ts := newTestServer(t)
	expectStatus(t, do(t, ts, http.MethodPost, "/api/nodes", `{"id":"a"}`), http.StatusCreated)
	expectStatus(t, do(t, ts, http.MethodPost, "/api/nodes", `{"id":"b"}`), http.StatusCreated)
	expectStatus(t, do(t, ts, http.MethodPut, "/api/edges/a/b", `{"forward":0.9,"backward":0.1}`), http.StatusOK)

	for _, format := range []string{"xml", "bundle"} {
		t.Run(format, func(t *testing.T) {
			resp := do(t, ts, http.MethodGet, "/api/document?format="+format, "")
			expectStatus(t, resp, http.StatusOK)
			doc, err := io.ReadAll(resp.Body)
			if err != nil {
				t.Fatal(err)
			}

			expectStatus(t, do(t, ts, http.MethodPost, "/api/graph", `{"min":0,"max":1}`), http.StatusCreated)

			req, _ := http.NewRequest(http.MethodPut, ts.URL+"/api/document", bytes.NewReader(doc))
			put, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatal(err)
			}
			defer put.Body.Close()
			expectStatus(t, put, http.StatusOK)
			v := decodeView(t, put)
			if len(v.Nodes) != 2 || len(v.Links) != 1 || v.Links[0].Value != "0.90" {
				t.Errorf("reloaded view = %+v", v)
			}
		})
	}
}

func TestHideQuery(t *testing.T) {
	ts := newTestServer(t)
	expectStatus(t, do(t, ts, http.MethodPost, "/api/nodes", `{"id":"a"}`), http.StatusCreated)
	expectStatus(t, do(t, ts, http.MethodPost, "/api/nodes", `{"id":"b"}`), http.StatusCreated)
	expectStatus(t, do(t, ts, http.MethodPut, "/api/edges/a/b", `{"forward":0.5,"backward":0.5}`), http.StatusOK)

	resp := do(t, ts, http.MethodGet, "/api/graph?hide=true", "")
	expectStatus(t, resp, http.StatusOK)
	if v := decodeView(t, resp); !v.Hide || len(v.Links) != 0 {
		t.Errorf("hidden view = %+v, want no links", v)
	}

	resp = do(t, ts, http.MethodGet, "/api/graph", "")
	if v := decodeView(t, resp); !v.Hide {
		t.Error("hide flag not kept between requests")
	}

	resp = do(t, ts, http.MethodGet, "/api/graph?hide=false", "")
	if v := decodeView(t, resp); v.Hide || len(v.Links) != 1 {
		t.Errorf("shown view = %+v, want one link", v)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		code errors.Code
		want int
	}{
		{errors.ErrCodeDuplicateID, http.StatusConflict},
		{errors.ErrCodeInvertNotPermitted, http.StatusConflict},
		{errors.ErrCodeUnsupported, http.StatusConflict},
		{errors.ErrCodeNotFound, http.StatusNotFound},
		{errors.ErrCodeOutOfRange, http.StatusUnprocessableEntity},
		{errors.ErrCodeMalformedDocument, http.StatusUnprocessableEntity},
		{errors.ErrCodeInvalidInput, http.StatusBadRequest},
		{errors.ErrCodeInternal, http.StatusInternalServerError},
		{"", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusFor(tt.code); got != tt.want {
			t.Errorf("statusFor(%q) = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestCORS(t *testing.T) {
	sess, _ := session.New(0, 1)
	srv := New(sess, WithLogger(log.New(io.Discard)), WithAllowedOrigins("https://app.example.com"))
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	req, _ := http.NewRequest(http.MethodOptions, ts.URL+"/api/graph", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("Allow-Origin = %q", got)
	}
}
