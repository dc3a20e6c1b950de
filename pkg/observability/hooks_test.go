package observability

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestDefaultsAreNoop(t *testing.T) {
	Reset()
	if _, ok := Edit().(NoopEditHooks); !ok {
		t.Errorf("Edit() = %T", Edit())
	}
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Errorf("Render() = %T", Render())
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Errorf("Cache() = %T", Cache())
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Errorf("HTTP() = %T", HTTP())
	}
}

func TestSetHooks(t *testing.T) {
	defer Reset()

	edit := &testEditHooks{}
	SetEditHooks(edit)
	SetEditHooks(nil)
	if Edit() != edit {
		t.Error("SetEditHooks(nil) replaced the installed hooks")
	}

	render := &testRenderHooks{}
	SetRenderHooks(render)
	if Render() != render {
		t.Error("SetRenderHooks did not install")
	}

	cache := &testCacheHooks{}
	SetCacheHooks(cache)
	if Cache() != cache {
		t.Error("SetCacheHooks did not install")
	}

	http := &testHTTPHooks{}
	SetHTTPHooks(http)
	if HTTP() != http {
		t.Error("SetHTTPHooks did not install")
	}

	Reset()
	if _, ok := Edit().(NoopEditHooks); !ok {
		t.Error("Reset() kept the edit hooks")
	}
}

func TestInstallLogHooks(t *testing.T) {
	defer Reset()

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	h := NewLogHooks(logger)
	Install(h)
	Install(nil)

	if Edit() != EditHooks(h) || Render() != RenderHooks(h) || Cache() != CacheHooks(h) || HTTP() != HTTPHooks(h) {
		t.Fatal("Install should register the hooks for every set")
	}

	ctx := context.Background()
	Edit().OnEdit("add-node", time.Millisecond, nil)
	Edit().OnLoad("xml", 0, time.Millisecond, errors.New("bad document"))
	Render().OnRenderStart(ctx, "svg", 3)
	Cache().OnCacheHit(ctx, "render")
	HTTP().OnResponse(ctx, "GET", "/api/graph", 200, time.Millisecond)

	out := buf.String()
	for _, want := range []string{"add-node", "bad document", "render start", "cache hit", "/api/graph"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "WARN") {
		t.Errorf("failed load should log at warn level:\n%s", out)
	}
}

type testEditHooks struct{ NoopEditHooks }
type testRenderHooks struct{ NoopRenderHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
