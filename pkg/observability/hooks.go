// Package observability lets the CLI and server watch the libraries at work.
//
// The model and codec packages know nothing about logging or metrics. They
// report events to four hook sets (edits, renders, cache traffic and HTTP
// requests) that default to no-ops. A binary installs real implementations
// once at startup, for example the [LogHooks] that log every event:
//
//	observability.Install(observability.NewLogHooks(logger))
//
// Libraries report through the accessors:
//
//	start := time.Now()
//	err := apply()
//	observability.Edit().OnEdit("connect-edge", time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// EditHooks observes session edits and document I/O.
type EditHooks interface {
	// OnEdit reports an edit such as "add-node" or "invert-edge".
	OnEdit(op string, duration time.Duration, err error)

	// OnLoad reports a document load. actions is zero when err is set.
	OnLoad(format string, actions int, duration time.Duration, err error)

	// OnSave reports a document save of size bytes.
	OnSave(format string, size int, duration time.Duration, err error)
}

// RenderHooks observes Graphviz renders.
type RenderHooks interface {
	OnRenderStart(ctx context.Context, format string, arcs int)
	OnRenderComplete(ctx context.Context, format string, duration time.Duration, err error)
}

// CacheHooks observes render cache traffic. keyType is the key prefix.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// HTTPHooks observes requests to the API server.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, path string)
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// Noop hook sets, installed until something else is registered.
type (
	NoopEditHooks   struct{}
	NoopRenderHooks struct{}
	NoopCacheHooks  struct{}
	NoopHTTPHooks   struct{}
)

func (NoopEditHooks) OnEdit(string, time.Duration, error)      {}
func (NoopEditHooks) OnLoad(string, int, time.Duration, error) {}
func (NoopEditHooks) OnSave(string, int, time.Duration, error) {}

func (NoopRenderHooks) OnRenderStart(context.Context, string, int)                     {}
func (NoopRenderHooks) OnRenderComplete(context.Context, string, time.Duration, error) {}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                     {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// registry holds the active hook sets.
type registry struct {
	mu     sync.RWMutex
	edit   EditHooks
	render RenderHooks
	cache  CacheHooks
	http   HTTPHooks
}

var hooks = newRegistry()

func newRegistry() *registry {
	return &registry{
		edit:   NoopEditHooks{},
		render: NoopRenderHooks{},
		cache:  NoopCacheHooks{},
		http:   NoopHTTPHooks{},
	}
}

// set runs fn under the write lock.
func set(fn func(r *registry)) {
	hooks.mu.Lock()
	defer hooks.mu.Unlock()
	fn(hooks)
}

// SetEditHooks installs h. A nil h is ignored.
func SetEditHooks(h EditHooks) {
	if h != nil {
		set(func(r *registry) { r.edit = h })
	}
}

// SetRenderHooks installs h. A nil h is ignored.
func SetRenderHooks(h RenderHooks) {
	if h != nil {
		set(func(r *registry) { r.render = h })
	}
}

// SetCacheHooks installs h. A nil h is ignored.
func SetCacheHooks(h CacheHooks) {
	if h != nil {
		set(func(r *registry) { r.cache = h })
	}
}

// SetHTTPHooks installs h. A nil h is ignored.
func SetHTTPHooks(h HTTPHooks) {
	if h != nil {
		set(func(r *registry) { r.http = h })
	}
}

// Hooks is a type implementing every hook set, such as [LogHooks].
type Hooks interface {
	EditHooks
	RenderHooks
	CacheHooks
	HTTPHooks
}

// Install registers h for all four hook sets.
func Install(h Hooks) {
	if h == nil {
		return
	}
	set(func(r *registry) {
		r.edit, r.render, r.cache, r.http = h, h, h, h
	})
}

// Edit returns the active edit hooks.
func Edit() EditHooks {
	hooks.mu.RLock()
	defer hooks.mu.RUnlock()
	return hooks.edit
}

// Render returns the active render hooks.
func Render() RenderHooks {
	hooks.mu.RLock()
	defer hooks.mu.RUnlock()
	return hooks.render
}

// Cache returns the active cache hooks.
func Cache() CacheHooks {
	hooks.mu.RLock()
	defer hooks.mu.RUnlock()
	return hooks.cache
}

// HTTP returns the active HTTP hooks.
func HTTP() HTTPHooks {
	hooks.mu.RLock()
	defer hooks.mu.RUnlock()
	return hooks.http
}

// Reset restores the no-op hooks. Tests call it after installing their own.
func Reset() {
	set(func(r *registry) {
		r.edit, r.render, r.cache, r.http = NoopEditHooks{}, NoopRenderHooks{}, NoopCacheHooks{}, NoopHTTPHooks{}
	})
}
