package settings

import (
	"sync"
)

// FetchFunc pulls the settings for one document URI from the client. The
// cache invokes it at most once per entry; concurrent callers share the
// result.
type FetchFunc func(uri string) (Settings, error)

// Cache resolves per-document settings. In scoped mode each URI maps to a
// future holding the outcome of a single client pull. In unscoped mode every
// lookup returns the global value and the map is never populated.
//
// Entries never expire on their own; they live until Invalidate or Clear.
type Cache struct {
	mu      sync.Mutex
	scoped  bool
	global  Settings
	entries map[string]*future
}

// future is a fetch outcome that may still be in flight. done is closed
// once val and err are set.
type future struct {
	done chan struct{}
	val  Settings
	err  error
}

// NewCache returns an empty cache. scoped mirrors the client's support for
// per-resource configuration pulls and is fixed for the session.
func NewCache(scoped bool) *Cache {
	return &Cache{
		scoped:  scoped,
		global:  Default(),
		entries: make(map[string]*future),
	}
}

// Scoped reports whether per-document pulls are in use.
func (c *Cache) Scoped() bool { return c.scoped }

// Global returns the process-wide settings used when scoped configuration is
// unavailable.
func (c *Cache) Global() Settings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.global
}

// SetGlobal replaces the global settings wholesale.
func (c *Cache) SetGlobal(s Settings) {
	c.mu.Lock()
	c.global = s
	c.mu.Unlock()
}

// Get resolves the settings for uri. Unscoped, it returns the current global
// value immediately. Scoped, it joins the cached future for uri, starting
// one fetch if none exists; callers block until that fetch completes. A
// failed fetch stays cached until invalidated and hands its error to every
// waiter.
func (c *Cache) Get(uri string, fetch FetchFunc) (Settings, error) {
	if !c.scoped {
		return c.Global(), nil
	}

	c.mu.Lock()
	if f, ok := c.entries[uri]; ok {
		c.mu.Unlock()
		<-f.done
		return f.val, f.err
	}
	f := &future{done: make(chan struct{})}
	c.entries[uri] = f
	c.mu.Unlock()

	f.val, f.err = fetch(uri)
	close(f.done)
	return f.val, f.err
}

// Invalidate drops the entry for uri so the next Get fetches fresh. A fetch
// already in flight still completes for its own waiters.
func (c *Cache) Invalidate(uri string) {
	c.mu.Lock()
	delete(c.entries, uri)
	c.mu.Unlock()
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]*future)
	c.mu.Unlock()
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
