package menu

import "sync"

// Registry holds the active configuration. It is created lazily on first
// read, can be replaced wholesale and reset to unset.
//
// The zero value is ready to use. The mutex only guards the pointer swap so
// a menu file reload can replace the configuration while requests read it;
// mutating a Configuration obtained from the registry is not synchronized.
type Registry struct {
	mu  sync.RWMutex
	cfg *Configuration
}

// NewRegistry creates a registry with no configuration.
func NewRegistry() *Registry {
	return &Registry{}
}

// Config returns the active configuration, creating one with defaults if unset.
func (r *Registry) Config() *Configuration {
	r.mu.RLock()
	cfg := r.cfg
	r.mu.RUnlock()

	if cfg != nil {
		return cfg
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cfg == nil {
		r.cfg = NewConfiguration()
	}

	return r.cfg
}

// Configure creates the configuration if absent, then applies fn to it.
func (r *Registry) Configure(fn func(*Configuration)) *Configuration {
	cfg := r.Config()
	if fn != nil {
		fn(cfg)
	}
	return cfg
}

// Current returns the active configuration or nil when unset.
func (r *Registry) Current() *Configuration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cfg
}

// Replace swaps in a fully built configuration.
func (r *Registry) Replace(cfg *Configuration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cfg = cfg
}

// Reset discards the configuration. The next Config call recreates defaults.
func (r *Registry) Reset() {
	r.Replace(nil)
}
