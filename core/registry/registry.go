package registry

import "sync"

// Registry is a process-wide key/value store. A locked key rejects writes
// until UnlockForTesting is called.
type Registry struct {
	mu     sync.RWMutex
	values map[string]interface{}
	locked map[string]bool
}

// GlobalRegistry is shared by the api, cmd, cron and graphql registries.
var GlobalRegistry = New()

func New() *Registry {
	return &Registry{
		values: make(map[string]interface{}),
		locked: make(map[string]bool),
	}
}

func (r *Registry) GetGlobal(key string) (interface{}, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[key]
	return v, ok
}

// SetGlobal stores v under key. Writes to a locked key are ignored and reported as false.
func (r *Registry) SetGlobal(key string, v interface{}) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.locked[key] {
		return false
	}
	r.values[key] = v
	return true
}

func (r *Registry) Lock(key string) {
	r.mu.Lock()
	r.locked[key] = true
	r.mu.Unlock()
}

func (r *Registry) IsLocked(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.locked[key]
}

func (r *Registry) UnlockForTesting(key string) {
	r.mu.Lock()
	delete(r.locked, key)
	r.mu.Unlock()
}
