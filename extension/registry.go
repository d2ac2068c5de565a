// registry.go implements the extension registration system.
//
// Separated from extension.go to keep the global registry state and its
// locking in one place. Extensions self-register from their init()
// functions, so the full set is known before main() runs.
//
// Design: duplicate names panic, following the database/sql.Register
// convention. A name clash is a programming error, not a runtime
// condition, and should fail loudly during development. Registration
// order is recorded so command registration is deterministic across runs.

package extension

import "sync"

var (
	mu       sync.RWMutex
	registry = make(map[string]Extension)
	order    []string // registration order, drives command ordering
)

// Register adds an extension to the registry. Called from init() functions;
// panics if the name is already taken.
func Register(e Extension) {
	mu.Lock()
	defer mu.Unlock()

	name := e.Name()
	if _, exists := registry[name]; exists {
		panic("extension already registered: " + name)
	}

	registry[name] = e
	order = append(order, name)
}

// All returns every registered extension in registration order.
func All() []Extension {
	mu.RLock()
	defer mu.RUnlock()

	exts := make([]Extension, 0, len(order))
	for _, name := range order {
		exts = append(exts, registry[name])
	}
	return exts
}

// Get returns the named extension, or nil if it is not registered.
func Get(name string) Extension {
	mu.RLock()
	defer mu.RUnlock()
	return registry[name]
}

// Names returns the names of all registered extensions.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, len(order))
	copy(names, order)
	return names
}
