package registry

import (
	"sort"
	"sync"

	"github.com/arthur-debert/actionkit/pkg/errors"
)

// Registry is a generic, thread-safe registry for storing and retrieving
// items by name. Registration order is preserved.
type Registry[T any] interface {
	// Upsert adds an item or replaces an existing one, keeping its position
	Upsert(name string, item T) error

	// Get retrieves an item from the registry
	Get(name string) (T, error)

	// Lookup retrieves an item, reporting whether it exists
	Lookup(name string) (T, bool)

	// List returns all registered names in sorted order
	List() []string

	// Values returns all items in registration order
	Values() []T

	// Count returns the number of registered items
	Count() int
}

type registry[T any] struct {
	mu    sync.RWMutex
	items map[string]T
	order []string
}

// New creates a new Registry instance
func New[T any]() Registry[T] {
	return &registry[T]{
		items: make(map[string]T),
	}
}

// Upsert adds an item or replaces an existing one
func (r *registry[T]) Upsert(name string, item T) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "registry name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[name]; !exists {
		r.order = append(r.order, name)
	}
	r.items[name] = item
	return nil
}

// Get retrieves an item from the registry
func (r *registry[T]) Get(name string) (T, error) {
	item, ok := r.Lookup(name)
	if !ok {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "item '%s' not found in registry", name)
	}
	return item, nil
}

// Lookup retrieves an item, reporting whether it exists
func (r *registry[T]) Lookup(name string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[name]
	return item, exists
}

// List returns all registered names in sorted order
func (r *registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	sort.Strings(names)
	return names
}

// Values returns all items in registration order
func (r *registry[T]) Values() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	values := make([]T, 0, len(r.order))
	for _, name := range r.order {
		values = append(values, r.items[name])
	}
	return values
}

// Count returns the number of registered items
func (r *registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}
