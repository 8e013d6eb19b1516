package model

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
)

// ErrNotRegistered is returned when a model identifier cannot be resolved
// against the registry.
var ErrNotRegistered = errors.New("model not registered")

// Entry describes one registered model.
type Entry struct {
	Name      string     // short type name, e.g. "Post"
	Qualified string     // package path + "." + type name
	SourceDir string     // directory holding the package source for member scanning
	New       func() any // zero-argument factory returning a fresh instance
}

// Registry maps model identifiers to registered entries. Registration
// order is preserved for listing.
type Registry struct {
	mu      sync.RWMutex
	entries []*Entry
	byName  map[string]*Entry
	byQual  map[string]*Entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*Entry),
		byQual: make(map[string]*Entry),
	}
}

// RegisterOption customizes a registration.
type RegisterOption func(*Entry)

// WithSourceDir overrides the source directory scanned for the model's
// declared methods. By default the directory of the registering file is
// used, which assumes models are registered from their own package.
func WithSourceDir(dir string) RegisterOption {
	return func(e *Entry) { e.SourceDir = dir }
}

// Register adds a model to the registry. The factory must return a
// pointer to a fresh model instance. The caller's source directory is
// recorded so the inspector can scan the package for declared methods.
func (r *Registry) Register(factory func() any, opts ...RegisterOption) *Entry {
	return r.add(newEntry(factory, 2, opts))
}

func newEntry(factory func() any, callerSkip int, opts []RegisterOption) *Entry {
	instance := factory()
	entry := &Entry{
		Name:      ShortName(instance),
		Qualified: Identity(instance),
		New:       factory,
	}
	if _, file, _, ok := runtime.Caller(callerSkip); ok {
		entry.SourceDir = filepath.Dir(file)
	}
	for _, opt := range opts {
		opt(entry)
	}
	return entry
}

func (r *Registry) add(entry *Entry) *Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, exists := r.byQual[entry.Qualified]; exists {
		// Re-registration replaces the previous entry in place.
		*prev = *entry
		return prev
	}
	r.entries = append(r.entries, entry)
	r.byName[entry.Name] = entry
	r.byQual[entry.Qualified] = entry
	return entry
}

// Resolve looks up a model by identifier. Accepted forms, tried in order:
// the fully qualified identity, the short type name, and a path-style
// form whose final "/" separator is normalized to "." before qualified
// lookup. A leading "/" or "./" is trimmed first.
func (r *Registry) Resolve(identifier string) (*Entry, error) {
	id := strings.TrimPrefix(strings.TrimPrefix(identifier, "./"), "/")
	if id == "" {
		return nil, fmt.Errorf("%w: empty model identifier", ErrNotRegistered)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if e, ok := r.byQual[id]; ok {
		return e, nil
	}
	if e, ok := r.byName[id]; ok {
		return e, nil
	}
	if i := strings.LastIndex(id, "/"); i >= 0 {
		normalized := id[:i] + "." + id[i+1:]
		if e, ok := r.byQual[normalized]; ok {
			return e, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotRegistered, identifier)
}

// All returns the registered entries in registration order.
func (r *Registry) All() []*Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Suggest returns registered model names that look close to the given
// identifier, for "did you mean" hints on resolution failures.
func (r *Registry) Suggest(identifier string) []string {
	base := identifier
	if i := strings.LastIndexAny(base, "/."); i >= 0 {
		base = base[i+1:]
	}
	lower := strings.ToLower(base)

	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []string
	for _, e := range r.entries {
		candidate := strings.ToLower(e.Name)
		if strings.HasPrefix(candidate, lower) || strings.Contains(candidate, lower) ||
			strings.HasPrefix(lower, candidate) {
			matches = append(matches, e.Name)
		}
	}
	sort.Strings(matches)
	return matches
}

// Default is the process-wide registry that package-level registration
// functions operate on. Applications embed recordlens by registering
// their models here before handing control to the CLI.
var Default = NewRegistry()

// Register adds a model to the default registry.
func Register(factory func() any, opts ...RegisterOption) *Entry {
	return Default.add(newEntry(factory, 2, opts))
}
