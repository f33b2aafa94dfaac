package models

import "fmt"

// Registry holds the entity types known to the process. It is built once at
// start-up and passed explicitly to every component that needs schema
// information.
type Registry struct {
	types map[string]*EntityType
}

// NewRegistry validates and registers the given types.
// Returns [ErrInvalidEntityType] for a malformed type and
// [ErrDuplicateEntityType] if a name is registered twice.
func NewRegistry(types ...*EntityType) (*Registry, error) {
	r := &Registry{types: make(map[string]*EntityType, len(types))}
	for _, et := range types {
		if err := et.validate(); err != nil {
			return nil, err
		}
		if _, ok := r.types[et.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEntityType, et.Name)
		}
		r.types[et.Name] = et
	}
	return r, nil
}

// DefaultRegistry builds a registry with every type this module declares.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(BookmarkType(), TombstoneDataType())
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the type registered under name.
func (r *Registry) Lookup(name string) (*EntityType, error) {
	et, ok := r.types[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntityType, name)
	}
	return et, nil
}

// MustLookup is like Lookup but panics for an unregistered name.
func (r *Registry) MustLookup(name string) *EntityType {
	et, err := r.Lookup(name)
	if err != nil {
		panic(err)
	}
	return et
}

// TypeOf returns the registered type of e.
func (r *Registry) TypeOf(e Entity) (*EntityType, error) {
	return r.Lookup(e.TypeName())
}
