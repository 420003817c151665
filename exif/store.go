// File: exif/store.go

package exif

import (
	"fmt"
	"strings"

	"greg-hacke/go-ifd/tags"
)

// StoredTag is one decoded tag with its full source context. Owned by
// the Store for the lifetime of a single parse.
type StoredTag struct {
	ID        uint16
	Namespace string
	Group1    string
	Name      string
	Value     interface{} // raw decoded value
	Print     interface{} // display value, set by the conversion pass
	Priority  int
}

// Key returns the qualified "Namespace:Name" form
func (t *StoredTag) Key() string {
	return t.Namespace + ":" + t.Name
}

type storeKey struct {
	id        uint16
	namespace string
}

// Store holds decoded tags keyed by (tag id, namespace). Entries under
// different namespaces never collide; re-encountering the same key in
// one parse overwrites in place (last-write-wins, as with sequential
// directory scanning).
type Store struct {
	byKey map[storeKey]*StoredTag
	order []*StoredTag // insertion order, for display
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{byKey: make(map[storeKey]*StoredTag)}
}

// Put inserts or overwrites the entry keyed by (id, namespace). An
// overwrite keeps the entry's original position in the ordered view.
func (s *Store) Put(id uint16, namespace, group1, name string, value interface{}) *StoredTag {
	k := storeKey{id: id, namespace: namespace}
	if existing, ok := s.byKey[k]; ok {
		existing.Group1 = group1
		existing.Name = name
		existing.Value = value
		existing.Print = nil
		return existing
	}

	tag := &StoredTag{
		ID:        id,
		Namespace: namespace,
		Group1:    group1,
		Name:      name,
		Value:     value,
		Priority:  tags.Priority(namespace),
	}
	s.byKey[k] = tag
	s.order = append(s.order, tag)
	return tag
}

// GetQualified returns exactly the entry under (namespace, id)
func (s *Store) GetQualified(namespace string, id uint16) (*StoredTag, error) {
	if tag, ok := s.byKey[storeKey{id: id, namespace: namespace}]; ok {
		return tag, nil
	}
	return nil, fmt.Errorf("%w: %s:%#04x", ErrNotFound, namespace, id)
}

// GetQualifiedName returns the entry under namespace whose name
// matches. Qualified queries bypass priority resolution entirely.
func (s *Store) GetQualifiedName(namespace, name string) (*StoredTag, error) {
	if id, ok := tags.NameToID(namespace, name); ok {
		if tag, err := s.GetQualified(namespace, id); err == nil {
			return tag, nil
		}
	}
	// Tags without a table definition are stored under synthetic names
	for _, tag := range s.order {
		if tag.Namespace == namespace && strings.EqualFold(tag.Name, name) {
			return tag, nil
		}
	}
	return nil, fmt.Errorf("%w: %s:%s", ErrNotFound, namespace, name)
}

// Tags returns the insertion-ordered view of all entries
func (s *Store) Tags() []*StoredTag {
	out := make([]*StoredTag, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of stored entries
func (s *Store) Len() int {
	return len(s.order)
}
