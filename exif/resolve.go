// File: exif/resolve.go

package exif

import (
	"fmt"
	"strings"
)

// GetByName picks the single winning entry for a bare tag name: the
// stored entry whose namespace ranks highest in the priority table,
// ties broken by first insertion. When the highest-priority source was
// never decoded, resolution falls back to whatever lower-priority
// entries exist; an absent tag is indistinguishable from one here.
func (s *Store) GetByName(name string) (*StoredTag, error) {
	var best *StoredTag
	for _, tag := range s.order {
		if !strings.EqualFold(tag.Name, name) {
			continue
		}
		// Strict comparison keeps the first-inserted entry on ties
		if best == nil || tag.Priority > best.Priority {
			best = tag
		}
	}
	if best == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return best, nil
}

// Get answers a query in either qualified "Namespace:Name" form or as
// a bare name. Qualified queries go straight to the namespace; bare
// names run through priority resolution.
func (s *Store) Get(query string) (*StoredTag, error) {
	if namespace, name, ok := strings.Cut(query, ":"); ok {
		return s.GetQualifiedName(namespace, name)
	}
	return s.GetByName(query)
}
