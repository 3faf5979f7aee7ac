// Package tracker decides which item of an ordered sequence is "current"
// based on scroll geometry, using either a nearest-to-center scan or
// visibility-ratio notifications.
package tracker

import "fmt"

// Item is one entry of a tracked sequence.
type Item struct {
	ID    string
	Index int
}

// Registry is an ordered, immutable list of items.
type Registry struct {
	items []Item
	index map[string]int
}

// NewRegistry builds a registry from ids in display order.
func NewRegistry(ids ...string) (*Registry, error) {
	r := &Registry{
		items: make([]Item, 0, len(ids)),
		index: make(map[string]int, len(ids)),
	}
	for i, id := range ids {
		if id == "" {
			return nil, fmt.Errorf("item %d: empty id", i)
		}
		if _, dup := r.index[id]; dup {
			return nil, fmt.Errorf("item %d: duplicate id %q", i, id)
		}
		r.index[id] = i
		r.items = append(r.items, Item{ID: id, Index: i})
	}
	return r, nil
}

// MustRegistry is like NewRegistry but panics on invalid ids.
func MustRegistry(ids ...string) *Registry {
	r, err := NewRegistry(ids...)
	if err != nil {
		panic(err)
	}
	return r
}

// Len returns the number of items.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.items)
}

// At returns the item at position i.
func (r *Registry) At(i int) (Item, bool) {
	if r == nil || i < 0 || i >= len(r.items) {
		return Item{}, false
	}
	return r.items[i], true
}

// IndexOf returns the position of id, or -1 if unknown.
func (r *Registry) IndexOf(id string) int {
	if r == nil {
		return -1
	}
	if i, ok := r.index[id]; ok {
		return i
	}
	return -1
}

// Items returns a copy of the items in order.
func (r *Registry) Items() []Item {
	if r == nil {
		return nil
	}
	out := make([]Item, len(r.items))
	copy(out, r.items)
	return out
}
