// Package memstore provides ordered in-memory collections with integer
// identifiers. Every demo app in this repository keeps its records in one
// Collection per entity kind; there is no persistence layer behind it.
package memstore

import "sync"

// Collection is an insertion-ordered set of records of one entity kind.
// Identifiers are assigned from a monotonically increasing counter and are
// never reused, even after a record is removed. Allocating max(existing)+1
// instead would re-issue the id of a deleted record; the counter policy
// avoids that collision while staying deterministic.
//
// A single mutex serializes mutations. Each mutating call is atomic with
// respect to the collection it touches; there is no cross-collection
// transaction.
type Collection[T any] struct {
	mu     sync.Mutex
	items  []T
	nextID int

	id    func(T) int
	setID func(T, int) T
}

// NewCollection creates an empty collection. The id and setID functions tell
// the collection how to read and assign the identifier field of T.
func NewCollection[T any](id func(T) int, setID func(T, int) T) *Collection[T] {
	return &Collection[T]{
		nextID: 1,
		id:     id,
		setID:  setID,
	}
}

// Seed replaces the collection contents with the given records, preserving
// their order and ids. The id counter is advanced past the largest seeded id
// so later adds never collide with seeded records.
func (c *Collection[T]) Seed(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make([]T, len(items))
	copy(c.items, items)

	c.nextID = 1
	for _, item := range c.items {
		if id := c.id(item); id >= c.nextID {
			c.nextID = id + 1
		}
	}
}

// Add assigns the next identifier to the record, appends it at the end and
// returns the stored copy. No field besides the id is constrained to be
// unique.
func (c *Collection[T]) Add(item T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	item = c.setID(item, c.nextID)
	c.nextID++
	c.items = append(c.items, item)
	return item
}

// Put inserts the record keeping its existing id, or replaces the record
// already stored under that id. New records go to the end. Used by
// collections whose identity comes from elsewhere, such as cart items keyed
// by product id.
func (c *Collection[T]) Put(item T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.id(item)
	for i := range c.items {
		if c.id(c.items[i]) == id {
			c.items[i] = item
			return item
		}
	}
	if id >= c.nextID {
		c.nextID = id + 1
	}
	c.items = append(c.items, item)
	return item
}

// Find returns the record with the given id, or false when absent.
func (c *Collection[T]) Find(id int) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, item := range c.items {
		if c.id(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Update applies the given function to the record with the matching id and
// stores the result back in place. Returns false when no record has that id,
// in which case nothing is changed.
func (c *Collection[T]) Update(id int, apply func(T) T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.id(c.items[i]) == id {
			c.items[i] = apply(c.items[i])
			return c.items[i], true
		}
	}
	var zero T
	return zero, false
}

// Remove filters out the record with the given id. Removing an absent id is
// a no-op, not an error.
func (c *Collection[T]) Remove(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	filtered := c.items[:0]
	for _, item := range c.items {
		if c.id(item) != id {
			filtered = append(filtered, item)
		}
	}
	c.items = filtered
}

// List returns a snapshot of the collection in insertion order.
func (c *Collection[T]) List() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// FindAll returns the records matching the predicate, preserving the
// original relative order.
func (c *Collection[T]) FindAll(pred func(T) bool) []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]T, 0)
	for _, item := range c.items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// Len returns the number of records currently stored.
func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Clear removes every record. The id counter keeps its position so cleared
// ids are not re-issued.
func (c *Collection[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}
