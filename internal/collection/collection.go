// Package collection provides an insertion-ordered, string-keyed record set
// whose JSON encoding keeps the order in which records were added.
package collection

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
	"slices"
)

// Collection maps ids to records and remembers insertion order.
// The zero value is not usable; call New. Read methods accept a nil receiver.
type Collection[T any] struct {
	ids   []string
	items map[string]T
}

// New returns an empty collection.
func New[T any]() *Collection[T] {
	return &Collection[T]{items: make(map[string]T)}
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	if c == nil {
		return 0
	}
	return len(c.ids)
}

// Has reports whether id is present.
func (c *Collection[T]) Has(id string) bool {
	if c == nil {
		return false
	}
	_, ok := c.items[id]
	return ok
}

// Get returns the record stored under id.
func (c *Collection[T]) Get(id string) (T, bool) {
	if c == nil {
		var zero T
		return zero, false
	}
	v, ok := c.items[id]
	return v, ok
}

// Set stores v under id. A new id is appended to the end; an existing id
// keeps its position.
func (c *Collection[T]) Set(id string, v T) {
	if _, ok := c.items[id]; !ok {
		c.ids = append(c.ids, id)
	}
	c.items[id] = v
}

// Delete removes id and reports whether it was present.
func (c *Collection[T]) Delete(id string) bool {
	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	if i := slices.Index(c.ids, id); i >= 0 {
		c.ids = slices.Delete(c.ids, i, i+1)
	}
	return true
}

// IDs returns a copy of the ids in insertion order.
func (c *Collection[T]) IDs() []string {
	if c == nil {
		return nil
	}
	return slices.Clone(c.ids)
}

// All yields id/record pairs in insertion order.
func (c *Collection[T]) All() iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		if c == nil {
			return
		}
		for _, id := range c.ids {
			if !yield(id, c.items[id]) {
				return
			}
		}
	}
}

// Values yields records in insertion order.
func (c *Collection[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range c.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Clone returns an independent copy. cloneFn deep-copies each record; a nil
// cloneFn copies records by value.
func (c *Collection[T]) Clone(cloneFn func(T) T) *Collection[T] {
	out := &Collection[T]{
		ids:   make([]string, 0, c.Len()),
		items: make(map[string]T, c.Len()),
	}
	for id, v := range c.All() {
		if cloneFn != nil {
			v = cloneFn(v)
		}
		out.ids = append(out.ids, id)
		out.items[id] = v
	}
	return out
}

// MarshalJSON encodes the collection as a JSON object in insertion order.
func (c *Collection[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	i := 0
	for id, v := range c.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		i++
		key, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode %q: %w", id, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping key order. A JSON null yields
// an empty collection. Repeated keys keep their first position.
func (c *Collection[T]) UnmarshalJSON(data []byte) error {
	c.ids = nil
	c.items = make(map[string]T)

	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("collection: expected JSON object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		id, ok := tok.(string)
		if !ok {
			return fmt.Errorf("collection: expected string key, got %v", tok)
		}
		var v T
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("decode %q: %w", id, err)
		}
		c.Set(id, v)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
