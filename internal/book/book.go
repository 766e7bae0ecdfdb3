// Package book holds the in-memory contact directory and the upcoming
// birthday query. The book is mutated by a single command loop at a time;
// it carries no locking of its own.
package book

import (
	"github.com/mira/kith/internal/domain"
)

// Book is an insertion-ordered collection of records keyed by contact name.
// Names are unique: adding a record under an existing name replaces the
// prior record in place.
type Book struct {
	records map[string]*domain.Record
	order   []string
}

// New creates an empty book.
func New() *Book {
	return &Book{records: make(map[string]*domain.Record)}
}

// Add inserts the record, or overwrites the record with the same name.
// An overwrite keeps the original insertion slot.
func (b *Book) Add(rec *domain.Record) {
	key := rec.Name().String()
	if _, exists := b.records[key]; !exists {
		b.order = append(b.order, key)
	}
	b.records[key] = rec
}

// Find returns the record for name, if present.
func (b *Book) Find(name string) (*domain.Record, bool) {
	rec, ok := b.records[name]
	return rec, ok
}

// Delete removes the record for name. Deleting an absent name is a no-op,
// unlike lookups, which report the miss to the caller.
func (b *Book) Delete(name string) {
	if _, ok := b.records[name]; !ok {
		return
	}
	delete(b.records, name)
	for i, key := range b.order {
		if key == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Records returns all records in insertion order.
func (b *Book) Records() []*domain.Record {
	out := make([]*domain.Record, 0, len(b.order))
	for _, key := range b.order {
		out = append(out, b.records[key])
	}
	return out
}

// Len returns the number of records.
func (b *Book) Len() int {
	return len(b.records)
}
