package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// timestampLayout matches the ISO-8601 strings the storefront has always
// persisted (millisecond precision, UTC).
const timestampLayout = "2006-01-02T15:04:05.000Z"

// Record is implemented by every entity kept in a Collection.
type Record interface {
	GetID() string
	SetID(id string)
	SetCreatedDate(ts string)
	Field(name string) (any, bool)
}

// Collection is one named set of records persisted as a JSON array through
// the backend. Every mutation loads the whole collection, changes it in
// memory and writes it back under the collection lock, so concurrent callers
// never observe partial writes.
type Collection[T any, PT interface {
	*T
	Record
}] struct {
	name    string
	backend Backend
	mu      sync.RWMutex
	now     func() time.Time
}

func NewCollection[T any, PT interface {
	*T
	Record
}](name string, backend Backend) *Collection[T, PT] {
	return &Collection[T, PT]{name: name, backend: backend, now: time.Now}
}

func (c *Collection[T, PT]) Name() string { return c.name }

func (c *Collection[T, PT]) load(ctx context.Context) ([]T, error) {
	raw, err := c.backend.Load(ctx, c.name)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var recs []T
	if err := json.Unmarshal(raw, &recs); err != nil {
		// corrupt data reads as an empty collection
		return nil, nil
	}
	return recs, nil
}

func (c *Collection[T, PT]) save(ctx context.Context, recs []T) error {
	if recs == nil {
		recs = []T{}
	}
	raw, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.name, err)
	}
	return c.backend.Save(ctx, c.name, raw)
}

// List returns every record, optionally sorted and truncated. An empty
// collection yields an empty slice, not an error.
func (c *Collection[T, PT]) List(ctx context.Context, sortSpec string, limit int) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	recs, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	sortRecords(recs, sortSpec, fieldOf[T, PT])
	return truncate(recs, limit), nil
}

// Filter returns the records matching every constraint in q, then sorts and
// truncates like List.
func (c *Collection[T, PT]) Filter(ctx context.Context, q Query, sortSpec string, limit int) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	recs, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	matched := recs[:0:0]
	for i := range recs {
		if matchesQuery[T, PT](&recs[i], q) {
			matched = append(matched, recs[i])
		}
	}
	sortRecords(matched, sortSpec, fieldOf[T, PT])
	return truncate(matched, limit), nil
}

// Get returns the record with the given id or ErrNotFound.
func (c *Collection[T, PT]) Get(ctx context.Context, id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var zero T
	recs, err := c.load(ctx)
	if err != nil {
		return zero, err
	}
	for i := range recs {
		if PT(&recs[i]).GetID() == id {
			return recs[i], nil
		}
	}
	return zero, fmt.Errorf("%s %q: %w", c.name, id, ErrNotFound)
}

// Create assigns a fresh id and creation timestamp, appends the record and
// persists the collection. Field validation is the caller's concern.
func (c *Collection[T, PT]) Create(ctx context.Context, rec T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	recs, err := c.load(ctx)
	if err != nil {
		return zero, err
	}

	p := PT(&rec)
	p.SetID(uuid.NewString())
	p.SetCreatedDate(c.now().UTC().Format(timestampLayout))

	recs = append(recs, rec)
	if err := c.save(ctx, recs); err != nil {
		return zero, err
	}
	return rec, nil
}

// Update applies a partial mutation to the record with the given id. The
// apply callback receives the stored record; fields it leaves alone are
// unchanged. Returns ErrNotFound when the id does not exist.
func (c *Collection[T, PT]) Update(ctx context.Context, id string, apply func(PT)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	recs, err := c.load(ctx)
	if err != nil {
		return zero, err
	}
	for i := range recs {
		if PT(&recs[i]).GetID() != id {
			continue
		}
		apply(PT(&recs[i]))
		if err := c.save(ctx, recs); err != nil {
			return zero, err
		}
		return recs[i], nil
	}
	return zero, fmt.Errorf("%s %q: %w", c.name, id, ErrNotFound)
}

// Delete removes the record with the given id. Deleting an absent id is a
// no-op, not an error.
func (c *Collection[T, PT]) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	recs, err := c.load(ctx)
	if err != nil {
		return err
	}
	kept := recs[:0:0]
	for i := range recs {
		if PT(&recs[i]).GetID() != id {
			kept = append(kept, recs[i])
		}
	}
	if len(kept) == len(recs) {
		return nil
	}
	return c.save(ctx, kept)
}

// Replace overwrites the whole collection. Used by seeding and migrations.
func (c *Collection[T, PT]) Replace(ctx context.Context, recs []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save(ctx, recs)
}

func fieldOf[T any, PT interface {
	*T
	Record
}](rec *T, name string) (any, bool) {
	return PT(rec).Field(name)
}

func matchesQuery[T any, PT interface {
	*T
	Record
}](rec *T, q Query) bool {
	for key, want := range q {
		if skippedConstraint(want) {
			continue
		}
		fv, ok := PT(rec).Field(key)
		if !ok {
			return false
		}
		if !matchValue(fv, want) {
			return false
		}
	}
	return true
}

func truncate[T any](recs []T, limit int) []T {
	if recs == nil {
		recs = []T{}
	}
	if limit > 0 && len(recs) > limit {
		return recs[:limit]
	}
	return recs
}
