package quote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/luxefurnish/furnishbackend/models"
	"github.com/luxefurnish/furnishbackend/store"
)

// ErrDraftNotFound is returned when no scratch entry exists for a draft id.
var ErrDraftNotFound = errors.New("quote draft not found")

const draftKeyPrefix = "quote_draft_"

// DraftStore persists quotation drafts in the same backend as the entity
// collections, each under its own scratch key.
type DraftStore struct {
	backend store.Backend
	mu      sync.Mutex
}

func NewDraftStore(backend store.Backend) *DraftStore {
	return &DraftStore{backend: backend}
}

func draftKey(id string) string { return draftKeyPrefix + id }

// Create starts an empty draft and persists it.
func (s *DraftStore) Create(ctx context.Context) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := Draft{Id: uuid.NewString(), Items: []models.QuoteLineItem{}}
	if err := s.save(ctx, d); err != nil {
		return Draft{}, err
	}
	return d, nil
}

// Get loads a draft by id.
func (s *DraftStore) Get(ctx context.Context, id string) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx, id)
}

// Mutate loads the draft, runs fn against it and persists the result when fn
// succeeds, all under the store lock.
func (s *DraftStore) Mutate(ctx context.Context, id string, fn func(*Draft) error) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.load(ctx, id)
	if err != nil {
		return Draft{}, err
	}
	if err := fn(&d); err != nil {
		return Draft{}, err
	}
	if err := s.save(ctx, d); err != nil {
		return Draft{}, err
	}
	return d, nil
}

// Clear removes the scratch entry for a draft.
func (s *DraftStore) Clear(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backend.Delete(ctx, draftKey(id))
}

func (s *DraftStore) load(ctx context.Context, id string) (Draft, error) {
	raw, err := s.backend.Load(ctx, draftKey(id))
	if err != nil {
		return Draft{}, err
	}
	if len(raw) == 0 {
		return Draft{}, fmt.Errorf("draft %q: %w", id, ErrDraftNotFound)
	}
	var d Draft
	if err := json.Unmarshal(raw, &d); err != nil {
		return Draft{}, fmt.Errorf("decode draft %q: %w", id, err)
	}
	return d, nil
}

func (s *DraftStore) save(ctx context.Context, d Draft) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode draft %q: %w", d.Id, err)
	}
	return s.backend.Save(ctx, draftKey(d.Id), raw)
}
