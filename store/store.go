package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/luxefurnish/furnishbackend/models"
)

// Collection names as persisted by the backend.
const (
	ProductsCollection         = "products"
	ContactInquiriesCollection = "contact_inquiries"
	QuotationsCollection       = "quotations"
	UsersCollection            = "users"
	RefreshTokensCollection    = "refresh_tokens"
)

// Store bundles the typed entity collections over one backend. Construct it
// once per process and pass it to callers; there is no package-level
// singleton.
type Store struct {
	backend Backend

	Products         *Collection[models.Product, *models.Product]
	ContactInquiries *Collection[models.ContactInquiry, *models.ContactInquiry]
	Quotations       *Collection[models.Quotation, *models.Quotation]
	Users            *Collection[models.User, *models.User]
	RefreshTokens    *Collection[models.RefreshToken, *models.RefreshToken]
}

// Open builds the store over the backend, seeds the product catalog on first
// run and patches legacy image URLs in previously seeded data.
func Open(ctx context.Context, backend Backend) (*Store, error) {
	s := &Store{
		backend:          backend,
		Products:         NewCollection[models.Product, *models.Product](ProductsCollection, backend),
		ContactInquiries: NewCollection[models.ContactInquiry, *models.ContactInquiry](ContactInquiriesCollection, backend),
		Quotations:       NewCollection[models.Quotation, *models.Quotation](QuotationsCollection, backend),
		Users:            NewCollection[models.User, *models.User](UsersCollection, backend),
		RefreshTokens:    NewCollection[models.RefreshToken, *models.RefreshToken](RefreshTokensCollection, backend),
	}
	if err := s.initProducts(ctx); err != nil {
		return nil, fmt.Errorf("init products: %w", err)
	}
	if err := s.initEmpty(ctx, ContactInquiriesCollection); err != nil {
		return nil, err
	}
	if err := s.initEmpty(ctx, QuotationsCollection); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) Backend() Backend { return s.backend }

func (s *Store) Close() error { return s.backend.Close() }

// initProducts seeds the catalog when the collection has never been written
// or no longer parses, and otherwise runs the image URL fixups.
func (s *Store) initProducts(ctx context.Context) error {
	raw, err := s.backend.Load(ctx, ProductsCollection)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		return s.Products.Replace(ctx, SampleProducts)
	}

	var products []models.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		// unparseable data: reseed rather than fail
		return s.Products.Replace(ctx, SampleProducts)
	}
	if applyImageFixups(products) {
		return s.Products.Replace(ctx, products)
	}
	return nil
}

func (s *Store) initEmpty(ctx context.Context, name string) error {
	raw, err := s.backend.Load(ctx, name)
	if err != nil {
		return fmt.Errorf("init %s: %w", name, err)
	}
	if len(raw) > 0 {
		return nil
	}
	if err := s.backend.Save(ctx, name, []byte("[]")); err != nil {
		return fmt.Errorf("init %s: %w", name, err)
	}
	return nil
}
