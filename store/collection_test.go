package store

import (
	"context"
	"errors"
	"testing"

	"github.com/luxefurnish/furnishbackend/models"
)

func newTestProducts(t *testing.T) *Collection[models.Product, *models.Product] {
	t.Helper()
	return NewCollection[models.Product, *models.Product](ProductsCollection, NewMemoryBackend())
}

func TestCreateAssignsIdAndTimestamp(t *testing.T) {
	ctx := context.Background()
	col := newTestProducts(t)

	a, err := col.Create(ctx, models.Product{Name: "Desk"})
	if err != nil {
		t.Fatal(err)
	}
	b, err := col.Create(ctx, models.Product{Name: "Chair"})
	if err != nil {
		t.Fatal(err)
	}

	if a.Id == "" || b.Id == "" {
		t.Fatal("create must assign non-empty ids")
	}
	if a.Id == b.Id {
		t.Fatal("rapid successive creates must not collide on id")
	}
	if a.CreatedDate == "" {
		t.Fatal("create must stamp created_date")
	}
}

func TestUpdateMergesOnlyGivenFields(t *testing.T) {
	ctx := context.Background()
	col := newTestProducts(t)

	created, err := col.Create(ctx, models.Product{Name: "Desk", Category: "office_desk", Price: 250})
	if err != nil {
		t.Fatal(err)
	}

	updated, err := col.Update(ctx, created.Id, func(p *models.Product) {
		p.Price = 100
	})
	if err != nil {
		t.Fatal(err)
	}

	if updated.Price != 100 {
		t.Fatalf("price not updated: %v", updated.Price)
	}
	if updated.Name != "Desk" || updated.Category != "office_desk" {
		t.Fatal("untouched fields must survive a partial update")
	}
	if updated.CreatedDate != created.CreatedDate {
		t.Fatal("created_date must not change on update")
	}
}

func TestUpdateMissingIdReturnsNotFound(t *testing.T) {
	ctx := context.Background()
	col := newTestProducts(t)

	_, err := col.Update(ctx, "does-not-exist", func(p *models.Product) {})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	col := newTestProducts(t)

	created, err := col.Create(ctx, models.Product{Name: "Desk"})
	if err != nil {
		t.Fatal(err)
	}

	if err := col.Delete(ctx, created.Id); err != nil {
		t.Fatal(err)
	}
	recs, err := col.List(ctx, "", 0)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range recs {
		if r.Id == created.Id {
			t.Fatal("deleted record still listed")
		}
	}

	// second delete of the same id must not fail
	if err := col.Delete(ctx, created.Id); err != nil {
		t.Fatalf("repeat delete errored: %v", err)
	}
}

func TestListEmptyCollection(t *testing.T) {
	ctx := context.Background()
	col := newTestProducts(t)

	recs, err := col.List(ctx, "-created_date", 10)
	if err != nil {
		t.Fatal(err)
	}
	if recs == nil || len(recs) != 0 {
		t.Fatalf("empty collection must list as empty slice, got %v", recs)
	}
}

func TestListLimit(t *testing.T) {
	ctx := context.Background()
	col := newTestProducts(t)

	for _, name := range []string{"a", "b", "c", "d"} {
		if _, err := col.Create(ctx, models.Product{Name: name}); err != nil {
			t.Fatal(err)
		}
	}

	recs, err := col.List(ctx, "", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("limit 2, got %d records", len(recs))
	}
}

func TestFilterConjunction(t *testing.T) {
	ctx := context.Background()
	col := newTestProducts(t)

	if err := col.Replace(ctx, []models.Product{
		{Id: "1", Name: "Standing Desk", Category: "office_desk", Type: "office", Featured: true},
		{Id: "2", Name: "Desk Lamp", Category: "accessories", Type: "office", Featured: false},
		{Id: "3", Name: "Sofa", Category: "home_sofa", Type: "home", Featured: true},
	}); err != nil {
		t.Fatal(err)
	}

	recs, err := col.Filter(ctx, Query{"type": "office", "featured": true}, "", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || recs[0].Id != "1" {
		t.Fatalf("conjunction filter wrong: %v", recs)
	}
}

func TestFilterSubstringCategory(t *testing.T) {
	ctx := context.Background()
	col := newTestProducts(t)

	if err := col.Replace(ctx, []models.Product{
		{Id: "1", Category: "Standing Desk"},
		{Id: "2", Category: "home_sofa"},
	}); err != nil {
		t.Fatal(err)
	}

	recs, err := col.Filter(ctx, Query{"category": "desk"}, "", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || recs[0].Id != "1" {
		t.Fatalf("substring filter wrong: %v", recs)
	}
}

func TestFilterInStockTreatsAbsentAsTrue(t *testing.T) {
	ctx := context.Background()
	col := newTestProducts(t)

	out := false
	if err := col.Replace(ctx, []models.Product{
		{Id: "absent", Name: "No flag"},
		{Id: "explicit-false", Name: "Out of stock", InStock: &out},
	}); err != nil {
		t.Fatal(err)
	}

	recs, err := col.Filter(ctx, Query{"in_stock": true}, "", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || recs[0].Id != "absent" {
		t.Fatalf("absent in_stock must count as in stock: %v", recs)
	}
}

func TestFilterSkipsEmptyConstraints(t *testing.T) {
	ctx := context.Background()
	col := newTestProducts(t)

	if err := col.Replace(ctx, []models.Product{
		{Id: "1", Category: "office_desk"},
		{Id: "2", Category: "home_sofa"},
	}); err != nil {
		t.Fatal(err)
	}

	recs, err := col.Filter(ctx, Query{"category": "", "type": nil}, "", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("empty constraints must match everything, got %d", len(recs))
	}
}

func TestCorruptDataReadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	if err := backend.Save(ctx, ProductsCollection, []byte("{not json")); err != nil {
		t.Fatal(err)
	}
	col := NewCollection[models.Product, *models.Product](ProductsCollection, backend)

	recs, err := col.List(ctx, "", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 0 {
		t.Fatalf("corrupt collection must read as empty, got %d records", len(recs))
	}
}
