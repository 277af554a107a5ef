package quote

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxefurnish/furnishbackend/models"
	"github.com/luxefurnish/furnishbackend/store"
)

func desk() models.Product {
	return models.Product{Id: "1", Name: "Executive Office Desk", Price: 500}
}

func chair() models.Product {
	return models.Product{Id: "2", Name: "Ergonomic Office Chair", Price: 300}
}

func TestDraftAddLine(t *testing.T) {
	var d Draft
	require.NoError(t, d.AddLine(desk(), 2))

	require.Len(t, d.Items, 1)
	item := d.Items[0]
	assert.Equal(t, "1", item.ProductId)
	assert.Equal(t, "Executive Office Desk", item.ProductName)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, 500.0, item.UnitPrice)
	assert.Equal(t, 1000.0, item.Total)
}

func TestDraftAddLineRejectsDuplicate(t *testing.T) {
	var d Draft
	require.NoError(t, d.AddLine(desk(), 1))

	err := d.AddLine(desk(), 3)
	assert.ErrorIs(t, err, ErrDuplicateLine)
	require.Len(t, d.Items, 1)
	assert.Equal(t, 1, d.Items[0].Quantity)
}

func TestDraftAddLineRejectsZeroQuantity(t *testing.T) {
	var d Draft
	assert.ErrorIs(t, d.AddLine(desk(), 0), ErrQuantityTooLow)
	assert.Empty(t, d.Items)
}

func TestDraftUpdateQuantity(t *testing.T) {
	var d Draft
	require.NoError(t, d.AddLine(desk(), 1))

	require.NoError(t, d.UpdateQuantity("1", 4))
	assert.Equal(t, 4, d.Items[0].Quantity)
	assert.Equal(t, 2000.0, d.Items[0].Total)

	assert.ErrorIs(t, d.UpdateQuantity("1", 0), ErrQuantityTooLow)
	assert.Equal(t, 4, d.Items[0].Quantity)

	assert.ErrorIs(t, d.UpdateQuantity("missing", 2), ErrLineNotFound)
}

func TestDraftRemoveLine(t *testing.T) {
	var d Draft
	require.NoError(t, d.AddLine(desk(), 1))
	require.NoError(t, d.AddLine(chair(), 2))

	d.RemoveLine("1")
	require.Len(t, d.Items, 1)
	assert.Equal(t, "2", d.Items[0].ProductId)

	d.RemoveLine("missing")
	assert.Len(t, d.Items, 1)
}

func TestDraftStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	drafts := NewDraftStore(store.NewMemoryBackend())

	d, err := drafts.Create(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, d.Id)
	assert.Empty(t, d.Items)

	updated, err := drafts.Mutate(ctx, d.Id, func(d *Draft) error {
		return d.AddLine(desk(), 2)
	})
	require.NoError(t, err)
	require.Len(t, updated.Items, 1)

	loaded, err := drafts.Get(ctx, d.Id)
	require.NoError(t, err)
	assert.Equal(t, updated.Items, loaded.Items)

	require.NoError(t, drafts.Clear(ctx, d.Id))
	_, err = drafts.Get(ctx, d.Id)
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestDraftStoreMutateDoesNotPersistOnError(t *testing.T) {
	ctx := context.Background()
	drafts := NewDraftStore(store.NewMemoryBackend())

	d, err := drafts.Create(ctx)
	require.NoError(t, err)
	_, err = drafts.Mutate(ctx, d.Id, func(d *Draft) error {
		return d.AddLine(desk(), 1)
	})
	require.NoError(t, err)

	_, err = drafts.Mutate(ctx, d.Id, func(d *Draft) error {
		return d.AddLine(desk(), 5)
	})
	assert.ErrorIs(t, err, ErrDuplicateLine)

	loaded, err := drafts.Get(ctx, d.Id)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, 1, loaded.Items[0].Quantity)
}

func TestDraftStoreGetMissing(t *testing.T) {
	drafts := NewDraftStore(store.NewMemoryBackend())
	_, err := drafts.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestQuotationNumber(t *testing.T) {
	at := time.UnixMilli(1700000000000)
	got := QuotationNumber(at)

	assert.Equal(t, "QT-LOYW3V28", got)
	assert.NotEqual(t, got, QuotationNumber(at.Add(time.Millisecond)))
}

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	ctx := context.Background()
	backend := store.NewMemoryBackend()
	st, err := store.Open(ctx, backend)
	require.NoError(t, err)
	return NewService(NewDraftStore(backend), st.Quotations), st
}

func TestServiceSubmit(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService(t)
	svc.now = func() time.Time {
		return time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	}

	d, err := svc.Drafts().Create(ctx)
	require.NoError(t, err)
	_, err = svc.Drafts().Mutate(ctx, d.Id, func(d *Draft) error {
		if err := d.AddLine(desk(), 2); err != nil {
			return err
		}
		return d.AddLine(chair(), 1)
	})
	require.NoError(t, err)

	q, err := svc.Submit(ctx, d.Id, SubmitInput{
		ClientName:  "Ada Lovelace",
		ClientEmail: "ada@example.com",
		TaxPercent:  10,
	})
	require.NoError(t, err)

	assert.Equal(t, 1300.0, q.Subtotal)
	assert.Equal(t, 1430.0, q.Total)
	assert.Equal(t, "2026-03-31", q.ValidUntil)
	assert.Equal(t, models.QuotationStatusDraft, q.Status)
	assert.True(t, len(q.QuotationNumber) > 3 && q.QuotationNumber[:3] == "QT-")
	require.Len(t, q.Items, 2)

	stored, err := st.Quotations.Get(ctx, q.Id)
	require.NoError(t, err)
	assert.Equal(t, q.QuotationNumber, stored.QuotationNumber)

	_, err = svc.Drafts().Get(ctx, d.Id)
	assert.ErrorIs(t, err, ErrDraftNotFound, "submitted draft must be cleared")
}

func TestServiceSubmitRequiresClientInfo(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	d, err := svc.Drafts().Create(ctx)
	require.NoError(t, err)

	_, err = svc.Submit(ctx, d.Id, SubmitInput{ClientEmail: "ada@example.com"})
	assert.ErrorIs(t, err, ErrMissingClientInfo)
	_, err = svc.Submit(ctx, d.Id, SubmitInput{ClientName: "  "})
	assert.ErrorIs(t, err, ErrMissingClientInfo)

	_, err = svc.Drafts().Get(ctx, d.Id)
	assert.NoError(t, err, "rejected submission must leave the draft intact")
}

func TestServiceSubmitMissingDraft(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Submit(context.Background(), "nope", SubmitInput{
		ClientName:  "Ada Lovelace",
		ClientEmail: "ada@example.com",
	})
	assert.ErrorIs(t, err, ErrDraftNotFound)
}
