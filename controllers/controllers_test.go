package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxefurnish/furnishbackend/models"
	"github.com/luxefurnish/furnishbackend/quote"
	"github.com/luxefurnish/furnishbackend/store"
)

func newTestRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backend := store.NewMemoryBackend()
	s, err := store.Open(context.Background(), backend)
	require.NoError(t, err)

	svc := quote.NewService(quote.NewDraftStore(backend), s.Quotations)

	r := gin.New()
	r.GET("/products", GetProducts(s))
	r.GET("/products/:id", GetProduct(s))
	r.POST("/contact-inquiries", CreateContactInquiry(s))
	r.POST("/quote-drafts", CreateQuoteDraft(svc))
	r.GET("/quote-drafts/:id", GetQuoteDraft(svc))
	r.POST("/quote-drafts/:id/items", AddDraftItem(svc, s))
	r.PATCH("/quote-drafts/:id/items/:productId", UpdateDraftItem(svc))
	r.DELETE("/quote-drafts/:id/items/:productId", RemoveDraftItem(svc))
	r.POST("/quote-drafts/:id/submit", SubmitQuoteDraft(svc))
	return r, s
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestGetProductsReturnsSeedCatalog(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/products", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []models.Product `json:"items"`
		Total int              `json:"total"`
		Sort  string           `json:"sort"`
	}
	decode(t, w, &resp)
	assert.Len(t, resp.Items, len(store.SampleProducts))
	assert.Equal(t, len(store.SampleProducts), resp.Total)
	assert.Equal(t, "-created_date", resp.Sort)
}

func TestGetProductsFilters(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/products?type=office&featured=true", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []models.Product `json:"items"`
	}
	decode(t, w, &resp)
	require.NotEmpty(t, resp.Items)
	for _, p := range resp.Items {
		assert.Equal(t, "office", p.Type)
		assert.True(t, p.Featured)
	}
}

func TestGetProductsSubstringSearch(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/products?q=desk", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []models.Product `json:"items"`
	}
	decode(t, w, &resp)
	require.NotEmpty(t, resp.Items)
	for _, p := range resp.Items {
		assert.Contains(t, p.Name, "Desk")
	}
}

func TestGetProductNotFound(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/products/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateContactInquiry(t *testing.T) {
	r, s := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/contact-inquiries", gin.H{
		"name":    "Ada Lovelace",
		"email":   "ada@example.com",
		"message": "Looking for a conference table.",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.ContactInquiry
	decode(t, w, &created)
	assert.NotEmpty(t, created.Id)
	assert.Equal(t, models.ContactInquiryStatusNew, created.Status)
	assert.NotEmpty(t, created.CreatedDate)

	stored, err := s.ContactInquiries.Get(context.Background(), created.Id)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", stored.Email)
}

func TestCreateContactInquiryValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/contact-inquiries", gin.H{
		"name":  "Ada Lovelace",
		"email": "ada@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/contact-inquiries", gin.H{
		"name":    "Ada Lovelace",
		"email":   "not-an-email",
		"message": "hello",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

type draftResp struct {
	Draft  quote.Draft  `json:"draft"`
	Totals quote.Totals `json:"totals"`
}

func createDraft(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/quote-drafts", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var resp draftResp
	decode(t, w, &resp)
	require.NotEmpty(t, resp.Draft.Id)
	return resp.Draft.Id
}

func TestQuoteDraftLifecycle(t *testing.T) {
	r, _ := newTestRouter(t)
	id := createDraft(t, r)

	// seed product 1 is the 2500 desk
	w := doJSON(t, r, http.MethodPost, "/quote-drafts/"+id+"/items", gin.H{
		"product_id": "1",
		"quantity":   2,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var resp draftResp
	decode(t, w, &resp)
	require.Len(t, resp.Draft.Items, 1)
	assert.Equal(t, "Executive Office Desk", resp.Draft.Items[0].ProductName)
	assert.Equal(t, 5000.0, resp.Draft.Items[0].Total)
	assert.Equal(t, 5000.0, resp.Totals.Subtotal)

	// same product again is a conflict, not a merge
	w = doJSON(t, r, http.MethodPost, "/quote-drafts/"+id+"/items", gin.H{
		"product_id": "1",
		"quantity":   1,
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodPatch, "/quote-drafts/"+id+"/items/1", gin.H{
		"quantity": 3,
	})
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &resp)
	assert.Equal(t, 3, resp.Draft.Items[0].Quantity)
	assert.Equal(t, 7500.0, resp.Draft.Items[0].Total)

	w = doJSON(t, r, http.MethodDelete, "/quote-drafts/"+id+"/items/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &resp)
	assert.Empty(t, resp.Draft.Items)
}

func TestAddDraftItemUnknownProduct(t *testing.T) {
	r, _ := newTestRouter(t)
	id := createDraft(t, r)

	w := doJSON(t, r, http.MethodPost, "/quote-drafts/"+id+"/items", gin.H{
		"product_id": "does-not-exist",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetQuoteDraftTotalsFromQuery(t *testing.T) {
	r, _ := newTestRouter(t)
	id := createDraft(t, r)

	w := doJSON(t, r, http.MethodPost, "/quote-drafts/"+id+"/items", gin.H{
		"product_id": "2", // 850 chair
		"quantity":   2,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	path := fmt.Sprintf("/quote-drafts/%s?discount_percent=10&tax_percent=15", id)
	w = doJSON(t, r, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp draftResp
	decode(t, w, &resp)
	assert.Equal(t, 1700.0, resp.Totals.Subtotal)
	assert.Equal(t, 170.0, resp.Totals.DiscountAmount)
	assert.Equal(t, 1530.0, resp.Totals.TaxableAmount)
	assert.Equal(t, 229.5, resp.Totals.TaxAmount)
	assert.Equal(t, 1759.5, resp.Totals.Total)
}

func TestSubmitQuoteDraft(t *testing.T) {
	r, s := newTestRouter(t)
	id := createDraft(t, r)

	w := doJSON(t, r, http.MethodPost, "/quote-drafts/"+id+"/items", gin.H{
		"product_id": "1",
		"quantity":   1,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/quote-drafts/"+id+"/submit", gin.H{
		"client_name":  "Ada Lovelace",
		"client_email": "ada@example.com",
		"tax_percent":  10,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var q models.Quotation
	decode(t, w, &q)
	assert.Equal(t, 2500.0, q.Subtotal)
	assert.Equal(t, 2750.0, q.Total)
	assert.Equal(t, models.QuotationStatusDraft, q.Status)
	assert.Contains(t, q.QuotationNumber, "QT-")

	stored, err := s.Quotations.Get(context.Background(), q.Id)
	require.NoError(t, err)
	assert.Equal(t, q.Total, stored.Total)

	// draft is gone once submitted
	w = doJSON(t, r, http.MethodGet, "/quote-drafts/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitQuoteDraftValidation(t *testing.T) {
	r, _ := newTestRouter(t)
	id := createDraft(t, r)

	w := doJSON(t, r, http.MethodPost, "/quote-drafts/"+id+"/submit", gin.H{
		"client_email": "ada@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
