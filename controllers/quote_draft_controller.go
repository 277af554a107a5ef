package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/luxefurnish/furnishbackend/dto"
	"github.com/luxefurnish/furnishbackend/quote"
	"github.com/luxefurnish/furnishbackend/store"
	"github.com/luxefurnish/furnishbackend/utils"
)

// draftResponse always pairs the draft with its current totals so the
// builder UI can render the breakdown without a second request.
func draftResponse(c *gin.Context, status int, d quote.Draft) {
	discount := utils.ParseFloatDefault(c.Query("discount_percent"), 0)
	tax := utils.ParseFloatDefault(c.Query("tax_percent"), 0)
	c.JSON(status, gin.H{
		"draft":  d,
		"totals": d.Totals(discount, tax),
	})
}

// POST /quote-drafts
func CreateQuoteDraft(svc *quote.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := svc.Drafts().Create(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		draftResponse(c, http.StatusCreated, d)
	}
}

// GET /quote-drafts/:id
func GetQuoteDraft(svc *quote.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := svc.Drafts().Get(c.Request.Context(), c.Param("id"))
		if errors.Is(err, quote.ErrDraftNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "draft not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		draftResponse(c, http.StatusOK, d)
	}
}

// POST /quote-drafts/:id/items
// Adds a product line, snapshotting its current name and price. A product
// already on the draft is a 409; the caller adjusts quantity instead.
func AddDraftItem(svc *quote.Service, s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.AddDraftItemDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if body.Quantity < 1 {
			body.Quantity = 1
		}

		product, err := s.Products.Get(ctx, body.ProductID)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		d, err := svc.Drafts().Mutate(ctx, c.Param("id"), func(d *quote.Draft) error {
			return d.AddLine(product, body.Quantity)
		})
		switch {
		case errors.Is(err, quote.ErrDraftNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "draft not found"})
			return
		case errors.Is(err, quote.ErrDuplicateLine):
			c.JSON(http.StatusConflict, gin.H{"error": "product already added"})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		draftResponse(c, http.StatusCreated, d)
	}
}

// PATCH /quote-drafts/:id/items/:productId
func UpdateDraftItem(svc *quote.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.UpdateDraftItemDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		d, err := svc.Drafts().Mutate(c.Request.Context(), c.Param("id"), func(d *quote.Draft) error {
			return d.UpdateQuantity(c.Param("productId"), body.Quantity)
		})
		switch {
		case errors.Is(err, quote.ErrDraftNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "draft not found"})
			return
		case errors.Is(err, quote.ErrLineNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "line item not found"})
			return
		case errors.Is(err, quote.ErrQuantityTooLow):
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be at least 1"})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		draftResponse(c, http.StatusOK, d)
	}
}

// DELETE /quote-drafts/:id/items/:productId
func RemoveDraftItem(svc *quote.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := svc.Drafts().Mutate(c.Request.Context(), c.Param("id"), func(d *quote.Draft) error {
			d.RemoveLine(c.Param("productId"))
			return nil
		})
		if errors.Is(err, quote.ErrDraftNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "draft not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		draftResponse(c, http.StatusOK, d)
	}
}

// POST /quote-drafts/:id/submit
func SubmitQuoteDraft(svc *quote.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.SubmitQuotationDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		q, err := svc.Submit(c.Request.Context(), c.Param("id"), quote.SubmitInput{
			ClientName:      body.ClientName,
			ClientEmail:     body.ClientEmail,
			ClientPhone:     body.ClientPhone,
			ClientCompany:   body.ClientCompany,
			Notes:           body.Notes,
			DiscountPercent: body.DiscountPercent,
			TaxPercent:      body.TaxPercent,
		})
		switch {
		case errors.Is(err, quote.ErrDraftNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "draft not found"})
			return
		case errors.Is(err, quote.ErrMissingClientInfo):
			c.JSON(http.StatusBadRequest, gin.H{"error": "client name and email are required"})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, q)
	}
}
