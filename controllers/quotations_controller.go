package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/luxefurnish/furnishbackend/dto"
	"github.com/luxefurnish/furnishbackend/models"
	"github.com/luxefurnish/furnishbackend/store"
	"github.com/luxefurnish/furnishbackend/utils"
)

// GET /admin/quotations
func GetQuotations(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := utils.ParseIntDefault(c.Query("limit"), 50)
		if limit < 1 {
			limit = 50
		}
		if limit > 200 {
			limit = 200
		}

		sortSpec := strings.TrimSpace(c.Query("sort"))
		if sortSpec == "" {
			sortSpec = "-created_date"
		}

		q := store.Query{
			"status":       strings.TrimSpace(c.Query("status")),
			"client_email": strings.TrimSpace(c.Query("client_email")),
		}

		items, err := s.Quotations.Filter(c.Request.Context(), q, sortSpec, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items": items,
			"limit": limit,
			"total": len(items),
		})
	}
}

// GET /admin/quotations/:id
func GetQuotation(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		q, err := s.Quotations.Get(c.Request.Context(), c.Param("id"))
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "quotation not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, q)
	}
}

// PATCH /admin/quotations/:id/status
func UpdateQuotationStatus(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.UpdateQuotationStatusDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updated, err := s.Quotations.Update(c.Request.Context(), c.Param("id"), func(q *models.Quotation) {
			q.Status = models.QuotationStatus(body.Status)
		})
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "quotation not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}
