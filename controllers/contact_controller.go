package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/luxefurnish/furnishbackend/dto"
	"github.com/luxefurnish/furnishbackend/models"
	"github.com/luxefurnish/furnishbackend/store"
	"github.com/luxefurnish/furnishbackend/utils"
)

// POST /contact-inquiries (public)
func CreateContactInquiry(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CreateContactInquiryDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		body.Name = strings.TrimSpace(body.Name)
		body.Email = strings.TrimSpace(body.Email)
		body.Message = strings.TrimSpace(body.Message)
		if body.Name == "" || body.Email == "" || body.Message == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, email and message are required"})
			return
		}

		inquiry := models.ContactInquiry{
			Name:    body.Name,
			Email:   body.Email,
			Phone:   strings.TrimSpace(body.Phone),
			Company: strings.TrimSpace(body.Company),
			Subject: strings.TrimSpace(body.Subject),
			Message: body.Message,
			Status:  models.ContactInquiryStatusNew,
		}

		created, err := s.ContactInquiries.Create(c.Request.Context(), inquiry)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, created)
	}
}

// GET /admin/contact-inquiries
func GetContactInquiries(s *store.Store) gin.HandlerFunc {
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
			"status": strings.TrimSpace(c.Query("status")),
			"email":  strings.TrimSpace(c.Query("email")),
		}

		items, err := s.ContactInquiries.Filter(c.Request.Context(), q, sortSpec, limit)
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
