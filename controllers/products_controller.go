package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/luxefurnish/furnishbackend/dto"
	"github.com/luxefurnish/furnishbackend/models"
	"github.com/luxefurnish/furnishbackend/store"
	"github.com/luxefurnish/furnishbackend/utils"
)

// GET /products
// Query params map onto the store's filter semantics: category and name
// match by case-insensitive containment, type exactly, featured/in_stock as
// booleans. Empty params are skipped.
func GetProducts(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		limit := utils.ParseIntDefault(c.Query("limit"), 100)
		if limit < 1 {
			limit = 100
		}
		if limit > 500 {
			limit = 500
		}

		sortSpec := strings.TrimSpace(c.Query("sort"))
		if sortSpec == "" {
			sortSpec = "-created_date" // newest first
		}

		q := store.Query{
			"category": strings.TrimSpace(c.Query("category")),
			"type":     strings.TrimSpace(c.Query("type")),
			"name":     strings.TrimSpace(c.Query("q")),
		}
		if b, err := utils.ParseBoolQuery(c.Query("featured")); err == nil && b != nil {
			q["featured"] = *b
		}
		if b, err := utils.ParseBoolQuery(c.Query("in_stock")); err == nil && b != nil {
			q["in_stock"] = *b
		}

		products, err := s.Products.Filter(ctx, q, sortSpec, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items": products,
			"limit": limit,
			"total": len(products),
			"sort":  sortSpec,
		})
	}
}

// GET /products/:id
func GetProduct(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := s.Products.Get(c.Request.Context(), c.Param("id"))
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// POST /admin/products
// multipart/form-data:
//   - data: JSON string (CreateProductDTO)
//   - image: optional product photo, uploaded to object storage
func AddProduct(s *store.Store, v *utils.ImageValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		dataStr := c.PostForm("data")
		if dataStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing data"})
			return
		}

		var body dto.CreateProductDTO
		if err := json.Unmarshal([]byte(dataStr), &body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid data json", "details": err.Error()})
			return
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}
		if body.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
			return
		}
		if body.Type != "" && body.Type != "office" && body.Type != "home" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "type must be 'office' or 'home'"})
			return
		}

		imageUrl := strings.TrimSpace(body.ImageUrl)
		if file, err := c.FormFile("image"); err == nil && file != nil {
			if _, err := v.ValidateFile(file); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			r2, err := utils.NewCloudClient(ctx)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to init storage client"})
				return
			}
			url, err := utils.UploadProductImage(ctx, r2, utils.GenerateSlug(body.Name), file)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "image upload failed", "details": err.Error()})
				return
			}
			imageUrl = url
		}

		product := models.Product{
			Name:        body.Name,
			Category:    strings.TrimSpace(body.Category),
			Type:        body.Type,
			Price:       body.Price,
			Description: body.Description,
			Dimensions:  body.Dimensions,
			Materials:   body.Materials,
			Colors:      body.Colors,
			ImageUrl:    imageUrl,
			InStock:     body.InStock,
			Featured:    body.Featured,
		}

		created, err := s.Products.Create(ctx, product)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, created)
	}
}

// PATCH /admin/products/:id
func UpdateProduct(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.UpdateProductDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updated, err := s.Products.Update(ctx, c.Param("id"), func(p *models.Product) {
			if body.Name != nil {
				p.Name = *body.Name
			}
			if body.Category != nil {
				p.Category = *body.Category
			}
			if body.Type != nil {
				p.Type = *body.Type
			}
			if body.Price != nil {
				p.Price = *body.Price
			}
			if body.Description != nil {
				p.Description = *body.Description
			}
			if body.Dimensions != nil {
				p.Dimensions = *body.Dimensions
			}
			if body.Materials != nil {
				p.Materials = *body.Materials
			}
			if body.Colors != nil {
				p.Colors = *body.Colors
			}
			if body.ImageUrl != nil {
				p.ImageUrl = *body.ImageUrl
			}
			if body.InStock != nil {
				p.InStock = body.InStock
			}
			if body.Featured != nil {
				p.Featured = *body.Featured
			}
		})
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

// DELETE /admin/products/:id
func DeleteProduct(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := s.Products.Delete(c.Request.Context(), id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	}
}
