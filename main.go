package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/luxefurnish/furnishbackend/controllers"
	"github.com/luxefurnish/furnishbackend/database"
	"github.com/luxefurnish/furnishbackend/middleware"
	"github.com/luxefurnish/furnishbackend/models"
	"github.com/luxefurnish/furnishbackend/quote"
	"github.com/luxefurnish/furnishbackend/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Error loading .env file")
	}

	ctx := context.Background()
	s, err := database.Open(ctx)
	if err != nil {
		log.Fatal(err)
	}
	defer s.Close()

	if err := utils.SeedAdminUser(ctx, s.Users); err != nil {
		log.Fatal(err)
	}

	drafts := quote.NewDraftStore(s.Backend())
	quoteSvc := quote.NewService(drafts, s.Quotations)
	imageValidator := utils.NewImageValidator()

	r := gin.New()

	origins := os.Getenv("ALLOWED_ORIGINS")
	allowedOrigins := map[string]bool{}
	for _, origin := range strings.Split(origins, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			allowedOrigins[origin] = true
		}
	}
	log.Printf("Allowed origins: %v", allowedOrigins)
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return allowedOrigins[origin]
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	r.POST("/auth/login", controllers.Login(s))
	r.POST("/auth/refresh", controllers.Refresh(s))
	r.POST("/auth/logout", controllers.Logout(s))

	r.GET("/products", controllers.GetProducts(s))
	r.GET("/products/:id", controllers.GetProduct(s))
	r.POST("/contact-inquiries", controllers.CreateContactInquiry(s))

	r.POST("/quote-drafts", controllers.CreateQuoteDraft(quoteSvc))
	r.GET("/quote-drafts/:id", controllers.GetQuoteDraft(quoteSvc))
	r.POST("/quote-drafts/:id/items", controllers.AddDraftItem(quoteSvc, s))
	r.PATCH("/quote-drafts/:id/items/:productId", controllers.UpdateDraftItem(quoteSvc))
	r.DELETE("/quote-drafts/:id/items/:productId", controllers.RemoveDraftItem(quoteSvc))
	r.POST("/quote-drafts/:id/submit", controllers.SubmitQuoteDraft(quoteSvc))

	admin := r.Group("/admin")
	admin.Use(middleware.AuthRequired())
	{
		admin.POST("/products", controllers.AddProduct(s, imageValidator))
		admin.PATCH("/products/:id", controllers.UpdateProduct(s))
		admin.DELETE("/products/:id", controllers.DeleteProduct(s))

		admin.GET("/contact-inquiries", controllers.GetContactInquiries(s))

		admin.GET("/quotations", controllers.GetQuotations(s))
		admin.GET("/quotations/:id", controllers.GetQuotation(s))
		admin.PATCH("/quotations/:id/status", controllers.UpdateQuotationStatus(s))

		admin.POST("/users", middleware.RequireRole(models.RoleAdmin), controllers.CreateUser(s))
		admin.POST("/users/me/password", controllers.ChangeMyPassword(s))
	}

	// Server listens on 0.0.0.0:8080 by default
	r.Run()
}
