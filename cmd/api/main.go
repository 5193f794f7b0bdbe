package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harentsoaR/vaxicare-api/internal/config"
	"github.com/harentsoaR/vaxicare-api/internal/handlers"
	"github.com/harentsoaR/vaxicare-api/internal/middleware"
	"github.com/harentsoaR/vaxicare-api/internal/repository"
	"github.com/harentsoaR/vaxicare-api/internal/services"
	"github.com/harentsoaR/vaxicare-api/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.JWTSecret == "" {
		log.Println("JWT_SECRET is NOT SET.")
	}

	// --- Database Connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)
	db := client.Database(cfg.MongoDatabase)
	log.Println("Successfully connected to MongoDB!")

	// --- Storage ---
	blobs, err := storage.NewGridFSBlobs(db)
	if err != nil {
		log.Fatalf("Failed to open images bucket: %v", err)
	}
	images := storage.NewImageStore(blobs, cfg.PublicBaseURL)

	// --- Services ---
	claimSvc := services.NewAdminClaimService(
		repository.NewMongoClaimStore(db),
		repository.NewMongoProfileStore(db),
	)
	dashboardSvc := services.NewDashboardService(repository.NewMongoDashboardStore(db))
	notificationSvc := services.NewNotificationService()

	h := handlers.NewHandler(db, claimSvc, dashboardSvc, notificationSvc, images, blobs)

	// --- Gin Router ---
	r := gin.Default()

	r.Use(middleware.TraceIDMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// --- Public routes (marketing site) ---
	r.GET("/products", h.ListProducts)
	r.GET("/products/:id", h.GetProduct)
	r.GET("/articles", h.ListArticles)
	r.GET("/articles/:id", h.GetArticle)
	r.GET("/locations", h.ListLocations)
	r.GET("/pediatricians", h.ListPediatricians)
	r.GET("/images/:folder/:name", h.ServeImage)

	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register", h.RegisterUser)
		authRoutes.POST("/login", h.Login)
	}

	apiRoutes := r.Group("/api")
	apiRoutes.Use(middleware.AuthMiddleware())
	{
		apiRoutes.GET("/me", h.GetCurrentUser)
		apiRoutes.PUT("/me", h.UpdateCurrentUser)
		apiRoutes.GET("/appointments", h.GetAppointments)
		apiRoutes.POST("/appointments", h.CreateAppointment)
		apiRoutes.PATCH("/appointments/:id/cancel", h.CancelAppointment)
	}

	adminRoutes := r.Group("/api/admin")
	adminRoutes.Use(middleware.AuthMiddleware(), middleware.AdminOnly())
	{
		adminRoutes.GET("/dashboard", h.GetDashboard)
		adminRoutes.POST("/claims", h.SetAdminClaim)

		adminRoutes.GET("/users", h.ListUsers)
		adminRoutes.GET("/users/:id", h.GetUser)
		adminRoutes.PUT("/users/:id", h.UpdateUser)
		adminRoutes.DELETE("/users/:id", h.DeleteUser)

		adminRoutes.POST("/products", h.CreateProduct)
		adminRoutes.PUT("/products/:id", h.UpdateProduct)
		adminRoutes.DELETE("/products/:id", h.DeleteProduct)

		adminRoutes.POST("/locations", h.CreateLocation)
		adminRoutes.PUT("/locations/:id", h.UpdateLocation)
		adminRoutes.DELETE("/locations/:id", h.DeleteLocation)

		adminRoutes.PUT("/appointments/:id", h.UpdateAppointment)
		adminRoutes.DELETE("/appointments/:id", h.DeleteAppointment)

		adminRoutes.POST("/articles", h.CreateArticle)
		adminRoutes.PUT("/articles/:id", h.UpdateArticle)
		adminRoutes.DELETE("/articles/:id", h.DeleteArticle)

		adminRoutes.POST("/pediatricians", h.CreatePediatrician)
		adminRoutes.PUT("/pediatricians/:id", h.UpdatePediatrician)
		adminRoutes.DELETE("/pediatricians/:id", h.DeletePediatrician)

		adminRoutes.POST("/images/:folder", h.UploadImage)
	}

	log.Printf("Starting server on port %s", cfg.APIPort)
	r.Run(":" + cfg.APIPort)
}
