package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"picvault/internal/config"
	"picvault/internal/database"
	"picvault/internal/domain/image"
	"picvault/internal/middleware"
	jwtsvc "picvault/internal/pkg/jwt"
	"picvault/internal/storage"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrate(&image.Image{}); err != nil {
		log.Fatal(err)
	}

	// Uploads need the blob store; listing and metrics work without it.
	var store storage.Storage
	if cfg.StorageConfigured() {
		minioStore, err := storage.NewMinioStorage(
			cfg.StorageEndpoint,
			cfg.StorageAccessKey,
			cfg.StorageSecretKey,
			cfg.StorageBucket,
			cfg.StoragePublicBase,
			cfg.StorageUseSSL,
		)
		if err != nil {
			log.Fatal(err)
		}
		store = minioStore
	} else {
		log.Println("main: storage credentials absent, uploads disabled")
	}

	imageRepo := image.NewRepository(db)
	imageService := image.NewService(imageRepo, store)
	imageHandler := image.NewHandler(imageService)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())
	r.MaxMultipartMemory = image.MaxFileSize

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	var uploadGate []gin.HandlerFunc
	if cfg.UploadAuthSecret != "" {
		j := jwtsvc.New(cfg.UploadAuthSecret, 24*time.Hour)
		uploadGate = append(uploadGate, middleware.UploadAuth(j))
		log.Println("main: upload auth gate enabled")
	}

	v1 := r.Group("/api/v1")
	{
		image.RegisterRoutes(v1, imageHandler, uploadGate...)
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
