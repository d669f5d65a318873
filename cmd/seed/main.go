package main

import (
	"fmt"
	"log"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"picvault/internal/config"
	"picvault/internal/database"
	"picvault/internal/domain/image"
)

// Seeds the images table with fake records for local frontend work. Blobs are
// not written; the public URLs point at placeholder images.
func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(&image.Image{}); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM images")

	names := []string{
		"sunset.jpg", "cat.png", "meme.gif", "screenshot.png",
		"banner.webp", "avatar.jpg", "diagram.png", "photo.jpg",
	}
	contentTypes := map[string]string{
		"jpg": "image/jpeg", "png": "image/png", "gif": "image/gif", "webp": "image/webp",
	}
	options := []image.ExpiryOption{image.Expiry24h, image.Expiry7d, image.ExpiryPermanent}

	log.Println("Creating images...")
	for i, name := range names {
		id := uuid.New().String()
		key := image.StorageKey(id, name)
		createdAt := time.Now().UTC().Add(-time.Duration(i) * time.Hour)

		expiresAt, _ := image.ExpiresAt(options[rand.Intn(len(options))], createdAt)

		size := int64(100_000 + rand.Intn(5_000_000))
		ext := strings.TrimPrefix(filepath.Ext(name), ".")
		img := image.Image{
			ID:          id,
			StoragePath: key,
			PublicURL:   fmt.Sprintf("https://picsum.photos/seed/%s/800/600", id[:8]),
			Filename:    name,
			Size:        &size,
			ContentType: contentTypes[ext],
			CreatedAt:   createdAt,
			ExpiresAt:   expiresAt,
		}
		if err := db.Create(&img).Error; err != nil {
			log.Fatal("seed insert failed:", err)
		}
	}

	log.Printf("Seeded %d images into %s", len(names), cfg.DatabaseURL)
}
