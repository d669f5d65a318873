package image

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"time"

	"github.com/google/uuid"

	"picvault/internal/storage"
)

const (
	// RecentLimit caps the public listing.
	RecentLimit = 12
	// MetricsWindow bounds how many newest rows the aggregate metrics scan.
	MetricsWindow = 500
	// expiringSoonHorizon is how far ahead a non-permanent record counts as
	// expiring soon.
	expiringSoonHorizon = 72 * time.Hour
)

// Service sequences the upload lifecycle: validate, derive id and key,
// compute expiry, write the blob, resolve its public URL, insert the row.
// Stages run in that order within one request; failures terminate the
// sequence and nothing retries automatically.
type Service struct {
	repo  Repository
	store storage.Storage
}

// NewService wires the orchestrator. Either dependency may be nil for a
// partially configured deployment: reads degrade to empty results, writes
// fail hard.
func NewService(repo Repository, store storage.Storage) *Service {
	return &Service{repo: repo, store: store}
}

// Upload runs the full lifecycle for one file and returns the client-facing
// result. A blob-write failure leaves no metadata row; a row-insert failure
// triggers a best-effort delete of the just-written blob.
func (s *Service) Upload(ctx context.Context, fileHeader *multipart.FileHeader, option ExpiryOption) (*UploadResult, error) {
	if s.store == nil {
		return nil, ErrStorageUnconfigured
	}
	if s.repo == nil {
		return nil, fmt.Errorf("%w: metadata store not configured", ErrMetadataWrite)
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if err := ValidateUpload(contentType, fileHeader.Size); err != nil {
		return nil, err
	}

	id := uuid.New().String()
	key := StorageKey(id, fileHeader.Filename)

	// One clock read feeds both timestamps, so expires_at - created_at is
	// exactly the option's duration.
	now := time.Now().UTC()
	expiresAt, err := ExpiresAt(option, now)
	if err != nil {
		return nil, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("open uploaded file: %w", err)
	}
	defer file.Close()

	if err := s.store.Put(ctx, key, file, fileHeader.Size, contentType); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}

	publicURL := s.store.PublicURL(key)

	size := fileHeader.Size
	img := &Image{
		ID:          id,
		StoragePath: key,
		PublicURL:   publicURL,
		Filename:    fileHeader.Filename,
		Size:        &size,
		ContentType: contentType,
		CreatedAt:   now,
		ExpiresAt:   expiresAt,
	}

	if err := s.repo.Create(ctx, img); err != nil {
		// Compensating delete so the blob does not linger without a row.
		// If it fails too, the orphan stays until reconciled out-of-band.
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			log.Printf("image: orphaned blob %s: %v", key, delErr)
		}
		return nil, fmt.Errorf("%w: %v", ErrMetadataWrite, err)
	}

	return &UploadResult{
		ID:        id,
		URL:       publicURL,
		Filename:  fileHeader.Filename,
		ExpiresAt: expiresAt,
	}, nil
}

// Recent returns the newest uploads for the public listing. An unconfigured
// metadata store is a valid deployment state and yields an empty list.
func (s *Service) Recent(ctx context.Context) ([]Image, error) {
	if s.repo == nil {
		return []Image{}, nil
	}
	images, err := s.repo.Recent(ctx, RecentLimit)
	if err != nil {
		return nil, err
	}
	if images == nil {
		images = []Image{}
	}
	return images, nil
}

// Metrics aggregates over the newest MetricsWindow rows. Read failures are
// logged and degrade to a zeroed result; the dashboard never sees an error.
func (s *Service) Metrics(ctx context.Context) Metrics {
	if s.repo == nil {
		return Metrics{}
	}

	window, total, err := s.repo.Window(ctx, MetricsWindow)
	if err != nil {
		log.Printf("image: failed to load metrics: %v", err)
		return Metrics{}
	}

	m := Metrics{TotalUploads: total}
	horizon := time.Now().Add(expiringSoonHorizon)
	for _, img := range window {
		if img.Size != nil {
			m.TotalBytes += *img.Size
		}
		if img.ExpiresAt != nil && img.ExpiresAt.Before(horizon) {
			m.ExpiringSoon++
		}
	}
	if len(window) > 0 {
		last := window[0].CreatedAt
		m.LastUploadAt = &last
	}
	return m
}
