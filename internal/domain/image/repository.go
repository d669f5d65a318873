package image

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, img *Image) error
	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]Image, error)
	// Window returns up to limit newest records plus the exact total row
	// count (the count is not limited to the window).
	Window(ctx context.Context, limit int) ([]Image, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, img *Image) error {
	return r.db.WithContext(ctx).Create(img).Error
}

func (r *repository) Recent(ctx context.Context, limit int) ([]Image, error) {
	var images []Image
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&images).Error
	return images, err
}

func (r *repository) Window(ctx context.Context, limit int) ([]Image, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&Image{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var images []Image
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&images).Error
	if err != nil {
		return nil, 0, err
	}
	return images, total, nil
}
