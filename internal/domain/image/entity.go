package image

import "time"

// Image is a persisted upload record. Rows are create-then-read-only: nothing
// updates an Image after insert, and expiry is advisory metadata with no
// enforcement job.
type Image struct {
	ID          string     `gorm:"column:id;primaryKey" json:"id"`
	StoragePath string     `gorm:"column:storage_path" json:"-"`          // "{id}.{ext}", the blob key
	PublicURL   string     `gorm:"column:public_url" json:"publicUrl"`    // resolved once at upload time
	Filename    string     `gorm:"column:filename" json:"filename"`       // original client name, display only
	Size        *int64     `gorm:"column:size" json:"size"`               // nil when the backend failed to report it
	ContentType string     `gorm:"column:content_type" json:"-"`          // as declared by the client
	CreatedAt   time.Time  `gorm:"column:created_at" json:"createdAt"`
	ExpiresAt   *time.Time `gorm:"column:expires_at" json:"expiresAt"` // nil means permanent
}

func (Image) TableName() string { return "images" }

// Metrics summarizes recent upload activity for the admin dashboard.
// TotalBytes and ExpiringSoon are computed over a bounded window of newest
// records, so they under-report once the table outgrows the window;
// TotalUploads is the exact table count.
type Metrics struct {
	TotalUploads int64      `json:"totalUploads"`
	TotalBytes   int64      `json:"totalBytes"`
	ExpiringSoon int64      `json:"expiringSoon"`
	LastUploadAt *time.Time `json:"lastUploadAt"`
}

// UploadResult is the client-facing success body of an upload.
type UploadResult struct {
	ID        string     `json:"id"`
	URL       string     `json:"url"`
	Filename  string     `json:"filename"`
	ExpiresAt *time.Time `json:"expiresAt"`
}
