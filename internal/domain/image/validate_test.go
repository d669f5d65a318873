package image

import (
	"errors"
	"testing"
)

func TestValidateUploadAcceptedTypes(t *testing.T) {
	for _, ct := range []string{"image/jpeg", "image/png", "image/gif", "image/webp"} {
		if err := ValidateUpload(ct, 1024); err != nil {
			t.Fatalf("expected %q to pass validation, got %v", ct, err)
		}
	}

	// Parameters and case on the declared type do not matter.
	if err := ValidateUpload("IMAGE/PNG; charset=binary", 1024); err != nil {
		t.Fatalf("expected parameterized type to pass, got %v", err)
	}
}

func TestValidateUploadRejectsOtherTypes(t *testing.T) {
	for _, ct := range []string{"image/svg+xml", "application/pdf", "text/html", "video/mp4", ""} {
		if err := ValidateUpload(ct, 1024); !errors.Is(err, ErrUnsupportedType) {
			t.Fatalf("expected ErrUnsupportedType for %q, got %v", ct, err)
		}
	}
}

func TestValidateUploadSizeCeiling(t *testing.T) {
	if err := ValidateUpload("image/png", MaxFileSize); err != nil {
		t.Fatalf("expected size == ceiling to pass, got %v", err)
	}
	if err := ValidateUpload("image/png", MaxFileSize+1); !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
	if err := ValidateUpload("image/png", 0); !errors.Is(err, ErrEmptyFile) {
		t.Fatalf("expected ErrEmptyFile, got %v", err)
	}
}
