package image

import (
	"errors"
	"testing"
	"time"
)

func TestExpiresAtDurations(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	got, err := ExpiresAt(Expiry24h, now)
	if err != nil {
		t.Fatalf("ExpiresAt(24h) returned error: %v", err)
	}
	if got == nil || !got.Equal(now.Add(24*time.Hour)) {
		t.Fatalf("expected now+24h, got %v", got)
	}

	got, err = ExpiresAt(Expiry7d, now)
	if err != nil {
		t.Fatalf("ExpiresAt(7d) returned error: %v", err)
	}
	if got == nil || !got.Equal(now.Add(7*24*time.Hour)) {
		t.Fatalf("expected now+7d, got %v", got)
	}
}

func TestExpiresAtPermanent(t *testing.T) {
	now := time.Now()

	for _, option := range []ExpiryOption{ExpiryPermanent, ""} {
		got, err := ExpiresAt(option, now)
		if err != nil {
			t.Fatalf("ExpiresAt(%q) returned error: %v", option, err)
		}
		if got != nil {
			t.Fatalf("expected nil for %q, got %v", option, got)
		}
	}
}

func TestExpiresAtRejectsUnknownOption(t *testing.T) {
	_, err := ExpiresAt("30d", time.Now())
	if !errors.Is(err, ErrInvalidExpiry) {
		t.Fatalf("expected ErrInvalidExpiry, got %v", err)
	}
}
