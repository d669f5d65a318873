package image

import "time"

// ExpiryOption is the user-selected time-to-live class for an upload.
type ExpiryOption string

const (
	Expiry24h       ExpiryOption = "24h"
	Expiry7d        ExpiryOption = "7d"
	ExpiryPermanent ExpiryOption = "permanent"
)

// ExpiresAt maps an expiry option to an absolute instant relative to now.
// Permanent (and the unspecified empty option) yields nil. The result is
// computed exactly once at upload acceptance from the server clock and frozen
// into the record; there is no renewal.
func ExpiresAt(option ExpiryOption, now time.Time) (*time.Time, error) {
	switch option {
	case Expiry24h:
		t := now.Add(24 * time.Hour)
		return &t, nil
	case Expiry7d:
		t := now.Add(7 * 24 * time.Hour)
		return &t, nil
	case ExpiryPermanent, "":
		return nil, nil
	default:
		return nil, ErrInvalidExpiry
	}
}
