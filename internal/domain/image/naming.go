package image

import (
	"path/filepath"
	"strings"
)

// fallbackExt is used when the original filename carries no usable extension.
const fallbackExt = "img"

// StorageKey derives the blob key "{id}.{ext}" for a fresh identifier and the
// client-supplied filename. Only the extension is taken from user input —
// never the name itself — so attacker-chosen names cannot steer the key.
func StorageKey(id, originalName string) string {
	return id + "." + extensionOf(originalName)
}

func extensionOf(name string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filepath.Base(name)), "."))
	ext = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, ext)
	if ext == "" || len(ext) > 10 {
		return fallbackExt
	}
	return ext
}
