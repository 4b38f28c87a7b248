package utils

import "strings"

// mimeTypeToExtension maps the MIME types accepted by the upload path to
// their typical file extensions. Wishes and invitations only ever carry
// photos and short audio previews.
var mimeTypeToExtension = map[string]string{
	"audio/aac":     ".aac",
	"audio/mpeg":    ".mp3",
	"audio/ogg":     ".ogg",
	"audio/wav":     ".wav",
	"audio/webm":    ".webm",
	"image/bmp":     ".bmp",
	"image/gif":     ".gif",
	"image/heic":    ".heic",
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/svg+xml": ".svg",
	"image/tiff":    ".tif",
	"image/webp":    ".webp",
}

// GetExtensionFromMimeType returns a common file extension for a given MIME type.
// If no specific extension is found, it defaults to ".bin".
func GetExtensionFromMimeType(mimeType string) string {
	// Remove charset if present (e.g., "image/svg+xml; charset=utf-8")
	cleanedMimeType := strings.Split(mimeType, ";")[0]
	if ext, ok := mimeTypeToExtension[cleanedMimeType]; ok {
		return ext
	}

	return ".bin"
}
