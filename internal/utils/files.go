package utils

import (
	"os"            // Directory creation
	"path/filepath" // Extension handling
	"strings"       // String manipulation

	"github.com/google/uuid" // Random filename generation
)

// allowedExts is the image extension allow-list for uploaded media
var allowedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

// EnsureDir creates a directory (and parents) if it does not exist
func EnsureDir(dirPath string) error {
	return os.MkdirAll(dirPath, 0o755)
}

// SafeExt returns the lowercased extension of a filename if it is an
// allowed image extension, otherwise an empty string
func SafeExt(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	if allowedExts[ext] {
		return ext
	}
	return ""
}

// MakeMediaFilename generates a random media filename, keeping the
// original extension only when it is on the allow-list
func MakeMediaFilename(originalName string) string {
	name := strings.ReplaceAll(uuid.NewString(), "-", "") // Random hex name
	return name + SafeExt(originalName)
}
