package api

import (
	"errors"        // Sentinel error
	"path/filepath" // Path joining

	"github.com/MaxRonzhin/writer-site-with-mysql/internal/utils" // Filename helpers

	"github.com/gin-gonic/gin" // Gin web framework
)

// maxUploadSize bounds uploaded media files (10 MiB)
const maxUploadSize = 10 << 20

// errFileTooLarge is reported as a validation failure on the form field
var errFileTooLarge = errors.New("file exceeds the 10 MiB limit")

// resolveUpload looks for an optional uploaded file on the given form
// field. It returns nil when no file was supplied, so callers can keep
// the previously stored path untouched (merge-on-null). On success the
// file is saved into mediaDir under a random name and its public
// /media/... path is returned.
func resolveUpload(c *gin.Context, field, mediaDir string) (*string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		// A missing file (or a non-multipart request) is not an error
		return nil, nil
	}
	// Enforce the upload size bound before writing anything
	if file.Size > maxUploadSize {
		return nil, errFileTooLarge
	}
	name := utils.MakeMediaFilename(file.Filename) // Random name, allow-listed extension
	if err := c.SaveUploadedFile(file, filepath.Join(mediaDir, name)); err != nil {
		return nil, err
	}
	path := "/media/" + name // Stable public path prefix
	return &path, nil
}
