package api

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes

	"github.com/MaxRonzhin/writer-site-with-mysql/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"gorm.io/gorm"                 // GORM ORM library
)

// CoverRequest carries the cover update form
type CoverRequest struct {
	AuthorName  string `form:"author_name" json:"author_name" binding:"required,max=255"` // Author display name
	Subtitle    string `form:"subtitle" json:"subtitle" binding:"required,max=255"`       // Subtitle line
	Description string `form:"description" json:"description" binding:"required"`        // Free-text description
	StatBooks   string `form:"stat_books" json:"stat_books" binding:"required,max=32"`    // Stat string: books
	StatReaders string `form:"stat_readers" json:"stat_readers" binding:"required,max=32"` // Stat string: readers
	StatRating  string `form:"stat_rating" json:"stat_rating" binding:"required,max=32"`  // Stat string: rating
}

// GetCoverHandler returns the cover singleton, or null when unseeded
func GetCoverHandler(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		row, err := singletonRow[domain.Cover](gdb)
		if err != nil {
			abortServerError(c)
			return
		}
		c.JSON(http.StatusOK, row) // nil serializes as null
	}
}

// UpdateCoverHandler validates the form, keeps the stored photo path when
// no new file was uploaded, applies the update and returns the re-read row
func UpdateCoverHandler(gdb *gorm.DB, rdb *redis.Client, mediaDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CoverRequest // Bind form request to struct
		if err := c.ShouldBind(&req); err != nil {
			abortValidation(c, err) // Field-level validation details
			return
		}
		// Resolve the optional author photo upload
		photo, err := resolveUpload(c, "authorPhoto", mediaDir)
		if err != nil {
			if errors.Is(err, errFileTooLarge) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "VALIDATION", "details": gin.H{"authorPhoto": err.Error()}})
				return
			}
			abortServerError(c)
			return
		}
		// Column map update; the photo key is only present when a file
		// was uploaded, so an absent upload preserves the stored path
		values := map[string]any{
			"author_name":  req.AuthorName,  // Author display name
			"subtitle":     req.Subtitle,    // Subtitle line
			"description":  req.Description, // Free-text description
			"stat_books":   req.StatBooks,   // Stat string: books
			"stat_readers": req.StatReaders, // Stat string: readers
			"stat_rating":  req.StatRating,  // Stat string: rating
		}
		if photo != nil {
			values["author_photo_path"] = *photo // Overwrite only on upload
		}
		if err := gdb.Model(&domain.Cover{}).Where("id = ?", singletonID).Updates(values).Error; err != nil {
			abortServerError(c)
			return
		}
		logrus.WithField("section", "cover").Info("Content updated") // Log the admin write
		invalidateLanding(rdb)                                       // Drop the cached landing payload
		// Re-read so the response reflects authoritative stored state
		row, err := singletonRow[domain.Cover](gdb)
		if err != nil {
			abortServerError(c)
			return
		}
		c.JSON(http.StatusOK, row)
	}
}
