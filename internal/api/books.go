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

// BookRequest carries the book create/update form
type BookRequest struct {
	Title       string  `form:"title" json:"title" binding:"required,max=255"` // Book title
	Genre       string  `form:"genre" json:"genre" binding:"required,max=255"` // Genre label
	Description string  `form:"description" json:"description" binding:"required"` // Free-text description
	Rating      float64 `form:"rating" json:"rating"`                          // Coerced then clamped to [0,5]
	SortOrder   int     `form:"sort_order" json:"sort_order"`                  // Display order, defaults to 0
}

// ListBooksHandler returns all books ordered for display
func ListBooksHandler(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := orderedList[domain.Book](gdb)
		if err != nil {
			abortServerError(c)
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

// CreateBookHandler validates the form, stores an optional cover upload
// and returns the freshly read row
func CreateBookHandler(gdb *gorm.DB, rdb *redis.Client, mediaDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req BookRequest // Bind form request to struct
		if err := c.ShouldBind(&req); err != nil {
			abortValidation(c, err) // Field-level validation details
			return
		}
		// Resolve the optional cover image upload
		cover, err := resolveUpload(c, "cover", mediaDir)
		if err != nil {
			if errors.Is(err, errFileTooLarge) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "VALIDATION", "details": gin.H{"cover": err.Error()}})
				return
			}
			abortServerError(c)
			return
		}
		book := domain.Book{
			Title:       req.Title,                       // Book title
			Genre:       req.Genre,                       // Genre label
			Description: req.Description,                 // Free-text description
			Rating:      clampFloat(req.Rating, 0, 5),    // Clamp rating into [0,5]
			CoverPath:   cover,                           // nil when no file was uploaded
			SortOrder:   req.SortOrder,                   // Display order
		}
		if err := gdb.Create(&book).Error; err != nil {
			abortServerError(c)
			return
		}
		logrus.WithFields(logrus.Fields{"section": "books", "id": book.ID}).Info("Content created")
		invalidateLanding(rdb) // Drop the cached landing payload
		// Re-read so the response reflects authoritative stored state
		row, err := findByID[domain.Book](gdb, book.ID)
		if err != nil {
			abortServerError(c)
			return
		}
		c.JSON(http.StatusOK, row)
	}
}

// UpdateBookHandler validates the form, keeps the stored cover path when
// no new file was uploaded, applies the update and returns the re-read
// row, or null when the identity no longer exists
func UpdateBookHandler(gdb *gorm.DB, rdb *redis.Client, mediaDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c) // Parse the :id path parameter
		if !ok {
			return
		}
		var req BookRequest // Bind form request to struct
		if err := c.ShouldBind(&req); err != nil {
			abortValidation(c, err) // Field-level validation details
			return
		}
		// Resolve the optional cover image upload
		cover, err := resolveUpload(c, "cover", mediaDir)
		if err != nil {
			if errors.Is(err, errFileTooLarge) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "VALIDATION", "details": gin.H{"cover": err.Error()}})
				return
			}
			abortServerError(c)
			return
		}
		// Column map update; the cover key is only present when a file
		// was uploaded, so an absent upload preserves the stored path
		values := map[string]any{
			"title":       req.Title,                    // Book title
			"genre":       req.Genre,                    // Genre label
			"description": req.Description,              // Free-text description
			"rating":      clampFloat(req.Rating, 0, 5), // Clamp rating into [0,5]
			"sort_order":  req.SortOrder,                // Display order
		}
		if cover != nil {
			values["cover_path"] = *cover // Overwrite only on upload
		}
		if err := gdb.Model(&domain.Book{}).Where("id = ?", id).Updates(values).Error; err != nil {
			abortServerError(c)
			return
		}
		logrus.WithFields(logrus.Fields{"section": "books", "id": id}).Info("Content updated")
		invalidateLanding(rdb) // Drop the cached landing payload
		// Re-read so the response reflects authoritative stored state
		row, err := findByID[domain.Book](gdb, id)
		if err != nil {
			abortServerError(c)
			return
		}
		c.JSON(http.StatusOK, row) // nil serializes as null for a missing id
	}
}

// DeleteBookHandler removes a row by identity; deleting a missing
// identity still reports success
func DeleteBookHandler(gdb *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c) // Parse the :id path parameter
		if !ok {
			return
		}
		if err := deleteByID[domain.Book](gdb, id); err != nil {
			abortServerError(c)
			return
		}
		logrus.WithFields(logrus.Fields{"section": "books", "id": id}).Info("Content deleted")
		invalidateLanding(rdb) // Drop the cached landing payload
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
