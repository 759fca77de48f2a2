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

// ReviewRequest carries the review create/update form
type ReviewRequest struct {
	ReviewerName     string `form:"reviewer_name" json:"reviewer_name" binding:"required,max=255"`         // Reviewer name
	ReviewerLocation string `form:"reviewer_location" json:"reviewer_location" binding:"required,max=255"` // Reviewer location
	Rating           int    `form:"rating" json:"rating"`                                                  // Coerced then clamped to [1,5]
	Body             string `form:"body" json:"body" binding:"required"`                                   // Review text
	BookTitle        string `form:"book_title" json:"book_title" binding:"required,max=255"`               // Free-text book title
	SortOrder        int    `form:"sort_order" json:"sort_order"`                                          // Display order, defaults to 0
}

// ListReviewsHandler returns all reviews ordered for display
func ListReviewsHandler(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := orderedList[domain.Review](gdb)
		if err != nil {
			abortServerError(c)
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

// CreateReviewHandler validates the form, stores an optional avatar
// upload and returns the freshly read row
func CreateReviewHandler(gdb *gorm.DB, rdb *redis.Client, mediaDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ReviewRequest // Bind form request to struct
		if err := c.ShouldBind(&req); err != nil {
			abortValidation(c, err) // Field-level validation details
			return
		}
		// Resolve the optional avatar upload
		avatar, err := resolveUpload(c, "avatar", mediaDir)
		if err != nil {
			if errors.Is(err, errFileTooLarge) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "VALIDATION", "details": gin.H{"avatar": err.Error()}})
				return
			}
			abortServerError(c)
			return
		}
		review := domain.Review{
			ReviewerName:     req.ReviewerName,          // Reviewer name
			ReviewerLocation: req.ReviewerLocation,      // Reviewer location
			Rating:           clampInt(req.Rating, 1, 5), // Clamp rating into [1,5]
			Body:             req.Body,                  // Review text
			BookTitle:        req.BookTitle,             // Free-text book title
			AvatarPath:       avatar,                    // nil when no file was uploaded
			SortOrder:        req.SortOrder,             // Display order
		}
		if err := gdb.Create(&review).Error; err != nil {
			abortServerError(c)
			return
		}
		logrus.WithFields(logrus.Fields{"section": "reviews", "id": review.ID}).Info("Content created")
		invalidateLanding(rdb) // Drop the cached landing payload
		// Re-read so the response reflects authoritative stored state
		row, err := findByID[domain.Review](gdb, review.ID)
		if err != nil {
			abortServerError(c)
			return
		}
		c.JSON(http.StatusOK, row)
	}
}

// UpdateReviewHandler validates the form, keeps the stored avatar path
// when no new file was uploaded, applies the update and returns the
// re-read row, or null when the identity no longer exists
func UpdateReviewHandler(gdb *gorm.DB, rdb *redis.Client, mediaDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c) // Parse the :id path parameter
		if !ok {
			return
		}
		var req ReviewRequest // Bind form request to struct
		if err := c.ShouldBind(&req); err != nil {
			abortValidation(c, err) // Field-level validation details
			return
		}
		// Resolve the optional avatar upload
		avatar, err := resolveUpload(c, "avatar", mediaDir)
		if err != nil {
			if errors.Is(err, errFileTooLarge) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "VALIDATION", "details": gin.H{"avatar": err.Error()}})
				return
			}
			abortServerError(c)
			return
		}
		// Column map update; the avatar key is only present when a file
		// was uploaded, so an absent upload preserves the stored path
		values := map[string]any{
			"reviewer_name":     req.ReviewerName,           // Reviewer name
			"reviewer_location": req.ReviewerLocation,       // Reviewer location
			"rating":            clampInt(req.Rating, 1, 5), // Clamp rating into [1,5]
			"body":              req.Body,                   // Review text
			"book_title":        req.BookTitle,              // Free-text book title
			"sort_order":        req.SortOrder,              // Display order
		}
		if avatar != nil {
			values["avatar_path"] = *avatar // Overwrite only on upload
		}
		if err := gdb.Model(&domain.Review{}).Where("id = ?", id).Updates(values).Error; err != nil {
			abortServerError(c)
			return
		}
		logrus.WithFields(logrus.Fields{"section": "reviews", "id": id}).Info("Content updated")
		invalidateLanding(rdb) // Drop the cached landing payload
		// Re-read so the response reflects authoritative stored state
		row, err := findByID[domain.Review](gdb, id)
		if err != nil {
			abortServerError(c)
			return
		}
		c.JSON(http.StatusOK, row) // nil serializes as null for a missing id
	}
}

// DeleteReviewHandler removes a row by identity; deleting a missing
// identity still reports success
func DeleteReviewHandler(gdb *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c) // Parse the :id path parameter
		if !ok {
			return
		}
		if err := deleteByID[domain.Review](gdb, id); err != nil {
			abortServerError(c)
			return
		}
		logrus.WithFields(logrus.Fields{"section": "reviews", "id": id}).Info("Content deleted")
		invalidateLanding(rdb) // Drop the cached landing payload
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
