package api

import (
	"net/http" // HTTP status codes

	"github.com/MaxRonzhin/writer-site-with-mysql/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"gorm.io/gorm"                 // GORM ORM library
)

// AchievementRequest carries the achievement create/update form
type AchievementRequest struct {
	Title     string `form:"title" json:"title" binding:"required,max=255"` // Achievement title
	Body      string `form:"body" json:"body" binding:"required"`           // Achievement text
	SortOrder int    `form:"sort_order" json:"sort_order"`                  // Display order, defaults to 0
}

// CreateAchievementHandler validates the form, inserts the row and
// returns the freshly read row
func CreateAchievementHandler(gdb *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AchievementRequest // Bind form request to struct
		if err := c.ShouldBind(&req); err != nil {
			abortValidation(c, err) // Field-level validation details
			return
		}
		ach := domain.Achievement{Title: req.Title, Body: req.Body, SortOrder: req.SortOrder}
		if err := gdb.Create(&ach).Error; err != nil {
			abortServerError(c)
			return
		}
		logrus.WithFields(logrus.Fields{"section": "achievements", "id": ach.ID}).Info("Content created")
		invalidateLanding(rdb) // Drop the cached landing payload
		// Re-read so the response reflects authoritative stored state
		row, err := findByID[domain.Achievement](gdb, ach.ID)
		if err != nil {
			abortServerError(c)
			return
		}
		c.JSON(http.StatusOK, row)
	}
}

// UpdateAchievementHandler validates the form, applies the update and
// returns the re-read row, or null when the identity no longer exists
func UpdateAchievementHandler(gdb *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c) // Parse the :id path parameter
		if !ok {
			return
		}
		var req AchievementRequest // Bind form request to struct
		if err := c.ShouldBind(&req); err != nil {
			abortValidation(c, err) // Field-level validation details
			return
		}
		values := map[string]any{
			"title":      req.Title,     // Achievement title
			"body":       req.Body,      // Achievement text
			"sort_order": req.SortOrder, // Display order
		}
		if err := gdb.Model(&domain.Achievement{}).Where("id = ?", id).Updates(values).Error; err != nil {
			abortServerError(c)
			return
		}
		logrus.WithFields(logrus.Fields{"section": "achievements", "id": id}).Info("Content updated")
		invalidateLanding(rdb) // Drop the cached landing payload
		// Re-read so the response reflects authoritative stored state
		row, err := findByID[domain.Achievement](gdb, id)
		if err != nil {
			abortServerError(c)
			return
		}
		c.JSON(http.StatusOK, row) // nil serializes as null for a missing id
	}
}

// DeleteAchievementHandler removes a row by identity; deleting a missing
// identity still reports success
func DeleteAchievementHandler(gdb *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c) // Parse the :id path parameter
		if !ok {
			return
		}
		if err := deleteByID[domain.Achievement](gdb, id); err != nil {
			abortServerError(c)
			return
		}
		logrus.WithFields(logrus.Fields{"section": "achievements", "id": id}).Info("Content deleted")
		invalidateLanding(rdb) // Drop the cached landing payload
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
