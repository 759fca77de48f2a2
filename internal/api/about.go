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

// AboutRequest carries the about-section update form
type AboutRequest struct {
	Title      string `form:"title" json:"title" binding:"required,max=255"`      // Section title
	Paragraph1 string `form:"paragraph_1" json:"paragraph_1" binding:"required"` // First paragraph
	Paragraph2 string `form:"paragraph_2" json:"paragraph_2" binding:"required"` // Second paragraph
	Paragraph3 string `form:"paragraph_3" json:"paragraph_3" binding:"required"` // Third paragraph
}

// GetAboutHandler returns the about singleton together with the ordered
// achievement list, matching the admin panel's combined section view
func GetAboutHandler(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		about, err := singletonRow[domain.About](gdb)
		if err != nil {
			abortServerError(c)
			return
		}
		achievements, err := orderedList[domain.Achievement](gdb)
		if err != nil {
			abortServerError(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{"about": about, "achievements": achievements})
	}
}

// UpdateAboutHandler validates the form, keeps the stored image path when
// no new file was uploaded, applies the update and returns the re-read row
func UpdateAboutHandler(gdb *gorm.DB, rdb *redis.Client, mediaDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AboutRequest // Bind form request to struct
		if err := c.ShouldBind(&req); err != nil {
			abortValidation(c, err) // Field-level validation details
			return
		}
		// Resolve the optional section image upload
		image, err := resolveUpload(c, "aboutImage", mediaDir)
		if err != nil {
			if errors.Is(err, errFileTooLarge) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "VALIDATION", "details": gin.H{"aboutImage": err.Error()}})
				return
			}
			abortServerError(c)
			return
		}
		// Column map update; the image key is only present when a file
		// was uploaded, so an absent upload preserves the stored path
		values := map[string]any{
			"title":       req.Title,      // Section title
			"paragraph_1": req.Paragraph1, // First paragraph
			"paragraph_2": req.Paragraph2, // Second paragraph
			"paragraph_3": req.Paragraph3, // Third paragraph
		}
		if image != nil {
			values["image_path"] = *image // Overwrite only on upload
		}
		if err := gdb.Model(&domain.About{}).Where("id = ?", singletonID).Updates(values).Error; err != nil {
			abortServerError(c)
			return
		}
		logrus.WithField("section", "about").Info("Content updated") // Log the admin write
		invalidateLanding(rdb)                                       // Drop the cached landing payload
		// Re-read so the response reflects authoritative stored state
		row, err := singletonRow[domain.About](gdb)
		if err != nil {
			abortServerError(c)
			return
		}
		c.JSON(http.StatusOK, row)
	}
}
