package api

import (
	"net/http" // HTTP status codes

	"github.com/MaxRonzhin/writer-site-with-mysql/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"gorm.io/gorm"                 // GORM ORM library
)

// FooterRequest carries the footer update form
type FooterRequest struct {
	ContactEmail  string `form:"contact_email" json:"contact_email" binding:"required,email,max=255"` // Contact email
	ContactPhone  string `form:"contact_phone" json:"contact_phone" binding:"required,max=64"`        // Contact phone
	VkLabel       string `form:"vk_label" json:"vk_label" binding:"required,max=64"`                  // VK link label
	VkURL         string `form:"vk_url" json:"vk_url" binding:"required,max=512"`                     // VK link URL
	TgLabel       string `form:"tg_label" json:"tg_label" binding:"required,max=64"`                  // Telegram link label
	TgURL         string `form:"tg_url" json:"tg_url" binding:"required,max=512"`                     // Telegram link URL
	IgLabel       string `form:"ig_label" json:"ig_label" binding:"required,max=64"`                  // Instagram link label
	IgURL         string `form:"ig_url" json:"ig_url" binding:"required,max=512"`                     // Instagram link URL
	CopyrightText string `form:"copyright_text" json:"copyright_text" binding:"required,max=255"`     // Copyright line
}

// GetFooterHandler returns the footer singleton, or null when unseeded
func GetFooterHandler(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		row, err := singletonRow[domain.Footer](gdb)
		if err != nil {
			abortServerError(c)
			return
		}
		c.JSON(http.StatusOK, row) // nil serializes as null
	}
}

// UpdateFooterHandler validates the form, applies the update and returns
// the re-read row; the footer carries no image field
func UpdateFooterHandler(gdb *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req FooterRequest // Bind form request to struct
		if err := c.ShouldBind(&req); err != nil {
			abortValidation(c, err) // Field-level validation details
			return
		}
		values := map[string]any{
			"contact_email":  req.ContactEmail,  // Contact email
			"contact_phone":  req.ContactPhone,  // Contact phone
			"vk_label":       req.VkLabel,       // VK link label
			"vk_url":         req.VkURL,         // VK link URL
			"tg_label":       req.TgLabel,       // Telegram link label
			"tg_url":         req.TgURL,         // Telegram link URL
			"ig_label":       req.IgLabel,       // Instagram link label
			"ig_url":         req.IgURL,         // Instagram link URL
			"copyright_text": req.CopyrightText, // Copyright line
		}
		if err := gdb.Model(&domain.Footer{}).Where("id = ?", singletonID).Updates(values).Error; err != nil {
			abortServerError(c)
			return
		}
		logrus.WithField("section", "footer").Info("Content updated") // Log the admin write
		invalidateLanding(rdb)                                        // Drop the cached landing payload
		// Re-read so the response reflects authoritative stored state
		row, err := singletonRow[domain.Footer](gdb)
		if err != nil {
			abortServerError(c)
			return
		}
		c.JSON(http.StatusOK, row)
	}
}
