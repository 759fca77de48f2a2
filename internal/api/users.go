package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Cache TTL

	"github.com/MaxRonzhin/writer-site-with-mysql/internal/domain" // Importing domain models
	"github.com/MaxRonzhin/writer-site-with-mysql/internal/utils"  // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// UserAdminResponse represents the user data returned to admin
type UserAdminResponse struct {
	ID    uint   `json:"id"`    // User ID
	Email string `json:"email"` // Email
	Name  string `json:"name"`  // Display name
	Role  string `json:"role"`  // Role: user or admin
}

// ListUsersHandler returns registered users, paginated and cached per page
func ListUsersHandler(gdb *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Use background context for Redis
		// Create a cache key based on pagination parameters
		cacheKey := "admin:users:page=" + c.DefaultQuery("page", "1") + ":size=" + c.DefaultQuery("page_size", "20")
		// Try to get cached response
		var cached struct {
			Users      []UserAdminResponse `json:"users"`       // List of users
			Page       int                 `json:"page"`        // Current page
			PageSize   int                 `json:"page_size"`   // Page size
			Total      int64               `json:"total"`       // Total number of users
			TotalPages int                 `json:"total_pages"` // Total pages
		}
		// If cached data found, return it
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{
				"users":       cached.Users,      // List of users
				"page":        cached.Page,       // Current page
				"page_size":   cached.PageSize,   // Page size
				"total":       cached.Total,      // Total number of users
				"total_pages": cached.TotalPages, // Total pages
				"cached":      true,              // Indicate response is from cache
			})
			return
		}
		page := 1      // Default page number
		pageSize := 20 // Default page size
		if p := c.Query("page"); p != "" {
			if v, err := strconv.Atoi(p); err == nil && v > 0 {
				page = v // Set page if valid
			}
		}
		// Check and set page size within limits
		if ps := c.Query("page_size"); ps != "" {
			// If valid, set page size
			if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
				pageSize = v // Set page size
			}
		}
		offset := (page - 1) * pageSize // Calculate offset for pagination
		var total int64                 // Total user count
		// Fetch total user count and the requested page
		if err := gdb.Model(&domain.User{}).Count(&total).Error; err != nil {
			abortServerError(c) // Return on error
			return
		}
		var users []domain.User // Slice to hold users
		// Apply offset and limit for pagination
		if err := gdb.Order("id ASC").Offset(offset).Limit(pageSize).Find(&users).Error; err != nil {
			abortServerError(c) // Return on error
			return
		}
		// The total number of pages
		totalPages := (int(total) + pageSize - 1) / pageSize // Calculate total pages
		// Prepare response data
		resp := make([]UserAdminResponse, len(users))
		// Map users to response format
		for i, u := range users {
			resp[i] = UserAdminResponse{
				ID:    u.ID,    // User ID
				Email: u.Email, // Email
				Name:  u.Name,  // Display name
				Role:  u.Role,  // User role
			}
		}
		// Prepare final response data
		respData := gin.H{
			"users":       resp,       // List of users
			"page":        page,       // Current page
			"page_size":   pageSize,   // Page size
			"total":       total,      // Total number of users
			"total_pages": totalPages, // Total pages
			"cached":      false,      // Indicate response is not from cache
		}
		// Cache the response for future requests
		_ = utils.SetCache(ctx, rdb, cacheKey, respData, 60*time.Second)
		c.JSON(http.StatusOK, respData) // Return the response
	}
}
