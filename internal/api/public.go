package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"time"     // Cache TTL

	"github.com/MaxRonzhin/writer-site-with-mysql/internal/domain" // Importing domain models
	"github.com/MaxRonzhin/writer-site-with-mysql/internal/utils"  // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// landingPayload aggregates every content type for the landing page.
// Unseeded singletons serialize as null rather than failing the aggregate.
type landingPayload struct {
	Cover        *domain.Cover        `json:"cover"`        // Cover singleton or null
	About        *domain.About        `json:"about"`        // About singleton or null
	Achievements []domain.Achievement `json:"achievements"` // Ordered achievement list
	Books        []domain.Book        `json:"books"`        // Ordered book list
	Reviews      []domain.Review      `json:"reviews"`      // Ordered review list
	Footer       *domain.Footer       `json:"footer"`       // Footer singleton or null
}

// HealthHandler reports service liveness
func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// LandingHandler assembles the public landing payload from six reads,
// cached in Redis for a short TTL and invalidated on every admin write
func LandingHandler(gdb *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Use background context for Redis
		// Serve the cached payload when present
		var cached landingPayload
		if found, err := utils.GetCache(ctx, rdb, landingCacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, cached)
			return
		}
		cover, err := singletonRow[domain.Cover](gdb) // Cover singleton, nil when unseeded
		if err != nil {
			abortServerError(c)
			return
		}
		about, err := singletonRow[domain.About](gdb) // About singleton, nil when unseeded
		if err != nil {
			abortServerError(c)
			return
		}
		achievements, err := orderedList[domain.Achievement](gdb) // Ordered achievements
		if err != nil {
			abortServerError(c)
			return
		}
		books, err := orderedList[domain.Book](gdb) // Ordered books
		if err != nil {
			abortServerError(c)
			return
		}
		reviews, err := orderedList[domain.Review](gdb) // Ordered reviews
		if err != nil {
			abortServerError(c)
			return
		}
		footer, err := singletonRow[domain.Footer](gdb) // Footer singleton, nil when unseeded
		if err != nil {
			abortServerError(c)
			return
		}
		payload := landingPayload{
			Cover:        cover,        // Cover singleton or null
			About:        about,        // About singleton or null
			Achievements: achievements, // Ordered achievement list
			Books:        books,        // Ordered book list
			Reviews:      reviews,      // Ordered review list
			Footer:       footer,       // Footer singleton or null
		}
		// Cache the payload for future requests
		_ = utils.SetCache(ctx, rdb, landingCacheKey, payload, 60*time.Second)
		c.JSON(http.StatusOK, payload) // Return the aggregate payload
	}
}
