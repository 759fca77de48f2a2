package api

import (
	"context" // Context for cache invalidation
	"errors"  // Error matching

	"github.com/MaxRonzhin/writer-site-with-mysql/internal/utils" // Cache helpers

	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// singletonID is the fixed identity of the cover, about and footer rows
const singletonID = 1

// landingCacheKey caches the aggregated public landing payload
const landingCacheKey = "public:landing"

// orderedList returns all rows ordered for display: sort_order ascending,
// ties broken by id ascending
func orderedList[T any](gdb *gorm.DB) ([]T, error) {
	items := make([]T, 0)
	err := gdb.Order("sort_order ASC, id ASC").Find(&items).Error
	return items, err
}

// findByID returns a row by identity, or nil when it does not exist
func findByID[T any](gdb *gorm.DB, id uint) (*T, error) {
	var row T
	if err := gdb.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Missing rows are not an error
		}
		return nil, err
	}
	return &row, nil
}

// singletonRow returns the fixed-identity row, or nil when unseeded
func singletonRow[T any](gdb *gorm.DB) (*T, error) {
	return findByID[T](gdb, singletonID)
}

// deleteByID removes a row by identity; deleting a missing row succeeds
func deleteByID[T any](gdb *gorm.DB, id uint) error {
	var row T
	return gdb.Delete(&row, id).Error
}

// invalidateLanding drops the cached landing payload after an admin write
func invalidateLanding(rdb *redis.Client) {
	_ = utils.DeleteCache(context.Background(), rdb, landingCacheKey)
}
