package api

import (
	"fmt"      // Message formatting
	"net/http" // HTTP status codes
	"strconv"  // Path parameter parsing

	"github.com/gin-gonic/gin"               // Gin web framework
	"github.com/go-playground/validator/v10" // Validation error details
)

// validationDetails converts binding errors into a field → message map
func validationDetails(err error) map[string]string {
	details := map[string]string{}
	verrs, ok := err.(validator.ValidationErrors) // Only validator errors carry fields
	if !ok {
		details["body"] = "invalid request body"
		return details
	}
	// Map each failed rule to a readable message keyed by wire field name
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			details[fe.Field()] = "is required"
		case "email":
			details[fe.Field()] = "must be a valid email address"
		case "max":
			details[fe.Field()] = fmt.Sprintf("must be at most %s characters", fe.Param())
		case "min":
			details[fe.Field()] = fmt.Sprintf("must be at least %s characters", fe.Param())
		default:
			details[fe.Field()] = "is invalid"
		}
	}
	return details
}

// abortValidation replies 400 with per-field validation details
func abortValidation(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "VALIDATION", "details": validationDetails(err)})
}

// abortServerError replies 500 without leaking internal detail
func abortServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": "SERVER_ERROR"})
}

// paramID parses the :id path parameter; non-numeric ids fail validation
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "VALIDATION", "details": gin.H{"id": "must be a positive integer"}})
		return 0, false
	}
	return uint(id), true
}

// clampFloat clamps v into [lo, hi]
func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampInt clamps v into [lo, hi]
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
