package api

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes
	"strings"  // String manipulation
	"time"     // Token TTL

	"github.com/MaxRonzhin/writer-site-with-mysql/internal/domain" // Importing domain models
	"github.com/MaxRonzhin/writer-site-with-mysql/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// RegisterRequest carries the registration payload
type RegisterRequest struct {
	Email    string `form:"email" json:"email" binding:"required,email,max=255"` // Email, normalized to lowercase
	Name     string `form:"name" json:"name" binding:"required,max=255"`         // Display name
	Password string `form:"password" json:"password" binding:"required,min=6,max=255"` // Plain password, 6-255 chars
}

// LoginRequest carries the login payload
type LoginRequest struct {
	Email    string `form:"email" json:"email" binding:"required,email,max=255"` // Email, normalized to lowercase
	Password string `form:"password" json:"password" binding:"required,max=255"` // Plain password
}

// userSummary is the identity summary returned alongside a token
type userSummary struct {
	ID    uint   `json:"id"`    // User ID
	Email string `json:"email"` // Email
	Role  string `json:"role"`  // Role: user or admin
	Name  string `json:"name"`  // Display name
}

// authResponse pairs a signed token with the user summary
type authResponse struct {
	Token string      `json:"token"` // Signed JWT
	User  userSummary `json:"user"`  // Identity summary
}

// RegisterHandler creates a user account and returns a token with role "user"
func RegisterHandler(gdb *gorm.DB, jwtSecret string, jwtTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBind(&req); err != nil {
			abortValidation(c, err) // Field-level validation details
			return
		}
		email := strings.ToLower(req.Email) // Normalize email to lowercase
		// Hash the password and create the user
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			abortServerError(c) // Hashing failure is a server error
			return
		}
		user := domain.User{Email: email, Name: req.Name, PasswordHash: string(hash), Role: "user"}
		// Attempt to create the user in the database
		if err := gdb.Create(&user).Error; err != nil {
			// The unique index on email reports a duplicate-key violation
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusConflict, gin.H{"error": "EMAIL_TAKEN"})
				return
			}
			abortServerError(c) // Any other store error stays opaque
			return
		}
		// Issue a token carrying the new identity
		token, err := utils.GenerateJWT(user.ID, user.Email, user.Role, user.Name, jwtSecret, jwtTTL)
		if err != nil {
			abortServerError(c)
			return
		}
		// Return the token with the identity summary
		c.JSON(http.StatusOK, authResponse{
			Token: token,
			User:  userSummary{ID: user.ID, Email: user.Email, Role: user.Role, Name: user.Name},
		})
	}
}

// LoginHandler authenticates a user and returns a token with the stored role.
// Unknown email and wrong password produce the identical error shape.
func LoginHandler(gdb *gorm.DB, jwtSecret string, jwtTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBind(&req); err != nil {
			abortValidation(c, err) // Field-level validation details
			return
		}
		var user domain.User // Fetch user from database by normalized email
		if err := gdb.Where("email = ?", strings.ToLower(req.Email)).First(&user).Error; err != nil {
			// If user not found, return the generic credentials error
			c.JSON(http.StatusUnauthorized, gin.H{"error": "INVALID_CREDENTIALS"})
			return
		}
		// Compare provided password with stored hash
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "INVALID_CREDENTIALS"})
			return
		}
		// Issue a token carrying the stored role
		token, err := utils.GenerateJWT(user.ID, user.Email, user.Role, user.Name, jwtSecret, jwtTTL)
		if err != nil {
			abortServerError(c)
			return
		}
		// Return the token with the identity summary
		c.JSON(http.StatusOK, authResponse{
			Token: token,
			User:  userSummary{ID: user.ID, Email: user.Email, Role: user.Role, Name: user.Name},
		})
	}
}
