package api

import (
	"reflect" // Struct tag inspection
	"strings" // Tag parsing

	"github.com/MaxRonzhin/writer-site-with-mysql/internal/config"     // Configuration
	"github.com/MaxRonzhin/writer-site-with-mysql/internal/middleware" // Auth middleware

	"github.com/gin-contrib/cors"            // CORS middleware
	"github.com/gin-gonic/gin"               // Gin web framework
	"github.com/gin-gonic/gin/binding"       // Binding validator engine
	"github.com/go-playground/validator/v10" // Validator engine type
	"github.com/redis/go-redis/v9"           // Redis client
	"gorm.io/gorm"                           // GORM ORM library
)

// RegisterRoutes wires every endpoint onto the router. Shared state (DB,
// Redis, secrets, media dir) is passed in explicitly.
func RegisterRoutes(r *gin.Engine, gdb *gorm.DB, rdb *redis.Client, cfg *config.Config) {
	useJSONFieldNames() // Validation details keyed by wire field names

	// CORS only when an origin is configured
	if cfg.CORSOrigin != "" {
		r.Use(cors.New(cors.Config{
			AllowOrigins: []string{cfg.CORSOrigin},                    // Single configured origin
			AllowMethods: []string{"GET", "POST", "PUT", "DELETE"},    // Methods used by the admin panel
			AllowHeaders: []string{"Authorization", "Content-Type"},   // Bearer token + JSON/multipart
		}))
	}

	r.Static("/media", cfg.MediaDir)       // Serve uploaded media
	r.GET("/api/health", HealthHandler())  // Liveness endpoint

	// Auth routes
	auth := r.Group("/api/auth")
	auth.POST("/register", RegisterHandler(gdb, cfg.JWTSecret, cfg.JWTExpiresIn)) // Registration endpoint
	auth.POST("/login", LoginHandler(gdb, cfg.JWTSecret, cfg.JWTExpiresIn))       // Login endpoint

	// Public routes (no token required)
	public := r.Group("/api/public")
	public.GET("/landing", LandingHandler(gdb, rdb)) // Aggregated landing payload

	// Admin routes: JWT check first, then the admin-role check
	admin := r.Group("/api/admin")
	admin.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.AdminOnlyMiddleware())

	admin.GET("/cover", GetCoverHandler(gdb))                          // Read cover singleton
	admin.PUT("/cover", UpdateCoverHandler(gdb, rdb, cfg.MediaDir))    // Update cover singleton
	admin.GET("/about", GetAboutHandler(gdb))                          // Read about + achievements
	admin.PUT("/about", UpdateAboutHandler(gdb, rdb, cfg.MediaDir))    // Update about singleton
	admin.POST("/achievements", CreateAchievementHandler(gdb, rdb))    // Create achievement
	admin.PUT("/achievements/:id", UpdateAchievementHandler(gdb, rdb)) // Update achievement
	admin.DELETE("/achievements/:id", DeleteAchievementHandler(gdb, rdb)) // Delete achievement
	admin.GET("/books", ListBooksHandler(gdb))                         // List books
	admin.POST("/books", CreateBookHandler(gdb, rdb, cfg.MediaDir))    // Create book
	admin.PUT("/books/:id", UpdateBookHandler(gdb, rdb, cfg.MediaDir)) // Update book
	admin.DELETE("/books/:id", DeleteBookHandler(gdb, rdb))            // Delete book
	admin.GET("/reviews", ListReviewsHandler(gdb))                     // List reviews
	admin.POST("/reviews", CreateReviewHandler(gdb, rdb, cfg.MediaDir))    // Create review
	admin.PUT("/reviews/:id", UpdateReviewHandler(gdb, rdb, cfg.MediaDir)) // Update review
	admin.DELETE("/reviews/:id", DeleteReviewHandler(gdb, rdb))        // Delete review
	admin.GET("/footer", GetFooterHandler(gdb))                        // Read footer singleton
	admin.PUT("/footer", UpdateFooterHandler(gdb, rdb))                // Update footer singleton
	admin.GET("/users", ListUsersHandler(gdb, rdb))                    // Paginated user listing
}

// useJSONFieldNames makes validator errors report json tag names instead
// of Go struct field names
func useJSONFieldNames() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}
