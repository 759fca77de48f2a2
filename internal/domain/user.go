package domain

// User Model
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`              // Primary key
	Email        string `gorm:"uniqueIndex;not null" json:"email"` // Unique email, stored lowercase
	Name         string `gorm:"not null" json:"name"`              // Display name
	PasswordHash string `gorm:"not null" json:"-"`                 // Bcrypt hash, never serialized
	Role         string `gorm:"default:user" json:"role"`          // Role: user or admin
}
