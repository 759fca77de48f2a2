package domain

// Review Model
type Review struct {
	ID               uint    `gorm:"primaryKey" json:"id"`            // Primary key
	ReviewerName     string  `gorm:"not null" json:"reviewer_name"`   // Reviewer display name
	ReviewerLocation string  `gorm:"not null" json:"reviewer_location"` // Reviewer location
	Rating           int     `gorm:"not null" json:"rating"`          // Rating in [1,5]
	Body             string  `gorm:"type:text;not null" json:"body"`  // Review text
	BookTitle        string  `gorm:"not null" json:"book_title"`      // Free-text book title, not a foreign key
	AvatarPath       *string `json:"avatar_path"`                     // Media path, only set on upload
	SortOrder        int     `gorm:"default:0" json:"sort_order"`     // Display order, ties broken by id
}
