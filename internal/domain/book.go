package domain

// Book Model
type Book struct {
	ID          uint    `gorm:"primaryKey" json:"id"`                  // Primary key
	Title       string  `gorm:"not null" json:"title"`                 // Book title
	Genre       string  `gorm:"not null" json:"genre"`                 // Genre label
	Description string  `gorm:"type:text;not null" json:"description"` // Free-text description
	Rating      float64 `gorm:"default:0" json:"rating"`               // Rating in [0,5]
	CoverPath   *string `json:"cover_path"`                            // Media path, only set on upload
	SortOrder   int     `gorm:"default:0" json:"sort_order"`           // Display order, ties broken by id
}
