package domain

// Cover Model (singleton row, id = 1)
type Cover struct {
	ID              uint    `gorm:"primaryKey" json:"-"`                       // Fixed identity 1, hidden from JSON
	AuthorName      string  `gorm:"not null" json:"author_name"`               // Author display name
	Subtitle        string  `gorm:"not null" json:"subtitle"`                  // Subtitle line under the name
	Description     string  `gorm:"type:text;not null" json:"description"`     // Free-text description
	AuthorPhotoPath *string `json:"author_photo_path"`                         // Media path, only set on upload
	StatBooks       string  `gorm:"size:32;not null" json:"stat_books"`        // Stat string: books written
	StatReaders     string  `gorm:"size:32;not null" json:"stat_readers"`      // Stat string: readers
	StatRating      string  `gorm:"size:32;not null" json:"stat_rating"`       // Stat string: rating
}
