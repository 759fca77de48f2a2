package domain

// About Model (singleton row, id = 1)
type About struct {
	ID         uint    `gorm:"primaryKey" json:"-"`                   // Fixed identity 1, hidden from JSON
	Title      string  `gorm:"not null" json:"title"`                 // Section title
	ImagePath  *string `json:"image_path"`                            // Media path, only set on upload
	Paragraph1 string  `gorm:"type:text;not null" json:"paragraph_1"` // First paragraph
	Paragraph2 string  `gorm:"type:text;not null" json:"paragraph_2"` // Second paragraph
	Paragraph3 string  `gorm:"type:text;not null" json:"paragraph_3"` // Third paragraph
}
