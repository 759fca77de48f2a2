package domain

// Achievement Model
type Achievement struct {
	ID        uint   `gorm:"primaryKey" json:"id"`           // Primary key
	Title     string `gorm:"not null" json:"title"`          // Achievement title
	Body      string `gorm:"type:text;not null" json:"body"` // Achievement text
	SortOrder int    `gorm:"default:0" json:"sort_order"`    // Display order, ties broken by id
}
