package domain

// Footer Model (singleton row, id = 1)
type Footer struct {
	ID            uint   `gorm:"primaryKey" json:"-"`                     // Fixed identity 1, hidden from JSON
	ContactEmail  string `gorm:"not null" json:"contact_email"`           // Contact email address
	ContactPhone  string `gorm:"size:64;not null" json:"contact_phone"`   // Contact phone
	VkLabel       string `gorm:"size:64;not null" json:"vk_label"`        // VK link label
	VkURL         string `gorm:"size:512;not null" json:"vk_url"`         // VK link URL
	TgLabel       string `gorm:"size:64;not null" json:"tg_label"`        // Telegram link label
	TgURL         string `gorm:"size:512;not null" json:"tg_url"`         // Telegram link URL
	IgLabel       string `gorm:"size:64;not null" json:"ig_label"`        // Instagram link label
	IgURL         string `gorm:"size:512;not null" json:"ig_url"`         // Instagram link URL
	CopyrightText string `gorm:"not null" json:"copyright_text"`          // Copyright line
}
