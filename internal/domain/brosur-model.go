package domain

import "time"

// Brosur is a singleton: at most one row exists, replaced wholesale on
// upload of a new brochure.
type Brosur struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	ImageUrl  string    `gorm:"type:text;not null" json:"imageUrl"`
	LinkUrl   string    `gorm:"type:text" json:"linkUrl"`
	Aktif     bool      `gorm:"not null;default:true" json:"aktif"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Brosur) TableName() string { return "brosur" }
