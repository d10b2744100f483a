package domain

import "time"

type Tag struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Nama      string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"nama"`
	Slug      string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"slug"`
	Warna     string    `gorm:"type:varchar(20);not null;default:'#3b82f6'" json:"warna"`
	Aktif     bool      `gorm:"not null;default:true" json:"aktif"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Tag) TableName() string { return "tag" }
