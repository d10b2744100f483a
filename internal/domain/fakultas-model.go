package domain

import "time"

// Fakultas ID is the short faculty code ("FE", "FKIP", ...) referenced
// by registrations and study programs.
type Fakultas struct {
	ID          string    `gorm:"type:varchar(20);primaryKey" json:"id"`
	Nama        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"nama"`
	NamaLengkap string    `gorm:"type:varchar(255)" json:"namaLengkap"`
	Deskripsi   string    `gorm:"type:text" json:"deskripsi"`
	Akreditasi  string    `gorm:"type:varchar(10)" json:"akreditasi"`
	IsActive    bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Fakultas) TableName() string { return "fakultas" }
