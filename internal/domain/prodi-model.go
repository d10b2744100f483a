package domain

import "time"

type ProgramStudi struct {
	ID            string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Nama          string    `gorm:"type:varchar(255);not null" json:"nama"`
	Fakultas      string    `gorm:"type:varchar(20)" json:"fakultas"`
	Jenjang       string    `gorm:"type:varchar(20)" json:"jenjang"`
	Akreditasi    string    `gorm:"type:varchar(10)" json:"akreditasi"`
	BiayaSemester int       `json:"biayaSemester"`
	Deskripsi     string    `gorm:"type:text" json:"deskripsi"`
	IsActive      bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (ProgramStudi) TableName() string { return "program_studi" }
