package domain

import "time"

type BeritaJenis string

const (
	BeritaJenisInternal BeritaJenis = "internal"
	BeritaJenisExternal BeritaJenis = "external"
)

type Berita struct {
	ID      string      `gorm:"type:varchar(36);primaryKey" json:"id"`
	Judul   string      `gorm:"type:varchar(255);not null" json:"judul"`
	Konten  string      `gorm:"type:text" json:"konten"`
	Gambar  string      `gorm:"type:text" json:"gambar"`
	Slug    string      `gorm:"type:varchar(255);uniqueIndex" json:"slug"`
	LinkUrl string      `gorm:"type:text" json:"linkUrl"`
	Jenis   BeritaJenis `gorm:"type:varchar(20);not null;default:'internal'" json:"jenis"`
	Excerpt string      `gorm:"type:text" json:"excerpt"`
	Author  string      `gorm:"type:varchar(255)" json:"author"`
	Tags    string      `gorm:"type:text" json:"tags"`
	Tanggal *time.Time  `json:"tanggal"`
	Aktif   bool        `gorm:"not null;default:true" json:"aktif"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Berita) TableName() string { return "berita" }
