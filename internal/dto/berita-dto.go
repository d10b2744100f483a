package dto

import "time"

type BeritaCreateRequest struct {
	Judul   string     `json:"judul" validate:"required"`
	Konten  string     `json:"konten"`
	Gambar  string     `json:"gambar"`
	Slug    string     `json:"slug" validate:"required"`
	LinkUrl string     `json:"linkUrl"`
	Jenis   string     `json:"jenis"`
	Excerpt string     `json:"excerpt"`
	Author  string     `json:"author"`
	Tags    string     `json:"tags"`
	Tanggal *time.Time `json:"tanggal"`
	Aktif   *bool      `json:"aktif"`
}

type BeritaUpdateRequest struct {
	ID      string     `json:"id" validate:"required"`
	Judul   string     `json:"judul"`
	Konten  string     `json:"konten"`
	Gambar  string     `json:"gambar"`
	Slug    string     `json:"slug"`
	LinkUrl string     `json:"linkUrl"`
	Jenis   string     `json:"jenis"`
	Excerpt string     `json:"excerpt"`
	Author  string     `json:"author"`
	Tags    string     `json:"tags"`
	Tanggal *time.Time `json:"tanggal"`
	Aktif   *bool      `json:"aktif"`
}

// PublicBeritaQuery is parsed from the public listing query string.
type PublicBeritaQuery struct {
	Slug  string `query:"slug"`
	Limit int    `query:"limit"`
	Jenis string `query:"jenis"`
}
