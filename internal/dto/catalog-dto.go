package dto

type FakultasRequest struct {
	ID          string `json:"id"`
	Nama        string `json:"nama" validate:"required"`
	NamaLengkap string `json:"namaLengkap"`
	Deskripsi   string `json:"deskripsi"`
	Akreditasi  string `json:"akreditasi"`
	IsActive    *bool  `json:"isActive"`
}

type ProgramStudiRequest struct {
	ID            string `json:"id"`
	Nama          string `json:"nama" validate:"required"`
	Fakultas      string `json:"fakultas"`
	Jenjang       string `json:"jenjang"`
	Akreditasi    string `json:"akreditasi"`
	BiayaSemester int    `json:"biayaSemester"`
	Deskripsi     string `json:"deskripsi"`
	IsActive      *bool  `json:"isActive"`
}

type BrosurRequest struct {
	ImageUrl string `json:"imageUrl" validate:"required"`
	LinkUrl  string `json:"linkUrl"`
	Aktif    *bool  `json:"aktif"`
}

type TagCreateRequest struct {
	Nama  string `json:"nama" validate:"required"`
	Warna string `json:"warna"`
}
