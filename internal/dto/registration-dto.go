package dto

import "time"

type RegistrationCreateRequest struct {
	NamaLengkap  string     `json:"namaLengkap" validate:"required"`
	NIK          string     `json:"nik" validate:"required"`
	NISN         string     `json:"nisn"`
	NoHp         string     `json:"noHp"`
	Email        string     `json:"email" validate:"omitempty,email"`
	TanggalLahir *time.Time `json:"tanggalLahir"`
	Alamat       string     `json:"alamat"`
	Fakultas     string     `json:"fakultas"`
	ProgramStudi string     `json:"programStudi"`
	Jalur        string     `json:"jalur"`

	PasFoto           *string `json:"pasFoto"`
	KTP               *string `json:"ktp"`
	Ijazah            *string `json:"ijazah"`
	Formulir          *string `json:"formulir"`
	IjazahSMA         *string `json:"ijazahSMA"`
	ScreenshotPDDIKTI *string `json:"screenshotPDDIKTI"`
	SKPengangkatan    *string `json:"skPengangkatan"`
	SKMengajar        *string `json:"skMengajar"`
}

type RegistrationStatusRequest struct {
	ID     string `json:"id" validate:"required"`
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}
