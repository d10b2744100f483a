package domain

import "time"

type RegistrationStatus string

const (
	RegistrationStatusPending  RegistrationStatus = "pending"
	RegistrationStatusApproved RegistrationStatus = "approved"
	RegistrationStatusRejected RegistrationStatus = "rejected"
)

// Registration is one student's application (pendaftaran). The eight
// file fields each hold a Cloudinary URL or nil; none of them is
// required to resolve at export time.
type Registration struct {
	ID           string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	NamaLengkap  string     `gorm:"type:varchar(255);not null" json:"namaLengkap"`
	NIK          string     `gorm:"type:varchar(20);column:nik" json:"nik"`
	NISN         string     `gorm:"type:varchar(20);column:nisn" json:"nisn"`
	NoHp         string     `gorm:"type:varchar(20)" json:"noHp"`
	Email        string     `gorm:"type:varchar(255)" json:"email"`
	TanggalLahir *time.Time `json:"tanggalLahir"`
	Alamat       string     `gorm:"type:text" json:"alamat"`

	Fakultas     string `gorm:"type:varchar(20)" json:"fakultas"`
	ProgramStudi string `gorm:"type:varchar(255)" json:"programStudi"`
	Jalur        string `gorm:"type:varchar(50)" json:"jalur"`

	PasFoto           *string `gorm:"type:text" json:"pasFoto,omitempty"`
	KTP               *string `gorm:"type:text;column:ktp" json:"ktp,omitempty"`
	Ijazah            *string `gorm:"type:text" json:"ijazah,omitempty"`
	Formulir          *string `gorm:"type:text" json:"formulir,omitempty"`
	IjazahSMA         *string `gorm:"type:text;column:ijazah_sma" json:"ijazahSMA,omitempty"`
	ScreenshotPDDIKTI *string `gorm:"type:text;column:screenshot_pddikti" json:"screenshotPDDIKTI,omitempty"`
	SKPengangkatan    *string `gorm:"type:text;column:sk_pengangkatan" json:"skPengangkatan,omitempty"`
	SKMengajar        *string `gorm:"type:text;column:sk_mengajar" json:"skMengajar,omitempty"`

	Status    RegistrationStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt time.Time          `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time          `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Registration) TableName() string { return "pendaftaran" }

// AttachmentURLs returns every non-empty file URL on the record, used
// when purging remote assets before a delete.
func (r *Registration) AttachmentURLs() []string {
	fields := []*string{
		r.PasFoto, r.KTP, r.Ijazah, r.Formulir,
		r.IjazahSMA, r.ScreenshotPDDIKTI, r.SKPengangkatan, r.SKMengajar,
	}
	urls := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != nil && *f != "" {
			urls = append(urls, *f)
		}
	}
	return urls
}
