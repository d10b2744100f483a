package services

import (
	"time"

	"github.com/kampuspmb/admin_service/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	workbookEntryName = "data-pendaftaran.xlsx"
	workbookSheet     = "Pendaftaran"
)

// buildWorkbook renders the summary sheet: a fixed header row plus one
// row per registration, dates formatted dd/mm/yyyy.
func buildWorkbook(regs []domain.Registration) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", workbookSheet); err != nil {
		return nil, err
	}

	header := []interface{}{
		"ID", "Nama Lengkap", "NIK", "NISN", "No HP", "Email",
		"Tanggal Lahir", "Alamat", "Fakultas", "Program Studi", "Tanggal Daftar",
	}
	if err := f.SetSheetRow(workbookSheet, "A1", &header); err != nil {
		return nil, err
	}

	for i := range regs {
		reg := &regs[i]
		row := []interface{}{
			reg.ID, reg.NamaLengkap, reg.NIK, reg.NISN, reg.NoHp, reg.Email,
			formatDate(reg.TanggalLahir), reg.Alamat, reg.Fakultas, reg.ProgramStudi,
			formatDate(&reg.CreatedAt),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(workbookSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("02/01/2006")
}
