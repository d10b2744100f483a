package services

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/kampuspmb/admin_service/internal/domain"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fakeRegRepo struct {
	regs []domain.Registration
}

func (f *fakeRegRepo) Create(reg *domain.Registration) error { return nil }

func (f *fakeRegRepo) FindByID(id string) (*domain.Registration, error) {
	for i := range f.regs {
		if f.regs[i].ID == id {
			reg := f.regs[i]
			return &reg, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRegRepo) FindAll() ([]domain.Registration, error) {
	return f.regs, nil
}

func (f *fakeRegRepo) UpdateStatus(id string, status domain.RegistrationStatus) error { return nil }
func (f *fakeRegRepo) Delete(id string) error                                         { return nil }

func strPtr(s string) *string { return &s }

// newAttachmentServer serves fake photo/document bytes and counts
// every request it receives.
func newAttachmentServer(t *testing.T) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	hits := &atomic.Int64{}
	mux := http.NewServeMux()
	mux.HandleFunc("/photo.jpg", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("jpeg-bytes"))
	})
	mux.HandleFunc("/doc.pdf", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("pdf-bytes"))
	})
	mux.HandleFunc("/gone.pdf", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusNotFound)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, hits
}

func archiveEntries(t *testing.T, data []byte) map[string][]byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err, "archive must be readable")

	out := map[string][]byte{}
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		buf := &bytes.Buffer{}
		_, err = buf.ReadFrom(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		out[f.Name] = buf.Bytes()
	}
	return out
}

func workbookRows(t *testing.T, entries map[string][]byte) [][]string {
	t.Helper()
	wb, ok := entries["data-pendaftaran.xlsx"]
	require.True(t, ok, "summary workbook entry must be present")

	f, err := excelize.OpenReader(bytes.NewReader(wb))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Pendaftaran")
	require.NoError(t, err)
	return rows
}

func TestExportOne_NoAttachments(t *testing.T) {
	repo := &fakeRegRepo{regs: []domain.Registration{
		{ID: "reg1", NamaLengkap: "Budi Santoso"},
	}}
	svc := NewExportService(repo, nil)

	res, err := svc.ExportOne(context.Background(), "reg1")
	require.NoError(t, err)
	require.Equal(t, "registrasi-budi_santoso.zip", res.Filename)

	entries := archiveEntries(t, res.Data)
	require.Len(t, entries, 1, "only the workbook should be present")
	require.Contains(t, entries, "data-pendaftaran.xlsx")
}

func TestExportOne_PhotoOnly(t *testing.T) {
	srv, _ := newAttachmentServer(t)
	repo := &fakeRegRepo{regs: []domain.Registration{
		{ID: "reg1", NamaLengkap: "Andi Pratama", PasFoto: strPtr(srv.URL + "/photo.jpg")},
	}}
	svc := NewExportService(repo, srv.Client())

	res, err := svc.ExportOne(context.Background(), "reg1")
	require.NoError(t, err)

	entries := archiveEntries(t, res.Data)
	require.Len(t, entries, 2)
	require.Equal(t, []byte("jpeg-bytes"), entries["andi_pratama_pasfoto.jpg"])
	require.Contains(t, entries, "data-pendaftaran.xlsx")
}

func TestExportOne_FailedAttachmentIsSkipped(t *testing.T) {
	srv, _ := newAttachmentServer(t)
	repo := &fakeRegRepo{regs: []domain.Registration{
		{
			ID:          "reg1",
			NamaLengkap: "Andi Pratama",
			PasFoto:     strPtr(srv.URL + "/photo.jpg"),
			KTP:         strPtr(srv.URL + "/doc.pdf"),
			Ijazah:      strPtr(srv.URL + "/gone.pdf"),
		},
	}}
	svc := NewExportService(repo, srv.Client())

	res, err := svc.ExportOne(context.Background(), "reg1")
	require.NoError(t, err, "one broken attachment must not abort the export")

	entries := archiveEntries(t, res.Data)
	require.Contains(t, entries, "andi_pratama_pasfoto.jpg")
	require.Contains(t, entries, "andi_pratama_ktp.pdf")
	require.NotContains(t, entries, "andi_pratama_ijazah.pdf")
	require.Contains(t, entries, "data-pendaftaran.xlsx")
	require.Len(t, entries, 3)
}

func TestExportOne_NotFoundIssuesNoFetches(t *testing.T) {
	srv, hits := newAttachmentServer(t)
	repo := &fakeRegRepo{regs: []domain.Registration{
		{ID: "reg1", NamaLengkap: "Andi Pratama", PasFoto: strPtr(srv.URL + "/photo.jpg")},
	}}
	svc := NewExportService(repo, srv.Client())

	_, err := svc.ExportOne(context.Background(), "nope")
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.Zero(t, hits.Load(), "no outbound fetch may happen for an unknown id")
}

func TestExportAll_Empty(t *testing.T) {
	svc := NewExportService(&fakeRegRepo{}, nil)

	res, err := svc.ExportAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, "registrasi.zip", res.Filename)

	entries := archiveEntries(t, res.Data)
	require.Len(t, entries, 1)
	rows := workbookRows(t, entries)
	require.Len(t, rows, 1, "empty export still carries the header row")
}

func TestExportAll_FoldersAndWorkbook(t *testing.T) {
	srv, _ := newAttachmentServer(t)
	birth := time.Date(1995, 5, 15, 0, 0, 0, 0, time.UTC)
	repo := &fakeRegRepo{regs: []domain.Registration{
		{
			ID:           "reg1",
			NamaLengkap:  "Andi Pratama",
			NIK:          "3201234567890123",
			TanggalLahir: &birth,
			PasFoto:      strPtr(srv.URL + "/photo.jpg"),
		},
		{
			ID:          "reg2",
			NamaLengkap: "Maya Sari",
			KTP:         strPtr(srv.URL + "/doc.pdf"),
		},
	}}
	svc := NewExportService(repo, srv.Client())

	res, err := svc.ExportAll(context.Background())
	require.NoError(t, err)

	entries := archiveEntries(t, res.Data)
	require.Contains(t, entries, "andi_pratama/andi_pratama_pasfoto.jpg")
	require.Contains(t, entries, "maya_sari/maya_sari_ktp.pdf")

	rows := workbookRows(t, entries)
	require.Len(t, rows, 3, "header plus one row per registration")
	require.Equal(t, "15/05/1995", rows[1][6], "birth date must render dd/mm/yyyy")
	require.Equal(t, "-", rows[2][6], "nil date renders as placeholder")
}

func TestExportAll_DuplicateSlugsDisambiguated(t *testing.T) {
	srv, _ := newAttachmentServer(t)
	repo := &fakeRegRepo{regs: []domain.Registration{
		{ID: "aaaaaaaa-1111", NamaLengkap: "Andi Pratama", PasFoto: strPtr(srv.URL + "/photo.jpg")},
		{ID: "bbbbbbbb-2222", NamaLengkap: "Andi Pratama!", PasFoto: strPtr(srv.URL + "/photo.jpg")},
	}}
	svc := NewExportService(repo, srv.Client())

	res, err := svc.ExportAll(context.Background())
	require.NoError(t, err)

	entries := archiveEntries(t, res.Data)
	require.Contains(t, entries, "andi_pratama/andi_pratama_pasfoto.jpg")
	require.Contains(t, entries, "andi_pratama_bbbbbbbb/andi_pratama_pasfoto.jpg")
}

func TestExportOne_AllAttachmentsFailStillProducesArchive(t *testing.T) {
	srv, _ := newAttachmentServer(t)
	repo := &fakeRegRepo{regs: []domain.Registration{
		{
			ID:          "reg1",
			NamaLengkap: "Siti Nurhaliza",
			PasFoto:     strPtr(srv.URL + "/gone.pdf"),
			KTP:         strPtr(srv.URL + "/gone.pdf"),
		},
	}}
	svc := NewExportService(repo, srv.Client())

	res, err := svc.ExportOne(context.Background(), "reg1")
	require.NoError(t, err)

	entries := archiveEntries(t, res.Data)
	require.Len(t, entries, 1)
	require.Contains(t, entries, "data-pendaftaran.xlsx")
}
