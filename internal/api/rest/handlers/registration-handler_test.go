package handlers

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/kampuspmb/admin_service/internal/domain"
	"github.com/kampuspmb/admin_service/internal/dto"
	"github.com/kampuspmb/admin_service/internal/services"
	"github.com/stretchr/testify/require"
)

type fakeRegistrationService struct {
	regs []domain.Registration
}

func (f *fakeRegistrationService) Create(input dto.RegistrationCreateRequest) (*domain.Registration, error) {
	return &domain.Registration{ID: "new", NamaLengkap: input.NamaLengkap}, nil
}

func (f *fakeRegistrationService) List() ([]domain.Registration, error) {
	return f.regs, nil
}

func (f *fakeRegistrationService) SetStatus(id string, status domain.RegistrationStatus) error {
	return nil
}

func (f *fakeRegistrationService) Delete(ctx context.Context, id string) error {
	return nil
}

type fakeExportService struct {
	result *services.ExportResult
	err    error
	calls  int
}

func (f *fakeExportService) ExportOne(ctx context.Context, id string) (*services.ExportResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakeExportService) ExportAll(ctx context.Context) (*services.ExportResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func newTestApp(exp *fakeExportService) *fiber.App {
	app := fiber.New()
	h := NewRegistrationHandler(&fakeRegistrationService{}, exp)
	h.SetupRoutes(app.Group("/api"))
	return app
}

func TestDownloadRequiresID(t *testing.T) {
	exp := &fakeExportService{}
	app := newTestApp(exp)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/registrations/download", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.Zero(t, exp.calls, "validation must happen before any export work")
}

func TestDownloadUnknownID(t *testing.T) {
	exp := &fakeExportService{err: domain.ErrNotFound}
	app := newTestApp(exp)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/registrations/download?id=nope", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDownloadStreamsArchive(t *testing.T) {
	exp := &fakeExportService{result: &services.ExportResult{
		Filename: "registrasi-andi_pratama.zip",
		Data:     []byte("zip-bytes"),
	}}
	app := newTestApp(exp)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/registrations/download?id=reg1", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "application/zip", resp.Header.Get(fiber.HeaderContentType))
	require.Equal(t,
		`attachment; filename="registrasi-andi_pratama.zip"`,
		resp.Header.Get(fiber.HeaderContentDisposition))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, []byte("zip-bytes"), body)
}

func TestDownloadAllStreamsArchive(t *testing.T) {
	exp := &fakeExportService{result: &services.ExportResult{
		Filename: "registrasi.zip",
		Data:     []byte("zip-bytes"),
	}}
	app := newTestApp(exp)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/registrations/download-all", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t,
		`attachment; filename="registrasi.zip"`,
		resp.Header.Get(fiber.HeaderContentDisposition))
}

func TestDownloadAllFailure(t *testing.T) {
	exp := &fakeExportService{err: io.ErrUnexpectedEOF}
	app := newTestApp(exp)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/registrations/download-all", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
