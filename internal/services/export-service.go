package services

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/kampuspmb/admin_service/internal/domain"
	"github.com/kampuspmb/admin_service/internal/helper"
	"github.com/kampuspmb/admin_service/internal/repository"
	"github.com/kampuspmb/admin_service/pkg/utils"
	"golang.org/x/sync/errgroup"
)

// ExportService bundles a registration's remote attachments and a
// summary workbook into a single ZIP. Attachment failures are absorbed
// (the entry is simply missing); only load and serialization failures
// are fatal.
type ExportService interface {
	ExportOne(ctx context.Context, id string) (*ExportResult, error)
	ExportAll(ctx context.Context) (*ExportResult, error)
}

type ExportResult struct {
	Filename string
	Data     []byte
}

type exportService struct {
	repo         repository.RegistrationRepository
	client       *http.Client
	fetchLimit   int
	fetchTimeout time.Duration
	maxFileSize  int64
}

func NewExportService(repo repository.RegistrationRepository, client *http.Client) ExportService {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &exportService{
		repo:         repo,
		client:       client,
		fetchLimit:   4,
		fetchTimeout: 20 * time.Second,
		maxFileSize:  25 * 1024 * 1024,
	}
}

// attachmentSlot describes one of the eight fixed file fields on a
// registration: the entry label, the expected media, and the URL (nil
// or empty means the slot is vacant and is never fetched).
type attachmentSlot struct {
	label  string
	url    *string
	ext    string
	accept string
}

func attachmentSlots(reg *domain.Registration) []attachmentSlot {
	return []attachmentSlot{
		{label: "pasfoto", url: reg.PasFoto, ext: ".jpg", accept: "image/jpeg"},
		{label: "ktp", url: reg.KTP, ext: ".pdf", accept: "application/pdf"},
		{label: "ijazah", url: reg.Ijazah, ext: ".pdf", accept: "application/pdf"},
		{label: "formulir", url: reg.Formulir, ext: ".pdf", accept: "application/pdf"},
		{label: "ijazahSMA", url: reg.IjazahSMA, ext: ".pdf", accept: "application/pdf"},
		{label: "screenshotPDDIKTI", url: reg.ScreenshotPDDIKTI, ext: ".pdf", accept: "application/pdf"},
		{label: "skPengangkatan", url: reg.SKPengangkatan, ext: ".pdf", accept: "application/pdf"},
		{label: "skMengajar", url: reg.SKMengajar, ext: ".pdf", accept: "application/pdf"},
	}
}

func (s *exportService) ExportOne(ctx context.Context, id string) (*ExportResult, error) {
	reg, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	data, err := s.buildArchive(ctx, []domain.Registration{*reg}, false)
	if err != nil {
		return nil, err
	}

	return &ExportResult{
		Filename: fmt.Sprintf("registrasi-%s.zip", helper.Slugify(reg.NamaLengkap)),
		Data:     data,
	}, nil
}

func (s *exportService) ExportAll(ctx context.Context) (*ExportResult, error) {
	regs, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}

	data, err := s.buildArchive(ctx, regs, true)
	if err != nil {
		return nil, err
	}

	return &ExportResult{
		Filename: "registrasi.zip",
		Data:     data,
	}, nil
}

// buildArchive writes one entry per successfully fetched attachment
// plus exactly one summary workbook. In bulk mode each registrant's
// entries live under a slug-named folder; two registrants slugifying
// identically get the second folder suffixed with the id prefix.
func (s *exportService) buildArchive(ctx context.Context, regs []domain.Registration, bulk bool) ([]byte, error) {
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)

	seen := map[string]bool{}
	for i := range regs {
		reg := &regs[i]
		slug := helper.Slugify(reg.NamaLengkap)

		prefix := ""
		if bulk {
			folder := slug
			if seen[folder] && len(reg.ID) >= 8 {
				folder = slug + "_" + reg.ID[:8]
			}
			seen[folder] = true
			prefix = folder + "/"
		}

		if err := s.addRegistration(ctx, zw, reg, slug, prefix); err != nil {
			return nil, err
		}
	}

	wb, err := buildWorkbook(regs)
	if err != nil {
		return nil, err
	}
	w, err := zw.Create(workbookEntryName)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(wb); err != nil {
		return nil, err
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *exportService) addRegistration(ctx context.Context, zw *zip.Writer, reg *domain.Registration, slug, prefix string) error {
	slots := attachmentSlots(reg)
	data := s.fetchAttachments(ctx, reg.ID, slots)

	for i, slot := range slots {
		if data[i] == nil {
			continue
		}
		w, err := zw.Create(prefix + slug + "_" + slot.label + slot.ext)
		if err != nil {
			return err
		}
		if _, err := w.Write(data[i]); err != nil {
			return err
		}
	}
	return nil
}

// fetchAttachments retrieves every occupied slot with bounded
// concurrency. Results come back indexed by slot so archive entry
// order stays deterministic regardless of completion order. A failed
// fetch leaves its slot nil and is only logged.
func (s *exportService) fetchAttachments(ctx context.Context, regID string, slots []attachmentSlot) [][]byte {
	results := make([][]byte, len(slots))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.fetchLimit)

	for i, slot := range slots {
		if slot.url == nil || *slot.url == "" {
			continue
		}
		g.Go(func() error {
			b, err := s.fetchOne(gctx, *slot.url, slot.accept)
			if err != nil {
				log.Printf("skip attachment %s for registration %s: %v", slot.label, regID, err)
				return nil
			}
			results[i] = b
			return nil
		})
	}

	_ = g.Wait()
	return results
}

func (s *exportService) fetchOne(ctx context.Context, url, accept string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", accept)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return utils.ReadAllLimit(resp.Body, s.maxFileSize)
}
