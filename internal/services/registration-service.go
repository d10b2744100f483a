package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/kampuspmb/admin_service/internal/domain"
	"github.com/kampuspmb/admin_service/internal/dto"
	"github.com/kampuspmb/admin_service/internal/interfaces"
	"github.com/kampuspmb/admin_service/internal/repository"
)

type RegistrationService interface {
	Create(input dto.RegistrationCreateRequest) (*domain.Registration, error)
	List() ([]domain.Registration, error)
	SetStatus(id string, status domain.RegistrationStatus) error
	Delete(ctx context.Context, id string) error
}

type registrationService struct {
	repo     repository.RegistrationRepository
	uploader interfaces.Uploader
	producer interfaces.ProducerHandler
}

func NewRegistrationService(
	repo repository.RegistrationRepository,
	uploader interfaces.Uploader,
	producer interfaces.ProducerHandler,
) RegistrationService {
	return &registrationService{
		repo:     repo,
		uploader: uploader,
		producer: producer,
	}
}

func (s *registrationService) Create(input dto.RegistrationCreateRequest) (*domain.Registration, error) {
	reg := &domain.Registration{
		ID:           uuid.NewString(),
		NamaLengkap:  input.NamaLengkap,
		NIK:          input.NIK,
		NISN:         input.NISN,
		NoHp:         input.NoHp,
		Email:        input.Email,
		TanggalLahir: input.TanggalLahir,
		Alamat:       input.Alamat,
		Fakultas:     input.Fakultas,
		ProgramStudi: input.ProgramStudi,
		Jalur:        input.Jalur,

		PasFoto:           input.PasFoto,
		KTP:               input.KTP,
		Ijazah:            input.Ijazah,
		Formulir:          input.Formulir,
		IjazahSMA:         input.IjazahSMA,
		ScreenshotPDDIKTI: input.ScreenshotPDDIKTI,
		SKPengangkatan:    input.SKPengangkatan,
		SKMengajar:        input.SKMengajar,

		Status: domain.RegistrationStatusPending,
	}

	if err := s.repo.Create(reg); err != nil {
		return nil, err
	}

	s.publishEvent(dto.EventRegistrationCreated, reg)
	return reg, nil
}

func (s *registrationService) List() ([]domain.Registration, error) {
	return s.repo.FindAll()
}

func (s *registrationService) SetStatus(id string, status domain.RegistrationStatus) error {
	if err := s.repo.UpdateStatus(id, status); err != nil {
		return err
	}

	reg, err := s.repo.FindByID(id)
	if err == nil {
		s.publishEvent(dto.EventRegistrationStatus, reg)
	}
	return nil
}

// Delete purges the registration's Cloudinary assets before removing
// the row. A failed purge is logged and skipped; the row delete still
// proceeds so the record cannot get stuck behind a dead asset.
func (s *registrationService) Delete(ctx context.Context, id string) error {
	reg, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}

	for _, url := range reg.AttachmentURLs() {
		if err := s.uploader.Destroy(ctx, url); err != nil {
			log.Printf("cloudinary destroy failed for %s: %v", url, err)
		}
	}

	return s.repo.Delete(id)
}

func (s *registrationService) publishEvent(key string, reg *domain.Registration) {
	if s.producer == nil {
		return
	}

	payload, err := json.Marshal(dto.RegistrationEvent{
		RegistrationID: reg.ID,
		NamaLengkap:    reg.NamaLengkap,
		Email:          reg.Email,
		Status:         string(reg.Status),
		OccurredAt:     time.Now(),
	})
	if err != nil {
		return
	}
	if err := s.producer.PublishMessage([]byte(key), payload); err != nil {
		log.Printf("publish %s failed: %v", key, err)
	}
}
