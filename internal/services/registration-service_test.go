package services

import (
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/kampuspmb/admin_service/internal/domain"
	"github.com/kampuspmb/admin_service/internal/dto"
	"github.com/stretchr/testify/require"
)

type fakeProducer struct {
	keys     []string
	payloads [][]byte
}

func (f *fakeProducer) PublishMessage(key, value []byte) error {
	f.keys = append(f.keys, string(key))
	f.payloads = append(f.payloads, value)
	return nil
}

type fakeUploader struct {
	destroyed []string
}

func (f *fakeUploader) UploadImage(ctx context.Context, folder string, r io.Reader) (string, string, error) {
	return "", "", nil
}

func (f *fakeUploader) Destroy(ctx context.Context, fileURL string) error {
	f.destroyed = append(f.destroyed, fileURL)
	return nil
}

type memRegRepo struct {
	regs map[string]*domain.Registration
}

func newMemRegRepo() *memRegRepo {
	return &memRegRepo{regs: map[string]*domain.Registration{}}
}

func (m *memRegRepo) Create(reg *domain.Registration) error {
	m.regs[reg.ID] = reg
	return nil
}

func (m *memRegRepo) FindByID(id string) (*domain.Registration, error) {
	reg, ok := m.regs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return reg, nil
}

func (m *memRegRepo) FindAll() ([]domain.Registration, error) {
	out := make([]domain.Registration, 0, len(m.regs))
	for _, r := range m.regs {
		out = append(out, *r)
	}
	return out, nil
}

func (m *memRegRepo) UpdateStatus(id string, status domain.RegistrationStatus) error {
	reg, ok := m.regs[id]
	if !ok {
		return domain.ErrNotFound
	}
	reg.Status = status
	return nil
}

func (m *memRegRepo) Delete(id string) error {
	if _, ok := m.regs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.regs, id)
	return nil
}

func TestCreatePublishesEvent(t *testing.T) {
	repo := newMemRegRepo()
	producer := &fakeProducer{}
	svc := NewRegistrationService(repo, &fakeUploader{}, producer)

	reg, err := svc.Create(dto.RegistrationCreateRequest{
		NamaLengkap: "Andi Pratama",
		NIK:         "3201234567890123",
		Email:       "andi.pratama@email.com",
	})
	require.NoError(t, err)
	require.NotEmpty(t, reg.ID)
	require.Equal(t, domain.RegistrationStatusPending, reg.Status)

	require.Equal(t, []string{dto.EventRegistrationCreated}, producer.keys)

	var ev dto.RegistrationEvent
	require.NoError(t, json.Unmarshal(producer.payloads[0], &ev))
	require.Equal(t, reg.ID, ev.RegistrationID)
	require.Equal(t, "pending", ev.Status)
}

func TestSetStatusPublishesEvent(t *testing.T) {
	repo := newMemRegRepo()
	repo.regs["reg1"] = &domain.Registration{ID: "reg1", Status: domain.RegistrationStatusPending}
	producer := &fakeProducer{}
	svc := NewRegistrationService(repo, &fakeUploader{}, producer)

	require.NoError(t, svc.SetStatus("reg1", domain.RegistrationStatusApproved))
	require.Equal(t, []string{dto.EventRegistrationStatus}, producer.keys)

	require.ErrorIs(t, svc.SetStatus("nope", domain.RegistrationStatusApproved), domain.ErrNotFound)
}

func TestDeletePurgesAttachments(t *testing.T) {
	url1 := "https://res.cloudinary.com/demo/image/upload/v1/foto/a.jpg"
	url2 := "https://res.cloudinary.com/demo/raw/upload/v1/dok/b.pdf"
	repo := newMemRegRepo()
	repo.regs["reg1"] = &domain.Registration{
		ID:      "reg1",
		PasFoto: &url1,
		KTP:     &url2,
	}
	uploader := &fakeUploader{}
	svc := NewRegistrationService(repo, uploader, &fakeProducer{})

	require.NoError(t, svc.Delete(context.Background(), "reg1"))
	require.Equal(t, []string{url1, url2}, uploader.destroyed)

	_, err := repo.FindByID("reg1")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
