package repository

import (
	"github.com/kampuspmb/admin_service/internal/domain"
	"gorm.io/gorm"
)

type RegistrationRepository interface {
	Create(reg *domain.Registration) error
	FindByID(id string) (*domain.Registration, error)
	FindAll() ([]domain.Registration, error)
	UpdateStatus(id string, status domain.RegistrationStatus) error
	Delete(id string) error
}

type registrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &registrationRepository{db: db}
}

func (r *registrationRepository) Create(reg *domain.Registration) error {
	return translateErr(r.db.Create(reg).Error)
}

func (r *registrationRepository) FindByID(id string) (*domain.Registration, error) {
	reg := &domain.Registration{}
	if err := r.db.First(reg, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	return reg, nil
}

// FindAll returns every registration, newest first. The ordering is
// stable within one call so bulk-export folder naming is deterministic.
func (r *registrationRepository) FindAll() ([]domain.Registration, error) {
	var regs []domain.Registration
	if err := r.db.Order("created_at DESC").Find(&regs).Error; err != nil {
		return nil, translateErr(err)
	}
	return regs, nil
}

func (r *registrationRepository) UpdateStatus(id string, status domain.RegistrationStatus) error {
	res := r.db.Model(&domain.Registration{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return translateErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *registrationRepository) Delete(id string) error {
	res := r.db.Delete(&domain.Registration{}, "id = ?", id)
	if res.Error != nil {
		return translateErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
