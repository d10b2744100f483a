package repository

import (
	"github.com/kampuspmb/admin_service/internal/domain"
	"gorm.io/gorm"
)

type FakultasRepository interface {
	Create(f *domain.Fakultas) error
	FindAll() ([]domain.Fakultas, error)
	FindByID(id string) (*domain.Fakultas, error)
	Save(f *domain.Fakultas) error
	Delete(id string) error
	Count() (int64, error)
}

type fakultasRepository struct {
	db *gorm.DB
}

func NewFakultasRepository(db *gorm.DB) FakultasRepository {
	return &fakultasRepository{db: db}
}

func (r *fakultasRepository) Create(f *domain.Fakultas) error {
	return translateErr(r.db.Create(f).Error)
}

func (r *fakultasRepository) FindAll() ([]domain.Fakultas, error) {
	var list []domain.Fakultas
	if err := r.db.Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, translateErr(err)
	}
	return list, nil
}

func (r *fakultasRepository) FindByID(id string) (*domain.Fakultas, error) {
	f := &domain.Fakultas{}
	if err := r.db.First(f, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	return f, nil
}

func (r *fakultasRepository) Save(f *domain.Fakultas) error {
	return translateErr(r.db.Save(f).Error)
}

func (r *fakultasRepository) Delete(id string) error {
	res := r.db.Delete(&domain.Fakultas{}, "id = ?", id)
	if res.Error != nil {
		return translateErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *fakultasRepository) Count() (int64, error) {
	var n int64
	if err := r.db.Model(&domain.Fakultas{}).Count(&n).Error; err != nil {
		return 0, translateErr(err)
	}
	return n, nil
}
