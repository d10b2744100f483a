package repository

import (
	"github.com/kampuspmb/admin_service/internal/domain"
	"gorm.io/gorm"
)

type ProgramStudiRepository interface {
	Create(p *domain.ProgramStudi) error
	FindAll() ([]domain.ProgramStudi, error)
	FindByID(id string) (*domain.ProgramStudi, error)
	Save(p *domain.ProgramStudi) error
	Delete(id string) error
}

type prodiRepository struct {
	db *gorm.DB
}

func NewProgramStudiRepository(db *gorm.DB) ProgramStudiRepository {
	return &prodiRepository{db: db}
}

func (r *prodiRepository) Create(p *domain.ProgramStudi) error {
	return translateErr(r.db.Create(p).Error)
}

func (r *prodiRepository) FindAll() ([]domain.ProgramStudi, error) {
	var list []domain.ProgramStudi
	if err := r.db.Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, translateErr(err)
	}
	return list, nil
}

func (r *prodiRepository) FindByID(id string) (*domain.ProgramStudi, error) {
	p := &domain.ProgramStudi{}
	if err := r.db.First(p, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	return p, nil
}

func (r *prodiRepository) Save(p *domain.ProgramStudi) error {
	return translateErr(r.db.Save(p).Error)
}

func (r *prodiRepository) Delete(id string) error {
	res := r.db.Delete(&domain.ProgramStudi{}, "id = ?", id)
	if res.Error != nil {
		return translateErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
