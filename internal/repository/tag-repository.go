package repository

import (
	"github.com/kampuspmb/admin_service/internal/domain"
	"gorm.io/gorm"
)

type TagRepository interface {
	Create(t *domain.Tag) error
	FindAll() ([]domain.Tag, error)
	FindByNamaOrSlug(nama, slug string) (*domain.Tag, error)
	Delete(id string) error
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(t *domain.Tag) error {
	return translateErr(r.db.Create(t).Error)
}

func (r *tagRepository) FindAll() ([]domain.Tag, error) {
	var list []domain.Tag
	if err := r.db.Order("nama ASC").Find(&list).Error; err != nil {
		return nil, translateErr(err)
	}
	return list, nil
}

func (r *tagRepository) FindByNamaOrSlug(nama, slug string) (*domain.Tag, error) {
	t := &domain.Tag{}
	if err := r.db.Where("nama = ? OR slug = ?", nama, slug).First(t).Error; err != nil {
		return nil, translateErr(err)
	}
	return t, nil
}

func (r *tagRepository) Delete(id string) error {
	res := r.db.Delete(&domain.Tag{}, "id = ?", id)
	if res.Error != nil {
		return translateErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
