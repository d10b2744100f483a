package repository

import (
	"github.com/kampuspmb/admin_service/internal/domain"
	"gorm.io/gorm"
)

type BeritaRepository interface {
	Create(b *domain.Berita) error
	FindAll() ([]domain.Berita, error)
	FindByID(id string) (*domain.Berita, error)
	FindPublicBySlug(slug string) (*domain.Berita, error)
	FindPublic(jenis string, limit int) ([]domain.Berita, error)
	Save(b *domain.Berita) error
	Delete(id string) error
}

type beritaRepository struct {
	db *gorm.DB
}

func NewBeritaRepository(db *gorm.DB) BeritaRepository {
	return &beritaRepository{db: db}
}

func (r *beritaRepository) Create(b *domain.Berita) error {
	return translateErr(r.db.Create(b).Error)
}

func (r *beritaRepository) FindAll() ([]domain.Berita, error) {
	var list []domain.Berita
	if err := r.db.Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, translateErr(err)
	}
	return list, nil
}

func (r *beritaRepository) FindByID(id string) (*domain.Berita, error) {
	b := &domain.Berita{}
	if err := r.db.First(b, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	return b, nil
}

// Only internal berita carry slugs, and only active ones are public.
func (r *beritaRepository) FindPublicBySlug(slug string) (*domain.Berita, error) {
	b := &domain.Berita{}
	err := r.db.Where("slug = ? AND aktif = ? AND jenis = ?", slug, true, domain.BeritaJenisInternal).
		First(b).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return b, nil
}

func (r *beritaRepository) FindPublic(jenis string, limit int) ([]domain.Berita, error) {
	q := r.db.Where("aktif = ?", true)
	if jenis != "" {
		q = q.Where("jenis = ?", jenis)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var list []domain.Berita
	if err := q.Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, translateErr(err)
	}
	return list, nil
}

func (r *beritaRepository) Save(b *domain.Berita) error {
	return translateErr(r.db.Save(b).Error)
}

func (r *beritaRepository) Delete(id string) error {
	res := r.db.Delete(&domain.Berita{}, "id = ?", id)
	if res.Error != nil {
		return translateErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
