package repository

import (
	"github.com/kampuspmb/admin_service/internal/domain"
	"gorm.io/gorm"
)

type BrosurRepository interface {
	FindFirst() (*domain.Brosur, error)
	Replace(b *domain.Brosur) error
	Save(b *domain.Brosur) error
}

type brosurRepository struct {
	db *gorm.DB
}

func NewBrosurRepository(db *gorm.DB) BrosurRepository {
	return &brosurRepository{db: db}
}

func (r *brosurRepository) FindFirst() (*domain.Brosur, error) {
	b := &domain.Brosur{}
	if err := r.db.First(b).Error; err != nil {
		return nil, translateErr(err)
	}
	return b, nil
}

// Replace deletes any existing brochure and inserts the new one in a
// single transaction; at most one row survives.
func (r *brosurRepository) Replace(b *domain.Brosur) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&domain.Brosur{}).Error; err != nil {
			return err
		}
		return tx.Create(b).Error
	})
	return translateErr(err)
}

func (r *brosurRepository) Save(b *domain.Brosur) error {
	return translateErr(r.db.Save(b).Error)
}
