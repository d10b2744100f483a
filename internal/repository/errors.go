package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/kampuspmb/admin_service/internal/domain"
	"gorm.io/gorm"
)

// translateErr converts driver-level errors into the domain taxonomy
// exactly once, so no caller ever inspects gorm or pgconn errors.
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return domain.ErrDuplicate
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicate
	}
	return err
}
