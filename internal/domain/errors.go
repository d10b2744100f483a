package domain

import "errors"

// Closed error taxonomy. Repositories translate gorm/pgconn errors into
// these once; handlers map them to HTTP status codes.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)
