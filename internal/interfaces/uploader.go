package interfaces

import (
	"context"
	"io"
)

type Uploader interface {
	UploadImage(ctx context.Context, folder string, r io.Reader) (url string, publicID string, err error)
	Destroy(ctx context.Context, fileURL string) error
}
