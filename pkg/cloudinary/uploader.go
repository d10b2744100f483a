package cloudinary

import (
	"context"
	"errors"
	"io"
	"regexp"
	"strings"

	cld "github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type CloudinaryUploader struct {
	cld *cld.Cloudinary
}

func NewCloudinaryUploader(cloud *cld.Cloudinary) *CloudinaryUploader {
	return &CloudinaryUploader{cld: cloud}
}

func boolPtr(b bool) *bool {
	return &b
}

func (u *CloudinaryUploader) UploadImage(ctx context.Context, folder string, r io.Reader) (string, string, error) {
	res, err := u.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:         folder,
		ResourceType:   "image",
		UseFilename:    boolPtr(true),
		UniqueFilename: boolPtr(true),
		Overwrite:      boolPtr(false),
	})
	if err != nil {
		return "", "", err
	}
	return res.SecureURL, res.PublicID, nil
}

// Destroy removes the asset a delivery URL points at. PDFs live under
// the "raw" resource type, everything else under "image".
func (u *CloudinaryUploader) Destroy(ctx context.Context, fileURL string) error {
	publicID, err := ExtractPublicID(fileURL)
	if err != nil {
		return err
	}

	resourceType := "image"
	if strings.Contains(fileURL, ".pdf") {
		resourceType = "raw"
	}

	_, err = u.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: resourceType,
	})
	return err
}

var publicIDRe = regexp.MustCompile(`(?i)/upload/(?:v\d+/)?([^.]+)(?:\.[a-z]+)?$`)

// ExtractPublicID pulls the public ID out of a Cloudinary delivery URL.
func ExtractPublicID(fileURL string) (string, error) {
	m := publicIDRe.FindStringSubmatch(fileURL)
	if len(m) < 2 || m[1] == "" {
		return "", errors.New("invalid cloudinary url")
	}
	return m[1], nil
}
