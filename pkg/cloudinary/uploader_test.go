package cloudinary

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractPublicID(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://res.cloudinary.com/demo/image/upload/v1712345678/berita/gambar.jpg", "berita/gambar"},
		{"https://res.cloudinary.com/demo/image/upload/berita/gambar.png", "berita/gambar"},
		{"https://res.cloudinary.com/demo/raw/upload/v1/dokumen/ktp.pdf", "dokumen/ktp"},
	}

	for _, tt := range tests {
		got, err := ExtractPublicID(tt.url)
		require.NoError(t, err, "ExtractPublicID(%q)", tt.url)
		require.Equal(t, tt.want, got)
	}
}

func TestExtractPublicIDInvalid(t *testing.T) {
	_, err := ExtractPublicID("https://example.com/not-cloudinary.jpg")
	require.Error(t, err)
}
