// Package storage wraps the media storage collaborator. The rest of the app
// only sees upload-and-get-URL.
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type MediaStore struct {
	cld *cloudinary.Cloudinary
}

func NewMediaStore(cloudinaryURL string) (*MediaStore, error) {
	if cloudinaryURL == "" {
		return nil, fmt.Errorf("CLOUDINARY_URL not set")
	}
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, err
	}
	return &MediaStore{cld: cld}, nil
}

// Upload stores the file and returns its public URL.
func (m *MediaStore) Upload(ctx context.Context, file io.Reader, folder, publicID string) (string, error) {
	result, err := m.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         folder,
		PublicID:       publicID,
		Transformation: "q_auto",
	})
	if err != nil {
		return "", err
	}
	return result.SecureURL, nil
}
