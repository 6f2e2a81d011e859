package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryBlobStore stores report files in Cloudinary. The generated blob
// key is used as the asset's public ID, so keys resolve to delivery URLs
// without any local bookkeeping.
type CloudinaryBlobStore struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryBlobStore(cloudName, apiKey, apiSecret string) (*CloudinaryBlobStore, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}

	return &CloudinaryBlobStore{
		cld: cld,
	}, nil
}

// Put uploads the file bytes under key and returns the secure delivery URL.
func (s *CloudinaryBlobStore) Put(ctx context.Context, key string, data []byte) (string, error) {
	uploadResult, err := s.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		PublicID:     key,
		ResourceType: "auto", // Automatically detect image, pdf/doc (raw), etc.
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to Cloudinary: %w", err)
	}

	return uploadResult.SecureURL, nil
}

// Resolve builds the delivery URL for a previously stored key.
func (s *CloudinaryBlobStore) Resolve(ctx context.Context, key string) (string, error) {
	media, err := s.cld.Media(key)
	if err != nil {
		return "", fmt.Errorf("failed to build Cloudinary URL: %w", err)
	}

	url, err := media.String()
	if err != nil {
		return "", fmt.Errorf("failed to build Cloudinary URL: %w", err)
	}
	return url, nil
}
