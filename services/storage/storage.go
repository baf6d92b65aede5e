package storage

import (
	"context"
	"fmt"
	"io"

	"fixify/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// StorageService uploads request photos and returns a public URL to store
// as the request's photo reference.
type StorageService interface {
	UploadPhoto(ctx context.Context, file io.Reader, folder string) (string, error)
}

// CloudinaryStorageService implements StorageService using Cloudinary.
type CloudinaryStorageService struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorageService initializes the Cloudinary client from the
// configured CLOUDINARY_URL.
func NewCloudinaryStorageService() (*CloudinaryStorageService, error) {
	url := config.AppConfig.CloudinaryURL
	if url == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return &CloudinaryStorageService{cld: cld}, nil
}

// UploadPhoto uploads the file and returns its secure URL.
func (s *CloudinaryStorageService) UploadPhoto(ctx context.Context, file io.Reader, folder string) (string, error) {
	res, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %w", err)
	}
	return res.SecureURL, nil
}
