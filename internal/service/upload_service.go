package service

import (
	"context"
	"errors"

	"inkwell/internal/media"
	"inkwell/internal/models"
)

// MediaRelay is the slice of the Cloudinary client the upload service needs.
type MediaRelay interface {
	Upload(ctx context.Context, content []byte, filename string) (*media.UploadResult, error)
	Destroy(ctx context.Context, publicID string) error
}

type UploadService struct {
	relay MediaRelay
}

type UploadImageInput struct {
	Filename string
	Content  []byte
}

func NewUploadService(relay MediaRelay) *UploadService {
	return &UploadService{relay: relay}
}

// UploadImage forwards the raw file bytes to the media host. The payload is
// passed through untouched; size/type checks beyond the transport's body
// limit are intentionally absent.
func (s *UploadService) UploadImage(ctx context.Context, in UploadImageInput) (*media.UploadResult, error) {
	if len(in.Content) == 0 {
		return nil, models.NewValidationError("No image file provided")
	}

	result, err := s.relay.Upload(ctx, in.Content, in.Filename)
	if err != nil {
		return nil, models.NewUpstreamError("Failed to upload image", err)
	}
	return result, nil
}

// DeleteImage asks the media host to remove an asset by its public id.
func (s *UploadService) DeleteImage(ctx context.Context, publicID string) error {
	if publicID == "" {
		return models.NewValidationError("Public ID is required")
	}

	err := s.relay.Destroy(ctx, publicID)
	if errors.Is(err, media.ErrRejected) {
		return models.NewValidationError("Failed to delete image")
	}
	if err != nil {
		return models.NewUpstreamError("Failed to delete image", err)
	}
	return nil
}
