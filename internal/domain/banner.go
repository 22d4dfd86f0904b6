package domain

import (
	"context"
	"time"
)

// Banner is a stored marketing asset. The image is carried inline as a
// data URL, matching how the development store holds blobs.
type Banner struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category,omitempty"`
	ImageData string    `json:"image_data"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a deep copy of the banner.
func (b *Banner) Clone() *Banner {
	if b == nil {
		return nil
	}
	clone := *b
	return &clone
}

type CreateBannerInput struct {
	Title     string `json:"title"`
	Category  string `json:"category,omitempty"`
	ImageData string `json:"image_data"`
	SortOrder int    `json:"sort_order"`
}

func (i *CreateBannerInput) Validate() error {
	if i.Title == "" {
		return NewValidationError("banner title is required")
	}
	if i.ImageData == "" {
		return NewValidationError("banner image data is required")
	}
	return nil
}

type BannerRepository interface {
	// ListBanners returns banners, optionally filtered by category,
	// ordered by sort order then creation time
	ListBanners(ctx context.Context, category string) ([]*Banner, error)

	// CreateBanner stores a new banner
	CreateBanner(ctx context.Context, input CreateBannerInput) (*Banner, error)

	// DeleteBanner removes a banner. Returns false when it does not exist.
	DeleteBanner(ctx context.Context, id string) (bool, error)
}
