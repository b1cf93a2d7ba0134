package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"

	intconfig "aqarhub/internal/config"
	"aqarhub/internal/domain"
	"aqarhub/internal/domain/models"
	"aqarhub/internal/repositories"
	"aqarhub/internal/utils"
)

// MediaService attaches uploaded images to listings. Encoding, cropping
// and thumbnailing happen client-side; the server stores what it gets
// and persists the issued URL.
type MediaService struct {
	Repo      repositories.ListingRepository
	DB        *sql.DB
	RequestID string
}

func (s MediaService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s MediaService) repo() repositories.ListingRepository {
	if s.Repo.DB != nil {
		return s.Repo
	}
	return repositories.ListingRepository{DB: s.db()}
}

// Upload stores one image object and records it against the listing.
// The first image also becomes the listing cover.
func (s MediaService) Upload(ctx context.Context, listingID int64, reader io.Reader, size int64, contentType, filename string) (models.ListingImage, error) {
	if intconfig.Media == nil {
		return models.ListingImage{}, domain.InternalError{Msg: "media storage is not configured"}
	}
	if !strings.HasPrefix(contentType, "image/") {
		return models.ListingImage{}, domain.ValidationError{Field: "file", Msg: "only image uploads are accepted"}
	}

	listing, err := s.repo().GetByID(listingID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ListingImage{}, domain.NotFoundError{Resource: "listing"}
	}
	if err != nil {
		return models.ListingImage{}, domain.InternalError{Msg: "failed to load listing", Err: err}
	}

	existing, err := s.repo().Images(listingID)
	if err != nil {
		return models.ListingImage{}, domain.InternalError{Msg: "failed to load listing images", Err: err}
	}

	key, url, err := intconfig.Media.Upload(ctx, reader, size, contentType, filename)
	if err != nil {
		return models.ListingImage{}, domain.InternalError{Msg: "failed to store image", Err: err}
	}

	img := models.ListingImage{
		ListingID: listingID,
		ObjectKey: key,
		URL:       url,
		SortOrder: len(existing),
	}
	id, err := s.repo().InsertImage(img)
	if err != nil {
		// orphaned object cleanup, best-effort
		_ = intconfig.Media.Remove(ctx, key)
		return models.ListingImage{}, domain.InternalError{Msg: "failed to record image", Err: err}
	}
	img.ID = id

	if len(existing) == 0 && listing.CoverURL == "" {
		_ = s.repo().Update(listingID, models.ListingPatch{CoverURL: &url})
	}

	utils.LogEvent(s.RequestID, "media", "upload", fmt.Sprintf("listing_id=%d key=%s", listingID, key))
	invalidate("/", "/listings", "/listings/"+listing.Slug)
	return img, nil
}

// Delete removes the image row and its stored object (best-effort).
func (s MediaService) Delete(ctx context.Context, imageID int64) error {
	img, err := s.repo().GetImage(imageID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: "image"}
	}
	if err != nil {
		return domain.InternalError{Msg: "failed to load image", Err: err}
	}

	if intconfig.Media != nil {
		if err := intconfig.Media.Remove(ctx, img.ObjectKey); err != nil {
			utils.LogEvent(s.RequestID, "media", "object_delete_failed",
				fmt.Sprintf("key=%s err=%v", img.ObjectKey, err))
		}
	}
	if err := s.repo().DeleteImage(imageID); err != nil {
		return domain.InternalError{Msg: "failed to delete image row", Err: err}
	}

	utils.LogEvent(s.RequestID, "media", "delete", fmt.Sprintf("image_id=%d", imageID))
	invalidate("/", "/listings")
	return nil
}
