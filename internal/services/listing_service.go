package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intconfig "aqarhub/internal/config"
	"aqarhub/internal/domain"
	"aqarhub/internal/domain/models"
	"aqarhub/internal/ordering"
	"aqarhub/internal/repositories"
	"aqarhub/internal/utils"
)

// ListingService implements the admin actions on property listings:
// create, update, delete, feature toggles and batch reorder. Every
// mutation that changes placement goes through the ordering package.
type ListingService struct {
	Repo         repositories.ListingRepository
	CategoryRepo repositories.CategoryRepository
	AreaRepo     repositories.AreaRepository
	DB           *sql.DB
	RequestID    string
}

func (s ListingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s ListingService) repo() repositories.ListingRepository {
	if s.Repo.DB != nil {
		return s.Repo
	}
	return repositories.ListingRepository{DB: s.db()}
}

func (s ListingService) allocator() ordering.Allocator {
	return ordering.Allocator{DB: s.db(), Table: "listings", PromotedExpr: ordering.ListingPromotedExpr}
}

// ListingInput carries a validated create/update payload.
type ListingInput struct {
	TitleEN       string
	TitleAR       string
	DescriptionEN string
	DescriptionAR string
	Price         float64
	CategoryID    int64
	AreaID        int64
	Status        string
	IsFeatured    bool
	IsNew         bool
	OrderIndex    *int
	CoverURL      string
}

func (s ListingService) validate(in *ListingInput) error {
	fields := map[string]string{}

	in.TitleEN = utils.NormalizeSpace(in.TitleEN)
	in.TitleAR = utils.NormalizeSpace(in.TitleAR)
	if in.TitleEN == "" && in.TitleAR == "" {
		fields["title_en"] = "title is required in at least one language"
	}
	if in.Price < 0 {
		fields["price"] = "price cannot be negative"
	}
	if in.Status == "" {
		in.Status = domain.StatusDraft
	}
	if !domain.ValidListingStatus(in.Status) {
		fields["status"] = "unknown status"
	}
	if in.CategoryID > 0 {
		if _, err := s.categoryRepo().GetByID(in.CategoryID); errors.Is(err, sql.ErrNoRows) {
			fields["category_id"] = "category does not exist"
		} else if err != nil {
			return domain.InternalError{Msg: "failed to check category", Err: err}
		}
	}
	if in.AreaID > 0 {
		if _, err := s.areaRepo().GetByID(in.AreaID); errors.Is(err, sql.ErrNoRows) {
			fields["area_id"] = "area does not exist"
		} else if err != nil {
			return domain.InternalError{Msg: "failed to check area", Err: err}
		}
	}

	if len(fields) > 0 {
		return domain.ValidationError{Fields: fields}
	}
	return nil
}

func (s ListingService) categoryRepo() repositories.CategoryRepository {
	if s.CategoryRepo.DB != nil {
		return s.CategoryRepo
	}
	return repositories.CategoryRepository{DB: s.db()}
}

func (s ListingService) areaRepo() repositories.AreaRepository {
	if s.AreaRepo.DB != nil {
		return s.AreaRepo
	}
	return repositories.AreaRepository{DB: s.db()}
}

// Create validates, derives slug and order index, then inserts.
func (s ListingService) Create(in ListingInput) (models.Listing, error) {
	if err := s.validate(&in); err != nil {
		return models.Listing{}, err
	}

	name := utils.FirstNonEmpty(in.TitleEN, in.TitleAR)
	slug := ordering.Slugify(name)
	if slug == "" {
		return models.Listing{}, domain.ValidationError{Field: "title_en", Msg: "title cannot be turned into a slug"}
	}
	if exists, err := s.repo().SlugExists(slug, 0); err != nil {
		return models.Listing{}, domain.InternalError{Msg: "failed to check slug uniqueness", Err: err}
	} else if exists {
		return models.Listing{}, domain.ConflictError{Resource: "listing", Field: "title_en", Msg: "name already exists"}
	}

	idx, err := s.allocator().Allocate(in.OrderIndex, ordering.Promoted(in.IsFeatured, in.IsNew))
	if err != nil {
		// explicit degradation: keep the create usable, ordering heals
		// on the next reorder or renormalization run
		utils.LogEvent(s.RequestID, "listing", "allocate_fallback", err.Error())
		idx = 0
	}

	l := models.Listing{
		TitleEN:       in.TitleEN,
		TitleAR:       in.TitleAR,
		Slug:          slug,
		DescriptionEN: in.DescriptionEN,
		DescriptionAR: in.DescriptionAR,
		Price:         in.Price,
		CategoryID:    in.CategoryID,
		AreaID:        in.AreaID,
		Status:        in.Status,
		IsFeatured:    in.IsFeatured,
		IsNew:         in.IsNew,
		OrderIndex:    idx,
		CoverURL:      in.CoverURL,
	}
	id, err := s.repo().Insert(l)
	if err != nil {
		return models.Listing{}, domain.InternalError{Msg: "failed to insert listing", Err: err}
	}
	l.ID = id

	utils.LogEvent(s.RequestID, "listing", "create", fmt.Sprintf("id=%d slug=%s order_index=%d", id, slug, idx))
	invalidate("/", "/listings", "/listings/"+slug)
	return l, nil
}

// Update applies a full admin edit. When the feature/new flags move the
// listing between groups, the fresh order index is written in the same
// UPDATE as the flags.
func (s ListingService) Update(id int64, in ListingInput) (models.Listing, error) {
	current, err := s.repo().GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Listing{}, domain.NotFoundError{Resource: "listing"}
	}
	if err != nil {
		return models.Listing{}, domain.InternalError{Msg: "failed to load listing", Err: err}
	}

	if err := s.validate(&in); err != nil {
		return models.Listing{}, err
	}

	patch := models.ListingPatch{
		TitleEN:       &in.TitleEN,
		TitleAR:       &in.TitleAR,
		DescriptionEN: &in.DescriptionEN,
		DescriptionAR: &in.DescriptionAR,
		Price:         &in.Price,
		CategoryID:    &in.CategoryID,
		AreaID:        &in.AreaID,
		Status:        &in.Status,
		IsFeatured:    &in.IsFeatured,
		IsNew:         &in.IsNew,
		CoverURL:      &in.CoverURL,
	}

	// regenerate the slug only when the new name derives a different one
	name := utils.FirstNonEmpty(in.TitleEN, in.TitleAR)
	newSlug := ordering.Slugify(name)
	if newSlug == "" {
		return models.Listing{}, domain.ValidationError{Field: "title_en", Msg: "title cannot be turned into a slug"}
	}
	if newSlug != current.Slug {
		if exists, err := s.repo().SlugExists(newSlug, id); err != nil {
			return models.Listing{}, domain.InternalError{Msg: "failed to check slug uniqueness", Err: err}
		} else if exists {
			return models.Listing{}, domain.ConflictError{Resource: "listing", Field: "title_en", Msg: "name already exists"}
		}
		patch.Slug = &newSlug
	}

	if in.OrderIndex != nil {
		idx, _ := s.allocator().Allocate(in.OrderIndex, false)
		patch.OrderIndex = &idx
	} else {
		idx, err := s.allocator().ReindexOnFlagChange(current.IsFeatured, current.IsNew, in.IsFeatured, in.IsNew)
		if err != nil {
			return models.Listing{}, domain.InternalError{Msg: "failed to allocate order index", Err: err}
		}
		patch.OrderIndex = idx
	}

	if err := s.repo().Update(id, patch); err != nil {
		return models.Listing{}, domain.InternalError{Msg: "failed to update listing", Err: err}
	}

	utils.LogEvent(s.RequestID, "listing", "update", fmt.Sprintf("id=%d", id))
	invalidate("/", "/listings", "/listings/"+current.Slug, "/listings/"+newSlug)

	updated, err := s.repo().GetByID(id)
	if err != nil {
		return models.Listing{}, domain.InternalError{Msg: "failed to reload listing", Err: err}
	}
	return updated, nil
}

// SetFlags toggles is_featured/is_new. Group membership changes trigger
// reindexing; toggling within the same group leaves order_index alone.
func (s ListingService) SetFlags(id int64, isFeatured, isNew *bool) (models.Listing, error) {
	current, err := s.repo().GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Listing{}, domain.NotFoundError{Resource: "listing"}
	}
	if err != nil {
		return models.Listing{}, domain.InternalError{Msg: "failed to load listing", Err: err}
	}

	newFeatured := current.IsFeatured
	newNew := current.IsNew
	if isFeatured != nil {
		newFeatured = *isFeatured
	}
	if isNew != nil {
		newNew = *isNew
	}
	if newFeatured == current.IsFeatured && newNew == current.IsNew {
		return current, nil
	}

	idx, err := s.allocator().ReindexOnFlagChange(current.IsFeatured, current.IsNew, newFeatured, newNew)
	if err != nil {
		return models.Listing{}, domain.InternalError{Msg: "failed to allocate order index", Err: err}
	}

	patch := models.ListingPatch{IsFeatured: &newFeatured, IsNew: &newNew, OrderIndex: idx}
	if err := s.repo().Update(id, patch); err != nil {
		return models.Listing{}, domain.InternalError{Msg: "failed to update listing flags", Err: err}
	}

	utils.LogEvent(s.RequestID, "listing", "set_flags",
		fmt.Sprintf("id=%d featured=%t new=%t reindexed=%t", id, newFeatured, newNew, idx != nil))
	invalidate("/", "/listings", "/listings/"+current.Slug)

	updated, err := s.repo().GetByID(id)
	if err != nil {
		return models.Listing{}, domain.InternalError{Msg: "failed to reload listing", Err: err}
	}
	return updated, nil
}

// Reorder persists a drag-and-drop permutation of the listings grid.
func (s ListingService) Reorder(ids []int64) error {
	r := ordering.Reorderer{DB: s.db(), Table: "listings"}
	if err := r.Apply(ids); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "listing", "reorder", fmt.Sprintf("count=%d", len(ids)))
	invalidate("/", "/listings")
	return nil
}

// Delete removes the listing and cleans up its stored media. Object
// deletion is best-effort; a storage failure never blocks the delete.
func (s ListingService) Delete(id int64) error {
	current, err := s.repo().GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: "listing"}
	}
	if err != nil {
		return domain.InternalError{Msg: "failed to load listing", Err: err}
	}

	images, err := s.repo().Images(id)
	if err != nil {
		return domain.InternalError{Msg: "failed to load listing images", Err: err}
	}

	if intconfig.Media != nil {
		for _, img := range images {
			if err := intconfig.Media.Remove(context.Background(), img.ObjectKey); err != nil {
				utils.LogEvent(s.RequestID, "listing", "media_cleanup_failed",
					fmt.Sprintf("listing_id=%d key=%s err=%v", id, img.ObjectKey, err))
			}
		}
	}
	for _, img := range images {
		if err := s.repo().DeleteImage(img.ID); err != nil {
			return domain.InternalError{Msg: "failed to delete listing image row", Err: err}
		}
	}

	if err := s.repo().Delete(id); err != nil {
		return domain.InternalError{Msg: "failed to delete listing", Err: err}
	}

	utils.LogEvent(s.RequestID, "listing", "delete", fmt.Sprintf("id=%d slug=%s", id, current.Slug))
	invalidate("/", "/listings", "/listings/"+current.Slug)
	return nil
}

// List proxies repository queries for handlers.
func (s ListingService) List(f models.ListingFilter) ([]models.Listing, int, error) {
	listings, total, err := s.repo().List(f)
	if err != nil {
		return nil, 0, domain.InternalError{Msg: "failed to list listings", Err: err}
	}
	return listings, total, nil
}

// GetBySlugOrID resolves a public detail lookup: numeric ids work too.
func (s ListingService) GetBySlugOrID(ref string) (models.Listing, error) {
	ref = strings.TrimSpace(ref)
	l, err := s.repo().GetBySlug(ref)
	if errors.Is(err, sql.ErrNoRows) {
		var id int64
		if _, convErr := fmt.Sscanf(ref, "%d", &id); convErr == nil && id > 0 {
			l, err = s.repo().GetByID(id)
		}
	}
	if errors.Is(err, sql.ErrNoRows) {
		return models.Listing{}, domain.NotFoundError{Resource: "listing"}
	}
	if err != nil {
		return models.Listing{}, domain.InternalError{Msg: "failed to load listing", Err: err}
	}
	return l, nil
}
