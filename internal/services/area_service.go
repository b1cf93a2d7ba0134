package services

import (
	"database/sql"
	"errors"
	"fmt"

	intconfig "aqarhub/internal/config"
	"aqarhub/internal/domain"
	"aqarhub/internal/domain/models"
	"aqarhub/internal/ordering"
	"aqarhub/internal/repositories"
	"aqarhub/internal/utils"
)

// AreaService manages geographic areas with the same guards as
// categories: unique slug, referential delete check, appended ordering.
type AreaService struct {
	Repo        repositories.AreaRepository
	ListingRepo repositories.ListingRepository
	DB          *sql.DB
	RequestID   string
}

func (s AreaService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s AreaService) repo() repositories.AreaRepository {
	if s.Repo.DB != nil {
		return s.Repo
	}
	return repositories.AreaRepository{DB: s.db()}
}

func (s AreaService) listingRepo() repositories.ListingRepository {
	if s.ListingRepo.DB != nil {
		return s.ListingRepo
	}
	return repositories.ListingRepository{DB: s.db()}
}

// AreaInput carries a create/update payload.
type AreaInput struct {
	NameEN   string
	NameAR   string
	IsActive bool
}

func (in *AreaInput) validate() error {
	in.NameEN = utils.NormalizeSpace(in.NameEN)
	in.NameAR = utils.NormalizeSpace(in.NameAR)
	if in.NameEN == "" && in.NameAR == "" {
		return domain.ValidationError{Field: "name_en", Msg: "name is required in at least one language"}
	}
	return nil
}

func (s AreaService) Create(in AreaInput) (models.Area, error) {
	if err := in.validate(); err != nil {
		return models.Area{}, err
	}

	slug := ordering.Slugify(utils.FirstNonEmpty(in.NameEN, in.NameAR))
	if slug == "" {
		return models.Area{}, domain.ValidationError{Field: "name_en", Msg: "name cannot be turned into a slug"}
	}
	if exists, err := s.repo().SlugExists(slug, 0); err != nil {
		return models.Area{}, domain.InternalError{Msg: "failed to check slug uniqueness", Err: err}
	} else if exists {
		return models.Area{}, domain.ConflictError{Resource: "area", Field: "name_en", Msg: "name already exists"}
	}

	a := ordering.Allocator{DB: s.db(), Table: "areas"}
	idx, err := a.Allocate(nil, false)
	if err != nil {
		utils.LogEvent(s.RequestID, "area", "allocate_fallback", err.Error())
		idx = 0
	}

	area := models.Area{
		NameEN:     in.NameEN,
		NameAR:     in.NameAR,
		Slug:       slug,
		IsActive:   in.IsActive,
		OrderIndex: idx,
	}
	id, err := s.repo().Insert(area)
	if err != nil {
		return models.Area{}, domain.InternalError{Msg: "failed to insert area", Err: err}
	}
	area.ID = id

	utils.LogEvent(s.RequestID, "area", "create", fmt.Sprintf("id=%d slug=%s", id, slug))
	invalidate("/", "/areas")
	return area, nil
}

func (s AreaService) Update(id int64, in AreaInput) (models.Area, error) {
	current, err := s.repo().GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Area{}, domain.NotFoundError{Resource: "area"}
	}
	if err != nil {
		return models.Area{}, domain.InternalError{Msg: "failed to load area", Err: err}
	}
	if err := in.validate(); err != nil {
		return models.Area{}, err
	}

	updated := current
	updated.NameEN = in.NameEN
	updated.NameAR = in.NameAR

	newSlug := ordering.Slugify(utils.FirstNonEmpty(in.NameEN, in.NameAR))
	if newSlug == "" {
		return models.Area{}, domain.ValidationError{Field: "name_en", Msg: "name cannot be turned into a slug"}
	}
	updated.Slug = ""
	if newSlug != current.Slug {
		if exists, err := s.repo().SlugExists(newSlug, id); err != nil {
			return models.Area{}, domain.InternalError{Msg: "failed to check slug uniqueness", Err: err}
		} else if exists {
			return models.Area{}, domain.ConflictError{Resource: "area", Field: "name_en", Msg: "name already exists"}
		}
		updated.Slug = newSlug
	}

	if err := s.repo().Update(updated); err != nil {
		return models.Area{}, domain.InternalError{Msg: "failed to update area", Err: err}
	}
	if updated.Slug == "" {
		updated.Slug = current.Slug
	}

	utils.LogEvent(s.RequestID, "area", "update", fmt.Sprintf("id=%d", id))
	invalidate("/", "/areas")
	return updated, nil
}

func (s AreaService) SetActive(id int64, active bool) error {
	if _, err := s.repo().GetByID(id); errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: "area"}
	} else if err != nil {
		return domain.InternalError{Msg: "failed to load area", Err: err}
	}
	if err := s.repo().SetActive(id, active); err != nil {
		return domain.InternalError{Msg: "failed to update area visibility", Err: err}
	}
	utils.LogEvent(s.RequestID, "area", "set_active", fmt.Sprintf("id=%d active=%t", id, active))
	invalidate("/", "/areas")
	return nil
}

// Delete refuses while listings still reference the area.
func (s AreaService) Delete(id int64) error {
	if _, err := s.repo().GetByID(id); errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: "area"}
	} else if err != nil {
		return domain.InternalError{Msg: "failed to load area", Err: err}
	}

	dependents, err := s.listingRepo().CountByArea(id)
	if err != nil {
		return domain.InternalError{Msg: "failed to count dependent listings", Err: err}
	}
	if dependents > 0 {
		return domain.ReferentialError{Resource: "area", Dependents: dependents}
	}

	if err := s.repo().Delete(id); err != nil {
		return domain.InternalError{Msg: "failed to delete area", Err: err}
	}

	utils.LogEvent(s.RequestID, "area", "delete", fmt.Sprintf("id=%d", id))
	invalidate("/", "/areas")
	return nil
}

func (s AreaService) Reorder(ids []int64) error {
	r := ordering.Reorderer{DB: s.db(), Table: "areas"}
	if err := r.Apply(ids); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "area", "reorder", fmt.Sprintf("count=%d", len(ids)))
	invalidate("/", "/areas")
	return nil
}

func (s AreaService) List(activeOnly bool) ([]models.Area, error) {
	out, err := s.repo().List(activeOnly)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list areas", Err: err}
	}
	return out, nil
}
