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

// CategoryService manages listing categories. Deleting a category is
// blocked while listings still reference it; that guard lives here, not
// in the storage layer.
type CategoryService struct {
	Repo        repositories.CategoryRepository
	ListingRepo repositories.ListingRepository
	DB          *sql.DB
	RequestID   string
}

func (s CategoryService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s CategoryService) repo() repositories.CategoryRepository {
	if s.Repo.DB != nil {
		return s.Repo
	}
	return repositories.CategoryRepository{DB: s.db()}
}

func (s CategoryService) listingRepo() repositories.ListingRepository {
	if s.ListingRepo.DB != nil {
		return s.ListingRepo
	}
	return repositories.ListingRepository{DB: s.db()}
}

// CategoryInput carries a create/update payload.
type CategoryInput struct {
	NameEN        string
	NameAR        string
	DescriptionEN string
	DescriptionAR string
}

func (in *CategoryInput) validate() error {
	in.NameEN = utils.NormalizeSpace(in.NameEN)
	in.NameAR = utils.NormalizeSpace(in.NameAR)
	if in.NameEN == "" && in.NameAR == "" {
		return domain.ValidationError{Field: "name_en", Msg: "name is required in at least one language"}
	}
	return nil
}

func (s CategoryService) Create(in CategoryInput) (models.Category, error) {
	if err := in.validate(); err != nil {
		return models.Category{}, err
	}

	slug := ordering.Slugify(utils.FirstNonEmpty(in.NameEN, in.NameAR))
	if slug == "" {
		return models.Category{}, domain.ValidationError{Field: "name_en", Msg: "name cannot be turned into a slug"}
	}
	if exists, err := s.repo().SlugExists(slug, 0); err != nil {
		return models.Category{}, domain.InternalError{Msg: "failed to check slug uniqueness", Err: err}
	} else if exists {
		return models.Category{}, domain.ConflictError{Resource: "category", Field: "name_en", Msg: "name already exists"}
	}

	a := ordering.Allocator{DB: s.db(), Table: "categories"}
	idx, err := a.Allocate(nil, false)
	if err != nil {
		utils.LogEvent(s.RequestID, "category", "allocate_fallback", err.Error())
		idx = 0
	}

	c := models.Category{
		NameEN:        in.NameEN,
		NameAR:        in.NameAR,
		Slug:          slug,
		DescriptionEN: in.DescriptionEN,
		DescriptionAR: in.DescriptionAR,
		OrderIndex:    idx,
	}
	id, err := s.repo().Insert(c)
	if err != nil {
		return models.Category{}, domain.InternalError{Msg: "failed to insert category", Err: err}
	}
	c.ID = id

	utils.LogEvent(s.RequestID, "category", "create", fmt.Sprintf("id=%d slug=%s", id, slug))
	invalidate("/", "/categories")
	return c, nil
}

func (s CategoryService) Update(id int64, in CategoryInput) (models.Category, error) {
	current, err := s.repo().GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Category{}, domain.NotFoundError{Resource: "category"}
	}
	if err != nil {
		return models.Category{}, domain.InternalError{Msg: "failed to load category", Err: err}
	}
	if err := in.validate(); err != nil {
		return models.Category{}, err
	}

	updated := current
	updated.NameEN = in.NameEN
	updated.NameAR = in.NameAR
	updated.DescriptionEN = in.DescriptionEN
	updated.DescriptionAR = in.DescriptionAR

	// slug only moves when the new name derives a different one
	newSlug := ordering.Slugify(utils.FirstNonEmpty(in.NameEN, in.NameAR))
	if newSlug == "" {
		return models.Category{}, domain.ValidationError{Field: "name_en", Msg: "name cannot be turned into a slug"}
	}
	updated.Slug = ""
	if newSlug != current.Slug {
		if exists, err := s.repo().SlugExists(newSlug, id); err != nil {
			return models.Category{}, domain.InternalError{Msg: "failed to check slug uniqueness", Err: err}
		} else if exists {
			return models.Category{}, domain.ConflictError{Resource: "category", Field: "name_en", Msg: "name already exists"}
		}
		updated.Slug = newSlug
	}

	if err := s.repo().Update(updated); err != nil {
		return models.Category{}, domain.InternalError{Msg: "failed to update category", Err: err}
	}
	if updated.Slug == "" {
		updated.Slug = current.Slug
	}

	utils.LogEvent(s.RequestID, "category", "update", fmt.Sprintf("id=%d", id))
	invalidate("/", "/categories")
	return updated, nil
}

// Delete refuses while listings still reference the category.
func (s CategoryService) Delete(id int64) error {
	if _, err := s.repo().GetByID(id); errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: "category"}
	} else if err != nil {
		return domain.InternalError{Msg: "failed to load category", Err: err}
	}

	dependents, err := s.listingRepo().CountByCategory(id)
	if err != nil {
		return domain.InternalError{Msg: "failed to count dependent listings", Err: err}
	}
	if dependents > 0 {
		return domain.ReferentialError{Resource: "category", Dependents: dependents}
	}

	if err := s.repo().Delete(id); err != nil {
		return domain.InternalError{Msg: "failed to delete category", Err: err}
	}

	utils.LogEvent(s.RequestID, "category", "delete", fmt.Sprintf("id=%d", id))
	invalidate("/", "/categories")
	return nil
}

func (s CategoryService) Reorder(ids []int64) error {
	r := ordering.Reorderer{DB: s.db(), Table: "categories"}
	if err := r.Apply(ids); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "category", "reorder", fmt.Sprintf("count=%d", len(ids)))
	invalidate("/", "/categories")
	return nil
}

func (s CategoryService) List() ([]models.Category, error) {
	out, err := s.repo().List()
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list categories", Err: err}
	}
	return out, nil
}
