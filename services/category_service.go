// services/category_service.go
package services

import (
	"context"

	"github.com/ediestyles/closet_backend/apperr"
	"github.com/ediestyles/closet_backend/models"
	"github.com/ediestyles/closet_backend/repositories"
)

// CategoryService implements the category lifecycle: creation, renaming,
// deletion with item migration, and moving files between categories.
type CategoryService struct {
	categories repositories.CategoryStore
}

func NewCategoryService(categories repositories.CategoryStore) *CategoryService {
	return &CategoryService{categories: categories}
}

// List returns every category including Other.
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.categories.List(ctx)
}

// Create inserts a new category with no items.
func (s *CategoryService) Create(ctx context.Context, name string) (models.CategoryRef, error) {
	if name == "" {
		return models.CategoryRef{}, apperr.InvalidArgument("category name is required")
	}

	exists, err := s.categories.NameExists(ctx, name)
	if err != nil {
		return models.CategoryRef{}, err
	}
	if exists {
		return models.CategoryRef{}, apperr.AlreadyExists("category with name %q already exists", name)
	}

	return s.categories.Insert(ctx, name)
}

// Rename changes a category's name. Other cannot be renamed.
func (s *CategoryService) Rename(ctx context.Context, rawRef, name string) error {
	ref, err := models.ParseCategoryRef(rawRef)
	if err != nil {
		return apperr.InvalidArgument("invalid category id")
	}
	if ref.IsOther() {
		return apperr.InvalidArgument("cannot edit the Other category")
	}
	if name == "" {
		return apperr.InvalidArgument("category name is required")
	}

	current, err := s.categories.FindByRef(ctx, ref)
	if err != nil {
		return err
	}
	if current.Name == name {
		return nil
	}

	exists, err := s.categories.NameExists(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		return apperr.AlreadyExists("category with name %q already exists", name)
	}

	matched, err := s.categories.SetName(ctx, ref, name)
	if err != nil {
		return err
	}
	if matched == 0 {
		return apperr.NotFound("category not found")
	}
	return nil
}

// Delete removes a category after migrating its items to Other. Other itself
// cannot be deleted. Migration and deletion are separate writes; a crash
// between them leaves the items in Other and the emptied category behind.
func (s *CategoryService) Delete(ctx context.Context, rawRef string) error {
	ref, err := models.ParseCategoryRef(rawRef)
	if err != nil {
		return apperr.InvalidArgument("invalid category id")
	}
	if ref.IsOther() {
		return apperr.InvalidArgument("cannot delete the Other category")
	}

	if err := s.MoveFilesToOther(ctx, ref); err != nil {
		return err
	}

	deleted, err := s.categories.Delete(ctx, ref)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return apperr.NotFound("category not found")
	}
	return nil
}

// MoveFilesToOther appends every item of the category to Other's item list.
// Items already in Other are kept.
func (s *CategoryService) MoveFilesToOther(ctx context.Context, ref models.CategoryRef) error {
	if ref.IsOther() {
		return apperr.InvalidArgument("cannot move files from the Other category to itself")
	}

	category, err := s.categories.FindByRef(ctx, ref)
	if err != nil {
		return err
	}
	if len(category.Items) == 0 {
		return nil
	}

	if _, err := s.categories.PushItems(ctx, models.OtherCategory(), category.Items); err != nil {
		return err
	}
	return nil
}

// MoveFile transfers one file from one category to another, preserving the
// file record unchanged. The file is pulled from the source before being
// pushed to the destination, so a crash in between loses the record from both.
func (s *CategoryService) MoveFile(ctx context.Context, fileID, rawFrom, rawTo string) error {
	from, err := models.ParseCategoryRef(rawFrom)
	if err != nil {
		return apperr.InvalidArgument("invalid category id")
	}
	to, err := models.ParseCategoryRef(rawTo)
	if err != nil {
		return apperr.InvalidArgument("invalid new category id")
	}
	if fileID == "" {
		return apperr.InvalidArgument("missing file id")
	}

	exists, err := s.categories.Exists(ctx, to)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("new category not found")
	}

	// A missing source category, like a missing item, is an integrity failure
	// rather than a client error: the caller only gets here believing the
	// file is where it last saw it.
	source, err := s.categories.FindByRef(ctx, from)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return apperr.Internal("failed to retrieve file from database")
		}
		return err
	}

	var file *models.FileRef
	for i := range source.Items {
		if source.Items[i].FileID == fileID {
			file = &source.Items[i]
			break
		}
	}
	if file == nil {
		return apperr.Internal("failed to retrieve file from database")
	}

	modified, err := s.categories.PullItem(ctx, from, fileID)
	if err != nil {
		return err
	}
	if modified == 0 {
		return apperr.NotFound("file not found in category")
	}

	modified, err = s.categories.PushItems(ctx, to, []models.FileRef{*file})
	if err != nil {
		return err
	}
	if modified == 0 {
		return apperr.NotFound("new category not found")
	}
	return nil
}
