package services

import (
	"context"

	"github.com/coopfed/portal/internal/auth"
	"github.com/coopfed/portal/internal/db/models"
	"github.com/coopfed/portal/internal/db/repos"
	"github.com/coopfed/portal/internal/storage"
	"github.com/coopfed/portal/internal/validation"
)

// Field constraints for gallery items
var gallerySchema = validation.Schema{
	"title":       {Kind: validation.Text, MaxLen: 100},
	"description": {Kind: validation.Text, MaxLen: 500},
	"image_ref":   {Kind: validation.StorageRef},
}

// Gallery provides business logic for gallery items.
type Gallery struct {
	repo  *repos.ContentRepository[models.GalleryItem]
	store storage.Store
}

// NewGalleryService creates a new gallery service instance
func NewGalleryService(repo *repos.ContentRepository[models.GalleryItem], store storage.Store) *Gallery {
	return &Gallery{repo: repo, store: store}
}

// List retrieves gallery items, newest first.
func (s *Gallery) List(ctx context.Context, opts *models.ListOptions) ([]models.GalleryItem, error) {
	return s.repo.List(ctx, opts)
}

// Get retrieves one gallery item.
func (s *Gallery) Get(ctx context.Context, id uint) (*models.GalleryItem, error) {
	return s.repo.Get(ctx, id)
}

// Create validates every field, then persists a new gallery item. No
// persistence call happens on any validation failure.
func (s *Gallery) Create(ctx context.Context, ident auth.Identity, fields map[string]interface{}) (uint, error) {
	if !ident.IsAdmin() {
		return 0, ErrForbidden
	}
	clean, err := gallerySchema.Clean(fields)
	if err != nil {
		return 0, err
	}
	item := &models.GalleryItem{
		Title:       clean["title"].(string),
		Description: clean["description"].(string),
		ImageRef:    clean["image_ref"].(string),
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return 0, err
	}
	return item.ID, nil
}

// Update applies a partial update, releasing a replaced image before the
// patch is committed.
func (s *Gallery) Update(ctx context.Context, ident auth.Identity, id uint, fields map[string]interface{}) error {
	return updateContent[models.GalleryItem, *models.GalleryItem](ctx, s.repo, s.store, gallerySchema, ident, id, fields)
}

// Delete releases the item's image and removes the record.
func (s *Gallery) Delete(ctx context.Context, ident auth.Identity, id uint) error {
	return deleteContent[models.GalleryItem, *models.GalleryItem](ctx, s.repo, s.store, ident, id)
}
