package services

import (
	"context"

	"github.com/coopfed/portal/internal/auth"
	"github.com/coopfed/portal/internal/db/models"
	"github.com/coopfed/portal/internal/db/repos"
	"github.com/coopfed/portal/internal/storage"
	"github.com/coopfed/portal/internal/validation"
)

// Field constraints for executive profiles
var executiveSchema = validation.Schema{
	"name":      {Kind: validation.Text, MaxLen: 100},
	"position":  {Kind: validation.Text, MaxLen: 100},
	"bio":       {Kind: validation.Text, MaxLen: 1000, Optional: true},
	"photo_ref": {Kind: validation.StorageRef},
}

// Executive provides business logic for executive profiles.
type Executive struct {
	repo  *repos.ContentRepository[models.Executive]
	store storage.Store
}

// NewExecutiveService creates a new executive service instance
func NewExecutiveService(repo *repos.ContentRepository[models.Executive], store storage.Store) *Executive {
	return &Executive{repo: repo, store: store}
}

// List retrieves executive profiles, newest first.
func (s *Executive) List(ctx context.Context, opts *models.ListOptions) ([]models.Executive, error) {
	return s.repo.List(ctx, opts)
}

// Get retrieves one executive profile.
func (s *Executive) Get(ctx context.Context, id uint) (*models.Executive, error) {
	return s.repo.Get(ctx, id)
}

// Create validates every field, then persists a new executive profile.
func (s *Executive) Create(ctx context.Context, ident auth.Identity, fields map[string]interface{}) (uint, error) {
	if !ident.IsAdmin() {
		return 0, ErrForbidden
	}
	clean, err := executiveSchema.Clean(fields)
	if err != nil {
		return 0, err
	}
	exco := &models.Executive{
		Name:     clean["name"].(string),
		Position: clean["position"].(string),
		PhotoRef: clean["photo_ref"].(string),
	}
	if bio, ok := clean["bio"].(string); ok {
		exco.Bio = bio
	}
	if err := s.repo.Create(ctx, exco); err != nil {
		return 0, err
	}
	return exco.ID, nil
}

// Update applies a partial update, releasing a replaced photo before the
// patch is committed.
func (s *Executive) Update(ctx context.Context, ident auth.Identity, id uint, fields map[string]interface{}) error {
	return updateContent[models.Executive, *models.Executive](ctx, s.repo, s.store, executiveSchema, ident, id, fields)
}

// Delete releases the profile photo and removes the record.
func (s *Executive) Delete(ctx context.Context, ident auth.Identity, id uint) error {
	return deleteContent[models.Executive, *models.Executive](ctx, s.repo, s.store, ident, id)
}
