package services

import (
	"context"

	"github.com/coopfed/portal/internal/auth"
	"github.com/coopfed/portal/internal/db/models"
	"github.com/coopfed/portal/internal/db/repos"
	"github.com/coopfed/portal/internal/storage"
	"github.com/coopfed/portal/internal/validation"
)

// Field constraints for "our role" copy
var ourRoleSchema = validation.Schema{
	"title": {Kind: validation.Text, MaxLen: 150},
	"body":  {Kind: validation.Text, MaxLen: 2000},
}

// OurRole provides business logic for the "our role" page copy.
type OurRole struct {
	repo  *repos.ContentRepository[models.OurRole]
	store storage.Store
}

// NewOurRoleService creates a new our-role service instance
func NewOurRoleService(repo *repos.ContentRepository[models.OurRole], store storage.Store) *OurRole {
	return &OurRole{repo: repo, store: store}
}

// Current retrieves the copy shown on the site.
func (s *OurRole) Current(ctx context.Context) (*models.OurRole, error) {
	return s.repo.Latest(ctx)
}

// Create validates every field, then persists new copy.
func (s *OurRole) Create(ctx context.Context, ident auth.Identity, fields map[string]interface{}) (uint, error) {
	if !ident.IsAdmin() {
		return 0, ErrForbidden
	}
	clean, err := ourRoleSchema.Clean(fields)
	if err != nil {
		return 0, err
	}
	role := &models.OurRole{
		Title: clean["title"].(string),
		Body:  clean["body"].(string),
	}
	if err := s.repo.Create(ctx, role); err != nil {
		return 0, err
	}
	return role.ID, nil
}

// Update applies a partial update to the copy.
func (s *OurRole) Update(ctx context.Context, ident auth.Identity, id uint, fields map[string]interface{}) error {
	return updateContent[models.OurRole, *models.OurRole](ctx, s.repo, s.store, ourRoleSchema, ident, id, fields)
}

// Delete removes the copy record.
func (s *OurRole) Delete(ctx context.Context, ident auth.Identity, id uint) error {
	return deleteContent[models.OurRole, *models.OurRole](ctx, s.repo, s.store, ident, id)
}
