package services

import (
	"context"

	"github.com/coopfed/portal/internal/auth"
	"github.com/coopfed/portal/internal/db/models"
	"github.com/coopfed/portal/internal/db/repos"
	"github.com/coopfed/portal/internal/storage"
	"github.com/coopfed/portal/internal/validation"
)

// Field constraints for hero copy
var heroSchema = validation.Schema{
	"heading":    {Kind: validation.Text, MaxLen: 150},
	"subheading": {Kind: validation.Text, MaxLen: 300},
}

// Hero provides business logic for the landing-page hero copy.
type Hero struct {
	repo  *repos.ContentRepository[models.HeroText]
	store storage.Store
}

// NewHeroService creates a new hero service instance
func NewHeroService(repo *repos.ContentRepository[models.HeroText], store storage.Store) *Hero {
	return &Hero{repo: repo, store: store}
}

// Current retrieves the hero copy shown on the site.
func (s *Hero) Current(ctx context.Context) (*models.HeroText, error) {
	return s.repo.Latest(ctx)
}

// Create validates every field, then persists new hero copy.
func (s *Hero) Create(ctx context.Context, ident auth.Identity, fields map[string]interface{}) (uint, error) {
	if !ident.IsAdmin() {
		return 0, ErrForbidden
	}
	clean, err := heroSchema.Clean(fields)
	if err != nil {
		return 0, err
	}
	hero := &models.HeroText{
		Heading:    clean["heading"].(string),
		Subheading: clean["subheading"].(string),
	}
	if err := s.repo.Create(ctx, hero); err != nil {
		return 0, err
	}
	return hero.ID, nil
}

// Update applies a partial update to the hero copy.
func (s *Hero) Update(ctx context.Context, ident auth.Identity, id uint, fields map[string]interface{}) error {
	return updateContent[models.HeroText, *models.HeroText](ctx, s.repo, s.store, heroSchema, ident, id, fields)
}

// Delete removes the hero copy record.
func (s *Hero) Delete(ctx context.Context, ident auth.Identity, id uint) error {
	return deleteContent[models.HeroText, *models.HeroText](ctx, s.repo, s.store, ident, id)
}
