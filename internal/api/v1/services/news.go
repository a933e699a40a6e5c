package services

import (
	"context"

	"github.com/coopfed/portal/internal/auth"
	"github.com/coopfed/portal/internal/db/models"
	"github.com/coopfed/portal/internal/db/repos"
	"github.com/coopfed/portal/internal/storage"
	"github.com/coopfed/portal/internal/validation"
)

// Field constraints for news posts
var newsSchema = validation.Schema{
	"title":     {Kind: validation.Text, MaxLen: 150},
	"body":      {Kind: validation.Text, MaxLen: 5000},
	"cover_ref": {Kind: validation.StorageRef},
	"thumb_ref": {Kind: validation.StorageRef, Optional: true},
}

// News provides business logic for news posts.
type News struct {
	repo  *repos.ContentRepository[models.NewsPost]
	store storage.Store
}

// NewNewsService creates a new news service instance
func NewNewsService(repo *repos.ContentRepository[models.NewsPost], store storage.Store) *News {
	return &News{repo: repo, store: store}
}

// List retrieves news posts, newest first.
func (s *News) List(ctx context.Context, opts *models.ListOptions) ([]models.NewsPost, error) {
	return s.repo.List(ctx, opts)
}

// Get retrieves one news post.
func (s *News) Get(ctx context.Context, id uint) (*models.NewsPost, error) {
	return s.repo.Get(ctx, id)
}

// Create validates every field, then persists a new news post.
func (s *News) Create(ctx context.Context, ident auth.Identity, fields map[string]interface{}) (uint, error) {
	if !ident.IsAdmin() {
		return 0, ErrForbidden
	}
	clean, err := newsSchema.Clean(fields)
	if err != nil {
		return 0, err
	}
	post := &models.NewsPost{
		Title:    clean["title"].(string),
		Body:     clean["body"].(string),
		CoverRef: clean["cover_ref"].(string),
	}
	if ref, ok := clean["thumb_ref"].(string); ok {
		post.ThumbRef = ref
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return 0, err
	}
	return post.ID, nil
}

// Update applies a partial update, releasing replaced images before the
// patch is committed.
func (s *News) Update(ctx context.Context, ident auth.Identity, id uint, fields map[string]interface{}) error {
	return updateContent[models.NewsPost, *models.NewsPost](ctx, s.repo, s.store, newsSchema, ident, id, fields)
}

// Delete releases the cover and thumbnail images before removing the
// record.
func (s *News) Delete(ctx context.Context, ident auth.Identity, id uint) error {
	return deleteContent[models.NewsPost, *models.NewsPost](ctx, s.repo, s.store, ident, id)
}
