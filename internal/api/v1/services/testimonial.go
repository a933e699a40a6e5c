package services

import (
	"context"

	"github.com/coopfed/portal/internal/auth"
	"github.com/coopfed/portal/internal/db/models"
	"github.com/coopfed/portal/internal/db/repos"
	"github.com/coopfed/portal/internal/storage"
	"github.com/coopfed/portal/internal/validation"
)

// Rating bounds for testimonials
const (
	MinRating = 0
	MaxRating = 5
)

// Field constraints for testimonials
var testimonialSchema = validation.Schema{
	"author":    {Kind: validation.Text, MaxLen: 100},
	"quote":     {Kind: validation.Text, MaxLen: 1000},
	"rating":    {Kind: validation.Number, Min: MinRating, Max: MaxRating},
	"photo_ref": {Kind: validation.StorageRef, Optional: true},
}

// Testimonial provides business logic for member testimonials.
type Testimonial struct {
	repo  *repos.ContentRepository[models.Testimonial]
	store storage.Store
}

// NewTestimonialService creates a new testimonial service instance
func NewTestimonialService(repo *repos.ContentRepository[models.Testimonial], store storage.Store) *Testimonial {
	return &Testimonial{repo: repo, store: store}
}

// List retrieves testimonials, newest first.
func (s *Testimonial) List(ctx context.Context, opts *models.ListOptions) ([]models.Testimonial, error) {
	return s.repo.List(ctx, opts)
}

// Get retrieves one testimonial.
func (s *Testimonial) Get(ctx context.Context, id uint) (*models.Testimonial, error) {
	return s.repo.Get(ctx, id)
}

// Create validates every field, then persists a new testimonial. The
// rating must be an integer within bounds; it is checked before any text
// sanitization work is done.
func (s *Testimonial) Create(ctx context.Context, ident auth.Identity, fields map[string]interface{}) (uint, error) {
	if !ident.IsAdmin() {
		return 0, ErrForbidden
	}
	clean, err := testimonialSchema.Clean(fields)
	if err != nil {
		return 0, err
	}
	testimonial := &models.Testimonial{
		Author: clean["author"].(string),
		Quote:  clean["quote"].(string),
		Rating: clean["rating"].(int),
	}
	if ref, ok := clean["photo_ref"].(string); ok {
		testimonial.PhotoRef = ref
	}
	if err := s.repo.Create(ctx, testimonial); err != nil {
		return 0, err
	}
	return testimonial.ID, nil
}

// Update applies a partial update, releasing a replaced photo before the
// patch is committed.
func (s *Testimonial) Update(ctx context.Context, ident auth.Identity, id uint, fields map[string]interface{}) error {
	return updateContent[models.Testimonial, *models.Testimonial](ctx, s.repo, s.store, testimonialSchema, ident, id, fields)
}

// Delete releases the photo, if any, and removes the record.
func (s *Testimonial) Delete(ctx context.Context, ident auth.Identity, id uint) error {
	return deleteContent[models.Testimonial, *models.Testimonial](ctx, s.repo, s.store, ident, id)
}
