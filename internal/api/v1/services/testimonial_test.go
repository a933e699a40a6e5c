package services

import (
	"errors"

	"github.com/coopfed/portal/internal/db/models"
	"github.com/coopfed/portal/internal/validation"
)

func (s *ServiceTestSuite) testimonialFields(rating interface{}) map[string]interface{} {
	return map[string]interface{}{
		"author": "A. Member",
		"quote":  "The federation helped our cooperative grow.",
		"rating": rating,
	}
}

func (s *ServiceTestSuite) TestTestimonialRatingBounds() {
	for rating := 0; rating <= 5; rating++ {
		id, err := s.testimonials.Create(s.ctx, adminIdent, s.testimonialFields(float64(rating)))
		s.Require().NoError(err, "rating %d", rating)

		testimonial, err := s.testimonials.Get(s.ctx, id)
		s.NoError(err)
		s.Equal(rating, testimonial.Rating)
	}
}

func (s *ServiceTestSuite) TestTestimonialRatingRejected() {
	for _, rating := range []interface{}{3.5, float64(6), float64(-1), "four"} {
		_, err := s.testimonials.Create(s.ctx, adminIdent, s.testimonialFields(rating))
		s.Require().Error(err, "rating %v", rating)
		var verr *validation.ValidationError
		s.True(errors.As(err, &verr))
	}
	s.EqualValues(0, s.countRows(&models.Testimonial{}))
}

func (s *ServiceTestSuite) TestTestimonialPhotoOptional() {
	id, err := s.testimonials.Create(s.ctx, adminIdent, s.testimonialFields(float64(4)))
	s.Require().NoError(err)

	testimonial, err := s.testimonials.Get(s.ctx, id)
	s.NoError(err)
	s.Empty(testimonial.PhotoRef)

	// Deleting a testimonial without a photo releases nothing.
	s.Require().NoError(s.testimonials.Delete(s.ctx, adminIdent, id))
	s.Empty(s.store.Released)
}
