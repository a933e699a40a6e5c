package services

import (
	"errors"
	"strings"

	"github.com/coopfed/portal/internal/db/models"
	"github.com/coopfed/portal/internal/db/repos"
	"github.com/coopfed/portal/internal/validation"
)

func (s *ServiceTestSuite) TestGalleryCreate() {
	id := s.createGalleryItem("img-1")
	s.NotZero(id)

	item, err := s.gallery.Get(s.ctx, id)
	s.NoError(err)
	s.Equal("Annual General Meeting", item.Title)
	s.Equal("img-1", item.ImageRef)
}

func (s *ServiceTestSuite) TestGalleryCreateSanitizesText() {
	id, err := s.gallery.Create(s.ctx, adminIdent, map[string]interface{}{
		"title":       "<script>alert(1)</script>Hello  World",
		"description": "<b>Photos</b> from the   event",
		"image_ref":   "img-clean",
	})
	s.Require().NoError(err)

	item, err := s.gallery.Get(s.ctx, id)
	s.NoError(err)
	s.Equal("Hello World", item.Title)
	s.Equal("Photos from the event", item.Description)
}

func (s *ServiceTestSuite) TestGalleryCreateValidationFailureWritesNothing() {
	_, err := s.gallery.Create(s.ctx, adminIdent, map[string]interface{}{
		"title":       strings.Repeat("x", 101),
		"description": "fine",
		"image_ref":   "img-1",
	})
	s.Require().Error(err)
	var verr *validation.ValidationError
	s.True(errors.As(err, &verr))

	// No persistence call happened.
	s.EqualValues(0, s.countRows(&models.GalleryItem{}))
}

func (s *ServiceTestSuite) TestGalleryCreateRequiresAdmin() {
	_, err := s.gallery.Create(s.ctx, coopIdent, map[string]interface{}{
		"title":       "t",
		"description": "d",
		"image_ref":   "img-1",
	})
	s.True(errors.Is(err, ErrForbidden))
}

func (s *ServiceTestSuite) TestGalleryUpdateReplacesImage() {
	id := s.createGalleryItem("img-old")
	s.store.Seed("img-new")

	err := s.gallery.Update(s.ctx, adminIdent, id, map[string]interface{}{
		"image_ref": "img-new",
	})
	s.Require().NoError(err)

	// The old file was released and the new reference committed.
	s.Equal([]string{"img-old"}, s.store.Released)
	item, err := s.gallery.Get(s.ctx, id)
	s.NoError(err)
	s.Equal("img-new", item.ImageRef)
}

func (s *ServiceTestSuite) TestGalleryUpdateReleaseFailureAborts() {
	id := s.createGalleryItem("img-old")
	s.store.Seed("img-new")
	s.store.FailDelete["img-old"] = true

	err := s.gallery.Update(s.ctx, adminIdent, id, map[string]interface{}{
		"image_ref": "img-new",
	})
	s.Require().Error(err)
	s.True(errors.Is(err, ErrStorageRelease))

	// No patch was committed; the record still references the old file.
	item, err := s.gallery.Get(s.ctx, id)
	s.NoError(err)
	s.Equal("img-old", item.ImageRef)
	s.Empty(s.store.Released)
}

func (s *ServiceTestSuite) TestGalleryUpdateUnchangedRefIsNoOp() {
	id := s.createGalleryItem("img-same")

	err := s.gallery.Update(s.ctx, adminIdent, id, map[string]interface{}{
		"image_ref": "img-same",
	})
	s.NoError(err)
	s.Empty(s.store.Released)
	s.True(s.store.Has("img-same"))
}

func (s *ServiceTestSuite) TestGalleryUpdateValidationFailureAppliesNothing() {
	id := s.createGalleryItem("img-old")

	// One bad field rejects the whole set, including the good one.
	err := s.gallery.Update(s.ctx, adminIdent, id, map[string]interface{}{
		"title":     "Updated title",
		"image_ref": "javascript:alert(1)",
	})
	s.Require().Error(err)
	var verr *validation.ValidationError
	s.True(errors.As(err, &verr))

	item, err := s.gallery.Get(s.ctx, id)
	s.NoError(err)
	s.Equal("Annual General Meeting", item.Title)
	s.Equal("img-old", item.ImageRef)
	s.Empty(s.store.Released)
}

func (s *ServiceTestSuite) TestGalleryUpdateNotFound() {
	err := s.gallery.Update(s.ctx, adminIdent, 9999, map[string]interface{}{
		"title": "x",
	})
	s.True(errors.Is(err, repos.ErrNotFound))
}

func (s *ServiceTestSuite) TestGalleryDeleteReleasesImage() {
	id := s.createGalleryItem("img-del")

	s.Require().NoError(s.gallery.Delete(s.ctx, adminIdent, id))
	s.Equal([]string{"img-del"}, s.store.Released)

	_, err := s.gallery.Get(s.ctx, id)
	s.True(errors.Is(err, repos.ErrNotFound))
}

func (s *ServiceTestSuite) TestGalleryDeleteReleaseFailureKeepsRecord() {
	id := s.createGalleryItem("img-stuck")
	s.store.FailDelete["img-stuck"] = true

	err := s.gallery.Delete(s.ctx, adminIdent, id)
	s.Require().Error(err)
	s.True(errors.Is(err, ErrStorageRelease))

	// The record must not be removed, or the file would be orphaned.
	_, err = s.gallery.Get(s.ctx, id)
	s.NoError(err)
}

func (s *ServiceTestSuite) TestGalleryDeleteNotFoundReleasesNothing() {
	err := s.gallery.Delete(s.ctx, adminIdent, 9999)
	s.True(errors.Is(err, repos.ErrNotFound))
	s.Empty(s.store.Released)
}
