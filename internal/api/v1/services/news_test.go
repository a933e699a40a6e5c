package services

import (
	"errors"

	"github.com/coopfed/portal/internal/db/repos"
)

func (s *ServiceTestSuite) createNewsPost(cover, thumb string) uint {
	s.store.Seed(cover)
	fields := map[string]interface{}{
		"title":     "Federation signs new partnership",
		"body":      "The federation announced a new partnership today.",
		"cover_ref": cover,
	}
	if thumb != "" {
		s.store.Seed(thumb)
		fields["thumb_ref"] = thumb
	}
	id, err := s.news.Create(s.ctx, adminIdent, fields)
	s.Require().NoError(err)
	return id
}

func (s *ServiceTestSuite) TestNewsDeleteReleasesBothImages() {
	id := s.createNewsPost("cover-1", "thumb-1")

	s.Require().NoError(s.news.Delete(s.ctx, adminIdent, id))

	// Both owned files are released before the record is removed.
	s.ElementsMatch([]string{"cover-1", "thumb-1"}, s.store.Released)
	_, err := s.news.Get(s.ctx, id)
	s.True(errors.Is(err, repos.ErrNotFound))
}

func (s *ServiceTestSuite) TestNewsDeleteReleaseFailureKeepsRecord() {
	id := s.createNewsPost("cover-2", "thumb-2")
	s.store.FailDelete["thumb-2"] = true

	err := s.news.Delete(s.ctx, adminIdent, id)
	s.Require().Error(err)
	s.True(errors.Is(err, ErrStorageRelease))

	_, err = s.news.Get(s.ctx, id)
	s.NoError(err)
}

func (s *ServiceTestSuite) TestNewsDeleteWithoutThumbnail() {
	id := s.createNewsPost("cover-3", "")

	s.Require().NoError(s.news.Delete(s.ctx, adminIdent, id))
	s.Equal([]string{"cover-3"}, s.store.Released)
}

func (s *ServiceTestSuite) TestNewsUpdateReplacesOnlyChangedRef() {
	id := s.createNewsPost("cover-4", "thumb-4")
	s.store.Seed("cover-5")

	err := s.news.Update(s.ctx, adminIdent, id, map[string]interface{}{
		"cover_ref": "cover-5",
		"thumb_ref": "thumb-4",
	})
	s.Require().NoError(err)

	s.Equal([]string{"cover-4"}, s.store.Released)
	post, err := s.news.Get(s.ctx, id)
	s.NoError(err)
	s.Equal("cover-5", post.CoverRef)
	s.Equal("thumb-4", post.ThumbRef)
}
