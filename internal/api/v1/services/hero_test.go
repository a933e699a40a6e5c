package services

import (
	"errors"

	"github.com/coopfed/portal/internal/db/repos"
)

func (s *ServiceTestSuite) TestHeroCurrentEmpty() {
	_, err := s.hero.Current(s.ctx)
	s.True(errors.Is(err, repos.ErrNotFound))
}

func (s *ServiceTestSuite) TestHeroCreateAndUpdate() {
	id, err := s.hero.Create(s.ctx, adminIdent, map[string]interface{}{
		"heading":    "Stronger together",
		"subheading": "A federation of cooperatives  working as one.",
	})
	s.Require().NoError(err)

	hero, err := s.hero.Current(s.ctx)
	s.NoError(err)
	s.Equal("Stronger together", hero.Heading)
	s.Equal("A federation of cooperatives working as one.", hero.Subheading)

	err = s.hero.Update(s.ctx, adminIdent, id, map[string]interface{}{
		"heading": "<b>Stronger</b> together",
	})
	s.Require().NoError(err)

	hero, err = s.hero.Current(s.ctx)
	s.NoError(err)
	s.Equal("Stronger together", hero.Heading)
}

func (s *ServiceTestSuite) TestOurRoleMutationsRequireAdmin() {
	_, err := s.ourRole.Create(s.ctx, coopIdent, map[string]interface{}{
		"title": "Our role",
		"body":  "We coordinate member cooperatives.",
	})
	s.True(errors.Is(err, ErrForbidden))

	err = s.ourRole.Update(s.ctx, coopIdent, 1, map[string]interface{}{"title": "x"})
	s.True(errors.Is(err, ErrForbidden))

	err = s.ourRole.Delete(s.ctx, coopIdent, 1)
	s.True(errors.Is(err, ErrForbidden))
}
