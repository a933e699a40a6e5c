package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/coopfed/portal/internal/auth"
	"github.com/coopfed/portal/internal/db/models"
	"github.com/coopfed/portal/internal/db/repos"
	"github.com/coopfed/portal/internal/storage"
)

var (
	adminIdent = auth.Identity{UserID: "u-admin", Role: auth.RoleAdmin}
	coopIdent  = auth.Identity{UserID: "u-coop", Role: auth.RoleCoop}
)

// ServiceTestSuite provides a base test suite with an in-memory database
// and a recording blob store.
type ServiceTestSuite struct {
	suite.Suite
	db    *gorm.DB
	ctx   context.Context
	store *storage.Memory

	gallery      *Gallery
	executives   *Executive
	testimonials *Testimonial
	news         *News
	hero         *Hero
	ourRole      *OurRole
}

func TestServices(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err, "Failed to create in-memory database")

	err = db.AutoMigrate(
		&models.HeroText{},
		&models.OurRole{},
		&models.GalleryItem{},
		&models.Executive{},
		&models.Testimonial{},
		&models.NewsPost{},
	)
	require.NoError(s.T(), err, "Failed to run database migrations")

	s.db = db
	s.ctx = context.Background()
	s.store = storage.NewMemory()

	s.gallery = NewGalleryService(repos.NewContentRepository[models.GalleryItem](db), s.store)
	s.executives = NewExecutiveService(repos.NewContentRepository[models.Executive](db), s.store)
	s.testimonials = NewTestimonialService(repos.NewContentRepository[models.Testimonial](db), s.store)
	s.news = NewNewsService(repos.NewContentRepository[models.NewsPost](db), s.store)
	s.hero = NewHeroService(repos.NewContentRepository[models.HeroText](db), s.store)
	s.ourRole = NewOurRoleService(repos.NewContentRepository[models.OurRole](db), s.store)
}

func (s *ServiceTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil && sqlDB != nil {
		_ = sqlDB.Close()
	}
}

func (s *ServiceTestSuite) createGalleryItem(ref string) uint {
	s.store.Seed(ref)
	id, err := s.gallery.Create(s.ctx, adminIdent, map[string]interface{}{
		"title":       "Annual General Meeting",
		"description": "Photos from this year's AGM.",
		"image_ref":   ref,
	})
	s.Require().NoError(err)
	return id
}

func (s *ServiceTestSuite) countRows(model interface{}) int64 {
	var count int64
	s.Require().NoError(s.db.Model(model).Count(&count).Error)
	return count
}
