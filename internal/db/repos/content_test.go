package repos

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/coopfed/portal/internal/db/models"
)

// ContentRepositoryTestSuite provides a base test suite for repository tests
type ContentRepositoryTestSuite struct {
	suite.Suite
	db          *gorm.DB
	ctx         context.Context
	galleryRepo *ContentRepository[models.GalleryItem]
	heroRepo    *ContentRepository[models.HeroText]
}

func TestContentRepository(t *testing.T) {
	suite.Run(t, new(ContentRepositoryTestSuite))
}

func (s *ContentRepositoryTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err, "Failed to create in-memory database")

	err = db.AutoMigrate(&models.GalleryItem{}, &models.HeroText{})
	require.NoError(s.T(), err, "Failed to run database migrations")

	s.db = db
	s.galleryRepo = NewContentRepository[models.GalleryItem](db)
	s.heroRepo = NewContentRepository[models.HeroText](db)
	s.ctx = context.Background()
}

func (s *ContentRepositoryTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil && sqlDB != nil {
		_ = sqlDB.Close()
	}
}

func (s *ContentRepositoryTestSuite) createTestItem(title string) *models.GalleryItem {
	item := &models.GalleryItem{
		Title:       title,
		Description: "a test photo",
		ImageRef:    "ref-" + title,
	}
	s.Require().NoError(s.galleryRepo.Create(s.ctx, item))
	return item
}

func (s *ContentRepositoryTestSuite) TestCreateAndGet() {
	item := s.createTestItem("board-meeting")
	s.NotZero(item.ID)

	found, err := s.galleryRepo.Get(s.ctx, item.ID)
	s.NoError(err)
	s.Equal(item.Title, found.Title)
	s.Equal(item.Description, found.Description)
	s.Equal(item.ImageRef, found.ImageRef)

	_, err = s.galleryRepo.Get(s.ctx, 9999)
	s.Error(err)
	s.True(errors.Is(err, ErrNotFound))
}

func (s *ContentRepositoryTestSuite) TestList() {
	s.createTestItem("one")
	s.createTestItem("two")
	s.createTestItem("three")

	items, err := s.galleryRepo.List(s.ctx, &models.ListOptions{Limit: 2})
	s.NoError(err)
	s.Len(items, 2)

	items, err = s.galleryRepo.List(s.ctx, nil)
	s.NoError(err)
	s.Len(items, 3)
}

func (s *ContentRepositoryTestSuite) TestLatest() {
	_, err := s.heroRepo.Latest(s.ctx)
	s.True(errors.Is(err, ErrNotFound))

	first := &models.HeroText{Heading: "old", Subheading: "old sub"}
	s.Require().NoError(s.heroRepo.Create(s.ctx, first))

	second := &models.HeroText{Heading: "new", Subheading: "new sub"}
	second.CreatedAt = time.Now().Add(time.Second)
	s.Require().NoError(s.heroRepo.Create(s.ctx, second))

	latest, err := s.heroRepo.Latest(s.ctx)
	s.NoError(err)
	s.Equal("new", latest.Heading)
}

func (s *ContentRepositoryTestSuite) TestPatch() {
	item := s.createTestItem("patch-me")

	err := s.galleryRepo.Patch(s.ctx, item.ID, map[string]interface{}{
		"title":     "patched",
		"image_ref": "ref-new",
	})
	s.NoError(err)

	found, err := s.galleryRepo.Get(s.ctx, item.ID)
	s.NoError(err)
	s.Equal("patched", found.Title)
	s.Equal("ref-new", found.ImageRef)
	s.Equal("a test photo", found.Description)

	err = s.galleryRepo.Patch(s.ctx, 9999, map[string]interface{}{"title": "x"})
	s.True(errors.Is(err, ErrNotFound))
}

func (s *ContentRepositoryTestSuite) TestDelete() {
	item := s.createTestItem("delete-me")

	s.NoError(s.galleryRepo.Delete(s.ctx, item.ID))

	_, err := s.galleryRepo.Get(s.ctx, item.ID)
	s.True(errors.Is(err, ErrNotFound))
}
