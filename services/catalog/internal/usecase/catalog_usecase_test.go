package usecase

import (
	"errors"
	"testing"
	"time"

	"storysprout/pkg/logger"
	"storysprout/services/catalog/internal/entity"
	"storysprout/services/catalog/internal/repo/persistent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockStoryRepository struct {
	mock.Mock
}

func (m *MockStoryRepository) List() ([]*entity.Story, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Story), args.Error(1)
}

func (m *MockStoryRepository) GetByID(id string) (*entity.Story, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Story), args.Error(1)
}

type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) List() ([]*entity.Video, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Video), args.Error(1)
}

func (m *MockVideoRepository) GetByID(id string) (*entity.Video, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

type MockTrendingRepository struct {
	mock.Mock
}

func (m *MockTrendingRepository) ListRegular() ([]*entity.TrendingStory, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.TrendingStory), args.Error(1)
}

func (m *MockTrendingRepository) ListAdminByLanguage(language string) ([]*entity.TrendingStory, error) {
	args := m.Called(language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.TrendingStory), args.Error(1)
}

type MockAdminPostRepository struct {
	mock.Mock
}

func (m *MockAdminPostRepository) ListByKindAndLanguage(kind entity.PostKind, language string) ([]*entity.AdminPost, error) {
	args := m.Called(kind, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.AdminPost), args.Error(1)
}

var (
	_ persistent.StoryRepository     = (*MockStoryRepository)(nil)
	_ persistent.VideoRepository     = (*MockVideoRepository)(nil)
	_ persistent.TrendingRepository  = (*MockTrendingRepository)(nil)
	_ persistent.AdminPostRepository = (*MockAdminPostRepository)(nil)
)

func newTestUseCase(storyRepo *MockStoryRepository, videoRepo *MockVideoRepository, trendingRepo *MockTrendingRepository, postRepo *MockAdminPostRepository) CatalogUseCase {
	return NewCatalogUseCase(storyRepo, videoRepo, trendingRepo, postRepo, nil, logger.New())
}

func TestListStories_MergesAdminPosts(t *testing.T) {
	storyRepo := new(MockStoryRepository)
	videoRepo := new(MockVideoRepository)
	trendingRepo := new(MockTrendingRepository)
	postRepo := new(MockAdminPostRepository)

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	storyRepo.On("List").Return([]*entity.Story{
		{ID: "s1", Title: "story one", AgeGroup: "3-6", CreatedAt: base},
		{ID: "s2", Title: "story two", AgeGroup: "3-6", CreatedAt: base.Add(time.Hour)},
	}, nil)
	postRepo.On("ListByKindAndLanguage", entity.PostKindStory, "en").Return([]*entity.AdminPost{
		{ID: "p1", Title: "post one", AgeGroup: "3-6", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "p2", Title: "post two", AgeGroup: "3-6", CreatedAt: base.Add(3 * time.Hour)},
	}, nil)

	uc := newTestUseCase(storyRepo, videoRepo, trendingRepo, postRepo)
	result, err := uc.ListStories("3-6", 20, "en")

	assert.NoError(t, err)
	assert.Len(t, result, 4)

	adminCount := 0
	for _, s := range result {
		if s.IsAdminPost {
			adminCount++
		}
	}
	assert.Equal(t, 2, adminCount)
	storyRepo.AssertExpectations(t)
	postRepo.AssertExpectations(t)
}

func TestListStories_AdminPostsFilteredByAge(t *testing.T) {
	storyRepo := new(MockStoryRepository)
	videoRepo := new(MockVideoRepository)
	trendingRepo := new(MockTrendingRepository)
	postRepo := new(MockAdminPostRepository)

	storyRepo.On("List").Return([]*entity.Story{}, nil)
	postRepo.On("ListByKindAndLanguage", entity.PostKindStory, "en").Return([]*entity.AdminPost{
		{ID: "p1", Title: "matches", AgeGroup: "3-6"},
		{ID: "p2", Title: "wrong age", AgeGroup: "9-12"},
		{ID: "p3", Title: "disabled", AgeGroup: "3-6", Disabled: true},
	}, nil)

	uc := newTestUseCase(storyRepo, videoRepo, trendingRepo, postRepo)
	result, err := uc.ListStories("3-6", 20, "en")

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, "matches", result[0].Title)
}

func TestListStories_RepoError(t *testing.T) {
	storyRepo := new(MockStoryRepository)
	videoRepo := new(MockVideoRepository)
	trendingRepo := new(MockTrendingRepository)
	postRepo := new(MockAdminPostRepository)

	storyRepo.On("List").Return(nil, errors.New("connection refused"))

	uc := newTestUseCase(storyRepo, videoRepo, trendingRepo, postRepo)
	result, err := uc.ListStories("", 20, "en")

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestListVideos_AdminPostMapping(t *testing.T) {
	storyRepo := new(MockStoryRepository)
	videoRepo := new(MockVideoRepository)
	trendingRepo := new(MockTrendingRepository)
	postRepo := new(MockAdminPostRepository)

	videoRepo.On("List").Return([]*entity.Video{}, nil)
	postRepo.On("ListByKindAndLanguage", entity.PostKindVideo, "en").Return([]*entity.AdminPost{
		{ID: "p1", Title: "promoted", ImageURL: "http://thumb", Link: "http://video"},
	}, nil)

	uc := newTestUseCase(storyRepo, videoRepo, trendingRepo, postRepo)
	result, err := uc.ListVideos("", 20, "en")

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, "http://thumb", result[0].ThumbnailURL)
	assert.Equal(t, "http://video", result[0].VideoURL)
	assert.True(t, result[0].IsAdminPost)
}

func TestListCodeStories_OnlyCodeContent(t *testing.T) {
	storyRepo := new(MockStoryRepository)
	videoRepo := new(MockVideoRepository)
	trendingRepo := new(MockTrendingRepository)
	postRepo := new(MockAdminPostRepository)

	storyRepo.On("List").Return([]*entity.Story{
		{ID: "s1", Title: "regular", AgeGroup: "3-6"},
		{ID: "s2", Title: "scratch", IsCodeStory: true, ProgrammingLanguage: "scratch"},
		{ID: "s3", Title: "python", IsCodeStory: true, ProgrammingLanguage: "python"},
	}, nil)

	uc := newTestUseCase(storyRepo, videoRepo, trendingRepo, postRepo)
	result, err := uc.ListCodeStories("scratch", 20)

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, "scratch", result[0].Title)
}

func TestListTrending_MergesAndRanks(t *testing.T) {
	storyRepo := new(MockStoryRepository)
	videoRepo := new(MockVideoRepository)
	trendingRepo := new(MockTrendingRepository)
	postRepo := new(MockAdminPostRepository)

	base := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	trendingRepo.On("ListRegular").Return([]*entity.TrendingStory{
		{ID: "r1", Title: "regular", Priority: 3, IsActive: true, CreatedAt: base},
		{ID: "r2", Title: "inactive", Priority: 9, IsActive: false, CreatedAt: base},
	}, nil)
	trendingRepo.On("ListAdminByLanguage", "en").Return([]*entity.TrendingStory{
		{ID: "a1", Title: "promoted", Priority: 5, IsActive: true, IsAdminPost: true, CreatedAt: base},
	}, nil)

	uc := newTestUseCase(storyRepo, videoRepo, trendingRepo, postRepo)
	result, err := uc.ListTrending(20, "en")

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "promoted", result[0].Title)
	assert.Equal(t, "regular", result[1].Title)
	trendingRepo.AssertExpectations(t)
}

func TestListTrending_Limit(t *testing.T) {
	storyRepo := new(MockStoryRepository)
	videoRepo := new(MockVideoRepository)
	trendingRepo := new(MockTrendingRepository)
	postRepo := new(MockAdminPostRepository)

	items := make([]*entity.TrendingStory, 5)
	for i := range items {
		items[i] = &entity.TrendingStory{ID: string(rune('a' + i)), Priority: 5 - i, IsActive: true}
	}
	trendingRepo.On("ListRegular").Return(items, nil)
	trendingRepo.On("ListAdminByLanguage", "en").Return([]*entity.TrendingStory{}, nil)

	uc := newTestUseCase(storyRepo, videoRepo, trendingRepo, postRepo)
	result, err := uc.ListTrending(3, "en")

	assert.NoError(t, err)
	assert.Len(t, result, 3)
}
