package usecase

import (
	"testing"

	"storysprout/pkg/logger"
	"storysprout/services/admin/internal/entity"
	"storysprout/services/admin/internal/repo/persistent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) Create(video *entity.Video) error {
	args := m.Called(video)
	return args.Error(0)
}

func (m *MockVideoRepository) GetByID(id string) (*entity.Video, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoRepository) List(limit, offset int) ([]*entity.Video, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Video), args.Error(1)
}

func (m *MockVideoRepository) Update(video *entity.Video) error {
	args := m.Called(video)
	return args.Error(0)
}

func (m *MockVideoRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockVideoRepository) ToggleFeatured(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockVideoRepository) ToggleDisabled(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockVideoRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVideoRepository) CountDisabled() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVideoRepository) CountFeatured() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.VideoRepository = (*MockVideoRepository)(nil)

type MockAdminPostRepository struct {
	mock.Mock
}

func (m *MockAdminPostRepository) Create(post *entity.AdminPost) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockAdminPostRepository) GetByID(id string) (*entity.AdminPost, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AdminPost), args.Error(1)
}

func (m *MockAdminPostRepository) List(limit, offset int) ([]*entity.AdminPost, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.AdminPost), args.Error(1)
}

func (m *MockAdminPostRepository) Update(post *entity.AdminPost) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockAdminPostRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockAdminPostRepository) ToggleFeatured(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockAdminPostRepository) ToggleDisabled(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockAdminPostRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.AdminPostRepository = (*MockAdminPostRepository)(nil)

func TestGetDashboardStats_Aggregates(t *testing.T) {
	storyRepo := new(MockStoryRepository)
	videoRepo := new(MockVideoRepository)
	trendingRepo := new(MockTrendingRepository)
	postRepo := new(MockAdminPostRepository)

	storyRepo.On("Count").Return(int64(12), nil)
	storyRepo.On("CountDisabled").Return(int64(2), nil)
	storyRepo.On("CountFeatured").Return(int64(3), nil)
	storyRepo.On("CountByAgeGroup").Return([]persistent.AgeGroupCount{
		{AgeGroup: "0-3", Count: 4},
		{AgeGroup: "3-6", Count: 8},
	}, nil)

	videoRepo.On("Count").Return(int64(5), nil)
	videoRepo.On("CountDisabled").Return(int64(1), nil)
	videoRepo.On("CountFeatured").Return(int64(2), nil)

	trendingRepo.On("Count").Return(int64(7), nil)
	trendingRepo.On("CountActive").Return(int64(6), nil)
	trendingRepo.On("Totals").Return(&persistent.TrendingTotals{Views: 1200, Likes: 340}, nil)

	postRepo.On("Count").Return(int64(4), nil)

	uc := NewAnalyticsUseCase(storyRepo, videoRepo, trendingRepo, postRepo, nil, logger.New())
	stats, err := uc.GetDashboardStats()

	assert.NoError(t, err)
	assert.Equal(t, int64(12), stats.Stories.Total)
	assert.Equal(t, int64(2), stats.Stories.Disabled)
	assert.Equal(t, int64(3), stats.Stories.Featured)
	assert.Equal(t, int64(5), stats.Videos.Total)
	assert.Equal(t, int64(7), stats.Trending.Total)
	assert.Equal(t, int64(6), stats.Trending.Active)
	assert.Equal(t, int64(1200), stats.Trending.TotalViews)
	assert.Equal(t, int64(340), stats.Trending.TotalLikes)
	assert.Equal(t, int64(4), stats.Posts)
	assert.Equal(t, int64(4), stats.StoriesByAge["0-3"])
	assert.Equal(t, int64(8), stats.StoriesByAge["3-6"])
	assert.False(t, stats.GeneratedAt.IsZero())
}

func TestGetDashboardStats_CountError(t *testing.T) {
	storyRepo := new(MockStoryRepository)
	videoRepo := new(MockVideoRepository)
	trendingRepo := new(MockTrendingRepository)
	postRepo := new(MockAdminPostRepository)

	storyRepo.On("Count").Return(int64(0), assert.AnError)

	uc := NewAnalyticsUseCase(storyRepo, videoRepo, trendingRepo, postRepo, nil, logger.New())
	stats, err := uc.GetDashboardStats()

	assert.Error(t, err)
	assert.Nil(t, stats)
}
