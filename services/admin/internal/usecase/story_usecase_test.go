package usecase

import (
	"testing"

	"storysprout/pkg/logger"
	"storysprout/services/admin/internal/entity"
	"storysprout/services/admin/internal/repo/persistent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockStoryRepository struct {
	mock.Mock
}

func (m *MockStoryRepository) Create(story *entity.Story) error {
	args := m.Called(story)
	return args.Error(0)
}

func (m *MockStoryRepository) GetByID(id string) (*entity.Story, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Story), args.Error(1)
}

func (m *MockStoryRepository) List(limit, offset int) ([]*entity.Story, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Story), args.Error(1)
}

func (m *MockStoryRepository) Update(story *entity.Story) error {
	args := m.Called(story)
	return args.Error(0)
}

func (m *MockStoryRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStoryRepository) ToggleFeatured(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStoryRepository) ToggleDisabled(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStoryRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStoryRepository) CountDisabled() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStoryRepository) CountFeatured() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStoryRepository) CountByAgeGroup() ([]persistent.AgeGroupCount, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]persistent.AgeGroupCount), args.Error(1)
}

var _ persistent.StoryRepository = (*MockStoryRepository)(nil)

func TestCreateStory_Valid(t *testing.T) {
	repo := new(MockStoryRepository)
	repo.On("Create", mock.AnythingOfType("*entity.Story")).Return(nil)

	uc := NewStoryUseCase(repo, nil, logger.New())
	story, err := uc.CreateStory(CreateStoryInput{
		Title:    "The Sleepy Cloud",
		AgeGroup: "0-3",
		Language: "en",
	}, nil)

	assert.NoError(t, err)
	assert.Equal(t, "The Sleepy Cloud", story.Title)
	repo.AssertExpectations(t)
}

func TestCreateStory_MissingTitle(t *testing.T) {
	repo := new(MockStoryRepository)

	uc := NewStoryUseCase(repo, nil, logger.New())
	_, err := uc.CreateStory(CreateStoryInput{AgeGroup: "0-3"}, nil)

	assert.Error(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateStory_InvalidAgeGroup(t *testing.T) {
	repo := new(MockStoryRepository)

	uc := NewStoryUseCase(repo, nil, logger.New())
	_, err := uc.CreateStory(CreateStoryInput{Title: "x", AgeGroup: "4-7"}, nil)

	assert.Error(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateStory_CodeStoryNeedsProgrammingLanguage(t *testing.T) {
	repo := new(MockStoryRepository)

	uc := NewStoryUseCase(repo, nil, logger.New())
	_, err := uc.CreateStory(CreateStoryInput{
		Title:       "Robo Learns to Loop",
		AgeGroup:    "6-9",
		IsCodeStory: true,
	}, nil)

	assert.Error(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestUpdateStory_PartialFields(t *testing.T) {
	repo := new(MockStoryRepository)
	repo.On("GetByID", "s1").Return(&entity.Story{
		ID:          "s1",
		Title:       "old title",
		Description: "keep me",
		AgeGroup:    "3-6",
	}, nil)
	repo.On("Update", mock.AnythingOfType("*entity.Story")).Return(nil)

	newTitle := "new title"
	uc := NewStoryUseCase(repo, nil, logger.New())
	story, err := uc.UpdateStory("s1", UpdateStoryInput{Title: &newTitle}, nil)

	assert.NoError(t, err)
	assert.Equal(t, "new title", story.Title)
	assert.Equal(t, "keep me", story.Description)
	assert.Equal(t, "3-6", story.AgeGroup)
}

func TestToggleFeatured_TwiceRestoresValue(t *testing.T) {
	repo := new(MockStoryRepository)
	repo.On("GetByID", "s1").Return(&entity.Story{ID: "s1", Featured: false}, nil).Once()
	repo.On("ToggleFeatured", "s1").Return(nil)
	repo.On("GetByID", "s1").Return(&entity.Story{ID: "s1", Featured: true}, nil).Once()

	uc := NewStoryUseCase(repo, nil, logger.New())

	first, err := uc.ToggleFeatured("s1")
	assert.NoError(t, err)
	assert.True(t, first.Featured)

	second, err := uc.ToggleFeatured("s1")
	assert.NoError(t, err)
	assert.False(t, second.Featured)
}

func TestToggleDisabled_FlipsFlag(t *testing.T) {
	repo := new(MockStoryRepository)
	repo.On("GetByID", "s1").Return(&entity.Story{ID: "s1", Disabled: false}, nil)
	repo.On("ToggleDisabled", "s1").Return(nil)

	uc := NewStoryUseCase(repo, nil, logger.New())
	story, err := uc.ToggleDisabled("s1")

	assert.NoError(t, err)
	assert.True(t, story.Disabled)
}

func TestDeleteStory_NoBlobWithoutImage(t *testing.T) {
	repo := new(MockStoryRepository)
	repo.On("GetByID", "s1").Return(&entity.Story{ID: "s1"}, nil)
	repo.On("Delete", "s1").Return(nil)

	uc := NewStoryUseCase(repo, nil, logger.New())
	assert.NoError(t, uc.DeleteStory("s1"))
	repo.AssertExpectations(t)
}
