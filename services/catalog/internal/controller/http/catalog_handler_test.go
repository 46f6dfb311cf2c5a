package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"storysprout/pkg/logger"
	"storysprout/services/catalog/internal/entity"
	"storysprout/services/catalog/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCatalogUseCase struct {
	mock.Mock
}

func (m *MockCatalogUseCase) ListStories(ageGroup string, limit int, language string) ([]*entity.Story, error) {
	args := m.Called(ageGroup, limit, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Story), args.Error(1)
}

func (m *MockCatalogUseCase) ListVideos(ageGroup string, limit int, language string) ([]*entity.Video, error) {
	args := m.Called(ageGroup, limit, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Video), args.Error(1)
}

func (m *MockCatalogUseCase) ListCodeStories(programmingLanguage string, limit int) ([]*entity.Story, error) {
	args := m.Called(programmingLanguage, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Story), args.Error(1)
}

func (m *MockCatalogUseCase) ListCodeVideos(programmingLanguage string, limit int) ([]*entity.Video, error) {
	args := m.Called(programmingLanguage, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Video), args.Error(1)
}

func (m *MockCatalogUseCase) ListTrending(limit int, language string) ([]*entity.TrendingStory, error) {
	args := m.Called(limit, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.TrendingStory), args.Error(1)
}

var _ usecase.CatalogUseCase = (*MockCatalogUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestListStories_OK(t *testing.T) {
	mockUseCase := new(MockCatalogUseCase)
	handler := NewCatalogHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/stories", handler.ListStories)

	mockUseCase.On("ListStories", "3-6", 20, "en").Return([]*entity.Story{
		{ID: "s1", Title: "story one"},
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/stories?age_group=3-6", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(1), body["count"])
	mockUseCase.AssertExpectations(t)
}

func TestListStories_InvalidAgeGroup(t *testing.T) {
	mockUseCase := new(MockCatalogUseCase)
	handler := NewCatalogHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/stories", handler.ListStories)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/stories?age_group=4-7", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "ListStories")
}

func TestListStories_UseCaseError(t *testing.T) {
	mockUseCase := new(MockCatalogUseCase)
	handler := NewCatalogHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/stories", handler.ListStories)

	mockUseCase.On("ListStories", "", 20, "en").Return(nil, errors.New("store unavailable"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/stories", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	// The store error itself is never surfaced to the client
	assert.NotContains(t, body["error"], "store unavailable")
}

func TestListVideos_CustomLimit(t *testing.T) {
	mockUseCase := new(MockCatalogUseCase)
	handler := NewCatalogHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/videos", handler.ListVideos)

	mockUseCase.On("ListVideos", "", 5, "fr").Return([]*entity.Video{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/videos?limit=5&language=fr", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestListCodeStories_PassesLanguage(t *testing.T) {
	mockUseCase := new(MockCatalogUseCase)
	handler := NewCatalogHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/code/stories", handler.ListCodeStories)

	mockUseCase.On("ListCodeStories", "python", 20).Return([]*entity.Story{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/code/stories?programming_language=python", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestListTrending_AgeFilterAppliedAfterRanking(t *testing.T) {
	mockUseCase := new(MockCatalogUseCase)
	handler := NewCatalogHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/trending", handler.ListTrending)

	mockUseCase.On("ListTrending", 20, "en").Return([]*entity.TrendingStory{
		{ID: "t1", Title: "young", AgeGroup: "3-6"},
		{ID: "t2", Title: "older", AgeGroup: "9-12"},
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/trending?age_group=3-6", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Trending []entity.TrendingStory `json:"trending"`
		Count    int                    `json:"count"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Count)
	assert.Equal(t, "young", body.Trending[0].Title)
}
