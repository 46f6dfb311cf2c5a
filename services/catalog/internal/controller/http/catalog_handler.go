package http

import (
	"net/http"
	"strconv"

	"storysprout/pkg/logger"
	"storysprout/services/catalog/internal/entity"
	"storysprout/services/catalog/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	defaultLimit    = 20
	defaultLanguage = "en"
)

type CatalogHandler struct {
	catalogUseCase usecase.CatalogUseCase
	logger         *logger.Logger
}

func NewCatalogHandler(catalogUseCase usecase.CatalogUseCase, logger *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
		logger:         logger,
	}
}

func parseListParams(c *gin.Context) (ageGroup string, limit int, language string, ok bool) {
	ageGroup = c.Query("age_group")
	if ageGroup != "" && !entity.IsValidAgeGroup(ageGroup) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid age group"})
		return "", 0, "", false
	}

	limit = defaultLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return "", 0, "", false
		}
		limit = n
	}

	language = c.DefaultQuery("language", defaultLanguage)
	return ageGroup, limit, language, true
}

// ListStories godoc
// @Summary      List stories
// @Description  Get age-appropriate stories, admin-authored posts merged in, featured first then newest first
// @Tags         catalog
// @Produce      json
// @Param        age_group query string false "Age group filter" Enums(0-3, 3-6, 6-9, 9-12)
// @Param        limit query int false "Maximum number of results" default(20)
// @Param        language query string false "Language of admin-authored content" default(en)
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /stories [get]
func (h *CatalogHandler) ListStories(c *gin.Context) {
	ageGroup, limit, language, ok := parseListParams(c)
	if !ok {
		return
	}

	stories, err := h.catalogUseCase.ListStories(ageGroup, limit, language)
	if err != nil {
		h.logger.Error("Failed to list stories: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stories. Please try again later."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"stories": stories, "count": len(stories)})
}

// ListVideos godoc
// @Summary      List videos
// @Description  Get age-appropriate videos, admin-authored posts merged in, featured first then newest first
// @Tags         catalog
// @Produce      json
// @Param        age_group query string false "Age group filter" Enums(0-3, 3-6, 6-9, 9-12)
// @Param        limit query int false "Maximum number of results" default(20)
// @Param        language query string false "Language of admin-authored content" default(en)
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /videos [get]
func (h *CatalogHandler) ListVideos(c *gin.Context) {
	ageGroup, limit, language, ok := parseListParams(c)
	if !ok {
		return
	}

	videos, err := h.catalogUseCase.ListVideos(ageGroup, limit, language)
	if err != nil {
		h.logger.Error("Failed to list videos: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load videos. Please try again later."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"videos": videos, "count": len(videos)})
}

// ListCodeStories godoc
// @Summary      List coding stories
// @Description  Get stories that teach programming, optionally filtered by language
// @Tags         catalog
// @Produce      json
// @Param        programming_language query string false "Programming language" Enums(scratch, html, css, javascript, python)
// @Param        limit query int false "Maximum number of results" default(20)
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /code/stories [get]
func (h *CatalogHandler) ListCodeStories(c *gin.Context) {
	limit := defaultLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	stories, err := h.catalogUseCase.ListCodeStories(c.Query("programming_language"), limit)
	if err != nil {
		h.logger.Error("Failed to list code stories: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stories. Please try again later."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"stories": stories, "count": len(stories)})
}

// ListCodeVideos godoc
// @Summary      List coding videos
// @Description  Get videos that teach programming, optionally filtered by language
// @Tags         catalog
// @Produce      json
// @Param        programming_language query string false "Programming language" Enums(scratch, html, css, javascript, python)
// @Param        limit query int false "Maximum number of results" default(20)
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /code/videos [get]
func (h *CatalogHandler) ListCodeVideos(c *gin.Context) {
	limit := defaultLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	videos, err := h.catalogUseCase.ListCodeVideos(c.Query("programming_language"), limit)
	if err != nil {
		h.logger.Error("Failed to list code videos: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load videos. Please try again later."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"videos": videos, "count": len(videos)})
}

// ListTrending godoc
// @Summary      List trending stories
// @Description  Get active trending entries ordered by priority, views, then recency
// @Tags         catalog
// @Produce      json
// @Param        age_group query string false "Age group filter (applied after ranking)" Enums(0-3, 3-6, 6-9, 9-12)
// @Param        limit query int false "Maximum number of results" default(20)
// @Param        language query string false "Language of admin-sourced entries" default(en)
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /trending [get]
func (h *CatalogHandler) ListTrending(c *gin.Context) {
	ageGroup, limit, language, ok := parseListParams(c)
	if !ok {
		return
	}

	items, err := h.catalogUseCase.ListTrending(limit, language)
	if err != nil {
		h.logger.Error("Failed to list trending stories: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load trending stories. Please try again later."})
		return
	}

	// Age filtering for trending stays at the HTTP boundary; the ranking
	// itself never sees the filter.
	if ageGroup != "" {
		filtered := make([]*entity.TrendingStory, 0, len(items))
		for _, item := range items {
			if item.AgeGroup == ageGroup {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	c.JSON(http.StatusOK, gin.H{"trending": items, "count": len(items)})
}
