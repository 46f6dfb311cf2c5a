package http

import (
	"net/http"

	"storysprout/pkg/logger"
	"storysprout/services/admin/internal/usecase"

	"github.com/gin-gonic/gin"
)

type TrendingHandler struct {
	trendingUseCase usecase.TrendingUseCase
	logger          *logger.Logger
}

func NewTrendingHandler(trendingUseCase usecase.TrendingUseCase, logger *logger.Logger) *TrendingHandler {
	return &TrendingHandler{
		trendingUseCase: trendingUseCase,
		logger:          logger,
	}
}

type CreateTrendingRequest struct {
	StoryID     string   `json:"story_id"`
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	AgeGroup    string   `json:"age_group"`
	Categories  []string `json:"categories"`
	Category    string   `json:"category"`
	Views       int      `json:"views"`
	Likes       int      `json:"likes"`
	Priority    int      `json:"priority"`
	Language    string   `json:"language"`
}

// CreateTrending godoc
// @Summary      Create a trending entry
// @Description  Add an entry to the trending rail. Accepts a categories list, or the single legacy category field.
// @Tags         trending
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateTrendingRequest true "Trending entry"
// @Success      201  {object}  entity.TrendingStory
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /trending [post]
func (h *TrendingHandler) CreateTrending(c *gin.Context) {
	var req CreateTrendingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.trendingUseCase.CreateTrending(usecase.CreateTrendingInput{
		StoryID:     req.StoryID,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		AgeGroup:    req.AgeGroup,
		Categories:  req.Categories,
		Category:    req.Category,
		Views:       req.Views,
		Likes:       req.Likes,
		Priority:    req.Priority,
		Language:    req.Language,
	})
	if err != nil {
		h.logger.Error("Failed to create trending entry: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// GetTrending godoc
// @Summary      Get trending entry by ID
// @Tags         trending
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Trending entry ID"
// @Success      200  {object}  entity.TrendingStory
// @Failure      404  {object}  map[string]string
// @Router       /trending/{id} [get]
func (h *TrendingHandler) GetTrending(c *gin.Context) {
	item, err := h.trendingUseCase.GetTrending(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trending entry not found"})
		return
	}

	c.JSON(http.StatusOK, item)
}

// ListTrending godoc
// @Summary      List trending entries
// @Description  List all trending entries including inactive ones, highest priority first
// @Tags         trending
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Maximum number of results" default(50)
// @Param        offset query int false "Offset for pagination"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /trending [get]
func (h *TrendingHandler) ListTrending(c *gin.Context) {
	limit, offset := parsePagination(c)

	items, err := h.trendingUseCase.ListTrending(limit, offset)
	if err != nil {
		h.logger.Error("Failed to list trending entries: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch trending entries"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"trending": items, "count": len(items), "offset": offset})
}

type UpdateTrendingRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"image_url"`
	AgeGroup    *string  `json:"age_group"`
	Categories  []string `json:"categories"`
	Views       *int     `json:"views"`
	Likes       *int     `json:"likes"`
	Priority    *int     `json:"priority"`
	Language    *string  `json:"language"`
}

// UpdateTrending godoc
// @Summary      Update a trending entry
// @Description  Update trending fields. Only supplied fields change.
// @Tags         trending
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Trending entry ID"
// @Param        request body UpdateTrendingRequest true "Fields to update"
// @Success      200  {object}  entity.TrendingStory
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /trending/{id} [put]
func (h *TrendingHandler) UpdateTrending(c *gin.Context) {
	var req UpdateTrendingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.trendingUseCase.UpdateTrending(c.Param("id"), usecase.UpdateTrendingInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		AgeGroup:    req.AgeGroup,
		Categories:  req.Categories,
		Views:       req.Views,
		Likes:       req.Likes,
		Priority:    req.Priority,
		Language:    req.Language,
	})
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trending entry not found"})
			return
		}
		h.logger.Error("Failed to update trending entry: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteTrending godoc
// @Summary      Delete a trending entry
// @Tags         trending
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Trending entry ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /trending/{id} [delete]
func (h *TrendingHandler) DeleteTrending(c *gin.Context) {
	if err := h.trendingUseCase.DeleteTrending(c.Param("id")); err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trending entry not found"})
			return
		}
		h.logger.Error("Failed to delete trending entry: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete trending entry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trending entry deleted successfully"})
}

// ToggleActive godoc
// @Summary      Toggle trending active flag
// @Tags         trending
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Trending entry ID"
// @Success      200  {object}  entity.TrendingStory
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /trending/{id}/active [patch]
func (h *TrendingHandler) ToggleActive(c *gin.Context) {
	item, err := h.trendingUseCase.ToggleActive(c.Param("id"))
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trending entry not found"})
			return
		}
		h.logger.Error("Failed to toggle trending active: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle active"})
		return
	}

	c.JSON(http.StatusOK, item)
}
