package http

import (
	"errors"
	"net/http"
	"strconv"

	"storysprout/pkg/logger"
	"storysprout/services/admin/internal/usecase"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const defaultLimit = 50

func parsePagination(c *gin.Context) (limit, offset int) {
	limit = defaultLimit
	offset = 0

	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}
	if raw := c.Query("offset"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

type StoryHandler struct {
	storyUseCase usecase.StoryUseCase
	logger       *logger.Logger
}

func NewStoryHandler(storyUseCase usecase.StoryUseCase, logger *logger.Logger) *StoryHandler {
	return &StoryHandler{
		storyUseCase: storyUseCase,
		logger:       logger,
	}
}

type CreateStoryRequest struct {
	Title               string `form:"title" binding:"required"`
	Description         string `form:"description"`
	AgeGroup            string `form:"age_group" binding:"required,oneof=0-3 3-6 6-9 9-12"`
	Language            string `form:"language"`
	Featured            bool   `form:"featured"`
	IsCodeStory         bool   `form:"is_code_story"`
	ProgrammingLanguage string `form:"programming_language"`
}

// CreateStory godoc
// @Summary      Create a story
// @Description  Create a story with an optional cover image upload
// @Tags         stories
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Story title"
// @Param        description formData string false "Story description"
// @Param        age_group formData string true "Age group" Enums(0-3, 3-6, 6-9, 9-12)
// @Param        language formData string false "Content language"
// @Param        featured formData bool false "Featured flag"
// @Param        is_code_story formData bool false "Coding story flag"
// @Param        programming_language formData string false "Programming language for coding stories" Enums(scratch, html, css, javascript, python)
// @Param        image formData file false "Cover image"
// @Success      201  {object}  entity.Story
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /stories [post]
func (h *StoryHandler) CreateStory(c *gin.Context) {
	var req CreateStoryRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	imageFile, _ := c.FormFile("image")

	story, err := h.storyUseCase.CreateStory(usecase.CreateStoryInput{
		Title:               req.Title,
		Description:         req.Description,
		AgeGroup:            req.AgeGroup,
		Language:            req.Language,
		Featured:            req.Featured,
		IsCodeStory:         req.IsCodeStory,
		ProgrammingLanguage: req.ProgrammingLanguage,
	}, imageFile)
	if err != nil {
		h.logger.Error("Failed to create story: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, story)
}

// GetStory godoc
// @Summary      Get story by ID
// @Tags         stories
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Story ID"
// @Success      200  {object}  entity.Story
// @Failure      404  {object}  map[string]string
// @Router       /stories/{id} [get]
func (h *StoryHandler) GetStory(c *gin.Context) {
	story, err := h.storyUseCase.GetStory(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Story not found"})
		return
	}

	c.JSON(http.StatusOK, story)
}

// ListStories godoc
// @Summary      List stories
// @Description  List all stories including disabled ones, newest first
// @Tags         stories
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Maximum number of results" default(50)
// @Param        offset query int false "Offset for pagination"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /stories [get]
func (h *StoryHandler) ListStories(c *gin.Context) {
	limit, offset := parsePagination(c)

	stories, err := h.storyUseCase.ListStories(limit, offset)
	if err != nil {
		h.logger.Error("Failed to list stories: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stories"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"stories": stories, "count": len(stories), "offset": offset})
}

type UpdateStoryRequest struct {
	Title               *string `form:"title"`
	Description         *string `form:"description"`
	AgeGroup            *string `form:"age_group"`
	Language            *string `form:"language"`
	ProgrammingLanguage *string `form:"programming_language"`
}

// UpdateStory godoc
// @Summary      Update a story
// @Description  Update story fields. Only supplied fields change, an uploaded image replaces the old one.
// @Tags         stories
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Story ID"
// @Param        title formData string false "Story title"
// @Param        description formData string false "Story description"
// @Param        age_group formData string false "Age group" Enums(0-3, 3-6, 6-9, 9-12)
// @Param        language formData string false "Content language"
// @Param        programming_language formData string false "Programming language"
// @Param        image formData file false "Replacement cover image"
// @Success      200  {object}  entity.Story
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /stories/{id} [put]
func (h *StoryHandler) UpdateStory(c *gin.Context) {
	var req UpdateStoryRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	imageFile, _ := c.FormFile("image")

	story, err := h.storyUseCase.UpdateStory(c.Param("id"), usecase.UpdateStoryInput{
		Title:               req.Title,
		Description:         req.Description,
		AgeGroup:            req.AgeGroup,
		Language:            req.Language,
		ProgrammingLanguage: req.ProgrammingLanguage,
	}, imageFile)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Story not found"})
			return
		}
		h.logger.Error("Failed to update story: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, story)
}

// DeleteStory godoc
// @Summary      Delete a story
// @Description  Delete a story and its uploaded cover image
// @Tags         stories
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Story ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /stories/{id} [delete]
func (h *StoryHandler) DeleteStory(c *gin.Context) {
	if err := h.storyUseCase.DeleteStory(c.Param("id")); err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Story not found"})
			return
		}
		h.logger.Error("Failed to delete story: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete story"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Story deleted successfully"})
}

// ToggleFeatured godoc
// @Summary      Toggle story featured flag
// @Tags         stories
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Story ID"
// @Success      200  {object}  entity.Story
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /stories/{id}/featured [patch]
func (h *StoryHandler) ToggleFeatured(c *gin.Context) {
	story, err := h.storyUseCase.ToggleFeatured(c.Param("id"))
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Story not found"})
			return
		}
		h.logger.Error("Failed to toggle story featured: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle featured"})
		return
	}

	c.JSON(http.StatusOK, story)
}

// ToggleDisabled godoc
// @Summary      Toggle story disabled flag
// @Tags         stories
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Story ID"
// @Success      200  {object}  entity.Story
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /stories/{id}/disabled [patch]
func (h *StoryHandler) ToggleDisabled(c *gin.Context) {
	story, err := h.storyUseCase.ToggleDisabled(c.Param("id"))
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Story not found"})
			return
		}
		h.logger.Error("Failed to toggle story disabled: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle disabled"})
		return
	}

	c.JSON(http.StatusOK, story)
}
