package http

import (
	"net/http"

	"storysprout/pkg/logger"
	"storysprout/services/admin/internal/usecase"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	videoUseCase usecase.VideoUseCase
	logger       *logger.Logger
}

func NewVideoHandler(videoUseCase usecase.VideoUseCase, logger *logger.Logger) *VideoHandler {
	return &VideoHandler{
		videoUseCase: videoUseCase,
		logger:       logger,
	}
}

type CreateVideoRequest struct {
	Title               string `form:"title" binding:"required"`
	Description         string `form:"description"`
	AgeGroup            string `form:"age_group" binding:"required,oneof=0-3 3-6 6-9 9-12"`
	Language            string `form:"language"`
	Featured            bool   `form:"featured"`
	IsCodeVideo         bool   `form:"is_code_video"`
	ProgrammingLanguage string `form:"programming_language"`
}

// CreateVideo godoc
// @Summary      Create a video
// @Description  Upload a video file with an optional thumbnail
// @Tags         videos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Video title"
// @Param        description formData string false "Video description"
// @Param        age_group formData string true "Age group" Enums(0-3, 3-6, 6-9, 9-12)
// @Param        language formData string false "Content language"
// @Param        featured formData bool false "Featured flag"
// @Param        is_code_video formData bool false "Coding video flag"
// @Param        programming_language formData string false "Programming language for coding videos" Enums(scratch, html, css, javascript, python)
// @Param        video formData file true "Video file"
// @Param        thumbnail formData file false "Thumbnail image"
// @Success      201  {object}  entity.Video
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /videos [post]
func (h *VideoHandler) CreateVideo(c *gin.Context) {
	var req CreateVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	videoFile, err := c.FormFile("video")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Video file is required"})
		return
	}
	thumbnailFile, _ := c.FormFile("thumbnail")

	video, err := h.videoUseCase.CreateVideo(usecase.CreateVideoInput{
		Title:               req.Title,
		Description:         req.Description,
		AgeGroup:            req.AgeGroup,
		Language:            req.Language,
		Featured:            req.Featured,
		IsCodeVideo:         req.IsCodeVideo,
		ProgrammingLanguage: req.ProgrammingLanguage,
	}, videoFile, thumbnailFile)
	if err != nil {
		h.logger.Error("Failed to create video: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, video)
}

// GetVideo godoc
// @Summary      Get video by ID
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Success      200  {object}  entity.Video
// @Failure      404  {object}  map[string]string
// @Router       /videos/{id} [get]
func (h *VideoHandler) GetVideo(c *gin.Context) {
	video, err := h.videoUseCase.GetVideo(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
		return
	}

	c.JSON(http.StatusOK, video)
}

// ListVideos godoc
// @Summary      List videos
// @Description  List all videos including disabled ones, newest first
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Maximum number of results" default(50)
// @Param        offset query int false "Offset for pagination"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /videos [get]
func (h *VideoHandler) ListVideos(c *gin.Context) {
	limit, offset := parsePagination(c)

	videos, err := h.videoUseCase.ListVideos(limit, offset)
	if err != nil {
		h.logger.Error("Failed to list videos: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch videos"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"videos": videos, "count": len(videos), "offset": offset})
}

type UpdateVideoRequest struct {
	Title               *string `form:"title"`
	Description         *string `form:"description"`
	AgeGroup            *string `form:"age_group"`
	Language            *string `form:"language"`
	ProgrammingLanguage *string `form:"programming_language"`
}

// UpdateVideo godoc
// @Summary      Update a video
// @Description  Update video fields. Only supplied fields change, an uploaded thumbnail replaces the old one.
// @Tags         videos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Param        title formData string false "Video title"
// @Param        description formData string false "Video description"
// @Param        age_group formData string false "Age group" Enums(0-3, 3-6, 6-9, 9-12)
// @Param        language formData string false "Content language"
// @Param        programming_language formData string false "Programming language"
// @Param        thumbnail formData file false "Replacement thumbnail"
// @Success      200  {object}  entity.Video
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /videos/{id} [put]
func (h *VideoHandler) UpdateVideo(c *gin.Context) {
	var req UpdateVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	thumbnailFile, _ := c.FormFile("thumbnail")

	video, err := h.videoUseCase.UpdateVideo(c.Param("id"), usecase.UpdateVideoInput{
		Title:               req.Title,
		Description:         req.Description,
		AgeGroup:            req.AgeGroup,
		Language:            req.Language,
		ProgrammingLanguage: req.ProgrammingLanguage,
	}, thumbnailFile)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
			return
		}
		h.logger.Error("Failed to update video: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, video)
}

// DeleteVideo godoc
// @Summary      Delete a video
// @Description  Delete a video and its uploaded files
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /videos/{id} [delete]
func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	if err := h.videoUseCase.DeleteVideo(c.Param("id")); err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
			return
		}
		h.logger.Error("Failed to delete video: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete video"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Video deleted successfully"})
}

// ToggleFeatured godoc
// @Summary      Toggle video featured flag
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Success      200  {object}  entity.Video
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /videos/{id}/featured [patch]
func (h *VideoHandler) ToggleFeatured(c *gin.Context) {
	video, err := h.videoUseCase.ToggleFeatured(c.Param("id"))
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
			return
		}
		h.logger.Error("Failed to toggle video featured: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle featured"})
		return
	}

	c.JSON(http.StatusOK, video)
}

// ToggleDisabled godoc
// @Summary      Toggle video disabled flag
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Success      200  {object}  entity.Video
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /videos/{id}/disabled [patch]
func (h *VideoHandler) ToggleDisabled(c *gin.Context) {
	video, err := h.videoUseCase.ToggleDisabled(c.Param("id"))
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
			return
		}
		h.logger.Error("Failed to toggle video disabled: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle disabled"})
		return
	}

	c.JSON(http.StatusOK, video)
}
