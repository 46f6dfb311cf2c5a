package http

import (
	"net/http"

	"storysprout/pkg/logger"
	"storysprout/services/admin/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase usecase.PostUseCase
	logger      *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		logger:      logger,
	}
}

type CreatePostRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description"`
	Link        string `form:"link"`
	Kind        string `form:"kind" binding:"required,oneof=story video general"`
	AgeGroup    string `form:"age_group"`
	Language    string `form:"language"`
	Featured    bool   `form:"featured"`
}

// CreatePost godoc
// @Summary      Create a dashboard post
// @Description  Create an announcement or promoted content entry. Posts of kind story or video surface in the public catalog.
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Post title"
// @Param        description formData string false "Post description"
// @Param        link formData string false "External link"
// @Param        kind formData string true "Post kind" Enums(story, video, general)
// @Param        age_group formData string false "Age group" Enums(0-3, 3-6, 6-9, 9-12)
// @Param        language formData string false "Content language"
// @Param        featured formData bool false "Featured flag"
// @Param        image formData file false "Post image"
// @Success      201  {object}  entity.AdminPost
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	imageFile, _ := c.FormFile("image")

	post, err := h.postUseCase.CreatePost(usecase.CreatePostInput{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
		Kind:        req.Kind,
		AgeGroup:    req.AgeGroup,
		Language:    req.Language,
		Featured:    req.Featured,
	}, imageFile)
	if err != nil {
		h.logger.Error("Failed to create post: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, post)
}

// GetPost godoc
// @Summary      Get post by ID
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  entity.AdminPost
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postUseCase.GetPost(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// ListPosts godoc
// @Summary      List posts
// @Description  List all dashboard posts, newest first
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Maximum number of results" default(50)
// @Param        offset query int false "Offset for pagination"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	limit, offset := parsePagination(c)

	posts, err := h.postUseCase.ListPosts(limit, offset)
	if err != nil {
		h.logger.Error("Failed to list posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts, "count": len(posts), "offset": offset})
}

type UpdatePostRequest struct {
	Title       *string `form:"title"`
	Description *string `form:"description"`
	Link        *string `form:"link"`
	AgeGroup    *string `form:"age_group"`
	Language    *string `form:"language"`
}

// UpdatePost godoc
// @Summary      Update a post
// @Description  Update post fields. Only supplied fields change, an uploaded image replaces the old one.
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        title formData string false "Post title"
// @Param        description formData string false "Post description"
// @Param        link formData string false "External link"
// @Param        age_group formData string false "Age group" Enums(0-3, 3-6, 6-9, 9-12)
// @Param        language formData string false "Content language"
// @Param        image formData file false "Replacement image"
// @Success      200  {object}  entity.AdminPost
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	var req UpdatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	imageFile, _ := c.FormFile("image")

	post, err := h.postUseCase.UpdatePost(c.Param("id"), usecase.UpdatePostInput{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
		AgeGroup:    req.AgeGroup,
		Language:    req.Language,
	}, imageFile)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		h.logger.Error("Failed to update post: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost godoc
// @Summary      Delete a post
// @Description  Delete a post and its uploaded image
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	if err := h.postUseCase.DeletePost(c.Param("id")); err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		h.logger.Error("Failed to delete post: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

// ToggleFeatured godoc
// @Summary      Toggle post featured flag
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  entity.AdminPost
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/{id}/featured [patch]
func (h *PostHandler) ToggleFeatured(c *gin.Context) {
	post, err := h.postUseCase.ToggleFeatured(c.Param("id"))
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		h.logger.Error("Failed to toggle post featured: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle featured"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// ToggleDisabled godoc
// @Summary      Toggle post disabled flag
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  entity.AdminPost
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/{id}/disabled [patch]
func (h *PostHandler) ToggleDisabled(c *gin.Context) {
	post, err := h.postUseCase.ToggleDisabled(c.Param("id"))
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		h.logger.Error("Failed to toggle post disabled: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle disabled"})
		return
	}

	c.JSON(http.StatusOK, post)
}
