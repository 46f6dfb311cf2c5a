package usecase

import (
	"fmt"
	"mime/multipart"

	"storysprout/pkg/logger"
	"storysprout/pkg/s3"
	"storysprout/services/admin/internal/entity"
	"storysprout/services/admin/internal/repo/persistent"

	"github.com/google/uuid"
)

type CreatePostInput struct {
	Title       string
	Description string
	Link        string
	Kind        string
	AgeGroup    string
	Language    string
	Featured    bool
}

type UpdatePostInput struct {
	Title       *string
	Description *string
	Link        *string
	AgeGroup    *string
	Language    *string
}

type PostUseCase interface {
	CreatePost(input CreatePostInput, imageFile *multipart.FileHeader) (*entity.AdminPost, error)
	GetPost(id string) (*entity.AdminPost, error)
	ListPosts(limit, offset int) ([]*entity.AdminPost, error)
	UpdatePost(id string, input UpdatePostInput, imageFile *multipart.FileHeader) (*entity.AdminPost, error)
	DeletePost(id string) error
	ToggleFeatured(id string) (*entity.AdminPost, error)
	ToggleDisabled(id string) (*entity.AdminPost, error)
}

type postUseCase struct {
	postRepo persistent.AdminPostRepository
	s3Client *s3.Client
	logger   *logger.Logger
}

func NewPostUseCase(postRepo persistent.AdminPostRepository, s3Client *s3.Client, logger *logger.Logger) PostUseCase {
	return &postUseCase{
		postRepo: postRepo,
		s3Client: s3Client,
		logger:   logger,
	}
}

func (uc *postUseCase) CreatePost(input CreatePostInput, imageFile *multipart.FileHeader) (*entity.AdminPost, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if !entity.IsValidPostKind(input.Kind) {
		return nil, fmt.Errorf("invalid post kind: %s", input.Kind)
	}
	if input.AgeGroup != "" && !entity.IsValidAgeGroup(input.AgeGroup) {
		return nil, fmt.Errorf("invalid age group: %s", input.AgeGroup)
	}

	var imageURL string
	if imageFile != nil {
		url, err := uc.uploadImage(imageFile)
		if err != nil {
			return nil, err
		}
		imageURL = url
	}

	post := &entity.AdminPost{
		Title:       input.Title,
		Description: input.Description,
		Link:        input.Link,
		Kind:        entity.PostKind(input.Kind),
		AgeGroup:    input.AgeGroup,
		Language:    input.Language,
		ImageURL:    imageURL,
		Featured:    input.Featured,
	}

	if err := uc.postRepo.Create(post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

func (uc *postUseCase) GetPost(id string) (*entity.AdminPost, error) {
	return uc.postRepo.GetByID(id)
}

func (uc *postUseCase) ListPosts(limit, offset int) ([]*entity.AdminPost, error) {
	return uc.postRepo.List(limit, offset)
}

func (uc *postUseCase) UpdatePost(id string, input UpdatePostInput, imageFile *multipart.FileHeader) (*entity.AdminPost, error) {
	post, err := uc.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Description != nil {
		post.Description = *input.Description
	}
	if input.Link != nil {
		post.Link = *input.Link
	}
	if input.AgeGroup != nil {
		if *input.AgeGroup != "" && !entity.IsValidAgeGroup(*input.AgeGroup) {
			return nil, fmt.Errorf("invalid age group: %s", *input.AgeGroup)
		}
		post.AgeGroup = *input.AgeGroup
	}
	if input.Language != nil {
		post.Language = *input.Language
	}

	if imageFile != nil {
		oldImageURL := post.ImageURL
		url, err := uc.uploadImage(imageFile)
		if err != nil {
			return nil, err
		}
		post.ImageURL = url
		uc.deleteBlob(oldImageURL)
	}

	if err := uc.postRepo.Update(post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return post, nil
}

func (uc *postUseCase) DeletePost(id string) error {
	post, err := uc.postRepo.GetByID(id)
	if err != nil {
		return err
	}

	if err := uc.postRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	uc.deleteBlob(post.ImageURL)
	return nil
}

func (uc *postUseCase) ToggleFeatured(id string) (*entity.AdminPost, error) {
	post, err := uc.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := uc.postRepo.ToggleFeatured(id); err != nil {
		return nil, fmt.Errorf("failed to toggle featured: %w", err)
	}

	post.Featured = !post.Featured
	return post, nil
}

func (uc *postUseCase) ToggleDisabled(id string) (*entity.AdminPost, error) {
	post, err := uc.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := uc.postRepo.ToggleDisabled(id); err != nil {
		return nil, fmt.Errorf("failed to toggle disabled: %w", err)
	}

	post.Disabled = !post.Disabled
	return post, nil
}

func (uc *postUseCase) uploadImage(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	fileKey := fmt.Sprintf("posts/%s%s", uuid.New().String(), getFileExtension(file.Filename))
	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	url, err := uc.s3Client.UploadFile(fileKey, src, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %w", err)
	}
	return url, nil
}

func (uc *postUseCase) deleteBlob(url string) {
	if url == "" || uc.s3Client == nil {
		return
	}

	key := uc.s3Client.KeyFromURL(url)
	if key == "" {
		return
	}

	if err := uc.s3Client.DeleteFile(key); err != nil {
		uc.logger.Warn("Failed to delete blob %s: %v", key, err)
	}
}
