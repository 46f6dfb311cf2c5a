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

type CreateStoryInput struct {
	Title               string
	Description         string
	AgeGroup            string
	Language            string
	Featured            bool
	IsCodeStory         bool
	ProgrammingLanguage string
	Translations        map[string]entity.Translation
}

type UpdateStoryInput struct {
	Title               *string
	Description         *string
	AgeGroup            *string
	Language            *string
	ProgrammingLanguage *string
}

type StoryUseCase interface {
	CreateStory(input CreateStoryInput, imageFile *multipart.FileHeader) (*entity.Story, error)
	GetStory(id string) (*entity.Story, error)
	ListStories(limit, offset int) ([]*entity.Story, error)
	UpdateStory(id string, input UpdateStoryInput, imageFile *multipart.FileHeader) (*entity.Story, error)
	DeleteStory(id string) error
	ToggleFeatured(id string) (*entity.Story, error)
	ToggleDisabled(id string) (*entity.Story, error)
}

type storyUseCase struct {
	storyRepo persistent.StoryRepository
	s3Client  *s3.Client
	logger    *logger.Logger
}

func NewStoryUseCase(storyRepo persistent.StoryRepository, s3Client *s3.Client, logger *logger.Logger) StoryUseCase {
	return &storyUseCase{
		storyRepo: storyRepo,
		s3Client:  s3Client,
		logger:    logger,
	}
}

func (uc *storyUseCase) CreateStory(input CreateStoryInput, imageFile *multipart.FileHeader) (*entity.Story, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if !entity.IsValidAgeGroup(input.AgeGroup) {
		return nil, fmt.Errorf("invalid age group: %s", input.AgeGroup)
	}
	if input.IsCodeStory && !entity.IsValidProgrammingLanguage(input.ProgrammingLanguage) {
		return nil, fmt.Errorf("invalid programming language: %s", input.ProgrammingLanguage)
	}

	var imageURL string
	if imageFile != nil {
		url, err := uc.uploadFile(imageFile, "stories", "image/jpeg")
		if err != nil {
			return nil, err
		}
		imageURL = url
	}

	story := &entity.Story{
		Title:               input.Title,
		Description:         input.Description,
		AgeGroup:            input.AgeGroup,
		ImageURL:            imageURL,
		Language:            input.Language,
		Featured:            input.Featured,
		IsCodeStory:         input.IsCodeStory,
		ProgrammingLanguage: input.ProgrammingLanguage,
		Translations:        input.Translations,
	}

	if err := uc.storyRepo.Create(story); err != nil {
		return nil, fmt.Errorf("failed to create story: %w", err)
	}

	return story, nil
}

func (uc *storyUseCase) GetStory(id string) (*entity.Story, error) {
	return uc.storyRepo.GetByID(id)
}

func (uc *storyUseCase) ListStories(limit, offset int) ([]*entity.Story, error) {
	return uc.storyRepo.List(limit, offset)
}

func (uc *storyUseCase) UpdateStory(id string, input UpdateStoryInput, imageFile *multipart.FileHeader) (*entity.Story, error) {
	story, err := uc.storyRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		story.Title = *input.Title
	}
	if input.Description != nil {
		story.Description = *input.Description
	}
	if input.AgeGroup != nil {
		if !entity.IsValidAgeGroup(*input.AgeGroup) {
			return nil, fmt.Errorf("invalid age group: %s", *input.AgeGroup)
		}
		story.AgeGroup = *input.AgeGroup
	}
	if input.Language != nil {
		story.Language = *input.Language
	}
	if input.ProgrammingLanguage != nil {
		story.ProgrammingLanguage = *input.ProgrammingLanguage
	}

	if imageFile != nil {
		oldImageURL := story.ImageURL
		url, err := uc.uploadFile(imageFile, "stories", "image/jpeg")
		if err != nil {
			return nil, err
		}
		story.ImageURL = url
		uc.deleteBlob(oldImageURL)
	}

	if err := uc.storyRepo.Update(story); err != nil {
		return nil, fmt.Errorf("failed to update story: %w", err)
	}

	return story, nil
}

func (uc *storyUseCase) DeleteStory(id string) error {
	story, err := uc.storyRepo.GetByID(id)
	if err != nil {
		return err
	}

	if err := uc.storyRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete story: %w", err)
	}

	uc.deleteBlob(story.ImageURL)
	return nil
}

func (uc *storyUseCase) ToggleFeatured(id string) (*entity.Story, error) {
	story, err := uc.storyRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := uc.storyRepo.ToggleFeatured(id); err != nil {
		return nil, fmt.Errorf("failed to toggle featured: %w", err)
	}

	story.Featured = !story.Featured
	return story, nil
}

func (uc *storyUseCase) ToggleDisabled(id string) (*entity.Story, error) {
	story, err := uc.storyRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := uc.storyRepo.ToggleDisabled(id); err != nil {
		return nil, fmt.Errorf("failed to toggle disabled: %w", err)
	}

	story.Disabled = !story.Disabled
	return story, nil
}

func (uc *storyUseCase) uploadFile(file *multipart.FileHeader, prefix, defaultContentType string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	fileKey := fmt.Sprintf("%s/%s%s", prefix, uuid.New().String(), getFileExtension(file.Filename))
	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = defaultContentType
	}

	url, err := uc.s3Client.UploadFile(fileKey, src, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %w", err)
	}
	return url, nil
}

// deleteBlob removes a previously uploaded object. Best effort: failures
// are logged and swallowed, orphaned blobs are accepted.
func (uc *storyUseCase) deleteBlob(url string) {
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

func getFileExtension(filename string) string {
	for i := len(filename) - 1; i >= 0; i-- {
		if filename[i] == '.' {
			return filename[i:]
		}
	}
	return ""
}
