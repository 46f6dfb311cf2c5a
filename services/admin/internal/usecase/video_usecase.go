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

type CreateVideoInput struct {
	Title               string
	Description         string
	AgeGroup            string
	Language            string
	Featured            bool
	IsCodeVideo         bool
	ProgrammingLanguage string
}

type UpdateVideoInput struct {
	Title               *string
	Description         *string
	AgeGroup            *string
	Language            *string
	ProgrammingLanguage *string
}

type VideoUseCase interface {
	CreateVideo(input CreateVideoInput, videoFile, thumbnailFile *multipart.FileHeader) (*entity.Video, error)
	GetVideo(id string) (*entity.Video, error)
	ListVideos(limit, offset int) ([]*entity.Video, error)
	UpdateVideo(id string, input UpdateVideoInput, thumbnailFile *multipart.FileHeader) (*entity.Video, error)
	DeleteVideo(id string) error
	ToggleFeatured(id string) (*entity.Video, error)
	ToggleDisabled(id string) (*entity.Video, error)
}

type videoUseCase struct {
	videoRepo persistent.VideoRepository
	s3Client  *s3.Client
	logger    *logger.Logger
}

func NewVideoUseCase(videoRepo persistent.VideoRepository, s3Client *s3.Client, logger *logger.Logger) VideoUseCase {
	return &videoUseCase{
		videoRepo: videoRepo,
		s3Client:  s3Client,
		logger:    logger,
	}
}

func (uc *videoUseCase) CreateVideo(input CreateVideoInput, videoFile, thumbnailFile *multipart.FileHeader) (*entity.Video, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if !entity.IsValidAgeGroup(input.AgeGroup) {
		return nil, fmt.Errorf("invalid age group: %s", input.AgeGroup)
	}
	if input.IsCodeVideo && !entity.IsValidProgrammingLanguage(input.ProgrammingLanguage) {
		return nil, fmt.Errorf("invalid programming language: %s", input.ProgrammingLanguage)
	}
	if videoFile == nil {
		return nil, fmt.Errorf("video file is required")
	}

	videoURL, err := uc.uploadFile(videoFile, "videos", "video/mp4")
	if err != nil {
		return nil, err
	}

	var thumbnailURL string
	if thumbnailFile != nil {
		url, err := uc.uploadFile(thumbnailFile, "thumbnails", "image/jpeg")
		if err != nil {
			return nil, err
		}
		thumbnailURL = url
	}

	video := &entity.Video{
		Title:               input.Title,
		Description:         input.Description,
		AgeGroup:            input.AgeGroup,
		ThumbnailURL:        thumbnailURL,
		VideoURL:            videoURL,
		Language:            input.Language,
		Featured:            input.Featured,
		IsCodeVideo:         input.IsCodeVideo,
		ProgrammingLanguage: input.ProgrammingLanguage,
	}

	if err := uc.videoRepo.Create(video); err != nil {
		return nil, fmt.Errorf("failed to create video: %w", err)
	}

	return video, nil
}

func (uc *videoUseCase) GetVideo(id string) (*entity.Video, error) {
	return uc.videoRepo.GetByID(id)
}

func (uc *videoUseCase) ListVideos(limit, offset int) ([]*entity.Video, error) {
	return uc.videoRepo.List(limit, offset)
}

func (uc *videoUseCase) UpdateVideo(id string, input UpdateVideoInput, thumbnailFile *multipart.FileHeader) (*entity.Video, error) {
	video, err := uc.videoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		video.Title = *input.Title
	}
	if input.Description != nil {
		video.Description = *input.Description
	}
	if input.AgeGroup != nil {
		if !entity.IsValidAgeGroup(*input.AgeGroup) {
			return nil, fmt.Errorf("invalid age group: %s", *input.AgeGroup)
		}
		video.AgeGroup = *input.AgeGroup
	}
	if input.Language != nil {
		video.Language = *input.Language
	}
	if input.ProgrammingLanguage != nil {
		video.ProgrammingLanguage = *input.ProgrammingLanguage
	}

	if thumbnailFile != nil {
		oldThumbnailURL := video.ThumbnailURL
		url, err := uc.uploadFile(thumbnailFile, "thumbnails", "image/jpeg")
		if err != nil {
			return nil, err
		}
		video.ThumbnailURL = url
		uc.deleteBlob(oldThumbnailURL)
	}

	if err := uc.videoRepo.Update(video); err != nil {
		return nil, fmt.Errorf("failed to update video: %w", err)
	}

	return video, nil
}

func (uc *videoUseCase) DeleteVideo(id string) error {
	video, err := uc.videoRepo.GetByID(id)
	if err != nil {
		return err
	}

	if err := uc.videoRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}

	uc.deleteBlob(video.VideoURL)
	uc.deleteBlob(video.ThumbnailURL)
	return nil
}

func (uc *videoUseCase) ToggleFeatured(id string) (*entity.Video, error) {
	video, err := uc.videoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := uc.videoRepo.ToggleFeatured(id); err != nil {
		return nil, fmt.Errorf("failed to toggle featured: %w", err)
	}

	video.Featured = !video.Featured
	return video, nil
}

func (uc *videoUseCase) ToggleDisabled(id string) (*entity.Video, error) {
	video, err := uc.videoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := uc.videoRepo.ToggleDisabled(id); err != nil {
		return nil, fmt.Errorf("failed to toggle disabled: %w", err)
	}

	video.Disabled = !video.Disabled
	return video, nil
}

func (uc *videoUseCase) uploadFile(file *multipart.FileHeader, prefix, defaultContentType string) (string, error) {
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

func (uc *videoUseCase) deleteBlob(url string) {
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
