package usecase

import (
	"fmt"

	"storysprout/pkg/logger"
	"storysprout/services/admin/internal/entity"
	"storysprout/services/admin/internal/repo/persistent"
)

type CreateTrendingInput struct {
	StoryID     string
	Title       string
	Description string
	ImageURL    string
	AgeGroup    string
	Categories  []string
	// Category is the legacy single-value form still sent by older
	// dashboard builds. Folded into Categories when present.
	Category string
	Views    int
	Likes    int
	Priority int
	Language string
}

type UpdateTrendingInput struct {
	Title       *string
	Description *string
	ImageURL    *string
	AgeGroup    *string
	Categories  []string
	Views       *int
	Likes       *int
	Priority    *int
	Language    *string
}

type TrendingUseCase interface {
	CreateTrending(input CreateTrendingInput) (*entity.TrendingStory, error)
	GetTrending(id string) (*entity.TrendingStory, error)
	ListTrending(limit, offset int) ([]*entity.TrendingStory, error)
	UpdateTrending(id string, input UpdateTrendingInput) (*entity.TrendingStory, error)
	DeleteTrending(id string) error
	ToggleActive(id string) (*entity.TrendingStory, error)
}

type trendingUseCase struct {
	trendingRepo persistent.TrendingRepository
	logger       *logger.Logger
}

func NewTrendingUseCase(trendingRepo persistent.TrendingRepository, logger *logger.Logger) TrendingUseCase {
	return &trendingUseCase{
		trendingRepo: trendingRepo,
		logger:       logger,
	}
}

func (uc *trendingUseCase) CreateTrending(input CreateTrendingInput) (*entity.TrendingStory, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if input.AgeGroup != "" && !entity.IsValidAgeGroup(input.AgeGroup) {
		return nil, fmt.Errorf("invalid age group: %s", input.AgeGroup)
	}

	categories := input.Categories
	if len(categories) == 0 && input.Category != "" {
		categories = []string{input.Category}
	}

	item := &entity.TrendingStory{
		StoryID:     input.StoryID,
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		AgeGroup:    input.AgeGroup,
		Categories:  categories,
		Views:       input.Views,
		Likes:       input.Likes,
		Priority:    input.Priority,
		IsActive:    true,
		Language:    input.Language,
	}

	if err := uc.trendingRepo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create trending item: %w", err)
	}

	return item, nil
}

func (uc *trendingUseCase) GetTrending(id string) (*entity.TrendingStory, error) {
	return uc.trendingRepo.GetByID(id)
}

func (uc *trendingUseCase) ListTrending(limit, offset int) ([]*entity.TrendingStory, error) {
	return uc.trendingRepo.List(limit, offset)
}

func (uc *trendingUseCase) UpdateTrending(id string, input UpdateTrendingInput) (*entity.TrendingStory, error) {
	item, err := uc.trendingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		item.Title = *input.Title
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.ImageURL != nil {
		item.ImageURL = *input.ImageURL
	}
	if input.AgeGroup != nil {
		if *input.AgeGroup != "" && !entity.IsValidAgeGroup(*input.AgeGroup) {
			return nil, fmt.Errorf("invalid age group: %s", *input.AgeGroup)
		}
		item.AgeGroup = *input.AgeGroup
	}
	if input.Categories != nil {
		item.Categories = input.Categories
	}
	if input.Views != nil {
		item.Views = *input.Views
	}
	if input.Likes != nil {
		item.Likes = *input.Likes
	}
	if input.Priority != nil {
		item.Priority = *input.Priority
	}
	if input.Language != nil {
		item.Language = *input.Language
	}

	if err := uc.trendingRepo.Update(item); err != nil {
		return nil, fmt.Errorf("failed to update trending item: %w", err)
	}

	return item, nil
}

func (uc *trendingUseCase) DeleteTrending(id string) error {
	if _, err := uc.trendingRepo.GetByID(id); err != nil {
		return err
	}
	return uc.trendingRepo.Delete(id)
}

func (uc *trendingUseCase) ToggleActive(id string) (*entity.TrendingStory, error) {
	item, err := uc.trendingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := uc.trendingRepo.ToggleActive(id); err != nil {
		return nil, fmt.Errorf("failed to toggle active: %w", err)
	}

	item.IsActive = !item.IsActive
	return item, nil
}
