package persistent

import (
	"storysprout/services/catalog/internal/entity"
	"storysprout/services/catalog/internal/model"

	"gorm.io/gorm"
)

type StoryRepository interface {
	List() ([]*entity.Story, error)
	GetByID(id string) (*entity.Story, error)
}

type storyRepository struct {
	db *gorm.DB
}

func NewStoryRepository(db *gorm.DB) StoryRepository {
	return &storyRepository{db: db}
}

func (r *storyRepository) List() ([]*entity.Story, error) {
	var storyModels []model.StoryModel
	if err := r.db.Order("created_at DESC").Find(&storyModels).Error; err != nil {
		return nil, err
	}

	stories := make([]*entity.Story, len(storyModels))
	for i := range storyModels {
		stories[i] = ToStoryEntity(&storyModels[i])
	}
	return stories, nil
}

func (r *storyRepository) GetByID(id string) (*entity.Story, error) {
	var storyModel model.StoryModel
	if err := r.db.Where("id = ?", id).First(&storyModel).Error; err != nil {
		return nil, err
	}
	return ToStoryEntity(&storyModel), nil
}
