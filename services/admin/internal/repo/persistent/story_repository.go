package persistent

import (
	"time"

	"storysprout/services/admin/internal/entity"
	"storysprout/services/admin/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AgeGroupCount struct {
	AgeGroup string
	Count    int64
}

type StoryRepository interface {
	Create(story *entity.Story) error
	GetByID(id string) (*entity.Story, error)
	List(limit, offset int) ([]*entity.Story, error)
	Update(story *entity.Story) error
	Delete(id string) error
	ToggleFeatured(id string) error
	ToggleDisabled(id string) error
	Count() (int64, error)
	CountDisabled() (int64, error)
	CountFeatured() (int64, error)
	CountByAgeGroup() ([]AgeGroupCount, error)
}

type storyRepository struct {
	db *gorm.DB
}

func NewStoryRepository(db *gorm.DB) StoryRepository {
	return &storyRepository{db: db}
}

func (r *storyRepository) Create(story *entity.Story) error {
	storyModel := ToStoryModel(story)
	if storyModel.ID == "" {
		storyModel.ID = uuid.New().String()
	}

	if err := r.db.Create(storyModel).Error; err != nil {
		return err
	}

	*story = *ToStoryEntity(storyModel)
	return nil
}

func (r *storyRepository) GetByID(id string) (*entity.Story, error) {
	var storyModel model.StoryModel
	if err := r.db.Where("id = ?", id).First(&storyModel).Error; err != nil {
		return nil, err
	}
	return ToStoryEntity(&storyModel), nil
}

func (r *storyRepository) List(limit, offset int) ([]*entity.Story, error) {
	var storyModels []model.StoryModel
	query := r.db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&storyModels).Error; err != nil {
		return nil, err
	}

	stories := make([]*entity.Story, len(storyModels))
	for i := range storyModels {
		stories[i] = ToStoryEntity(&storyModels[i])
	}
	return stories, nil
}

func (r *storyRepository) Update(story *entity.Story) error {
	return r.db.Save(ToStoryModel(story)).Error
}

func (r *storyRepository) Delete(id string) error {
	return r.db.Delete(&model.StoryModel{}, "id = ?", id).Error
}

// ToggleFeatured flips the flag in a single partial update. Last writer
// wins; there is no version check.
func (r *storyRepository) ToggleFeatured(id string) error {
	return r.db.Model(&model.StoryModel{}).Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"featured":   gorm.Expr("NOT featured"),
			"updated_at": time.Now(),
		}).Error
}

func (r *storyRepository) ToggleDisabled(id string) error {
	return r.db.Model(&model.StoryModel{}).Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"disabled":   gorm.Expr("NOT disabled"),
			"updated_at": time.Now(),
		}).Error
}

func (r *storyRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.StoryModel{}).Count(&count).Error
	return count, err
}

func (r *storyRepository) CountDisabled() (int64, error) {
	var count int64
	err := r.db.Model(&model.StoryModel{}).Where("disabled = ?", true).Count(&count).Error
	return count, err
}

func (r *storyRepository) CountFeatured() (int64, error) {
	var count int64
	err := r.db.Model(&model.StoryModel{}).Where("featured = ?", true).Count(&count).Error
	return count, err
}

func (r *storyRepository) CountByAgeGroup() ([]AgeGroupCount, error) {
	var rows []AgeGroupCount
	err := r.db.Model(&model.StoryModel{}).
		Select("age_group, COUNT(*) as count").
		Group("age_group").
		Scan(&rows).Error
	return rows, err
}
