package persistent

import (
	"storysprout/services/catalog/internal/entity"
	"storysprout/services/catalog/internal/model"

	"gorm.io/gorm"
)

type VideoRepository interface {
	List() ([]*entity.Video, error)
	GetByID(id string) (*entity.Video, error)
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) List() ([]*entity.Video, error) {
	var videoModels []model.VideoModel
	if err := r.db.Order("created_at DESC").Find(&videoModels).Error; err != nil {
		return nil, err
	}

	videos := make([]*entity.Video, len(videoModels))
	for i := range videoModels {
		videos[i] = ToVideoEntity(&videoModels[i])
	}
	return videos, nil
}

func (r *videoRepository) GetByID(id string) (*entity.Video, error) {
	var videoModel model.VideoModel
	if err := r.db.Where("id = ?", id).First(&videoModel).Error; err != nil {
		return nil, err
	}
	return ToVideoEntity(&videoModel), nil
}
