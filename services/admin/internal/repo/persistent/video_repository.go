package persistent

import (
	"time"

	"storysprout/services/admin/internal/entity"
	"storysprout/services/admin/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VideoRepository interface {
	Create(video *entity.Video) error
	GetByID(id string) (*entity.Video, error)
	List(limit, offset int) ([]*entity.Video, error)
	Update(video *entity.Video) error
	Delete(id string) error
	ToggleFeatured(id string) error
	ToggleDisabled(id string) error
	Count() (int64, error)
	CountDisabled() (int64, error)
	CountFeatured() (int64, error)
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(video *entity.Video) error {
	videoModel := ToVideoModel(video)
	if videoModel.ID == "" {
		videoModel.ID = uuid.New().String()
	}

	if err := r.db.Create(videoModel).Error; err != nil {
		return err
	}

	*video = *ToVideoEntity(videoModel)
	return nil
}

func (r *videoRepository) GetByID(id string) (*entity.Video, error) {
	var videoModel model.VideoModel
	if err := r.db.Where("id = ?", id).First(&videoModel).Error; err != nil {
		return nil, err
	}
	return ToVideoEntity(&videoModel), nil
}

func (r *videoRepository) List(limit, offset int) ([]*entity.Video, error) {
	var videoModels []model.VideoModel
	query := r.db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&videoModels).Error; err != nil {
		return nil, err
	}

	videos := make([]*entity.Video, len(videoModels))
	for i := range videoModels {
		videos[i] = ToVideoEntity(&videoModels[i])
	}
	return videos, nil
}

func (r *videoRepository) Update(video *entity.Video) error {
	return r.db.Save(ToVideoModel(video)).Error
}

func (r *videoRepository) Delete(id string) error {
	return r.db.Delete(&model.VideoModel{}, "id = ?", id).Error
}

func (r *videoRepository) ToggleFeatured(id string) error {
	return r.db.Model(&model.VideoModel{}).Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"featured":   gorm.Expr("NOT featured"),
			"updated_at": time.Now(),
		}).Error
}

func (r *videoRepository) ToggleDisabled(id string) error {
	return r.db.Model(&model.VideoModel{}).Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"disabled":   gorm.Expr("NOT disabled"),
			"updated_at": time.Now(),
		}).Error
}

func (r *videoRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.VideoModel{}).Count(&count).Error
	return count, err
}

func (r *videoRepository) CountDisabled() (int64, error) {
	var count int64
	err := r.db.Model(&model.VideoModel{}).Where("disabled = ?", true).Count(&count).Error
	return count, err
}

func (r *videoRepository) CountFeatured() (int64, error) {
	var count int64
	err := r.db.Model(&model.VideoModel{}).Where("featured = ?", true).Count(&count).Error
	return count, err
}
