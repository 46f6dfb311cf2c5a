package persistent

import (
	"time"

	"storysprout/services/admin/internal/entity"
	"storysprout/services/admin/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TrendingTotals struct {
	Views int64
	Likes int64
}

type TrendingRepository interface {
	Create(item *entity.TrendingStory) error
	GetByID(id string) (*entity.TrendingStory, error)
	List(limit, offset int) ([]*entity.TrendingStory, error)
	Update(item *entity.TrendingStory) error
	Delete(id string) error
	ToggleActive(id string) error
	Count() (int64, error)
	CountActive() (int64, error)
	Totals() (*TrendingTotals, error)
}

type trendingRepository struct {
	db *gorm.DB
}

func NewTrendingRepository(db *gorm.DB) TrendingRepository {
	return &trendingRepository{db: db}
}

func (r *trendingRepository) Create(item *entity.TrendingStory) error {
	trendingModel := ToTrendingModel(item)
	if trendingModel.ID == "" {
		trendingModel.ID = uuid.New().String()
	}

	if err := r.db.Create(trendingModel).Error; err != nil {
		return err
	}

	*item = *ToTrendingEntity(trendingModel)
	return nil
}

func (r *trendingRepository) GetByID(id string) (*entity.TrendingStory, error) {
	var trendingModel model.TrendingStoryModel
	if err := r.db.Where("id = ?", id).First(&trendingModel).Error; err != nil {
		return nil, err
	}
	return ToTrendingEntity(&trendingModel), nil
}

func (r *trendingRepository) List(limit, offset int) ([]*entity.TrendingStory, error) {
	var trendingModels []model.TrendingStoryModel
	query := r.db.Order("priority DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&trendingModels).Error; err != nil {
		return nil, err
	}

	items := make([]*entity.TrendingStory, len(trendingModels))
	for i := range trendingModels {
		items[i] = ToTrendingEntity(&trendingModels[i])
	}
	return items, nil
}

func (r *trendingRepository) Update(item *entity.TrendingStory) error {
	return r.db.Save(ToTrendingModel(item)).Error
}

func (r *trendingRepository) Delete(id string) error {
	return r.db.Delete(&model.TrendingStoryModel{}, "id = ?", id).Error
}

func (r *trendingRepository) ToggleActive(id string) error {
	return r.db.Model(&model.TrendingStoryModel{}).Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"is_active":  gorm.Expr("NOT is_active"),
			"updated_at": time.Now(),
		}).Error
}

func (r *trendingRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.TrendingStoryModel{}).Count(&count).Error
	return count, err
}

func (r *trendingRepository) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&model.TrendingStoryModel{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

func (r *trendingRepository) Totals() (*TrendingTotals, error) {
	var totals TrendingTotals
	err := r.db.Model(&model.TrendingStoryModel{}).
		Select("COALESCE(SUM(views), 0) as views, COALESCE(SUM(likes), 0) as likes").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return &totals, nil
}
