package persistent

import (
	"storysprout/services/catalog/internal/entity"
	"storysprout/services/catalog/internal/model"

	"gorm.io/gorm"
)

type TrendingRepository interface {
	ListRegular() ([]*entity.TrendingStory, error)
	ListAdminByLanguage(language string) ([]*entity.TrendingStory, error)
}

type trendingRepository struct {
	db *gorm.DB
}

func NewTrendingRepository(db *gorm.DB) TrendingRepository {
	return &trendingRepository{db: db}
}

func (r *trendingRepository) ListRegular() ([]*entity.TrendingStory, error) {
	var trendingModels []model.TrendingStoryModel
	if err := r.db.Where("is_admin_post = ?", false).Order("priority DESC").Find(&trendingModels).Error; err != nil {
		return nil, err
	}
	return toTrendingEntities(trendingModels), nil
}

func (r *trendingRepository) ListAdminByLanguage(language string) ([]*entity.TrendingStory, error) {
	var trendingModels []model.TrendingStoryModel
	if err := r.db.Where("is_admin_post = ? AND language = ?", true, language).Order("priority DESC").Find(&trendingModels).Error; err != nil {
		return nil, err
	}
	return toTrendingEntities(trendingModels), nil
}

func toTrendingEntities(trendingModels []model.TrendingStoryModel) []*entity.TrendingStory {
	items := make([]*entity.TrendingStory, len(trendingModels))
	for i := range trendingModels {
		items[i] = ToTrendingEntity(&trendingModels[i])
	}
	return items
}
