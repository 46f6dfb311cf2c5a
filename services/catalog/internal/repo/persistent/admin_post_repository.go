package persistent

import (
	"storysprout/services/catalog/internal/entity"
	"storysprout/services/catalog/internal/model"

	"gorm.io/gorm"
)

type AdminPostRepository interface {
	ListByKindAndLanguage(kind entity.PostKind, language string) ([]*entity.AdminPost, error)
}

type adminPostRepository struct {
	db *gorm.DB
}

func NewAdminPostRepository(db *gorm.DB) AdminPostRepository {
	return &adminPostRepository{db: db}
}

func (r *adminPostRepository) ListByKindAndLanguage(kind entity.PostKind, language string) ([]*entity.AdminPost, error) {
	var postModels []model.AdminPostModel
	if err := r.db.Where("kind = ? AND language = ?", string(kind), language).Order("created_at DESC").Find(&postModels).Error; err != nil {
		return nil, err
	}

	posts := make([]*entity.AdminPost, len(postModels))
	for i := range postModels {
		posts[i] = ToAdminPostEntity(&postModels[i])
	}
	return posts, nil
}
