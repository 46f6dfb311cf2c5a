package persistent

import (
	"time"

	"storysprout/services/admin/internal/entity"
	"storysprout/services/admin/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminPostRepository interface {
	Create(post *entity.AdminPost) error
	GetByID(id string) (*entity.AdminPost, error)
	List(limit, offset int) ([]*entity.AdminPost, error)
	Update(post *entity.AdminPost) error
	Delete(id string) error
	ToggleFeatured(id string) error
	ToggleDisabled(id string) error
	Count() (int64, error)
}

type adminPostRepository struct {
	db *gorm.DB
}

func NewAdminPostRepository(db *gorm.DB) AdminPostRepository {
	return &adminPostRepository{db: db}
}

func (r *adminPostRepository) Create(post *entity.AdminPost) error {
	postModel := ToAdminPostModel(post)
	if postModel.ID == "" {
		postModel.ID = uuid.New().String()
	}

	if err := r.db.Create(postModel).Error; err != nil {
		return err
	}

	*post = *ToAdminPostEntity(postModel)
	return nil
}

func (r *adminPostRepository) GetByID(id string) (*entity.AdminPost, error) {
	var postModel model.AdminPostModel
	if err := r.db.Where("id = ?", id).First(&postModel).Error; err != nil {
		return nil, err
	}
	return ToAdminPostEntity(&postModel), nil
}

func (r *adminPostRepository) List(limit, offset int) ([]*entity.AdminPost, error) {
	var postModels []model.AdminPostModel
	query := r.db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&postModels).Error; err != nil {
		return nil, err
	}

	posts := make([]*entity.AdminPost, len(postModels))
	for i := range postModels {
		posts[i] = ToAdminPostEntity(&postModels[i])
	}
	return posts, nil
}

func (r *adminPostRepository) Update(post *entity.AdminPost) error {
	return r.db.Save(ToAdminPostModel(post)).Error
}

func (r *adminPostRepository) Delete(id string) error {
	return r.db.Delete(&model.AdminPostModel{}, "id = ?", id).Error
}

func (r *adminPostRepository) ToggleFeatured(id string) error {
	return r.db.Model(&model.AdminPostModel{}).Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"featured":   gorm.Expr("NOT featured"),
			"updated_at": time.Now(),
		}).Error
}

func (r *adminPostRepository) ToggleDisabled(id string) error {
	return r.db.Model(&model.AdminPostModel{}).Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"disabled":   gorm.Expr("NOT disabled"),
			"updated_at": time.Now(),
		}).Error
}

func (r *adminPostRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.AdminPostModel{}).Count(&count).Error
	return count, err
}
