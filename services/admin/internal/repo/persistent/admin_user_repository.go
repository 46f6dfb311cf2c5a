package persistent

import (
	"time"

	"storysprout/services/admin/internal/entity"
	"storysprout/services/admin/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminUserRepository interface {
	Create(user *entity.AdminUser) error
	GetByID(id string) (*entity.AdminUser, error)
	GetByUsername(username string) (*entity.AdminUser, error)
	UpdatePassword(userID, passwordHash string) error
	ListRecoveryAnswers(userID string) ([]*entity.RecoveryAnswer, error)
	ListPasswordHistory(userID string) ([]*entity.PasswordHistoryEntry, error)
	AddPasswordHistory(userID, passwordHash string) error
	TrimPasswordHistory(userID string, keep int) error
}

type adminUserRepository struct {
	db *gorm.DB
}

func NewAdminUserRepository(db *gorm.DB) AdminUserRepository {
	return &adminUserRepository{db: db}
}

func (r *adminUserRepository) Create(user *entity.AdminUser) error {
	userModel := ToAdminUserModel(user)
	if userModel.ID == "" {
		userModel.ID = uuid.New().String()
	}

	if err := r.db.Create(userModel).Error; err != nil {
		return err
	}

	*user = *ToAdminUserEntity(userModel)
	return nil
}

func (r *adminUserRepository) GetByID(id string) (*entity.AdminUser, error) {
	var userModel model.AdminUserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToAdminUserEntity(&userModel), nil
}

func (r *adminUserRepository) GetByUsername(username string) (*entity.AdminUser, error) {
	var userModel model.AdminUserModel
	if err := r.db.Where("username = ?", username).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToAdminUserEntity(&userModel), nil
}

func (r *adminUserRepository) UpdatePassword(userID, passwordHash string) error {
	return r.db.Model(&model.AdminUserModel{}).Where("id = ?", userID).
		UpdateColumns(map[string]interface{}{
			"password_hash": passwordHash,
			"updated_at":    time.Now(),
		}).Error
}

func (r *adminUserRepository) ListRecoveryAnswers(userID string) ([]*entity.RecoveryAnswer, error) {
	var answerModels []model.RecoveryAnswerModel
	if err := r.db.Where("user_id = ?", userID).Order("position ASC").Find(&answerModels).Error; err != nil {
		return nil, err
	}

	answers := make([]*entity.RecoveryAnswer, len(answerModels))
	for i := range answerModels {
		answers[i] = ToRecoveryAnswerEntity(&answerModels[i])
	}
	return answers, nil
}

func (r *adminUserRepository) ListPasswordHistory(userID string) ([]*entity.PasswordHistoryEntry, error) {
	var historyModels []model.PasswordHistoryModel
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&historyModels).Error; err != nil {
		return nil, err
	}

	entries := make([]*entity.PasswordHistoryEntry, len(historyModels))
	for i := range historyModels {
		entries[i] = ToPasswordHistoryEntity(&historyModels[i])
	}
	return entries, nil
}

func (r *adminUserRepository) AddPasswordHistory(userID, passwordHash string) error {
	entry := &model.PasswordHistoryModel{
		ID:           uuid.New().String(),
		UserID:       userID,
		PasswordHash: passwordHash,
	}
	return r.db.Create(entry).Error
}

// TrimPasswordHistory drops everything but the `keep` most recent entries.
func (r *adminUserRepository) TrimPasswordHistory(userID string, keep int) error {
	subQuery := r.db.Model(&model.PasswordHistoryModel{}).
		Select("id").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(keep)

	return r.db.Where("user_id = ? AND id NOT IN (?)", userID, subQuery).
		Delete(&model.PasswordHistoryModel{}).Error
}
