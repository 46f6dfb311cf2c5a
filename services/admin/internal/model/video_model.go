package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VideoModel struct {
	ID                  string         `gorm:"type:uuid;primary_key" json:"id"`
	Title               string         `gorm:"type:varchar(255);not null" json:"title"`
	Description         string         `gorm:"type:text" json:"description"`
	AgeGroup            string         `gorm:"type:varchar(10);index" json:"age_group"`
	ThumbnailURL        string         `gorm:"type:varchar(500)" json:"thumbnail_url"`
	VideoURL            string         `gorm:"type:varchar(500)" json:"video_url"`
	Language            string         `gorm:"type:varchar(10);index" json:"language"`
	Featured            bool           `gorm:"default:false" json:"featured"`
	Disabled            bool           `gorm:"default:false;index" json:"disabled"`
	IsAdminPost         bool           `gorm:"default:false" json:"is_admin_post"`
	IsCodeVideo         bool           `gorm:"default:false;index" json:"is_code_video"`
	ProgrammingLanguage string         `gorm:"type:varchar(20)" json:"programming_language"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`
}

func (VideoModel) TableName() string {
	return "videos"
}

func (v *VideoModel) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}
