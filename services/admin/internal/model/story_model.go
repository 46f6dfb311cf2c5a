package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StoryModel struct {
	ID                  string          `gorm:"type:uuid;primary_key" json:"id"`
	Title               string          `gorm:"type:varchar(255);not null" json:"title"`
	Description         string          `gorm:"type:text" json:"description"`
	AgeGroup            string          `gorm:"type:varchar(10);index" json:"age_group"`
	ImageURL            string          `gorm:"type:varchar(500)" json:"image_url"`
	Language            string          `gorm:"type:varchar(10);index" json:"language"`
	Translations        TranslationsMap `gorm:"type:jsonb" json:"translations"`
	Featured            bool            `gorm:"default:false" json:"featured"`
	Disabled            bool            `gorm:"default:false;index" json:"disabled"`
	IsAdminPost         bool            `gorm:"default:false" json:"is_admin_post"`
	IsCodeStory         bool            `gorm:"default:false;index" json:"is_code_story"`
	ProgrammingLanguage string          `gorm:"type:varchar(20)" json:"programming_language"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
	DeletedAt           gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (StoryModel) TableName() string {
	return "stories"
}

func (s *StoryModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
