package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TrendingStoryModel struct {
	ID          string         `gorm:"type:uuid;primary_key" json:"id"`
	StoryID     string         `gorm:"type:uuid" json:"story_id"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	ImageURL    string         `gorm:"type:varchar(500)" json:"image_url"`
	AgeGroup    string         `gorm:"type:varchar(10);index" json:"age_group"`
	Categories  CategoryList   `gorm:"type:jsonb" json:"categories"`
	Views       int            `gorm:"default:0" json:"views"`
	Likes       int            `gorm:"default:0" json:"likes"`
	Priority    int            `gorm:"default:0;index" json:"priority"`
	IsActive    bool           `gorm:"default:true;index" json:"is_active"`
	IsAdminPost bool           `gorm:"default:false" json:"is_admin_post"`
	Language    string         `gorm:"type:varchar(10);index" json:"language"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (TrendingStoryModel) TableName() string {
	return "trending_stories"
}

func (ts *TrendingStoryModel) BeforeCreate(tx *gorm.DB) error {
	if ts.ID == "" {
		ts.ID = uuid.New().String()
	}
	return nil
}
