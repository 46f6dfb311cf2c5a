package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminPostModel struct {
	ID          string         `gorm:"type:uuid;primary_key" json:"id"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Link        string         `gorm:"type:varchar(500)" json:"link"`
	Kind        string         `gorm:"type:varchar(20);not null;index" json:"kind"`
	AgeGroup    string         `gorm:"type:varchar(10);index" json:"age_group"`
	Language    string         `gorm:"type:varchar(10);index" json:"language"`
	ImageURL    string         `gorm:"type:varchar(500)" json:"image_url"`
	Featured    bool           `gorm:"default:false" json:"featured"`
	Disabled    bool           `gorm:"default:false" json:"disabled"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (AdminPostModel) TableName() string {
	return "admin_posts"
}

func (p *AdminPostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
