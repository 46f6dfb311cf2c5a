package entity

import "time"

type TrendingStory struct {
	ID          string    `json:"id"`
	StoryID     string    `json:"story_id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	AgeGroup    string    `json:"age_group"`
	Categories  []string  `json:"categories"`
	Views       int       `json:"views"`
	Likes       int       `json:"likes"`
	Priority    int       `json:"priority"`
	IsActive    bool      `json:"is_active"`
	IsAdminPost bool      `json:"is_admin_post"`
	Language    string    `json:"language"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
