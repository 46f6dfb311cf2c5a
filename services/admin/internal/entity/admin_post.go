package entity

import "time"

type PostKind string

const (
	PostKindStory   PostKind = "story"
	PostKindVideo   PostKind = "video"
	PostKindGeneral PostKind = "general"
)

func IsValidPostKind(kind string) bool {
	switch PostKind(kind) {
	case PostKindStory, PostKindVideo, PostKindGeneral:
		return true
	}
	return false
}

type AdminPost struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Link        string    `json:"link,omitempty"`
	Kind        PostKind  `json:"kind"`
	AgeGroup    string    `json:"age_group"`
	Language    string    `json:"language"`
	ImageURL    string    `json:"image_url"`
	Featured    bool      `json:"featured"`
	Disabled    bool      `json:"disabled"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
