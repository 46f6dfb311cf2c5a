package entity

import "time"

const (
	AgeGroup0to3  = "0-3"
	AgeGroup3to6  = "3-6"
	AgeGroup6to9  = "6-9"
	AgeGroup9to12 = "9-12"
)

var AgeGroups = []string{AgeGroup0to3, AgeGroup3to6, AgeGroup6to9, AgeGroup9to12}

var ProgrammingLanguages = []string{"scratch", "html", "css", "javascript", "python"}

func IsValidAgeGroup(ageGroup string) bool {
	for _, g := range AgeGroups {
		if g == ageGroup {
			return true
		}
	}
	return false
}

func IsValidProgrammingLanguage(language string) bool {
	for _, l := range ProgrammingLanguages {
		if l == language {
			return true
		}
	}
	return false
}

type Translation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Story struct {
	ID                  string                 `json:"id"`
	Title               string                 `json:"title"`
	Description         string                 `json:"description"`
	AgeGroup            string                 `json:"age_group"`
	ImageURL            string                 `json:"image_url"`
	Language            string                 `json:"language"`
	Translations        map[string]Translation `json:"translations,omitempty"`
	Featured            bool                   `json:"featured"`
	Disabled            bool                   `json:"disabled"`
	IsAdminPost         bool                   `json:"is_admin_post"`
	IsCodeStory         bool                   `json:"is_code_story"`
	ProgrammingLanguage string                 `json:"programming_language,omitempty"`
	CreatedAt           time.Time              `json:"created_at"`
	UpdatedAt           time.Time              `json:"updated_at"`
}

type Video struct {
	ID                  string    `json:"id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	AgeGroup            string    `json:"age_group"`
	ThumbnailURL        string    `json:"thumbnail_url"`
	VideoURL            string    `json:"video_url"`
	Language            string    `json:"language"`
	Featured            bool      `json:"featured"`
	Disabled            bool      `json:"disabled"`
	IsAdminPost         bool      `json:"is_admin_post"`
	IsCodeVideo         bool      `json:"is_code_video"`
	ProgrammingLanguage string    `json:"programming_language,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
