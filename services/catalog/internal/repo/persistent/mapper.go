package persistent

import (
	"storysprout/services/catalog/internal/entity"
	"storysprout/services/catalog/internal/model"
)

func ToStoryEntity(m *model.StoryModel) *entity.Story {
	if m == nil {
		return nil
	}

	story := &entity.Story{
		ID:                  m.ID,
		Title:               m.Title,
		Description:         m.Description,
		AgeGroup:            m.AgeGroup,
		ImageURL:            m.ImageURL,
		Language:            m.Language,
		Featured:            m.Featured,
		Disabled:            m.Disabled,
		IsAdminPost:         m.IsAdminPost,
		IsCodeStory:         m.IsCodeStory,
		ProgrammingLanguage: m.ProgrammingLanguage,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}

	if len(m.Translations) > 0 {
		story.Translations = make(map[string]entity.Translation, len(m.Translations))
		for lang, tr := range m.Translations {
			story.Translations[lang] = entity.Translation{
				Title:       tr.Title,
				Description: tr.Description,
			}
		}
	}

	return story
}

func ToVideoEntity(m *model.VideoModel) *entity.Video {
	if m == nil {
		return nil
	}

	return &entity.Video{
		ID:                  m.ID,
		Title:               m.Title,
		Description:         m.Description,
		AgeGroup:            m.AgeGroup,
		ThumbnailURL:        m.ThumbnailURL,
		VideoURL:            m.VideoURL,
		Language:            m.Language,
		Featured:            m.Featured,
		Disabled:            m.Disabled,
		IsAdminPost:         m.IsAdminPost,
		IsCodeVideo:         m.IsCodeVideo,
		ProgrammingLanguage: m.ProgrammingLanguage,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

func ToTrendingEntity(m *model.TrendingStoryModel) *entity.TrendingStory {
	if m == nil {
		return nil
	}

	return &entity.TrendingStory{
		ID:          m.ID,
		StoryID:     m.StoryID,
		Title:       m.Title,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		AgeGroup:    m.AgeGroup,
		Categories:  []string(m.Categories),
		Views:       m.Views,
		Likes:       m.Likes,
		Priority:    m.Priority,
		IsActive:    m.IsActive,
		IsAdminPost: m.IsAdminPost,
		Language:    m.Language,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToAdminPostEntity(m *model.AdminPostModel) *entity.AdminPost {
	if m == nil {
		return nil
	}

	return &entity.AdminPost{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Link:        m.Link,
		Kind:        entity.PostKind(m.Kind),
		AgeGroup:    m.AgeGroup,
		Language:    m.Language,
		ImageURL:    m.ImageURL,
		Featured:    m.Featured,
		Disabled:    m.Disabled,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
