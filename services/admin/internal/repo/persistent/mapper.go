package persistent

import (
	"storysprout/services/admin/internal/entity"
	"storysprout/services/admin/internal/model"
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

func ToStoryModel(e *entity.Story) *model.StoryModel {
	if e == nil {
		return nil
	}

	storyModel := &model.StoryModel{
		ID:                  e.ID,
		Title:               e.Title,
		Description:         e.Description,
		AgeGroup:            e.AgeGroup,
		ImageURL:            e.ImageURL,
		Language:            e.Language,
		Featured:            e.Featured,
		Disabled:            e.Disabled,
		IsAdminPost:         e.IsAdminPost,
		IsCodeStory:         e.IsCodeStory,
		ProgrammingLanguage: e.ProgrammingLanguage,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}

	if len(e.Translations) > 0 {
		storyModel.Translations = make(model.TranslationsMap, len(e.Translations))
		for lang, tr := range e.Translations {
			storyModel.Translations[lang] = model.TranslationEntry{
				Title:       tr.Title,
				Description: tr.Description,
			}
		}
	}

	return storyModel
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

func ToVideoModel(e *entity.Video) *model.VideoModel {
	if e == nil {
		return nil
	}

	return &model.VideoModel{
		ID:                  e.ID,
		Title:               e.Title,
		Description:         e.Description,
		AgeGroup:            e.AgeGroup,
		ThumbnailURL:        e.ThumbnailURL,
		VideoURL:            e.VideoURL,
		Language:            e.Language,
		Featured:            e.Featured,
		Disabled:            e.Disabled,
		IsAdminPost:         e.IsAdminPost,
		IsCodeVideo:         e.IsCodeVideo,
		ProgrammingLanguage: e.ProgrammingLanguage,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
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

func ToTrendingModel(e *entity.TrendingStory) *model.TrendingStoryModel {
	if e == nil {
		return nil
	}

	return &model.TrendingStoryModel{
		ID:          e.ID,
		StoryID:     e.StoryID,
		Title:       e.Title,
		Description: e.Description,
		ImageURL:    e.ImageURL,
		AgeGroup:    e.AgeGroup,
		Categories:  model.CategoryList(e.Categories),
		Views:       e.Views,
		Likes:       e.Likes,
		Priority:    e.Priority,
		IsActive:    e.IsActive,
		IsAdminPost: e.IsAdminPost,
		Language:    e.Language,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
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

func ToAdminPostModel(e *entity.AdminPost) *model.AdminPostModel {
	if e == nil {
		return nil
	}

	return &model.AdminPostModel{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Link:        e.Link,
		Kind:        string(e.Kind),
		AgeGroup:    e.AgeGroup,
		Language:    e.Language,
		ImageURL:    e.ImageURL,
		Featured:    e.Featured,
		Disabled:    e.Disabled,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToAdminUserEntity(m *model.AdminUserModel) *entity.AdminUser {
	if m == nil {
		return nil
	}

	return &entity.AdminUser{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Role:         entity.Role(m.Role),
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToAdminUserModel(e *entity.AdminUser) *model.AdminUserModel {
	if e == nil {
		return nil
	}

	return &model.AdminUserModel{
		ID:           e.ID,
		Username:     e.Username,
		PasswordHash: e.PasswordHash,
		Role:         string(e.Role),
		IsActive:     e.IsActive,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToRecoveryAnswerEntity(m *model.RecoveryAnswerModel) *entity.RecoveryAnswer {
	if m == nil {
		return nil
	}

	return &entity.RecoveryAnswer{
		ID:         m.ID,
		UserID:     m.UserID,
		Question:   m.Question,
		AnswerHash: m.AnswerHash,
		Position:   m.Position,
		CreatedAt:  m.CreatedAt,
	}
}

func ToPasswordHistoryEntity(m *model.PasswordHistoryModel) *entity.PasswordHistoryEntry {
	if m == nil {
		return nil
	}

	return &entity.PasswordHistoryEntry{
		ID:           m.ID,
		UserID:       m.UserID,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}
}
