package usecase

import (
	"sort"

	"storysprout/services/catalog/internal/entity"
)

// Pure list-shaping helpers for the catalog listings. Everything here
// operates on already-fetched slices; the store is never touched.

// filterStories keeps age-appropriate, enabled, non-code stories.
// Age matching is exact: an empty ageGroup means no filter.
func filterStories(stories []*entity.Story, ageGroup string) []*entity.Story {
	result := make([]*entity.Story, 0, len(stories))
	for _, s := range stories {
		if s == nil || s.Disabled || s.IsCodeStory {
			continue
		}
		if ageGroup != "" && s.AgeGroup != ageGroup {
			continue
		}
		result = append(result, s)
	}
	return result
}

func filterVideos(videos []*entity.Video, ageGroup string) []*entity.Video {
	result := make([]*entity.Video, 0, len(videos))
	for _, v := range videos {
		if v == nil || v.Disabled || v.IsCodeVideo {
			continue
		}
		if ageGroup != "" && v.AgeGroup != ageGroup {
			continue
		}
		result = append(result, v)
	}
	return result
}

// filterCodeStories is the separate code-content path: only code stories,
// optionally narrowed to one programming language.
func filterCodeStories(stories []*entity.Story, programmingLanguage string) []*entity.Story {
	result := make([]*entity.Story, 0, len(stories))
	for _, s := range stories {
		if s == nil || s.Disabled || !s.IsCodeStory {
			continue
		}
		if programmingLanguage != "" && s.ProgrammingLanguage != programmingLanguage {
			continue
		}
		result = append(result, s)
	}
	return result
}

func filterCodeVideos(videos []*entity.Video, programmingLanguage string) []*entity.Video {
	result := make([]*entity.Video, 0, len(videos))
	for _, v := range videos {
		if v == nil || v.Disabled || !v.IsCodeVideo {
			continue
		}
		if programmingLanguage != "" && v.ProgrammingLanguage != programmingLanguage {
			continue
		}
		result = append(result, v)
	}
	return result
}

// storyFromAdminPost renames/defaults an admin post into the story shape so
// the merged listing is homogeneous.
func storyFromAdminPost(post *entity.AdminPost) *entity.Story {
	return &entity.Story{
		ID:          post.ID,
		Title:       post.Title,
		Description: post.Description,
		AgeGroup:    post.AgeGroup,
		ImageURL:    post.ImageURL,
		Language:    post.Language,
		Featured:    post.Featured,
		Disabled:    post.Disabled,
		IsAdminPost: true,
		CreatedAt:   post.CreatedAt,
		UpdatedAt:   post.UpdatedAt,
	}
}

func videoFromAdminPost(post *entity.AdminPost) *entity.Video {
	return &entity.Video{
		ID:           post.ID,
		Title:        post.Title,
		Description:  post.Description,
		AgeGroup:     post.AgeGroup,
		ThumbnailURL: post.ImageURL,
		VideoURL:     post.Link,
		Language:     post.Language,
		Featured:     post.Featured,
		Disabled:     post.Disabled,
		IsAdminPost:  true,
		CreatedAt:    post.CreatedAt,
		UpdatedAt:    post.UpdatedAt,
	}
}

// sortStories orders featured items first, then newest first. The sort is
// stable so items without distinguishing keys keep their fetch order.
func sortStories(stories []*entity.Story) {
	sort.SliceStable(stories, func(i, j int) bool {
		if stories[i].Featured != stories[j].Featured {
			return stories[i].Featured
		}
		return stories[i].CreatedAt.After(stories[j].CreatedAt)
	})
}

func sortVideos(videos []*entity.Video) {
	sort.SliceStable(videos, func(i, j int) bool {
		if videos[i].Featured != videos[j].Featured {
			return videos[i].Featured
		}
		return videos[i].CreatedAt.After(videos[j].CreatedAt)
	})
}

// sortTrending applies the three-level tie-break chain: priority desc,
// then views desc, then createdAt desc. Each level only applies when the
// prior level is equal.
func sortTrending(items []*entity.TrendingStory) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Priority != items[j].Priority {
			return items[i].Priority > items[j].Priority
		}
		if items[i].Views != items[j].Views {
			return items[i].Views > items[j].Views
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}

func filterActiveTrending(items []*entity.TrendingStory) []*entity.TrendingStory {
	result := make([]*entity.TrendingStory, 0, len(items))
	for _, item := range items {
		if item != nil && item.IsActive {
			result = append(result, item)
		}
	}
	return result
}

func limitStories(stories []*entity.Story, limit int) []*entity.Story {
	if limit > 0 && len(stories) > limit {
		return stories[:limit]
	}
	return stories
}

func limitVideos(videos []*entity.Video, limit int) []*entity.Video {
	if limit > 0 && len(videos) > limit {
		return videos[:limit]
	}
	return videos
}

func limitTrending(items []*entity.TrendingStory, limit int) []*entity.TrendingStory {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
