package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"storysprout/pkg/logger"
	"storysprout/services/catalog/internal/entity"
	"storysprout/services/catalog/internal/repo/persistent"

	"github.com/redis/go-redis/v9"
)

const trendingCacheTTL = 30 * time.Second

type CatalogUseCase interface {
	ListStories(ageGroup string, limit int, language string) ([]*entity.Story, error)
	ListVideos(ageGroup string, limit int, language string) ([]*entity.Video, error)
	ListCodeStories(programmingLanguage string, limit int) ([]*entity.Story, error)
	ListCodeVideos(programmingLanguage string, limit int) ([]*entity.Video, error)
	ListTrending(limit int, language string) ([]*entity.TrendingStory, error)
}

type catalogUseCase struct {
	storyRepo     persistent.StoryRepository
	videoRepo     persistent.VideoRepository
	trendingRepo  persistent.TrendingRepository
	adminPostRepo persistent.AdminPostRepository
	redisClient   *redis.Client
	logger        *logger.Logger
}

func NewCatalogUseCase(
	storyRepo persistent.StoryRepository,
	videoRepo persistent.VideoRepository,
	trendingRepo persistent.TrendingRepository,
	adminPostRepo persistent.AdminPostRepository,
	redisClient *redis.Client,
	logger *logger.Logger,
) CatalogUseCase {
	return &catalogUseCase{
		storyRepo:     storyRepo,
		videoRepo:     videoRepo,
		trendingRepo:  trendingRepo,
		adminPostRepo: adminPostRepo,
		redisClient:   redisClient,
		logger:        logger,
	}
}

// ListStories merges regular stories with dashboard-authored posts of kind
// "story" for the requested language, filters them to age-appropriate
// enabled items, and orders featured first, newest first.
func (uc *catalogUseCase) ListStories(ageGroup string, limit int, language string) ([]*entity.Story, error) {
	stories, err := uc.storyRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list stories: %w", err)
	}

	adminPosts, err := uc.adminPostRepo.ListByKindAndLanguage(entity.PostKindStory, language)
	if err != nil {
		return nil, fmt.Errorf("failed to list admin posts: %w", err)
	}

	merged := filterStories(stories, ageGroup)
	converted := make([]*entity.Story, 0, len(adminPosts))
	for _, post := range adminPosts {
		converted = append(converted, storyFromAdminPost(post))
	}
	merged = append(merged, filterStories(converted, ageGroup)...)

	sortStories(merged)
	return limitStories(merged, limit), nil
}

func (uc *catalogUseCase) ListVideos(ageGroup string, limit int, language string) ([]*entity.Video, error) {
	videos, err := uc.videoRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}

	adminPosts, err := uc.adminPostRepo.ListByKindAndLanguage(entity.PostKindVideo, language)
	if err != nil {
		return nil, fmt.Errorf("failed to list admin posts: %w", err)
	}

	merged := filterVideos(videos, ageGroup)
	converted := make([]*entity.Video, 0, len(adminPosts))
	for _, post := range adminPosts {
		converted = append(converted, videoFromAdminPost(post))
	}
	merged = append(merged, filterVideos(converted, ageGroup)...)

	sortVideos(merged)
	return limitVideos(merged, limit), nil
}

func (uc *catalogUseCase) ListCodeStories(programmingLanguage string, limit int) ([]*entity.Story, error) {
	stories, err := uc.storyRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list code stories: %w", err)
	}

	result := filterCodeStories(stories, programmingLanguage)
	sortStories(result)
	return limitStories(result, limit), nil
}

func (uc *catalogUseCase) ListCodeVideos(programmingLanguage string, limit int) ([]*entity.Video, error) {
	videos, err := uc.videoRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list code videos: %w", err)
	}

	result := filterCodeVideos(videos, programmingLanguage)
	sortVideos(result)
	return limitVideos(result, limit), nil
}

// ListTrending returns active trending entries ordered by priority, views,
// then recency. Results are cached briefly; staleness up to the TTL is
// tolerated. Age-group filtering, when a client wants it, happens at the
// HTTP layer, not here.
func (uc *catalogUseCase) ListTrending(limit int, language string) ([]*entity.TrendingStory, error) {
	cacheKey := fmt.Sprintf("trending:%s", language)
	if cached := uc.getCachedTrending(cacheKey); cached != nil {
		return limitTrending(cached, limit), nil
	}

	regular, err := uc.trendingRepo.ListRegular()
	if err != nil {
		return nil, fmt.Errorf("failed to list trending stories: %w", err)
	}

	adminSourced, err := uc.trendingRepo.ListAdminByLanguage(language)
	if err != nil {
		return nil, fmt.Errorf("failed to list admin trending stories: %w", err)
	}

	merged := append(regular, adminSourced...)
	merged = filterActiveTrending(merged)
	sortTrending(merged)

	uc.cacheTrending(cacheKey, merged)
	return limitTrending(merged, limit), nil
}

func (uc *catalogUseCase) getCachedTrending(key string) []*entity.TrendingStory {
	if uc.redisClient == nil {
		return nil
	}

	ctx := context.Background()
	cached, err := uc.redisClient.Get(ctx, key).Result()
	if err != nil {
		return nil
	}

	var items []*entity.TrendingStory
	if err := json.Unmarshal([]byte(cached), &items); err != nil {
		return nil
	}
	return items
}

func (uc *catalogUseCase) cacheTrending(key string, items []*entity.TrendingStory) {
	if uc.redisClient == nil {
		return
	}

	data, err := json.Marshal(items)
	if err != nil {
		return
	}

	ctx := context.Background()
	if err := uc.redisClient.Set(ctx, key, data, trendingCacheTTL).Err(); err != nil {
		uc.logger.Warn("Failed to cache trending list: %v", err)
	}
}
