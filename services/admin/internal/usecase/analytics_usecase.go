package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"storysprout/pkg/logger"
	"storysprout/services/admin/internal/repo/persistent"

	"github.com/redis/go-redis/v9"
)

const (
	dashboardStatsCacheKey = "analytics:dashboard"
	dashboardStatsCacheTTL = 30 * time.Second
)

type ContentStats struct {
	Total    int64 `json:"total"`
	Disabled int64 `json:"disabled"`
	Featured int64 `json:"featured"`
}

type TrendingStats struct {
	Total      int64 `json:"total"`
	Active     int64 `json:"active"`
	TotalViews int64 `json:"total_views"`
	TotalLikes int64 `json:"total_likes"`
}

// DashboardStats is the aggregate snapshot shown on the dashboard home.
type DashboardStats struct {
	Stories      ContentStats     `json:"stories"`
	Videos       ContentStats     `json:"videos"`
	Trending     TrendingStats    `json:"trending"`
	Posts        int64            `json:"posts"`
	StoriesByAge map[string]int64 `json:"stories_by_age_group"`
	GeneratedAt  time.Time        `json:"generated_at"`
}

type AnalyticsUseCase interface {
	GetDashboardStats() (*DashboardStats, error)
}

type analyticsUseCase struct {
	storyRepo    persistent.StoryRepository
	videoRepo    persistent.VideoRepository
	trendingRepo persistent.TrendingRepository
	postRepo     persistent.AdminPostRepository
	redisClient  *redis.Client
	logger       *logger.Logger
}

func NewAnalyticsUseCase(
	storyRepo persistent.StoryRepository,
	videoRepo persistent.VideoRepository,
	trendingRepo persistent.TrendingRepository,
	postRepo persistent.AdminPostRepository,
	redisClient *redis.Client,
	logger *logger.Logger,
) AnalyticsUseCase {
	return &analyticsUseCase{
		storyRepo:    storyRepo,
		videoRepo:    videoRepo,
		trendingRepo: trendingRepo,
		postRepo:     postRepo,
		redisClient:  redisClient,
		logger:       logger,
	}
}

// GetDashboardStats aggregates counts across the whole store. The result is
// cached briefly since the dashboard polls it and exact freshness does not
// matter.
func (uc *analyticsUseCase) GetDashboardStats() (*DashboardStats, error) {
	if cached := uc.getCachedStats(); cached != nil {
		return cached, nil
	}

	stats := &DashboardStats{GeneratedAt: time.Now().UTC()}

	var err error
	if stats.Stories, err = uc.storyStats(); err != nil {
		return nil, err
	}
	if stats.Videos, err = uc.videoStats(); err != nil {
		return nil, err
	}
	if stats.Trending, err = uc.trendingStats(); err != nil {
		return nil, err
	}
	if stats.Posts, err = uc.postRepo.Count(); err != nil {
		return nil, fmt.Errorf("failed to count posts: %w", err)
	}

	byAge, err := uc.storyRepo.CountByAgeGroup()
	if err != nil {
		return nil, fmt.Errorf("failed to count stories by age group: %w", err)
	}
	stats.StoriesByAge = make(map[string]int64, len(byAge))
	for _, row := range byAge {
		stats.StoriesByAge[row.AgeGroup] = row.Count
	}

	uc.cacheStats(stats)
	return stats, nil
}

func (uc *analyticsUseCase) storyStats() (ContentStats, error) {
	var stats ContentStats
	var err error

	if stats.Total, err = uc.storyRepo.Count(); err != nil {
		return stats, fmt.Errorf("failed to count stories: %w", err)
	}
	if stats.Disabled, err = uc.storyRepo.CountDisabled(); err != nil {
		return stats, fmt.Errorf("failed to count disabled stories: %w", err)
	}
	if stats.Featured, err = uc.storyRepo.CountFeatured(); err != nil {
		return stats, fmt.Errorf("failed to count featured stories: %w", err)
	}
	return stats, nil
}

func (uc *analyticsUseCase) videoStats() (ContentStats, error) {
	var stats ContentStats
	var err error

	if stats.Total, err = uc.videoRepo.Count(); err != nil {
		return stats, fmt.Errorf("failed to count videos: %w", err)
	}
	if stats.Disabled, err = uc.videoRepo.CountDisabled(); err != nil {
		return stats, fmt.Errorf("failed to count disabled videos: %w", err)
	}
	if stats.Featured, err = uc.videoRepo.CountFeatured(); err != nil {
		return stats, fmt.Errorf("failed to count featured videos: %w", err)
	}
	return stats, nil
}

func (uc *analyticsUseCase) trendingStats() (TrendingStats, error) {
	var stats TrendingStats
	var err error

	if stats.Total, err = uc.trendingRepo.Count(); err != nil {
		return stats, fmt.Errorf("failed to count trending items: %w", err)
	}
	if stats.Active, err = uc.trendingRepo.CountActive(); err != nil {
		return stats, fmt.Errorf("failed to count active trending items: %w", err)
	}

	totals, err := uc.trendingRepo.Totals()
	if err != nil {
		return stats, fmt.Errorf("failed to sum trending totals: %w", err)
	}
	stats.TotalViews = totals.Views
	stats.TotalLikes = totals.Likes
	return stats, nil
}

func (uc *analyticsUseCase) getCachedStats() *DashboardStats {
	if uc.redisClient == nil {
		return nil
	}

	ctx := context.Background()
	cached, err := uc.redisClient.Get(ctx, dashboardStatsCacheKey).Result()
	if err != nil {
		return nil
	}

	var stats DashboardStats
	if err := json.Unmarshal([]byte(cached), &stats); err != nil {
		return nil
	}
	return &stats
}

func (uc *analyticsUseCase) cacheStats(stats *DashboardStats) {
	if uc.redisClient == nil {
		return
	}

	data, err := json.Marshal(stats)
	if err != nil {
		return
	}

	ctx := context.Background()
	if err := uc.redisClient.Set(ctx, dashboardStatsCacheKey, data, dashboardStatsCacheTTL).Err(); err != nil {
		uc.logger.Warn("Failed to cache dashboard stats: %v", err)
	}
}
