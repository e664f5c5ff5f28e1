package service

import (
	"context"
	"strings"
	"time"

	"github.com/f-r00t/hugin-api/internal/cache"
	"github.com/f-r00t/hugin-api/internal/models"
	"github.com/f-r00t/hugin-api/internal/observability"
	"github.com/f-r00t/hugin-api/internal/paging"
	"github.com/f-r00t/hugin-api/internal/repository"
)

// StatisticsService serves the popularity rankings. Pages are cached behind a
// short TTL: rankings aggregate the whole table and tolerate mild staleness.
type StatisticsService struct {
	postRepo repository.PostRepository
}

func NewStatisticsService(postRepo repository.PostRepository) *StatisticsService {
	return &StatisticsService{postRepo: postRepo}
}

// PopularPosts ranks posts by how many replies point at them.
func (s *StatisticsService) PopularPosts(ctx context.Context, page, size int, order string) (*models.Page[models.PopularityEntry], error) {
	limit, offset := paging.GetPagination(page, size)
	order = normalizeOrder(order)

	var result models.Page[models.PopularityEntry]
	err := cache.Aside(ctx, cache.PopularPostsKey(order, limit, offset), &result, cache.PopularityTTL, func() error {
		start := time.Now()
		entries, total, err := s.postRepo.PopularPosts(ctx, order, limit, offset)
		observability.PopularityQueryDuration.WithLabelValues("posts").Observe(time.Since(start).Seconds())
		if err != nil {
			return err
		}
		result = paging.NewPage(entries, total, pageOrZero(page), limit)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// PopularBoards ranks boards by post volume.
func (s *StatisticsService) PopularBoards(ctx context.Context, page, size int, order string) (*models.Page[models.PopularityEntry], error) {
	limit, offset := paging.GetPagination(page, size)
	order = normalizeOrder(order)

	var result models.Page[models.PopularityEntry]
	err := cache.Aside(ctx, cache.PopularBoardsKey(order, limit, offset), &result, cache.PopularityTTL, func() error {
		start := time.Now()
		entries, total, err := s.postRepo.PopularBoards(ctx, order, limit, offset)
		observability.PopularityQueryDuration.WithLabelValues("boards").Observe(time.Since(start).Seconds())
		if err != nil {
			return err
		}
		result = paging.NewPage(entries, total, pageOrZero(page), limit)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// normalizeOrder collapses the order token so cache keys do not fragment
// across casings of the same direction.
func normalizeOrder(order string) string {
	if strings.EqualFold(order, "asc") {
		return "asc"
	}
	return "desc"
}

func pageOrZero(page int) int {
	if page < 0 {
		return 0
	}
	return page
}
