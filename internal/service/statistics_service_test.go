package service

import (
	"context"
	"errors"
	"testing"

	"github.com/f-r00t/hugin-api/internal/cache"
	"github.com/f-r00t/hugin-api/internal/models"
	"github.com/f-r00t/hugin-api/internal/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestStatisticsService_PopularPosts(t *testing.T) {
	repo := noopPostRepo()
	repo.popularPostsFn = func(_ context.Context, order string, limit, offset int) ([]models.PopularityEntry, int64, error) {
		assert.Equal(t, "desc", order)
		assert.Equal(t, 10, limit)
		assert.Equal(t, 0, offset)
		return []models.PopularityEntry{
			{Subject: "aaa", Count: 3},
			{Subject: "bbb", Count: 1},
		}, 2, nil
	}

	svc := NewStatisticsService(repo)
	page, err := svc.PopularPosts(context.Background(), 0, 0, "")

	require.NoError(t, err)
	assert.Equal(t, int64(2), page.TotalItems)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 0, page.CurrentPage)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "aaa", page.Items[0].Subject)
	assert.Equal(t, int64(3), page.Items[0].Count)
}

func TestStatisticsService_PopularPosts_StoreFailure(t *testing.T) {
	repo := noopPostRepo()
	repo.popularPostsFn = func(context.Context, string, int, int) ([]models.PopularityEntry, int64, error) {
		return nil, 0, errors.New("connection refused")
	}

	svc := NewStatisticsService(repo)
	page, err := svc.PopularPosts(context.Background(), 0, 10, "desc")

	assert.Error(t, err)
	assert.Nil(t, page)
}

func TestStatisticsService_PopularPosts_CachedSecondRead(t *testing.T) {
	mr := miniredis.RunT(t)
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { cache.SetClient(nil) })

	calls := 0
	repo := noopPostRepo()
	repo.popularPostsFn = func(context.Context, string, int, int) ([]models.PopularityEntry, int64, error) {
		calls++
		return []models.PopularityEntry{{Subject: "aaa", Count: 2}}, 1, nil
	}

	svc := NewStatisticsService(repo)

	first, err := svc.PopularPosts(context.Background(), 0, 10, "desc")
	require.NoError(t, err)

	// Mixed-case order resolves to the same cache entry.
	second, err := svc.PopularPosts(context.Background(), 0, 10, "DESC")
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
}

func TestStatisticsService_PopularBoards(t *testing.T) {
	repo := noopPostRepo()
	repo.popularBoardsFn = func(_ context.Context, order string, limit, offset int) ([]models.PopularityEntry, int64, error) {
		assert.Equal(t, "asc", order)
		assert.Equal(t, 2, limit)
		assert.Equal(t, 2, offset)
		return []models.PopularityEntry{{Subject: "Home", Count: 1}}, 3, nil
	}

	svc := NewStatisticsService(repo)
	page, err := svc.PopularBoards(context.Background(), 1, 2, "ASC")

	require.NoError(t, err)
	assert.Equal(t, int64(3), page.TotalItems)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 1, page.CurrentPage)
	require.Len(t, page.Items, 1)
}

func TestStatisticsService_Rankings_Grouping(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Post{}))

	seed := []*models.Post{
		{TxHash: "aaa", Board: "Home"},
		{TxHash: "bbb", Board: "Hugin", Reply: "aaa"},
		{TxHash: "ccc", Board: "Hugin", Reply: "aaa"},
		{TxHash: "ddd", Board: "Hugin", Reply: "bbb"},
	}
	require.NoError(t, db.Create(&seed).Error)

	svc := NewStatisticsService(repository.NewPostRepository(db))

	posts, err := svc.PopularPosts(context.Background(), 0, 10, "desc")
	require.NoError(t, err)
	assert.Equal(t, int64(2), posts.TotalItems)
	require.Len(t, posts.Items, 2)
	assert.Equal(t, models.PopularityEntry{Subject: "aaa", Count: 2}, posts.Items[0])
	assert.Equal(t, models.PopularityEntry{Subject: "bbb", Count: 1}, posts.Items[1])

	boards, err := svc.PopularBoards(context.Background(), 0, 10, "desc")
	require.NoError(t, err)
	assert.Equal(t, int64(2), boards.TotalItems)
	require.Len(t, boards.Items, 2)
	assert.Equal(t, models.PopularityEntry{Subject: "Hugin", Count: 3}, boards.Items[0])
	assert.Equal(t, models.PopularityEntry{Subject: "Home", Count: 1}, boards.Items[1])
}
