package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/f-r00t/hugin-api/internal/models"
	"github.com/f-r00t/hugin-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type encryptedGroupRepoStub struct {
	listFn        func(context.Context, repository.EncryptedGroupListParams) ([]*models.PostEncryptedGroup, int64, error)
	getByTxHashFn func(context.Context, string) (*models.PostEncryptedGroup, error)
}

func (s *encryptedGroupRepoStub) List(ctx context.Context, params repository.EncryptedGroupListParams) ([]*models.PostEncryptedGroup, int64, error) {
	return s.listFn(ctx, params)
}
func (s *encryptedGroupRepoStub) GetByTxHash(ctx context.Context, txHash string) (*models.PostEncryptedGroup, error) {
	return s.getByTxHashFn(ctx, txHash)
}

func noopEncryptedGroupRepo() *encryptedGroupRepoStub {
	return &encryptedGroupRepoStub{
		listFn: func(context.Context, repository.EncryptedGroupListParams) ([]*models.PostEncryptedGroup, int64, error) {
			return nil, 0, nil
		},
		getByTxHashFn: func(context.Context, string) (*models.PostEncryptedGroup, error) { return nil, nil },
	}
}

func TestEncryptedGroupService_GetAll(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()

	repo := noopEncryptedGroupRepo()
	repo.listFn = func(_ context.Context, params repository.EncryptedGroupListParams) ([]*models.PostEncryptedGroup, int64, error) {
		assert.Equal(t, 10, params.Limit)
		assert.Equal(t, 10, params.Offset)
		return []*models.PostEncryptedGroup{
			{ID: 3, TxBox: "ciphertext", TxHash: "aaa", Time: 1699999999, CreatedAt: now, UpdatedAt: now},
		}, 11, nil
	}

	svc := NewEncryptedGroupService(repo)
	page, err := svc.GetAll(context.Background(), ListEncryptedGroupInput{Page: 1})

	require.NoError(t, err)
	assert.Equal(t, int64(11), page.TotalItems)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 1, page.CurrentPage)
	require.Len(t, page.Posts, 1)
	assert.Equal(t, "ciphertext", page.Posts[0].TxBox)
	assert.Equal(t, int64(1700000000), page.Posts[0].CreatedAt)
	assert.Equal(t, int64(1700000000), page.Posts[0].UpdatedAt)
}

func TestEncryptedGroupService_GetLatest_SharesListContract(t *testing.T) {
	calls := 0
	repo := noopEncryptedGroupRepo()
	repo.listFn = func(context.Context, repository.EncryptedGroupListParams) ([]*models.PostEncryptedGroup, int64, error) {
		calls++
		return []*models.PostEncryptedGroup{}, 0, nil
	}

	svc := NewEncryptedGroupService(repo)
	page, err := svc.GetLatest(context.Background(), ListEncryptedGroupInput{})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.NotNil(t, page.Posts)
}

func TestEncryptedGroupService_GetByTxHash(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		repo := noopEncryptedGroupRepo()
		repo.getByTxHashFn = func(_ context.Context, txHash string) (*models.PostEncryptedGroup, error) {
			return &models.PostEncryptedGroup{ID: 1, TxHash: txHash}, nil
		}

		svc := NewEncryptedGroupService(repo)
		post, err := svc.GetByTxHash(context.Background(), "aaa")

		require.NoError(t, err)
		require.NotNil(t, post)
		assert.Equal(t, "aaa", post.TxHash)
	})

	t.Run("Miss", func(t *testing.T) {
		svc := NewEncryptedGroupService(noopEncryptedGroupRepo())
		post, err := svc.GetByTxHash(context.Background(), "unknown")

		require.NoError(t, err)
		assert.Nil(t, post)
	})

	t.Run("Store failure", func(t *testing.T) {
		repo := noopEncryptedGroupRepo()
		repo.getByTxHashFn = func(context.Context, string) (*models.PostEncryptedGroup, error) {
			return nil, errors.New("connection refused")
		}

		svc := NewEncryptedGroupService(repo)
		post, err := svc.GetByTxHash(context.Background(), "aaa")

		assert.Error(t, err)
		assert.Nil(t, post)
	})
}
