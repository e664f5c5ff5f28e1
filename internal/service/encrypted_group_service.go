package service

import (
	"context"
	"time"

	"github.com/f-r00t/hugin-api/internal/models"
	"github.com/f-r00t/hugin-api/internal/paging"
	"github.com/f-r00t/hugin-api/internal/repository"
	"github.com/f-r00t/hugin-api/internal/timeutil"
)

// ListEncryptedGroupInput carries the coerced listing parameters for
// encrypted group posts. The payload is ciphertext, so no keyword search.
type ListEncryptedGroupInput struct {
	Page      int
	Size      int
	Order     string
	StartDate *time.Time
	EndDate   *time.Time
}

type EncryptedGroupService struct {
	repo repository.EncryptedGroupRepository
}

func NewEncryptedGroupService(repo repository.EncryptedGroupRepository) *EncryptedGroupService {
	return &EncryptedGroupService{repo: repo}
}

// GetAll returns one page of encrypted group posts.
func (s *EncryptedGroupService) GetAll(ctx context.Context, in ListEncryptedGroupInput) (*models.EncryptedGroupPage, error) {
	limit, offset := paging.GetPagination(in.Page, in.Size)

	posts, total, err := s.repo.List(ctx, repository.EncryptedGroupListParams{
		Limit:     limit,
		Offset:    offset,
		Order:     in.Order,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
	})
	if err != nil {
		return nil, err
	}

	enriched := make([]models.EnrichedPostEncryptedGroup, len(posts))
	for i, post := range posts {
		enriched[i] = newEnrichedEncryptedGroup(post)
	}

	return &models.EncryptedGroupPage{
		TotalItems:  total,
		TotalPages:  paging.TotalPages(total, limit),
		CurrentPage: pageOrZero(in.Page),
		Posts:       enriched,
	}, nil
}

// GetLatest shares the getAll contract; the route exists for client
// compatibility.
func (s *EncryptedGroupService) GetLatest(ctx context.Context, in ListEncryptedGroupInput) (*models.EncryptedGroupPage, error) {
	return s.GetAll(ctx, in)
}

// GetByTxHash returns one encrypted group post, or nil when unknown.
func (s *EncryptedGroupService) GetByTxHash(ctx context.Context, txHash string) (*models.EnrichedPostEncryptedGroup, error) {
	post, err := s.repo.GetByTxHash(ctx, txHash)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, nil
	}
	enriched := newEnrichedEncryptedGroup(post)
	return &enriched, nil
}

func newEnrichedEncryptedGroup(post *models.PostEncryptedGroup) models.EnrichedPostEncryptedGroup {
	return models.EnrichedPostEncryptedGroup{
		ID:        post.ID,
		TxBox:     post.TxBox,
		TxHash:    post.TxHash,
		Time:      post.Time,
		CreatedAt: timeutil.DateTimeToUnix(post.CreatedAt),
		UpdatedAt: timeutil.DateTimeToUnix(post.UpdatedAt),
	}
}
