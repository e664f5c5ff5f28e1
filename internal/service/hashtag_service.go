package service

import (
	"context"

	"github.com/f-r00t/hugin-api/internal/models"
	"github.com/f-r00t/hugin-api/internal/paging"
	"github.com/f-r00t/hugin-api/internal/repository"
)

type HashtagService struct {
	repo repository.HashtagRepository
}

func NewHashtagService(repo repository.HashtagRepository) *HashtagService {
	return &HashtagService{repo: repo}
}

// GetAll returns one page of hashtags ordered by id.
func (s *HashtagService) GetAll(ctx context.Context, page, size int, order string) (*models.Page[*models.Hashtag], error) {
	limit, offset := paging.GetPagination(page, size)

	hashtags, total, err := s.repo.List(ctx, limit, offset, order)
	if err != nil {
		return nil, err
	}

	result := paging.NewPage(hashtags, total, pageOrZero(page), limit)
	return &result, nil
}

// GetByName returns one hashtag, or nil when unknown.
func (s *HashtagService) GetByName(ctx context.Context, name string) (*models.Hashtag, error) {
	return s.repo.GetByName(ctx, name)
}
