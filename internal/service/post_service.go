// Package service implements the read-side business logic: listing queries,
// reply enrichment, and popularity aggregation on top of the repositories.
package service

import (
	"context"
	"time"

	"github.com/f-r00t/hugin-api/internal/cache"
	"github.com/f-r00t/hugin-api/internal/models"
	"github.com/f-r00t/hugin-api/internal/observability"
	"github.com/f-r00t/hugin-api/internal/paging"
	"github.com/f-r00t/hugin-api/internal/repository"
	"github.com/f-r00t/hugin-api/internal/timeutil"

	"golang.org/x/sync/errgroup"
)

// ListPostsInput carries the coerced listing parameters. Dates are already
// parsed; nil means "no bound".
type ListPostsInput struct {
	Page          int
	Size          int
	Order         string
	SearchKeyword string
	StartDate     *time.Time
	EndDate       *time.Time
	ExcludeAvatar bool
}

type PostService struct {
	postRepo repository.PostRepository
	// fanOutLimit bounds concurrent reply lookups during enrichment; it
	// should not exceed the store's connection pool size.
	fanOutLimit int
}

func NewPostService(postRepo repository.PostRepository, fanOutLimit int) *PostService {
	if fanOutLimit <= 0 {
		fanOutLimit = 1
	}
	return &PostService{
		postRepo:    postRepo,
		fanOutLimit: fanOutLimit,
	}
}

// GetAll returns one enriched page of posts.
func (s *PostService) GetAll(ctx context.Context, in ListPostsInput) (*models.PostPage, error) {
	limit, offset := paging.GetPagination(in.Page, in.Size)

	posts, total, err := s.postRepo.List(ctx, repository.ListParams{
		Limit:         limit,
		Offset:        offset,
		Order:         in.Order,
		SearchKeyword: in.SearchKeyword,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		ExcludeAvatar: in.ExcludeAvatar,
	})
	if err != nil {
		return nil, err
	}

	enriched, err := s.enrich(ctx, posts)
	if err != nil {
		return nil, err
	}

	page := in.Page
	if page < 0 {
		page = 0
	}
	return &models.PostPage{
		TotalItems:  total,
		TotalPages:  paging.TotalPages(total, limit),
		CurrentPage: page,
		Posts:       enriched,
	}, nil
}

// GetLatest is the /posts/latest listing. It shares the getAll contract and
// code path; the route exists for Hugin client compatibility.
func (s *PostService) GetLatest(ctx context.Context, in ListPostsInput) (*models.PostPage, error) {
	return s.GetAll(ctx, in)
}

// GetByTxHash returns one enriched post, or nil when the hash is unknown.
// Hits are cached behind a short TTL; misses are not, so an unknown hash
// never occupies a cache slot.
func (s *PostService) GetByTxHash(ctx context.Context, txHash string) (*models.EnrichedPost, error) {
	key := cache.PostKey(txHash)

	var cached models.EnrichedPost
	if found, err := cache.GetJSON(ctx, key, &cached); err == nil && found {
		return &cached, nil
	}

	post, err := s.postRepo.GetByTxHash(ctx, txHash)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, nil
	}

	enriched, err := s.enrich(ctx, []*models.Post{post})
	if err != nil {
		return nil, err
	}

	_ = cache.SetJSON(ctx, key, enriched[0], cache.PostTTL)
	return &enriched[0], nil
}

// GetAllRepliesOfPost returns the tx_hash of every direct reply to txHash.
func (s *PostService) GetAllRepliesOfPost(ctx context.Context, txHash string) ([]string, error) {
	return s.postRepo.RepliesTo(ctx, txHash)
}

// enrich resolves the reply list for every post concurrently, bounded by
// fanOutLimit, and recasts the ingestion timestamps as unix seconds. Results
// are written back by index so the page keeps its row order no matter which
// lookup finishes first. One failed lookup fails the whole page.
func (s *PostService) enrich(ctx context.Context, posts []*models.Post) ([]models.EnrichedPost, error) {
	enriched := make([]models.EnrichedPost, len(posts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.fanOutLimit)
	for i, post := range posts {
		g.Go(func() error {
			start := time.Now()
			replies, err := s.postRepo.RepliesTo(gctx, post.TxHash)
			observability.ReplyLookupDuration.Observe(time.Since(start).Seconds())
			if err != nil {
				return err
			}
			enriched[i] = newEnrichedPost(post, replies)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return enriched, nil
}

func newEnrichedPost(post *models.Post, replies []string) models.EnrichedPost {
	if replies == nil {
		replies = []string{}
	}
	return models.EnrichedPost{
		ID:        post.ID,
		Message:   post.Message,
		Key:       post.Key,
		Signature: post.Signature,
		Board:     post.Board,
		Time:      post.Time,
		Nickname:  post.Nickname,
		TxHash:    post.TxHash,
		Reply:     post.Reply,
		Avatar:    post.Avatar,
		CreatedAt: timeutil.DateTimeToUnix(post.CreatedAt),
		UpdatedAt: timeutil.DateTimeToUnix(post.UpdatedAt),
		Replies:   replies,
	}
}
