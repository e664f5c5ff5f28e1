// Package repository provides the data access layer over the post index.
// Every operation is read-only; the syncer process owns all writes.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/f-r00t/hugin-api/internal/models"

	"gorm.io/gorm"
)

// ListParams bundles the knobs accepted by a post listing query. Zero values
// mean "no constraint"; callers are expected to have coerced user input into
// safe defaults already.
type ListParams struct {
	Limit         int
	Offset        int
	Order         string
	SearchKeyword string
	StartDate     *time.Time
	EndDate       *time.Time
	ExcludeAvatar bool
}

// PostRepository defines the interface for post read operations
type PostRepository interface {
	List(ctx context.Context, params ListParams) ([]*models.Post, int64, error)
	GetByTxHash(ctx context.Context, txHash string) (*models.Post, error)
	RepliesTo(ctx context.Context, txHash string) ([]string, error)
	PopularPosts(ctx context.Context, order string, limit, offset int) ([]models.PopularityEntry, int64, error)
	PopularBoards(ctx context.Context, order string, limit, offset int) ([]models.PopularityEntry, int64, error)
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// List returns one page of posts plus the total count over the filtered set.
// The count ignores limit/offset so pagination metadata stays correct.
func (r *postRepository) List(ctx context.Context, params ListParams) ([]*models.Post, int64, error) {
	// Session makes the filtered chain reusable for both the count and the
	// page query without clause bleed-through.
	filtered := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Scopes(postFilter(params.SearchKeyword, params.StartDate, params.EndDate)).
		Session(&gorm.Session{})

	var total int64
	if err := filtered.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := filtered.
		Order(idOrder(params.Order)).
		Limit(params.Limit).
		Offset(params.Offset)
	if params.ExcludeAvatar {
		query = query.Omit("avatar")
	}

	var posts []*models.Post
	if err := query.Find(&posts).Error; err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

// GetByTxHash returns the post with the given content hash, or (nil, nil)
// when no row matches. A miss is not an error.
func (r *postRepository) GetByTxHash(ctx context.Context, txHash string) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Where("tx_hash = ?", txHash).
		First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// RepliesTo returns the tx_hash of every post whose reply pointer equals
// txHash. Order is store-determined; no result is an empty slice.
func (r *postRepository) RepliesTo(ctx context.Context, txHash string) ([]string, error) {
	var hashes []string
	err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("reply = ?", txHash).
		Pluck("tx_hash", &hashes).Error
	if err != nil {
		return nil, err
	}
	if hashes == nil {
		hashes = []string{}
	}
	return hashes, nil
}

// PopularPosts ranks replied-to posts by reply volume. Reply pointers are
// counted as-is; a pointer to a hash this index never saw still counts.
func (r *postRepository) PopularPosts(ctx context.Context, order string, limit, offset int) ([]models.PopularityEntry, int64, error) {
	grouped := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("reply IS NOT NULL AND reply <> ''").
		Session(&gorm.Session{})

	var total int64
	if err := grouped.Distinct("reply").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []models.PopularityEntry
	err := grouped.
		Select("reply AS subject, COUNT(*) AS count").
		Group("reply").
		Order(countOrder(order)).
		Limit(limit).
		Offset(offset).
		Scan(&entries).Error
	if err != nil {
		return nil, 0, err
	}
	if entries == nil {
		entries = []models.PopularityEntry{}
	}
	return entries, total, nil
}

// PopularBoards ranks boards by post volume.
func (r *postRepository) PopularBoards(ctx context.Context, order string, limit, offset int) ([]models.PopularityEntry, int64, error) {
	grouped := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("board IS NOT NULL AND board <> ''").
		Session(&gorm.Session{})

	var total int64
	if err := grouped.Distinct("board").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []models.PopularityEntry
	err := grouped.
		Select("board AS subject, COUNT(*) AS count").
		Group("board").
		Order(countOrder(order)).
		Limit(limit).
		Offset(offset).
		Scan(&entries).Error
	if err != nil {
		return nil, 0, err
	}
	if entries == nil {
		entries = []models.PopularityEntry{}
	}
	return entries, total, nil
}
