package repository

import (
	"context"
	"errors"
	"time"

	"github.com/f-r00t/hugin-api/internal/models"

	"gorm.io/gorm"
)

// EncryptedGroupListParams bundles the knobs for an encrypted group listing.
// The payload is ciphertext, so there is no keyword search here.
type EncryptedGroupListParams struct {
	Limit     int
	Offset    int
	Order     string
	StartDate *time.Time
	EndDate   *time.Time
}

// EncryptedGroupRepository defines read operations over encrypted group posts
type EncryptedGroupRepository interface {
	List(ctx context.Context, params EncryptedGroupListParams) ([]*models.PostEncryptedGroup, int64, error)
	GetByTxHash(ctx context.Context, txHash string) (*models.PostEncryptedGroup, error)
}

type encryptedGroupRepository struct {
	db *gorm.DB
}

// NewEncryptedGroupRepository creates a new encrypted group post repository
func NewEncryptedGroupRepository(db *gorm.DB) EncryptedGroupRepository {
	return &encryptedGroupRepository{db: db}
}

func (r *encryptedGroupRepository) List(ctx context.Context, params EncryptedGroupListParams) ([]*models.PostEncryptedGroup, int64, error) {
	filtered := r.db.WithContext(ctx).
		Model(&models.PostEncryptedGroup{}).
		Scopes(dateRangeFilter(params.StartDate, params.EndDate)).
		Session(&gorm.Session{})

	var total int64
	if err := filtered.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []*models.PostEncryptedGroup
	err := filtered.
		Order(idOrder(params.Order)).
		Limit(params.Limit).
		Offset(params.Offset).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func (r *encryptedGroupRepository) GetByTxHash(ctx context.Context, txHash string) (*models.PostEncryptedGroup, error) {
	var post models.PostEncryptedGroup
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
