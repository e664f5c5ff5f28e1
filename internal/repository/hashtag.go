package repository

import (
	"context"
	"errors"

	"github.com/f-r00t/hugin-api/internal/models"

	"gorm.io/gorm"
)

// HashtagRepository defines read operations over hashtags
type HashtagRepository interface {
	List(ctx context.Context, limit, offset int, order string) ([]*models.Hashtag, int64, error)
	GetByName(ctx context.Context, name string) (*models.Hashtag, error)
}

type hashtagRepository struct {
	db *gorm.DB
}

// NewHashtagRepository creates a new hashtag repository
func NewHashtagRepository(db *gorm.DB) HashtagRepository {
	return &hashtagRepository{db: db}
}

func (r *hashtagRepository) List(ctx context.Context, limit, offset int, order string) ([]*models.Hashtag, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&models.Hashtag{}).
		Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var hashtags []*models.Hashtag
	err := base.
		Order(idOrder(order)).
		Limit(limit).
		Offset(offset).
		Find(&hashtags).Error
	if err != nil {
		return nil, 0, err
	}

	return hashtags, total, nil
}

func (r *hashtagRepository) GetByName(ctx context.Context, name string) (*models.Hashtag, error) {
	var hashtag models.Hashtag
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&hashtag).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &hashtag, nil
}
