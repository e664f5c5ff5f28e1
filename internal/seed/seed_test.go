package seed

import (
	"testing"

	"github.com/f-r00t/hugin-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newSeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Post{}, &models.PostEncryptedGroup{}, &models.Hashtag{}))
	return db
}

func TestSeeder_Run(t *testing.T) {
	db := newSeedDB(t)
	s := NewSeeder(db)

	require.NoError(t, s.Run(Options{Posts: 50, EncryptedPosts: 10, ReplyRatio: 0.4}))

	var postCount, encryptedCount int64
	require.NoError(t, db.Model(&models.Post{}).Count(&postCount).Error)
	require.NoError(t, db.Model(&models.PostEncryptedGroup{}).Count(&encryptedCount).Error)
	assert.Equal(t, int64(50), postCount)
	assert.Equal(t, int64(10), encryptedCount)

	// Every reply pointer references a seeded post.
	var dangling int64
	require.NoError(t, db.Model(&models.Post{}).
		Where("reply <> '' AND reply NOT IN (SELECT tx_hash FROM post)").
		Count(&dangling).Error)
	assert.Equal(t, int64(0), dangling)
}

func TestSeeder_BuildPost(t *testing.T) {
	s := NewSeeder(newSeedDB(t))

	parent := s.BuildPost(nil)
	assert.Len(t, parent.TxHash, 64)
	assert.Len(t, parent.Key, 64)
	assert.Len(t, parent.Signature, 128)
	assert.Empty(t, parent.Reply)
	assert.Contains(t, boards, parent.Board)

	child := s.BuildPost(parent)
	assert.Equal(t, parent.TxHash, child.Reply)
	assert.Equal(t, parent.Board, child.Board)
}

func TestSeeder_ClearAll(t *testing.T) {
	db := newSeedDB(t)
	s := NewSeeder(db)

	require.NoError(t, s.Run(Options{Posts: 5, EncryptedPosts: 2}))
	require.NoError(t, s.ClearAll())

	var count int64
	require.NoError(t, db.Model(&models.Post{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
