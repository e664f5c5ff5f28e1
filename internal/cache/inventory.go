package cache

import (
	"fmt"
	"time"
)

const (
	popularPostsKeyPrefix  = "statistics:posts:popular:%s:%d:%d"
	popularBoardsKeyPrefix = "statistics:boards:popular:%s:%d:%d"
	postKeyPrefix          = "post:%s"
)

const (
	// PopularityTTL bounds how stale a ranking may get; rankings are the
	// only aggregate queries worth shielding the store from.
	PopularityTTL = 2 * time.Minute
	// PostTTL covers the single-post detail lookup. Posts are immutable
	// once indexed; only the reply list can grow stale within the window.
	PostTTL = 5 * time.Minute
)

func PopularPostsKey(order string, limit, offset int) string {
	return fmt.Sprintf(popularPostsKeyPrefix, order, limit, offset)
}

func PopularBoardsKey(order string, limit, offset int) string {
	return fmt.Sprintf(popularBoardsKeyPrefix, order, limit, offset)
}

func PostKey(txHash string) string {
	return fmt.Sprintf(postKeyPrefix, txHash)
}
