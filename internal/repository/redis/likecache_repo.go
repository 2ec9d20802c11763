package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	LikeCntTTL       = 24 * time.Hour
	LikeCntKeyPrefix = "like:cnt:post" // 缓存某个帖子的点赞计数
)

// LikeCacheRepository 点赞计数的旁路缓存，写路径只做失效，读路径回填
type LikeCacheRepository struct {
	likeCntTTL time.Duration
}

func NewLikeCacheRepository() *LikeCacheRepository {
	return &LikeCacheRepository{
		likeCntTTL: LikeCntTTL,
	}
}

func (r *LikeCacheRepository) likeCntKey(postID uint64) string {
	return fmt.Sprintf("%s:%d", LikeCntKeyPrefix, postID)
}

// GetLikeCountCached 第二个返回值表示是否命中
func (r *LikeCacheRepository) GetLikeCountCached(ctx context.Context, postID uint64) (int64, bool, error) {
	if Client == nil {
		return 0, false, nil
	}
	val, err := Client.Get(ctx, r.likeCntKey(postID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	return val, err == nil, err
}

// SetLikeCount 读miss后回填
func (r *LikeCacheRepository) SetLikeCount(ctx context.Context, postID uint64, cnt int64) error {
	if Client == nil {
		return nil
	}
	return Client.Set(ctx, r.likeCntKey(postID), cnt, r.likeCntTTL).Err()
}

// InvalidateCount 写库成功后删计数Key，交给读侧重建
func (r *LikeCacheRepository) InvalidateCount(ctx context.Context, postID uint64) error {
	if Client == nil {
		return nil
	}
	if err := Client.Del(ctx, r.likeCntKey(postID)).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return nil
}
