package mysql

import (
	"context"
	"errors"

	"Echo_Board/internal/model"

	"gorm.io/gorm"
)

type PostLikeRepository struct {
	DB *gorm.DB
}

// Toggle 事务内翻转点赞状态并同步计数，返回翻转后的状态
func (r *PostLikeRepository) Toggle(ctx context.Context, userID, postID uint64) (liked bool, err error) {
	err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pl model.PostLike
		findErr := tx.Where("user_id = ? AND post_id = ?", userID, postID).First(&pl).Error

		if findErr == nil {
			// 已点赞 -> 取消
			if err := tx.Delete(&pl).Error; err != nil {
				return err
			}
			liked = false
			return tx.Model(&model.Post{}).
				Where("id = ?", postID).
				UpdateColumn("like_count", gorm.Expr("CASE WHEN like_count > 0 THEN like_count - 1 ELSE 0 END")).
				Error
		}
		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		// 未点赞 -> 点赞
		if err := tx.Create(&model.PostLike{UserID: userID, PostID: postID}).Error; err != nil {
			return err
		}
		liked = true
		return tx.Model(&model.Post{}).
			Where("id = ?", postID).
			UpdateColumn("like_count", gorm.Expr("like_count + 1")).
			Error
	})
	return liked, err
}

func (r *PostLikeRepository) GetLikeCount(ctx context.Context, postID uint64) (int64, error) {
	var p model.Post
	err := r.DB.WithContext(ctx).Select("id", "like_count").First(&p, postID).Error
	if err != nil {
		return 0, err
	}
	return p.LikeCount, nil
}
