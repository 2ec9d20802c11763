package mysql

import (
	"Echo_Board/internal/model"

	"gorm.io/gorm"
)

type PostRepository struct {
	DB *gorm.DB
}

func (r *PostRepository) Create(post *model.Post) error {
	return r.DB.Create(post).Error
}

func (r *PostRepository) FindByID(id uint64) (*model.Post, error) {
	var post model.Post
	err := r.DB.Preload("Author").First(&post, id).Error
	return &post, err
}

// List 最新创建优先，作者一并加载
func (r *PostRepository) List(offset, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.DB.Preload("Author").
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *PostRepository) Update(post *model.Post) error {
	return r.DB.Model(post).
		Select("title", "content", "image").
		Updates(map[string]any{
			"title":   post.Title,
			"content": post.Content,
			"image":   post.Image,
		}).Error
}

// DeleteCascade 单事务内删除评论、官方回复、点赞记录和帖子本身
func (r *PostRepository) DeleteCascade(postID uint64) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&model.AdminReply{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&model.PostLike{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Post{}, postID).Error
	})
}

// LikerIDs 点赞用户ID，按点赞先后排列
func (r *PostRepository) LikerIDs(postID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.DB.Model(&model.PostLike{}).
		Where("post_id = ?", postID).
		Order("id ASC").
		Pluck("user_id", &ids).Error
	return ids, err
}

// LikerIDsByPost 批量版本，列表页一次查询填充
func (r *PostRepository) LikerIDsByPost(postIDs []uint64) (map[uint64][]uint64, error) {
	result := make(map[uint64][]uint64, len(postIDs))
	if len(postIDs) == 0 {
		return result, nil
	}
	var rows []model.PostLike
	err := r.DB.Where("post_id IN ?", postIDs).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.PostID] = append(result[row.PostID], row.UserID)
	}
	return result, nil
}
