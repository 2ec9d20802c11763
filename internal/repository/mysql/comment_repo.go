package mysql

import (
	"Echo_Board/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	DB *gorm.DB
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.DB.Create(comment).Error
}

func (r *CommentRepository) FindByID(id uint64) (*model.Comment, error) {
	var comment model.Comment
	err := r.DB.Preload("Author").First(&comment, id).Error
	return &comment, err
}

// ListByPost 最新优先；帖子不存在时自然得到空列表
func (r *CommentRepository) ListByPost(postID uint64, offset, limit int) ([]model.Comment, error) {
	var list []model.Comment
	err := r.DB.Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *CommentRepository) DeleteByID(id uint64) error {
	return r.DB.Delete(&model.Comment{}, id).Error
}
