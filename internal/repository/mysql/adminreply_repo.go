package mysql

import (
	"Echo_Board/internal/model"

	"gorm.io/gorm"
)

type AdminReplyRepository struct {
	DB *gorm.DB
}

func (r *AdminReplyRepository) Create(reply *model.AdminReply) error {
	return r.DB.Create(reply).Error
}

func (r *AdminReplyRepository) FindByID(id uint64) (*model.AdminReply, error) {
	var reply model.AdminReply
	err := r.DB.Preload("Admin").First(&reply, id).Error
	return &reply, err
}

func (r *AdminReplyRepository) ListByPost(postID uint64, offset, limit int) ([]model.AdminReply, error) {
	var list []model.AdminReply
	err := r.DB.Preload("Admin").
		Where("post_id = ?", postID).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *AdminReplyRepository) DeleteByID(id uint64) error {
	return r.DB.Delete(&model.AdminReply{}, id).Error
}
