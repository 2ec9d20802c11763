package service

import (
	"errors"
	"unicode/utf8"

	"Echo_Board/internal/model"
	"Echo_Board/internal/pkg"
	"Echo_Board/internal/repository/mysql"

	"gorm.io/gorm"
)

// AdminReplyService 与评论同构，路由层已用 RequireAdmin 把门，
// 这里不重复校验发布者角色
type AdminReplyService struct {
	repo     *mysql.AdminReplyRepository
	postRepo *mysql.PostRepository
	producer *pkg.KafkaProducer
}

func NewAdminReplyService(db *gorm.DB, producer *pkg.KafkaProducer) *AdminReplyService {
	return &AdminReplyService{
		repo:     &mysql.AdminReplyRepository{DB: db},
		postRepo: &mysql.PostRepository{DB: db},
		producer: producer,
	}
}

func (s *AdminReplyService) CreateReply(admin *model.User, postID uint64, content string) (*model.AdminReply, error) {
	if content == "" {
		return nil, invalid("content is required")
	}
	if utf8.RuneCountInString(content) > 2000 {
		return nil, invalid("admin reply cannot exceed 2000 characters")
	}

	if _, err := s.postRepo.FindByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("post not found")
		}
		return nil, err
	}

	reply := &model.AdminReply{
		Content:    content,
		AdminID:    admin.ID,
		PostID:     postID,
		IsOfficial: true,
	}
	if err := s.repo.Create(reply); err != nil {
		return nil, err
	}

	reply.Admin = *admin
	s.producer.PublishContentEvent("admin_reply_created", reply.ID, postID, admin.ID)
	return reply, nil
}

func (s *AdminReplyService) ListByPost(postID uint64, page, size int) ([]model.AdminReply, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > ListCap {
		size = ListCap
	}
	list, err := s.repo.ListByPost(postID, (page-1)*size, size)
	if list == nil {
		list = []model.AdminReply{}
	}
	return list, err
}

// DeleteReply 发布者本人或任一管理员可删
func (s *AdminReplyService) DeleteReply(id uint64, actor *model.User) error {
	reply, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("admin reply not found")
		}
		return err
	}

	if reply.AdminID != actor.ID && !actor.IsAdmin() {
		return forbidden("not authorized to delete this admin reply")
	}

	if err := s.repo.DeleteByID(id); err != nil {
		return err
	}
	s.producer.PublishContentEvent("admin_reply_deleted", id, reply.PostID, actor.ID)
	return nil
}
