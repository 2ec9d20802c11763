package service

import (
	"errors"
	"unicode/utf8"

	"Echo_Board/internal/model"
	"Echo_Board/internal/pkg"
	"Echo_Board/internal/repository/mysql"

	"gorm.io/gorm"
)

type CommentService struct {
	repo     *mysql.CommentRepository
	postRepo *mysql.PostRepository
	producer *pkg.KafkaProducer
}

func NewCommentService(db *gorm.DB, producer *pkg.KafkaProducer) *CommentService {
	return &CommentService{
		repo:     &mysql.CommentRepository{DB: db},
		postRepo: &mysql.PostRepository{DB: db},
		producer: producer,
	}
}

func (s *CommentService) CreateComment(author *model.User, postID uint64, content string) (*model.Comment, error) {
	if content == "" {
		return nil, invalid("content is required")
	}
	if utf8.RuneCountInString(content) > 2000 {
		return nil, invalid("comment cannot exceed 2000 characters")
	}

	// 先确认目标帖子还在
	if _, err := s.postRepo.FindByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("post not found")
		}
		return nil, err
	}

	comment := &model.Comment{
		Content:  content,
		AuthorID: author.ID,
		PostID:   postID,
	}
	if err := s.repo.Create(comment); err != nil {
		return nil, err
	}

	comment.Author = *author
	s.producer.PublishContentEvent("comment_created", comment.ID, postID, author.ID)
	return comment, nil
}

// ListByPost 不校验帖子存在性，查不到就是空列表
func (s *CommentService) ListByPost(postID uint64, page, size int) ([]model.Comment, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > ListCap {
		size = ListCap
	}
	list, err := s.repo.ListByPost(postID, (page-1)*size, size)
	if list == nil {
		list = []model.Comment{}
	}
	return list, err
}

// DeleteComment 作者或管理员可删
func (s *CommentService) DeleteComment(id uint64, actor *model.User) error {
	comment, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("comment not found")
		}
		return err
	}

	if comment.AuthorID != actor.ID && !actor.IsAdmin() {
		return forbidden("not authorized to delete this comment")
	}

	if err := s.repo.DeleteByID(id); err != nil {
		return err
	}
	s.producer.PublishContentEvent("comment_deleted", id, comment.PostID, actor.ID)
	return nil
}
