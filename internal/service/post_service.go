package service

import (
	"context"
	"errors"
	"unicode/utf8"

	"Echo_Board/internal/model"
	"Echo_Board/internal/pkg"
	"Echo_Board/internal/repository/mysql"
	"Echo_Board/internal/repository/redis"

	"gorm.io/gorm"
)

// ListCap 列表接口单次返回上限，未分页的客户端最多拿到前100条
const ListCap = 100

type PostService struct {
	repo      *mysql.PostRepository
	likeRepo  *mysql.PostLikeRepository
	likeCache *redis.LikeCacheRepository
	producer  *pkg.KafkaProducer
}

func NewPostService(db *gorm.DB, producer *pkg.KafkaProducer) *PostService {
	return &PostService{
		repo:      &mysql.PostRepository{DB: db},
		likeRepo:  &mysql.PostLikeRepository{DB: db},
		likeCache: redis.NewLikeCacheRepository(),
		producer:  producer,
	}
}

func (s *PostService) CreatePost(author *model.User, title, content, image string) (*model.Post, error) {
	if title == "" {
		return nil, invalid("title is required")
	}
	if content == "" {
		return nil, invalid("content is required")
	}
	if utf8.RuneCountInString(title) > 200 {
		return nil, invalid("title cannot exceed 200 characters")
	}
	if utf8.RuneCountInString(content) > 5000 {
		return nil, invalid("content cannot exceed 5000 characters")
	}

	post := &model.Post{
		Title:    title,
		Content:  content,
		AuthorID: author.ID,
		Image:    image,
	}
	if err := s.repo.Create(post); err != nil {
		return nil, err
	}

	post.Author = *author
	post.Likes = []uint64{}
	s.producer.PublishContentEvent("post_created", post.ID, post.ID, author.ID)
	return post, nil
}

// ListPosts 最新优先；page/size 可选，size 封顶 ListCap
func (s *PostService) ListPosts(page, size int) ([]model.Post, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > ListCap {
		size = ListCap
	}

	offset := (page - 1) * size
	list, err := s.repo.List(offset, size)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []model.Post{}
	}

	ids := make([]uint64, 0, len(list))
	for _, p := range list {
		ids = append(ids, p.ID)
	}
	likers, err := s.repo.LikerIDsByPost(ids)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].Likes = likers[list[i].ID]
		if list[i].Likes == nil {
			list[i].Likes = []uint64{}
		}
	}
	return list, nil
}

// GetPost 帖子详情连同评论和官方回复，均为最新优先
func (s *PostService) GetPost(ctx context.Context, id uint64) (*model.Post, []model.Comment, []model.AdminReply, error) {
	post, err := s.loadPost(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}

	commentRepo := &mysql.CommentRepository{DB: s.repo.DB}
	comments, err := commentRepo.ListByPost(id, 0, ListCap)
	if err != nil {
		return nil, nil, nil, err
	}
	if comments == nil {
		comments = []model.Comment{}
	}

	replyRepo := &mysql.AdminReplyRepository{DB: s.repo.DB}
	replies, err := replyRepo.ListByPost(id, 0, ListCap)
	if err != nil {
		return nil, nil, nil, err
	}
	if replies == nil {
		replies = []model.AdminReply{}
	}

	return post, comments, replies, nil
}

// UpdatePost 仅作者可改；空标题/正文视为不修改，image 用指针区分"未提供"和"清空"
func (s *PostService) UpdatePost(ctx context.Context, id uint64, actor *model.User, title, content string, image *string) (*model.Post, error) {
	post, err := s.findPost(id)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != actor.ID {
		return nil, forbidden("not authorized to update this post")
	}

	if title != "" {
		if utf8.RuneCountInString(title) > 200 {
			return nil, invalid("title cannot exceed 200 characters")
		}
		post.Title = title
	}
	if content != "" {
		if utf8.RuneCountInString(content) > 5000 {
			return nil, invalid("content cannot exceed 5000 characters")
		}
		post.Content = content
	}
	if image != nil {
		post.Image = *image
	}

	if err := s.repo.Update(post); err != nil {
		return nil, err
	}
	return s.loadPost(ctx, id)
}

// DeletePost 作者或管理员可删，级联清掉评论、官方回复和点赞
func (s *PostService) DeletePost(ctx context.Context, id uint64, actor *model.User) error {
	post, err := s.findPost(id)
	if err != nil {
		return err
	}
	if post.AuthorID != actor.ID && !actor.IsAdmin() {
		return forbidden("not authorized to delete this post")
	}

	if err := s.repo.DeleteCascade(id); err != nil {
		return err
	}
	_ = s.likeCache.InvalidateCount(ctx, id)
	s.producer.PublishContentEvent("post_deleted", id, id, actor.ID)
	return nil
}

// ToggleLike 已点赞则取消，未点赞则点上，返回更新后的帖子
func (s *PostService) ToggleLike(ctx context.Context, id uint64, actor *model.User) (*model.Post, bool, error) {
	if _, err := s.findPost(id); err != nil {
		return nil, false, err
	}

	liked, err := s.likeRepo.Toggle(ctx, actor.ID, id)
	if err != nil {
		return nil, false, err
	}
	_ = s.likeCache.InvalidateCount(ctx, id)

	post, err := s.loadPost(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return post, liked, nil
}

// findPost 裸查询，不展开点赞
func (s *PostService) findPost(id uint64) (*model.Post, error) {
	post, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("post not found")
		}
		return nil, err
	}
	return post, nil
}

// loadPost 完整视图：作者、点赞列表、计数走缓存旁路
func (s *PostService) loadPost(ctx context.Context, id uint64) (*model.Post, error) {
	post, err := s.findPost(id)
	if err != nil {
		return nil, err
	}

	likes, err := s.repo.LikerIDs(id)
	if err != nil {
		return nil, err
	}
	if likes == nil {
		likes = []uint64{}
	}
	post.Likes = likes

	// 计数缓存命中则用缓存值，miss 回填；库里的 like_count 始终是权威值
	if cnt, hit, err := s.likeCache.GetLikeCountCached(ctx, id); err == nil && hit {
		post.LikeCount = cnt
	} else if err == nil {
		_ = s.likeCache.SetLikeCount(ctx, id, post.LikeCount)
	}
	return post, nil
}
