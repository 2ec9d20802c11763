package service

import (
	"errors"
	"strings"
	"testing"
)

func TestCommentService_CreateRequiresPost(t *testing.T) {
	db := testDB(t)
	user := registerUser(t, db, "alice", "")
	svc := NewCommentService(db, nil)

	if _, err := svc.CreateComment(user, 777, "hello"); !errors.Is(err, ErrNotFound) {
		t.Errorf("want ErrNotFound for missing post, got %v", err)
	}
	if _, err := svc.CreateComment(user, 777, ""); !errors.Is(err, ErrValidation) {
		t.Errorf("want ErrValidation for empty content, got %v", err)
	}
	if _, err := svc.CreateComment(user, 777, strings.Repeat("x", 2001)); !errors.Is(err, ErrValidation) {
		t.Errorf("want ErrValidation for oversized content, got %v", err)
	}
}

func TestCommentService_ListMissingPostIsEmpty(t *testing.T) {
	db := testDB(t)
	svc := NewCommentService(db, nil)

	// 不存在的帖子不报 404，返回空列表
	comments, err := svc.ListByPost(424242, 0, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(comments) != 0 {
		t.Errorf("want empty list, got %d comments", len(comments))
	}
}

func TestCommentService_DeleteOwnership(t *testing.T) {
	db := testDB(t)
	author := registerUser(t, db, "alice", "")
	commenter := registerUser(t, db, "bob", "")
	admin := registerUser(t, db, "root", "admin")

	postSvc := NewPostService(db, nil)
	svc := NewCommentService(db, nil)

	post, err := postSvc.CreatePost(author, "Hello", "World", "")
	if err != nil {
		t.Fatalf("create post failed: %v", err)
	}
	comment, err := svc.CreateComment(commenter, post.ID, "nice post")
	if err != nil {
		t.Fatalf("create comment failed: %v", err)
	}
	if comment.Author.Username != "bob" {
		t.Errorf("want author expanded, got %+v", comment.Author)
	}

	// 帖子作者不是评论作者，也不是管理员
	if err := svc.DeleteComment(comment.ID, author); !errors.Is(err, ErrForbidden) {
		t.Errorf("want ErrForbidden, got %v", err)
	}
	// 管理员可删
	if err := svc.DeleteComment(comment.ID, admin); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
	if err := svc.DeleteComment(comment.ID, admin); !errors.Is(err, ErrNotFound) {
		t.Errorf("want ErrNotFound after delete, got %v", err)
	}
}

func TestCommentService_NewestFirst(t *testing.T) {
	db := testDB(t)
	author := registerUser(t, db, "alice", "")
	postSvc := NewPostService(db, nil)
	svc := NewCommentService(db, nil)

	post, err := postSvc.CreatePost(author, "Hello", "World", "")
	if err != nil {
		t.Fatalf("create post failed: %v", err)
	}
	for _, text := range []string{"one", "two", "three"} {
		if _, err := svc.CreateComment(author, post.ID, text); err != nil {
			t.Fatalf("create comment failed: %v", err)
		}
	}

	list, err := svc.ListByPost(post.ID, 0, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("want 3 comments, got %d", len(list))
	}
	if list[0].Content != "three" || list[2].Content != "one" {
		t.Errorf("want newest first, got %q .. %q", list[0].Content, list[2].Content)
	}
}
