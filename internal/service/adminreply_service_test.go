package service

import (
	"errors"
	"testing"
)

func TestAdminReplyService_CreateIsOfficial(t *testing.T) {
	db := testDB(t)
	author := registerUser(t, db, "alice", "")
	admin := registerUser(t, db, "root", "admin")

	postSvc := NewPostService(db, nil)
	svc := NewAdminReplyService(db, nil)

	post, err := postSvc.CreatePost(author, "Hello", "World", "")
	if err != nil {
		t.Fatalf("create post failed: %v", err)
	}

	reply, err := svc.CreateReply(admin, post.ID, "official answer")
	if err != nil {
		t.Fatalf("create reply failed: %v", err)
	}
	if !reply.IsOfficial {
		t.Errorf("want isOfficial=true")
	}
	if reply.Admin.Username != "root" {
		t.Errorf("want admin expanded, got %+v", reply.Admin)
	}

	if _, err := svc.CreateReply(admin, 999, "orphan"); !errors.Is(err, ErrNotFound) {
		t.Errorf("want ErrNotFound for missing post, got %v", err)
	}
}

func TestAdminReplyService_DeleteRules(t *testing.T) {
	db := testDB(t)
	author := registerUser(t, db, "alice", "")
	admin := registerUser(t, db, "root", "admin")
	otherAdmin := registerUser(t, db, "root2", "admin")

	postSvc := NewPostService(db, nil)
	svc := NewAdminReplyService(db, nil)

	post, err := postSvc.CreatePost(author, "Hello", "World", "")
	if err != nil {
		t.Fatalf("create post failed: %v", err)
	}
	reply, err := svc.CreateReply(admin, post.ID, "official answer")
	if err != nil {
		t.Fatalf("create reply failed: %v", err)
	}

	// 普通用户（哪怕是帖子作者）不能删官方回复
	if err := svc.DeleteReply(reply.ID, author); !errors.Is(err, ErrForbidden) {
		t.Errorf("want ErrForbidden for regular user, got %v", err)
	}
	// 其他管理员可以删
	if err := svc.DeleteReply(reply.ID, otherAdmin); err != nil {
		t.Fatalf("other admin delete failed: %v", err)
	}

	replies, err := svc.ListByPost(post.ID, 0, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(replies) != 0 {
		t.Errorf("want empty reply list after delete, got %d", len(replies))
	}
}
