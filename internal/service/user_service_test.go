package service

import (
	"errors"
	"testing"

	"Echo_Board/internal/model"
	"Echo_Board/internal/pkg"
)

func TestUserService_RegisterAndLogin(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(db, pkg.SMTPConfig{})

	token, user, err := svc.Register("alice", "alice@example.com", "secret123", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if token == "" {
		t.Errorf("want non-empty token after register")
	}
	if user.Role != model.RoleUser {
		t.Errorf("want default role %q, got %q", model.RoleUser, user.Role)
	}

	claims, err := pkg.ParseToken(token)
	if err != nil {
		t.Fatalf("register token rejected: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("want token user id %d, got %d", user.ID, claims.UserID)
	}

	// 同一组凭据应能登录
	loginToken, loginUser, err := svc.Login("alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if loginUser.ID != user.ID {
		t.Errorf("want login user id %d, got %d", user.ID, loginUser.ID)
	}
	if _, err := pkg.ParseToken(loginToken); err != nil {
		t.Errorf("login token rejected: %v", err)
	}
}

func TestUserService_RegisterSelfAssignedAdmin(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(db, pkg.SMTPConfig{})

	_, user, err := svc.Register("boss", "boss@example.com", "secret123", "admin")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Role != model.RoleAdmin {
		t.Errorf("want role admin, got %q", user.Role)
	}

	// 不认识的角色落回 user
	_, user2, err := svc.Register("odd", "odd@example.com", "secret123", "superuser")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user2.Role != model.RoleUser {
		t.Errorf("want role user for unknown role, got %q", user2.Role)
	}
}

func TestUserService_RegisterConflict(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(db, pkg.SMTPConfig{})

	if _, _, err := svc.Register("alice", "alice@example.com", "secret123", ""); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, _, err := svc.Register("alice", "other@example.com", "secret123", "")
	if !errors.Is(err, ErrConflict) {
		t.Errorf("want ErrConflict for duplicate username, got %v", err)
	}

	_, _, err = svc.Register("someone", "alice@example.com", "secret123", "")
	if !errors.Is(err, ErrConflict) {
		t.Errorf("want ErrConflict for duplicate email, got %v", err)
	}
}

func TestUserService_LoginRejectsBadCredentials(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(db, pkg.SMTPConfig{})

	if _, _, err := svc.Register("alice", "alice@example.com", "secret123", ""); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := svc.Login("alice@example.com", "wrong"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("want ErrUnauthorized for wrong password, got %v", err)
	}
	if _, _, err := svc.Login("nobody@example.com", "secret123"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("want ErrUnauthorized for unknown email, got %v", err)
	}
}

func TestUserService_PasswordIsHashed(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(db, pkg.SMTPConfig{})

	_, user, err := svc.Register("alice", "alice@example.com", "secret123", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Password == "secret123" {
		t.Errorf("password stored in plain text")
	}
}
