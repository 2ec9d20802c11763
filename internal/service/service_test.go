package service

import (
	"fmt"
	"testing"

	"Echo_Board/internal/model"
	"Echo_Board/internal/pkg"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB 每个测试一个独立的内存库
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Post{},
		&model.Comment{},
		&model.AdminReply{},
		&model.PostLike{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

func registerUser(t *testing.T, db *gorm.DB, username, role string) *model.User {
	t.Helper()

	svc := NewUserService(db, pkg.SMTPConfig{})
	_, user, err := svc.Register(username, username+"@example.com", "password123", role)
	if err != nil {
		t.Fatalf("failed to register %s: %v", username, err)
	}
	return user
}
