package scheduler

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"taskmanagerpro/model"
)

func TestPurgeRefreshTokens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.RefreshToken{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	user := model.User{Username: "u", Email: "u@example.com", FullName: "u", HashedPassword: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	tokens := []model.RefreshToken{
		{UserID: user.UserID, HashedToken: "expired", ExpiresAt: time.Now().Add(-time.Hour)},
		{UserID: user.UserID, HashedToken: "revoked", Revoked: true, ExpiresAt: time.Now().Add(time.Hour)},
		{UserID: user.UserID, HashedToken: "live", ExpiresAt: time.Now().Add(time.Hour)},
	}
	if err := db.Create(&tokens).Error; err != nil {
		t.Fatalf("create tokens: %v", err)
	}

	PurgeRefreshTokens(db)

	var remaining []model.RefreshToken
	if err := db.Find(&remaining).Error; err != nil {
		t.Fatalf("list tokens: %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("len(remaining) = %d, want 1", len(remaining))
	}
	if remaining[0].HashedToken != "live" {
		t.Errorf("remaining token = %q, want live", remaining[0].HashedToken)
	}
}
