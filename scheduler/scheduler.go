package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"taskmanagerpro/model"
)

// StartScheduler runs the hourly refresh-token purge in the background.
func StartScheduler(db *gorm.DB) {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc("0 0 * * * *", func() {
		PurgeRefreshTokens(db)
	})
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}

	c.Start()
	log.Println("Scheduler started")
}

// PurgeRefreshTokens deletes rows that are expired or revoked; they can no
// longer redeem an access token.
func PurgeRefreshTokens(db *gorm.DB) {
	result := db.Where("expires_at < ? OR revoked = ?", time.Now(), true).
		Delete(&model.RefreshToken{})
	if result.Error != nil {
		log.Printf("Refresh token purge failed: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Purged %d refresh tokens", result.RowsAffected)
	}
}
