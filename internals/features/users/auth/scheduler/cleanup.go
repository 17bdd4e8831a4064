package scheduler

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	authModel "swimclub_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler remove da blacklist (e dos refresh tokens)
// tudo que já expirou. Roda a cada hora até o ctx ser cancelado no shutdown.
func StartBlacklistCleanupScheduler(ctx context.Context, db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Println("[INFO] blacklist cleanup scheduler encerrado")
				return
			case <-ticker.C:
				cleanup(db)
			}
		}
	}()
}

func cleanup(db *gorm.DB) {
	res := db.Where("token_blacklist_expires_at < NOW()").Delete(&authModel.TokenBlacklist{})
	if res.Error != nil {
		log.Printf("[ERROR] blacklist cleanup: %v", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("[INFO] blacklist cleanup: %d tokens removidos", res.RowsAffected)
	}

	if err := db.Where("refresh_token_expires_at < NOW()").
		Delete(&authModel.RefreshTokenModel{}).Error; err != nil {
		log.Printf("[ERROR] refresh token cleanup: %v", err)
	}
}
