package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	authModel "github.com/thales-vaz-sousa/sistema-atas/internals/features/auth/model"
)

func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		// TTL via env (padrão: 7 dias)
		ttlDays := 7
		if val := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil {
				ttlDays = parsed
			}
		}

		for {
			log.Println("[CLEANUP] Limpando token_blacklist...")

			deleteBefore := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)

			result := db.
				Where("expired_at < ?", deleteBefore).
				Delete(&authModel.TokenBlacklist{})
			if result.Error != nil {
				log.Printf("[CLEANUP ERROR] Falha ao remover tokens expirados: %v", result.Error)
			} else if result.RowsAffected > 0 {
				log.Printf("[CLEANUP] %d tokens expirados removidos", result.RowsAffected)
			}

			time.Sleep(24 * time.Hour)
		}
	}()
}
