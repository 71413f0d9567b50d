package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mayra-Sanchez/wm-backend/auth"
	"github.com/mayra-Sanchez/wm-backend/config"
	orderControllers "github.com/mayra-Sanchez/wm-backend/controllers/order"
	"github.com/mayra-Sanchez/wm-backend/database"
	"github.com/mayra-Sanchez/wm-backend/media"
	"github.com/mayra-Sanchez/wm-backend/repository"
	"github.com/mayra-Sanchez/wm-backend/routes"
)

func main() {
	log.Println("✅ Starting application...")

	cfg := config.Load()
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}

	// Init DB
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("❌ %v", err)
	}
	if err := database.SeedCategories(db); err != nil {
		log.Fatalf("❌ %v", err)
	}

	if err := os.MkdirAll(cfg.MediaRoot, 0o755); err != nil {
		log.Fatalf("❌ Failed to create media root: %v", err)
	}
	files := media.NewStore(cfg.MediaRoot, cfg.MediaURL)

	blacklist := auth.NewBlacklist(cfg, db)
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL, blacklist)

	r := routes.NewRouter(&routes.Deps{
		Config: cfg,
		Store:  repository.NewStore(db),
		Tokens: tokens,
		Media:  files,
		Hub:    orderControllers.NewHub(),
	})

	// Nightly media backup and blacklist cleanup
	go startDailyMaintenance(cfg, files, blacklist)

	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// startDailyMaintenance runs once a day at BACKUP_HOUR: it purges expired
// rows from the database blacklist and, when MEDIA_BACKUP_DIR is set, backs
// up the media root and prunes old backups.
func startDailyMaintenance(cfg *config.Config, files *media.Store, blacklist auth.Blacklist) {
	for {
		next := media.NextRun(time.Now(), cfg.BackupHour, 0)
		log.Printf("⏳ Next maintenance run scheduled at: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(time.Until(next))

		if dbBlacklist, ok := blacklist.(*auth.DBBlacklist); ok {
			n, err := dbBlacklist.Purge(context.Background(), time.Now())
			if err != nil {
				log.Printf("❌ Failed to purge token blacklist: %v", err)
			} else if n > 0 {
				log.Printf("🧹 Purged %d expired blacklisted tokens", n)
			}
		}

		if cfg.MediaBackupDir == "" {
			continue
		}
		dest, err := files.Backup(cfg.MediaBackupDir, time.Now())
		if err != nil {
			log.Printf("❌ %v", err)
		} else {
			log.Printf("✅ Images backed up to %s", dest)
		}
		media.CleanupBackups(cfg.MediaBackupDir, cfg.BackupRetention, time.Now())
	}
}
