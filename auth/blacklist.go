package auth

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mayra-Sanchez/wm-backend/config"
	"github.com/mayra-Sanchez/wm-backend/models"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Blacklist records revoked refresh tokens by jti.
type Blacklist interface {
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// DBBlacklist stores revoked tokens in the revoked_tokens table.
type DBBlacklist struct {
	db *gorm.DB
}

func NewDBBlacklist(db *gorm.DB) *DBBlacklist {
	return &DBBlacklist{db: db}
}

func (b *DBBlacklist) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	row := models.RevokedToken{JTI: jti, ExpiresAt: expiresAt}
	if err := b.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row).Error; err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}
	return nil
}

func (b *DBBlacklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	var count int64
	if err := b.db.WithContext(ctx).Model(&models.RevokedToken{}).
		Where("jti = ?", jti).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Purge deletes rows whose tokens have expired on their own.
func (b *DBBlacklist) Purge(ctx context.Context, now time.Time) (int64, error) {
	res := b.db.WithContext(ctx).Where("expires_at < ?", now).Delete(&models.RevokedToken{})
	return res.RowsAffected, res.Error
}

// RedisBlacklist keeps one key per revoked jti, expiring with the token.
type RedisBlacklist struct {
	rdb *redis.Client
}

func NewRedisBlacklist(rdb *redis.Client) *RedisBlacklist {
	return &RedisBlacklist{rdb: rdb}
}

func blacklistKey(jti string) string {
	return "blacklist:" + jti
}

func (b *RedisBlacklist) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := b.rdb.Set(ctx, blacklistKey(jti), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}
	return nil
}

func (b *RedisBlacklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := b.rdb.Exists(ctx, blacklistKey(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func ConnectRedis(cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     20,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return rdb, nil
}

// NewBlacklist picks Redis when REDIS_ADDR is configured and reachable,
// otherwise the database table.
func NewBlacklist(cfg *config.Config, db *gorm.DB) Blacklist {
	if cfg.RedisAddr != "" {
		rdb, err := ConnectRedis(cfg)
		if err == nil {
			log.Printf("✅ Token blacklist backed by Redis at %s", cfg.RedisAddr)
			return NewRedisBlacklist(rdb)
		}
		log.Printf("⚠️ %v, falling back to database blacklist", err)
	}
	return NewDBBlacklist(db)
}
