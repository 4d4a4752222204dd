package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/boardflab/boardflab-backend/internal/config"
	"github.com/boardflab/boardflab-backend/internal/domain"
	"github.com/boardflab/boardflab-backend/internal/migration"
	pkgcache "github.com/boardflab/boardflab-backend/pkg/cache"
	pkglogger "github.com/boardflab/boardflab-backend/pkg/logger"
	pkgredis "github.com/boardflab/boardflab-backend/pkg/redis"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "config file path (default configs/config.<APP_ENV>.yaml)")
	seed := flag.Bool("seed", true, "insert default boards when the boards table is empty")
	flushCache := flag.Bool("flush-board-cache", false, "drop cached board login flags after migrating")
	verbose := flag.Bool("verbose", false, "verbose SQL logging")
	flag.Parse()

	env := config.ResolveEnv()
	config.LoadDotEnv(env)
	pkglogger.InitStructured(env)

	if *configPath == "" {
		*configPath = fmt.Sprintf("configs/config.%s.yaml", env)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logLevel := gormlogger.Warn
	if *verbose {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(mysql.Open(cfg.Database.GetDSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get underlying DB: %v", err)
	}
	defer sqlDB.Close()

	if *seed {
		err = migration.Run(db)
	} else {
		err = migration.AutoMigrate(db)
	}
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	pkglogger.Info("Migration complete (seed=%v)", *seed)

	if *flushCache {
		flushBoardCache(db, cfg)
	}
}

// flushBoardCache 게시판 설정을 DB에서 직접 바꾼 뒤 캐시된 로그인 필요 여부를 비움
func flushBoardCache(db *gorm.DB, cfg *config.Config) {
	redisClient, err := pkgredis.NewClient(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.PoolSize)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	var ids []uint64
	if err := db.Model(&domain.Board{}).Pluck("id", &ids).Error; err != nil {
		log.Fatalf("Failed to list boards: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cacheService := pkgcache.NewService(redisClient)
	for _, id := range ids {
		if err := cacheService.InvalidateBoard(ctx, id); err != nil {
			log.Fatalf("Failed to invalidate board %d: %v", id, err)
		}
	}
	pkglogger.Info("Flushed cache for %d boards", len(ids))
}
