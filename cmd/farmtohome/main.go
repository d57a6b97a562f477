package main

import (
	"context"
	"log"

	router "github.com/Renal37/farm-to-home/internal/app"
	"github.com/Renal37/farm-to-home/internal/cache"
	"github.com/Renal37/farm-to-home/internal/database"
	"github.com/Renal37/farm-to-home/internal/logger"
	"github.com/Renal37/farm-to-home/internal/services"
	"github.com/Renal37/farm-to-home/internal/utils"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()
	config := NewConfig()

	if err := logger.Initialize(config.logLevel, config.env); err != nil {
		log.Fatalf("Logger wasn't initialized due to %s", err)
	}
	defer logger.Log.Sync()

	db, err := database.New(ctx, config.dsn)
	if err != nil {
		logger.Log.Fatal("database wasn't initialized", zap.Error(err))
	}

	if err := db.RunMigrations(); err != nil {
		logger.Log.Fatal("migrations weren't run", zap.Error(err))
	}

	var statsCache services.StatsCache
	var redisCache *cache.RedisCache
	if config.redisAddress != "" {
		redisCache, err = cache.NewRedisCache(ctx, config.redisAddress, config.redisPassword)
		if err != nil {
			logger.Log.Fatal("redis wasn't initialized", zap.Error(err))
		}
		statsCache = redisCache
	}

	eventBus := services.NewEventBus()
	milestoneService := services.NewMilestoneService(db)
	statsService := services.NewStatsService(db, statsCache)

	eventBus.Subscribe(milestoneService.HandleOrderCompleted)

	orderService := services.NewOrderService(db, eventBus)
	orderService.OnChange(statsService.Invalidate)

	utils.HandleTerminationProcess(func() {
		if redisCache != nil {
			_ = redisCache.Close()
		}
		db.Close()
		_ = logger.Log.Sync()
	})

	logger.Log.Info("running server", zap.String("endpoint", config.endpoint))

	err = router.New(
		router.Config{Endpoint: config.endpoint, OperatorKey: config.operatorKey},
		services.NewAuthService(db),
		services.NewJWTService(config.authSecretKey, services.DefaultTokenTTL),
		orderService,
		milestoneService,
		statsService,
	).Run()
	if err != nil {
		logger.Log.Fatal("server stopped", zap.Error(err))
	}
}
