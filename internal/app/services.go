package app

import (
	"database/sql"

	"github.com/bagdasarian/club-shop/internal/cache"
	"github.com/bagdasarian/club-shop/internal/config"
	"github.com/bagdasarian/club-shop/internal/repository"
	"github.com/bagdasarian/club-shop/internal/repository/postgres"
	"github.com/bagdasarian/club-shop/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Services - собранный слой сервисов, общий для HTTP API и консоли
type Services struct {
	Teams      service.TeamService
	Members    service.MemberService
	Categories service.CategoryService
	Products   service.ProductService
	Orders     service.OrderService
	Payments   service.PaymentService
	Analytics  service.AnalyticsService
	Settings   service.SettingsService
}

// NewServices связывает репозитории и сервисы. При rdb != nil
// чтение каталога идет через кэш Redis.
func NewServices(database *sql.DB, rdb *redis.Client, cfg *config.Config, log logrus.FieldLogger) *Services {
	teamRepo := postgres.NewTeamRepository(database)
	memberRepo := postgres.NewMemberRepository(database)
	orderRepo := postgres.NewOrderRepository(database)
	itemRepo := postgres.NewOrderItemRepository(database)
	paymentRepo := postgres.NewPaymentRepository(database)
	settingsRepo := postgres.NewSettingsRepository(database)
	analyticsRepo := postgres.NewAnalyticsRepository(database)

	var (
		categoryRepo repository.CategoryRepository = postgres.NewCategoryRepository(database)
		productRepo  repository.ProductRepository  = postgres.NewProductRepository(database)
	)
	if rdb != nil {
		categoryRepo = cache.NewCachedCategoryRepository(categoryRepo, rdb, cfg.Redis.TTL, log)
		productRepo = cache.NewCachedProductRepository(productRepo, rdb, cfg.Redis.TTL, log)
	}

	txManager := postgres.NewTxManager(database)
	margin := cfg.Shop.DefaultMarginPercent
	ledger := service.NewLedger(memberRepo, log)

	productService := service.NewProductService(productRepo, settingsRepo, txManager, margin, log)

	return &Services{
		Teams:      service.NewTeamService(teamRepo),
		Members:    service.NewMemberService(memberRepo),
		Categories: service.NewCategoryService(categoryRepo),
		Products:   productService,
		Orders:     service.NewOrderService(orderRepo, itemRepo, memberRepo, productRepo, ledger, txManager),
		Payments:   service.NewPaymentService(paymentRepo, memberRepo, txManager, log),
		Analytics:  service.NewAnalyticsService(analyticsRepo, memberRepo),
		Settings:   service.NewSettingsService(settingsRepo, productService, txManager, margin),
	}
}

// ConnectCache возвращает nil, если кэш не настроен или Redis недоступен
func ConnectCache(cfg config.RedisConfig, log logrus.FieldLogger) *redis.Client {
	if cfg.Addr == "" {
		log.Info("redis is not configured, catalog cache disabled")
		return nil
	}

	rdb, err := cache.ConnectRedis(cfg)
	if err != nil {
		log.WithError(err).Warn("redis is unavailable, catalog cache disabled")
		return nil
	}

	log.WithField("addr", cfg.Addr).Info("connected to redis")
	return rdb
}
