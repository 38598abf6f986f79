package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"wishbox-backend/internal/config"
	infraCache "wishbox-backend/internal/infrastructure/cache"
	"wishbox-backend/internal/infrastructure/database"
	"wishbox-backend/internal/realtime"
	"wishbox-backend/pkg/cache"
	"wishbox-backend/pkg/jwt"
	"wishbox-backend/pkg/logger"

	"wishbox-backend/internal/domains/contribution"
	contributionHandler "wishbox-backend/internal/domains/contribution/handler"
	contributionRepo "wishbox-backend/internal/domains/contribution/repository"
	contributionService "wishbox-backend/internal/domains/contribution/service"
	"wishbox-backend/internal/domains/item"
	itemHandler "wishbox-backend/internal/domains/item/handler"
	itemRepo "wishbox-backend/internal/domains/item/repository"
	itemService "wishbox-backend/internal/domains/item/service"
	"wishbox-backend/internal/domains/reservation"
	reservationHandler "wishbox-backend/internal/domains/reservation/handler"
	reservationRepo "wishbox-backend/internal/domains/reservation/repository"
	reservationService "wishbox-backend/internal/domains/reservation/service"
	"wishbox-backend/internal/domains/scrape"
	scrapeHandler "wishbox-backend/internal/domains/scrape/handler"
	scrapeService "wishbox-backend/internal/domains/scrape/service"
	"wishbox-backend/internal/domains/user"
	userHandler "wishbox-backend/internal/domains/user/handler"
	userRepo "wishbox-backend/internal/domains/user/repository"
	userService "wishbox-backend/internal/domains/user/service"
	"wishbox-backend/internal/domains/wishlist"
	wishlistHandler "wishbox-backend/internal/domains/wishlist/handler"
	wishlistRepo "wishbox-backend/internal/domains/wishlist/repository"
	wishlistService "wishbox-backend/internal/domains/wishlist/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph. Everything in it is a
// singleton for the process lifetime; construction order is config →
// infrastructure → repositories → services → handlers.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================

	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager
	Hub        *realtime.Hub

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================

	UserRepo         user.Repository
	WishlistRepo     wishlist.Repository
	ItemRepo         item.Repository
	ReservationRepo  reservation.Repository
	ContributionRepo contribution.Repository

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================

	UserService         user.Service
	WishlistService     wishlist.Service
	ItemService         item.Service
	ReservationService  reservation.Service
	ContributionService contribution.Service
	ScrapeService       scrape.Service

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================

	UserHandler         *userHandler.UserHandler
	WishlistHandler     *wishlistHandler.WishlistHandler
	ItemHandler         *itemHandler.ItemHandler
	ReservationHandler  *reservationHandler.ReservationHandler
	ContributionHandler *contributionHandler.ContributionHandler
	ScrapeHandler       *scrapeHandler.ScrapeHandler
	RealtimeHandler     *realtime.Handler
}

// NewContainer builds the whole dependency graph. It fails fast: a bad
// config or unreachable database stops the process before it serves a
// single request. Redis being down is logged but not fatal.
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	logger.Init(cfg.App.Environment)
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	log.Println("🗄️  Connecting to PostgreSQL...")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	c.DB = db
	log.Println("✅ Database connected")

	// ========================================
	// STEP 3: INITIALIZE CACHE
	// ========================================
	log.Println("🔴 Connecting to Redis...")

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			// Redis failure is not critical: the cache degrades to
			// misses and every read falls through to Postgres.
			log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
		} else {
			log.Println("✅ Redis connected")
		}
	}
	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
	)
	c.Hub = realtime.NewHub()

	// ========================================
	// STEP 4: INITIALIZE REPOSITORIES
	// ========================================
	log.Println("📦 Initializing repositories...")
	c.initRepositories()

	// ========================================
	// STEP 5: INITIALIZE SERVICES
	// ========================================
	log.Println("⚙️  Initializing services...")
	c.initServices()

	// ========================================
	// STEP 6: INITIALIZE HANDLERS
	// ========================================
	log.Println("🎯 Initializing handlers...")
	c.initHandlers()

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.UserRepo = userRepo.NewUserRepository(pool)
	c.WishlistRepo = wishlistRepo.NewWishlistRepository(pool, c.Cache)
	c.ItemRepo = itemRepo.NewItemRepository(pool)
	c.ReservationRepo = reservationRepo.NewReservationRepository(pool)
	c.ContributionRepo = contributionRepo.NewContributionRepository(pool)
}

func (c *Container) initServices() {
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)
	c.WishlistService = wishlistService.NewWishlistService(c.WishlistRepo, c.ItemRepo)
	c.ItemService = itemService.NewItemService(c.ItemRepo, c.WishlistRepo, c.Hub)
	c.ReservationService = reservationService.NewReservationService(
		c.ReservationRepo, c.ItemRepo, c.WishlistRepo, c.Hub)
	c.ContributionService = contributionService.NewContributionService(
		c.ContributionRepo, c.ItemRepo, c.WishlistRepo, c.Hub)
	c.ScrapeService = scrapeService.NewScrapeService(c.Config.Scraper)
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.WishlistHandler = wishlistHandler.NewWishlistHandler(c.WishlistService)
	c.ItemHandler = itemHandler.NewItemHandler(c.ItemService)
	c.ReservationHandler = reservationHandler.NewReservationHandler(c.ReservationService)
	c.ContributionHandler = contributionHandler.NewContributionHandler(c.ContributionService)
	c.ScrapeHandler = scrapeHandler.NewScrapeHandler(c.ScrapeService)
	c.RealtimeHandler = realtime.NewHandler(c.Hub)
}

// ========================================
// CLEANUP
// ========================================

// Cleanup releases infrastructure resources in reverse order of
// initialization. Called from main via defer.
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container...")

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Printf("⚠️  Failed to close Redis: %v", err)
		}
	}

	if c.DB != nil {
		c.DB.Close()
	}

	log.Println("✅ Container cleaned up")
}
