package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/MustaliSadikot/pg-finder-ms/internal/auth"
	"github.com/MustaliSadikot/pg-finder-ms/internal/cache"
	"github.com/MustaliSadikot/pg-finder-ms/internal/config"
	"github.com/MustaliSadikot/pg-finder-ms/internal/events"
	"github.com/MustaliSadikot/pg-finder-ms/internal/handler"
	"github.com/MustaliSadikot/pg-finder-ms/internal/middleware"
	"github.com/MustaliSadikot/pg-finder-ms/internal/notification"
	"github.com/MustaliSadikot/pg-finder-ms/internal/repository"
	"github.com/MustaliSadikot/pg-finder-ms/internal/repository/memory"
	"github.com/MustaliSadikot/pg-finder-ms/internal/router"
	"github.com/MustaliSadikot/pg-finder-ms/internal/scheduler"
	"github.com/MustaliSadikot/pg-finder-ms/internal/service"
	"github.com/MustaliSadikot/pg-finder-ms/internal/service/ports"
	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/redis"
)

const migrationsDir = "migrations"

type stores struct {
	users    ports.UserRepo
	listings ports.ListingRepo
	rooms    ports.RoomRepo
	beds     ports.BedRepo
	bookings ports.BookingRepo
}

type publisher interface {
	ports.BookingEventPublisher
	Close() error
}

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	publisher  publisher
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"PGFinder",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	st, err := app.initStores()
	if err != nil {
		return nil, fmt.Errorf("init stores: %w", err)
	}

	if err = app.initServices(st); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initStores() (stores, error) {
	if a.cfg.Storage.Driver == config.StorageDriverMemory {
		a.log.LogAttrs(context.Background(), logger.WarnLevel, "using in-memory store, data is lost on restart")
		m := memory.New()
		return stores{
			users:    m.Users(),
			listings: m.Listings(),
			rooms:    m.Rooms(),
			beds:     m.Beds(),
			bookings: m.Bookings(),
		}, nil
	}

	if err := a.runMigrations(); err != nil {
		return stores{}, fmt.Errorf("migrations: %w", err)
	}

	if err := a.initDB(); err != nil {
		return stores{}, fmt.Errorf("init db: %w", err)
	}

	return stores{
		users:    repository.NewUserRepo(a.db),
		listings: repository.NewListingRepo(a.db),
		rooms:    repository.NewRoomRepo(a.db),
		beds:     repository.NewBedRepo(a.db),
		bookings: repository.NewBookingRepo(a.db),
	}, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns:    a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    a.cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: a.cfg.Postgres.ConnMaxLifetime,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

// initCache falls back to an always-miss cache when Redis is not configured
// or unreachable at start.
func (a *App) initCache() ports.ListingCache {
	if !a.cfg.Redis.Enabled() {
		a.log.Info("redis address is empty, listing cache disabled")
		return cache.Disabled{}
	}

	client := redis.New(a.cfg.Redis.Addr, a.cfg.Redis.Password, a.cfg.Redis.DB)
	if err := client.Ping(context.Background()); err != nil {
		a.log.LogAttrs(context.Background(), logger.WarnLevel, "redis unreachable, listing cache disabled",
			logger.String("addr", a.cfg.Redis.Addr),
			logger.String("error", err.Error()),
		)
		_ = client.Close()
		return cache.Disabled{}
	}

	a.redis = client
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connected",
		logger.String("addr", a.cfg.Redis.Addr),
		logger.Duration("ttl", a.cfg.Redis.CacheTTL),
	)

	return cache.NewListingCache(client, a.cfg.Redis.CacheTTL)
}

func (a *App) initPublisher() publisher {
	if !a.cfg.Kafka.Enabled() {
		a.log.Info("kafka brokers are empty, booking events disabled")
		return events.Noop{}
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "kafka publisher configured",
		logger.String("brokers", a.cfg.Kafka.Brokers),
		logger.String("topic", a.cfg.Kafka.Topic),
	)

	return events.NewKafkaPublisher(a.cfg.Kafka.BrokerList(), a.cfg.Kafka.Topic, a.log)
}

func (a *App) initServices(st stores) error {
	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	listingCache := a.initCache()
	a.publisher = a.initPublisher()

	tokens := auth.NewJWTManager(a.cfg.Auth.JWTSecret, a.cfg.Auth.Issuer, a.cfg.Auth.TokenTTL)
	hasher := auth.NewBcryptHasher(a.cfg.Auth.BcryptCost)

	userService := service.NewUserService(st.users, hasher, tokens)
	listingService := service.NewListingService(st.listings, st.rooms, st.beds, listingCache, a.log)
	roomService := service.NewRoomService(st.rooms, st.beds, st.listings, st.bookings, a.log)
	bookingService := service.NewBookingService(
		st.bookings, st.listings, st.rooms, st.beds, st.users,
		n, a.publisher, a.log, a.cfg.Booking.PendingTTL,
	)

	a.scheduler = scheduler.New(
		bookingService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(listingService, roomService, bookingService, userService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.Auth(userService),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.cfg.Booking.PendingTTL > 0 {
		go a.scheduler.Start(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.publisher.Close(); err != nil {
		a.log.LogAttrs(context.Background(), logger.WarnLevel, "close kafka publisher",
			logger.String("error", err.Error()),
		)
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.LogAttrs(context.Background(), logger.WarnLevel, "close redis",
				logger.String("error", err.Error()),
			)
		}
	}

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
