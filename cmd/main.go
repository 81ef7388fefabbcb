package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	adminapp "github.com/hotelops/minibar/application/admin"
	reconcileapp "github.com/hotelops/minibar/application/reconcile"
	roomstateapp "github.com/hotelops/minibar/application/roomstate"
	stockapp "github.com/hotelops/minibar/application/stock"
	userapp "github.com/hotelops/minibar/application/user"
	visitapp "github.com/hotelops/minibar/application/visit"
	"github.com/hotelops/minibar/cmd/config"
	redisclient "github.com/hotelops/minibar/cmd/redis"
	_ "github.com/hotelops/minibar/docs"
	minibarRepo "github.com/hotelops/minibar/repository/minibar"
	redisRepo "github.com/hotelops/minibar/repository/redis"
	roomRepo "github.com/hotelops/minibar/repository/room"
	setupRepo "github.com/hotelops/minibar/repository/setup"
	stockRepo "github.com/hotelops/minibar/repository/stock"
	txRepo "github.com/hotelops/minibar/repository/tx"
	userRepo "github.com/hotelops/minibar/repository/user"
	visitRepo "github.com/hotelops/minibar/repository/visit"
	"github.com/hotelops/minibar/thirdparty/rabbitmq"
	"github.com/hotelops/minibar/transport"
	"github.com/hotelops/minibar/utils/logger"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// @title MINIBAR API
// @version 1.0
// @description Hotel minibar replenishment and room visit API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Connect to RabbitMQ for do-not-disturb escalations
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Fatal("err connect rabbitmq publisher", zap.Error(err))
	}
	defer func() {
		_ = publisher.Close()
	}()

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.ServiceURL, cfg.Auth.InternalAPIKey)
	if err != nil {
		logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
	}
	defer func() {
		_ = consumer.Close()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start rabbitmq consumer", zap.Error(err))
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	RoomRepo := roomRepo.NewRoomRepository(db)
	SetupRepo := setupRepo.NewSetupRepository(db)
	StockRepo := stockRepo.NewStockRepository(db)
	MinibarRepo := minibarRepo.NewMinibarRepository(db)
	VisitRepo := visitRepo.NewVisitRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)
	ReconcileApp := reconcileapp.NewReconcileApp(TxRepo, StockRepo, MinibarRepo, SetupRepo, VisitRepo, RedisRepo)
	VisitApp := visitapp.NewVisitApp(TxRepo, VisitRepo, MinibarRepo, RoomRepo, publisher)
	RoomStateApp := roomstateapp.NewRoomStateApp(RoomRepo, SetupRepo, MinibarRepo, StockRepo, RedisRepo)
	StockApp := stockapp.NewStockApp(TxRepo, StockRepo)
	AdminApp := adminapp.NewAdminApp(TxRepo, RoomRepo, SetupRepo)

	httpTransport := transport.NewTransport(&transport.RestHandler{
		UserApp:      UserApp,
		ReconcileApp: ReconcileApp,
		VisitApp:     VisitApp,
		RoomStateApp: RoomStateApp,
		StockApp:     StockApp,
		AdminApp:     AdminApp,
	}, cfg.Auth.InternalAPIKey)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
