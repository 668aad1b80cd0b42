// internal/app/server.go
package app

import (
	"context"
	"fmt"

	"fleet-rental-service/internal/config"
	"fleet-rental-service/internal/db"
	vehicleHandler "fleet-rental-service/internal/handlers/vehicle"
	"fleet-rental-service/internal/middleware"
	"fleet-rental-service/internal/repository/mongodb"
	rentalService "fleet-rental-service/internal/service/rental"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Server struct {
	cfg         config.AppConfig
	engine      *gin.Engine
	logger      *zap.Logger
	mongoClient *mongo.Client
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	ctx := context.Background()

	// ----- Logger -----
	logger, err := buildLogger(s.cfg.AppEnv)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	s.logger = logger

	// ----- MongoDB (bounded retry; a final failure aborts startup) -----
	mongoClient, database, transactions, err := db.ConnectMongo(ctx, s.cfg.MongoURI, s.cfg.MongoDatabase, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	s.mongoClient = mongoClient

	// ----- Redis (rate limiting; skipped when unconfigured) -----
	var limiter *middleware.RateLimiter
	if s.cfg.RedisAddr != "" {
		redisClient, err := db.NewRedisClient(db.RedisConfig{
			Addr:     s.cfg.RedisAddr,
			Password: s.cfg.RedisPass,
			DB:       0,
			PoolSize: 10,
		})
		if err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
		limiter = middleware.NewRateLimiter(redisClient, logger, s.cfg.RateLimitPerMin, s.cfg.RateLimitWindow)
	} else {
		logger.Info("REDIS_ADDR not set, rate limiting disabled")
	}

	// ----- Repositories & Unit of Work -----
	dbHandle := mongodb.NewDB(mongoClient, database, transactions)
	unitFactory := mongodb.NewUnitOfWorkFactory(dbHandle, logger)

	// ----- Services (Usecases) -----
	rentals := rentalService.NewService(unitFactory, logger)

	// ----- Handlers -----
	vehicles := vehicleHandler.NewVehicleHandler(rentals)

	SetupRouter(s.engine, logger, limiter, &Handlers{
		VehicleHandler: vehicles,
	})

	logger.Info("starting HTTP server", zap.String("addr", s.cfg.HTTPAddr))
	return s.engine.Run(s.cfg.HTTPAddr)
}

// Shutdown releases the shared database handle.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.logger != nil {
		_ = s.logger.Sync()
	}
	if s.mongoClient != nil {
		return s.mongoClient.Disconnect(ctx)
	}
	return nil
}

func buildLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
