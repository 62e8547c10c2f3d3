package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/greencycle/greencycle/internal/pkg/config"
	"github.com/greencycle/greencycle/internal/pkg/database"
	"github.com/greencycle/greencycle/internal/pkg/health"
	"github.com/greencycle/greencycle/internal/pkg/logger"
	"github.com/greencycle/greencycle/internal/pkg/middleware"
	nsqpkg "github.com/greencycle/greencycle/internal/pkg/nsq"
	"github.com/greencycle/greencycle/internal/pkg/server"
	donationshandler "github.com/greencycle/greencycle/services/donations/handler"
	donationshttp "github.com/greencycle/greencycle/services/donations/handler/http"
	donationsrepo "github.com/greencycle/greencycle/services/donations/repository"
	donationsuc "github.com/greencycle/greencycle/services/donations/usecase"
	pickupsgw "github.com/greencycle/greencycle/services/pickups/gateway"
	pickupshandler "github.com/greencycle/greencycle/services/pickups/handler"
	pickupshttp "github.com/greencycle/greencycle/services/pickups/handler/http"
	pickupsrepo "github.com/greencycle/greencycle/services/pickups/repository"
	pickupsuc "github.com/greencycle/greencycle/services/pickups/usecase"
	routeshandler "github.com/greencycle/greencycle/services/routes/handler"
	routeshttp "github.com/greencycle/greencycle/services/routes/handler/http"
	routesrepo "github.com/greencycle/greencycle/services/routes/repository"
	routesuc "github.com/greencycle/greencycle/services/routes/usecase"
	statshandler "github.com/greencycle/greencycle/services/stats/handler"
	statshttp "github.com/greencycle/greencycle/services/stats/handler/http"
	statsrepo "github.com/greencycle/greencycle/services/stats/repository"
	statsuc "github.com/greencycle/greencycle/services/stats/usecase"
	trackinggw "github.com/greencycle/greencycle/services/tracking/gateway"
	trackinghandler "github.com/greencycle/greencycle/services/tracking/handler"
	trackinghttp "github.com/greencycle/greencycle/services/tracking/handler/http"
	trackingrepo "github.com/greencycle/greencycle/services/tracking/repository"
	trackinguc "github.com/greencycle/greencycle/services/tracking/usecase"
	usershandler "github.com/greencycle/greencycle/services/users/handler"
	usershttp "github.com/greencycle/greencycle/services/users/handler/http"
	usersrepo "github.com/greencycle/greencycle/services/users/repository"
	usersuc "github.com/greencycle/greencycle/services/users/usecase"
)

func main() {
	cfg := config.InitConfig("./config")

	zapLogger, err := logger.NewZapLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	// PostgreSQL
	postgresClient, err := database.NewPostgresClient(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()
	db := postgresClient.GetDB()

	// Redis
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// NSQ producer is optional; gateways degrade to log-only when absent
	var producer *nsqpkg.Producer
	if cfg.NSQ.Enabled {
		producer, err = nsqpkg.NewProducer(cfg.NSQ.Address)
		if err != nil {
			logger.Fatal("Failed to connect to NSQ", logger.Err(err))
		}
		defer producer.Stop()
	}

	// Users
	userRepo := usersrepo.NewUserRepo(db)
	userUC := usersuc.NewUserUC(userRepo, cfg)
	userHandler := usershandler.NewHandler(usershttp.NewUserHandler(userUC), cfg)

	// Pickups
	pickupRepo := pickupsrepo.NewPickupRepo(db)
	pickupUC := pickupsuc.NewPickupUC(pickupRepo, pickupsgw.NewPickupGW(producer))
	pickupHandler := pickupshandler.NewHandler(pickupshttp.NewPickupHandler(pickupUC), cfg)

	// Donations
	donationRepo := donationsrepo.NewDonationRepo(db)
	donationUC := donationsuc.NewDonationUC(donationRepo)
	donationHandler := donationshandler.NewHandler(donationshttp.NewDonationHandler(donationUC), cfg)

	// Routes and stops
	routeRepo := routesrepo.NewRouteRepo(db)
	stopRepo := routesrepo.NewRouteStopRepo(db)
	routeUC := routesuc.NewRouteUC(routeRepo, stopRepo)
	routeHandler := routeshandler.NewHandler(
		routeshttp.NewRouteHandler(routeUC),
		routeshttp.NewRouteStopHandler(routeUC),
		cfg,
	)

	// Tracking
	trackingRepo := trackingrepo.NewTrackingRepo(db)
	locationCache := trackingrepo.NewLocationCache(redisClient)
	trackingUC := trackinguc.NewTrackingUC(trackingRepo, locationCache, trackinggw.NewTrackingGW(producer))
	trackingHandler := trackinghandler.NewHandler(trackinghttp.NewTrackingHandler(trackingUC))

	// Stats
	statsRepo := statsrepo.NewStatsRepo(db)
	statsUC := statsuc.NewStatsUC(statsRepo, cfg.Stats)
	statsHandler := statshandler.NewHandler(statshttp.NewStatsHandler(statsUC))

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, cfg.App.Name)

	userHandler.RegisterRoutes(e)
	pickupHandler.RegisterRoutes(e)
	donationHandler.RegisterRoutes(e)
	routeHandler.RegisterRoutes(e)
	trackingHandler.RegisterRoutes(e)
	statsHandler.RegisterRoutes(e)

	srv := server.NewGracefulServer(
		e,
		zapLogger,
		cfg.Server.Port,
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	if err := srv.Start(); err != nil {
		logger.Fatal("Server terminated", logger.Err(err))
	}
}
