// File: bookday/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookday/config"
	"bookday/database"
	bookingRepoPkg "bookday/database/repository/booking"
	catalogRepoPkg "bookday/database/repository/catalog"
	couponRepoPkg "bookday/database/repository/coupon"
	holdRepoPkg "bookday/database/repository/hold"
	referralRepoPkg "bookday/database/repository/referral"
	"bookday/handlers"
	"bookday/middleware"
	"bookday/routes"
	bookingSvc "bookday/services/booking"
	"bookday/services/checkout"
	referralSvc "bookday/services/referral"
	"bookday/services/reservation"
	"bookday/services/tasks"
	upgradeSvc "bookday/services/upgrade"
	"bookday/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	dbName := config.AppConfig.DatabaseName
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(dbName)
	holdRepo := holdRepoPkg.NewMongoHoldRepo(dbName)
	referralRepo := referralRepoPkg.NewMongoReferralRepo(dbName)
	couponRepo := couponRepoPkg.NewMongoCouponRepo(dbName)
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo(dbName)

	// background email delivery.
	redisOpt := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
	asynqClient := asynq.NewClient(redisOpt)
	defer asynqClient.Close()
	mailer := &tasks.AsynqMailer{Client: asynqClient, From: config.AppConfig.MailFrom}

	asynqServer := asynq.NewServer(redisOpt, asynq.Config{Concurrency: 5})
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeEmailDeliver, tasks.HandleEmailDeliveryTask)
	go func() {
		if err := asynqServer.Run(mux); err != nil {
			logger.Sugar().Fatalf("main: email worker failed to start: %v", err)
		}
	}()

	// services.
	reservationService := &reservation.DefaultReservationService{
		Holds:    holdRepo,
		Bookings: bookingRepo,
		HoldTTL:  config.HoldTTL(),
	}
	bookingService := &bookingSvc.DefaultBookingService{
		Repo:      bookingRepo,
		Referrals: referralRepo,
	}
	referralService := &referralSvc.DefaultReferralService{
		Repo:    referralRepo,
		Coupons: couponRepo,
		Mailer:  mailer,
	}
	upgradeService := &upgradeSvc.DefaultUpgradeService{
		Bookings: bookingRepo,
		Catalog:  catalogRepo,
	}
	sessionStore := checkout.NewSessionStore(utils.GetSessionCacheClient(), config.HoldTTL())

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Checkout: handlers.NewCheckoutHandler(reservationService, bookingService, referralService, sessionStore, mailer),
		Booking:  handlers.NewBookingHandler(bookingService),
		Referral: handlers.NewReferralHandler(referralService),
		Creator:  handlers.NewCreatorHandler(referralService),
		Upgrade:  handlers.NewUpgradeHandler(upgradeService, catalogRepo),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetSessionCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	asynqServer.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
