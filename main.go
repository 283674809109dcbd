package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fixel/config"
	"fixel/cron"
	"fixel/database"
	"fixel/database/repository"
	"fixel/handlers"
	"fixel/middleware"
	"fixel/routes"
	"fixel/services/auth"
	"fixel/services/booking"
	"fixel/services/dispatch"
	"fixel/services/notification"
	"fixel/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	db := database.InitDB()
	utils.InitAuthCache()
	fcmClient := utils.FirebaseInit()

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer asynqClient.Close()

	// repositories.
	userRepo := repository.NewMongoUserRepo(db)
	technicianRepo := repository.NewMongoTechnicianRepo(db)
	serviceRepo := repository.NewMongoServiceRepo(db)
	bookingRepo := repository.NewMongoBookingRepo(db)
	offerRepo := repository.NewMongoOfferRepo(db)
	assignmentRepo := repository.NewMongoAssignmentRepo(db)
	notificationRepo := repository.NewMongoNotificationRepo(db)

	// services.
	notifService := &notification.DefaultService{
		Users:         userRepo,
		Technicians:   technicianRepo,
		Notifications: notificationRepo,
		FCM:           fcmClient,
		AsynqClient:   asynqClient,
		Mailer:        notification.NewMailerFromConfig(),
	}

	engine := &dispatch.DefaultEngine{
		Services:    serviceRepo,
		Technicians: technicianRepo,
		Offers:      offerRepo,
		Bookings:    bookingRepo,
		Assignments: assignmentRepo,
		Notifier:    notifService,
	}

	bookingService := &booking.DefaultService{
		Bookings:    bookingRepo,
		Services:    serviceRepo,
		Assignments: assignmentRepo,
		Technicians: technicianRepo,
		Users:       userRepo,
		Engine:      engine,
		Notifier:    notifService,
	}

	accountService := &auth.AccountService{
		Users:       userRepo,
		Technicians: technicianRepo,
	}

	guard := &auth.Guard{
		Verifier:    auth.JWTVerifier{},
		Users:       userRepo,
		Technicians: technicianRepo,
	}

	cron.InitReminderWorker(notifService)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	handlerBundle := &routes.HandlerBundle{
		Guard:         guard,
		Users:         handlers.NewUserHandler(accountService, userRepo),
		Bookings:      handlers.NewBookingHandler(bookingService, logger),
		Technicians:   handlers.NewTechnicianHandler(engine, bookingService, accountService),
		Services:      handlers.NewServiceHandler(serviceRepo),
		Notifications: handlers.NewNotificationHandler(notificationRepo),
		Admin:         handlers.NewAdminHandler(serviceRepo, technicianRepo),
	}
	routes.RegisterRoutes(router, handlerBundle)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("Starting server on port %s...", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("Server exited cleanly")
}
