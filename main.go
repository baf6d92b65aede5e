package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fixify/config"
	"fixify/cron"
	"fixify/database"
	chatRepo "fixify/database/repository/chat"
	requestRepo "fixify/database/repository/request"
	scheduleRepo "fixify/database/repository/schedule"
	userRepo "fixify/database/repository/user"
	"fixify/handlers"
	"fixify/routes"
	"fixify/services/availability"
	"fixify/services/booking"
	"fixify/services/chat"
	"fixify/services/notification"
	"fixify/services/payment"
	"fixify/services/rating"
	"fixify/services/request"
	"fixify/services/schedule"
	"fixify/services/storage"
	"fixify/utils"

	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()
	defer logger.Sync()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.FirebaseInit()
	stripe.Key = config.AppConfig.StripeKey

	// Repositories.
	users := userRepo.NewMongoUserRepo()
	requests := requestRepo.NewMongoRequestRepo()
	schedules := scheduleRepo.NewMongoScheduleRepo()
	chats := chatRepo.NewMongoChatRepo()

	// Services.
	notifSvc := &notification.DefaultNotificationService{Users: users}
	availabilitySvc := &availability.DefaultAvailabilityService{
		Users:    users,
		Requests: requests,
		Schedule: schedules,
		Cache:    utils.GetCacheClient(),
	}
	requestSvc := &request.DefaultRequestService{Requests: requests}
	reminderClient := cron.NewReminderClient()
	bookingSvc := &booking.DefaultBookingCoordinator{
		Requests:     requests,
		Notification: notifSvc,
		Reminders:    reminderClient,
	}
	ratingSvc := &rating.DefaultRatingAggregator{Requests: requests}
	scheduleSvc := &schedule.DefaultScheduleService{Schedule: schedules}
	chatSvc := &chat.DefaultChatService{Chats: chats, Notification: notifSvc}
	paymentSvc := &payment.DefaultPaymentService{Requests: requests}

	storageSvc, err := storage.NewCloudinaryStorageService()
	if err != nil {
		logger.Fatal("failed to initialize storage service", zap.Error(err))
	}

	cron.InitReminderWorker(notifSvc)

	bundle := &handlers.HandlerBundle{
		Availability: handlers.NewAvailabilityHandler(availabilitySvc),
		Requests:     handlers.NewRequestHandler(requestSvc),
		Booking:      handlers.NewBookingHandler(bookingSvc),
		Rating:       handlers.NewRatingHandler(ratingSvc),
		Schedule:     handlers.NewScheduleHandler(scheduleSvc),
		Chat:         handlers.NewChatHandler(chatSvc),
		Users:        handlers.NewUserHandler(users),
		Payments:     handlers.NewPaymentHandler(paymentSvc),
		Storage:      handlers.NewStorageHandler(storageSvc, requests),
		Admin:        handlers.NewAdminHandler(requests, users),
	}

	router := routes.SetupRouter(bundle, utils.AuthClient, users)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", zap.String("port", config.AppConfig.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
	if err := database.MongoClient.Disconnect(ctx); err != nil {
		logger.Error("mongo disconnect failed", zap.Error(err))
	}
	logger.Info("server exited")
}
