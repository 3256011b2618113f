package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"salonbook/config"
	"salonbook/cron"
	"salonbook/database"
	bookingRepoPkg "salonbook/database/repository/booking"
	companyRepoPkg "salonbook/database/repository/company"
	"salonbook/handlers"
	"salonbook/middleware"
	"salonbook/routes"
	"salonbook/services/availability"
	"salonbook/services/bookingsvc"
	"salonbook/services/companysvc"
	"salonbook/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueClient.Close()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	companyRepo := companyRepoPkg.NewMongoCompanyRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	companyService := &companysvc.DefaultCompanyService{
		Repo: companyRepo,
	}
	bookingService := &bookingsvc.DefaultBookingService{
		CompanyRepo:  companyRepo,
		BookingRepo:  bookingRepo,
		Cache:        utils.GetCacheClient(),
		Queue:        queueClient,
		Policy:       availability.Policy{BufferBlocksConflicts: config.AppConfig.BufferBlocksConflicts},
		WindowDays:   config.AppConfig.BookingWindowDays,
		ReminderLead: time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute,
	}

	availabilityHandler := handlers.NewAvailabilityHandler(bookingService)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	companyHandler := handlers.NewCompanyHandler(companyService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		GetAvailableTimesHandler: availabilityHandler.GetTimesHandler,
		GetAvailableDatesHandler: availabilityHandler.GetDatesHandler,
		GetAvailableStaffHandler: availabilityHandler.GetStaffHandler,

		CreateBookingHandler:    bookingHandler.CreateBookingHandler,
		CancelBookingHandler:    bookingHandler.CancelBookingHandler,
		UpdateStatusHandler:     bookingHandler.UpdateStatusHandler,
		ConfirmPreBookedHandler: bookingHandler.ConfirmPreBookedHandler,
		GetCalendarHandler:      bookingHandler.GetCalendarHandler,

		RegisterCompanyHandler: companyHandler.RegisterCompanyHandler,
		GetCompanyHandler:      companyHandler.GetCompanyHandler,
		GetWorkingHoursHandler: companyHandler.GetWorkingHoursHandler,
		SetWorkingHoursHandler: companyHandler.SetWorkingHoursHandler,
		ListStaffHandler:       companyHandler.ListStaffHandler,
		AddStaffHandler:        companyHandler.AddStaffHandler,
		UpdateStaffHandler:     companyHandler.UpdateStaffHandler,
		RemoveStaffHandler:     companyHandler.RemoveStaffHandler,
		ListServicesHandler:    companyHandler.ListServicesHandler,
		AddServiceHandler:      companyHandler.AddServiceHandler,
		UpdateServiceHandler:   companyHandler.UpdateServiceHandler,
		RemoveServiceHandler:   companyHandler.RemoveServiceHandler,
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background work: reminder delivery and PreBooked expiry.
	cron.InitReminderWorker(bookingRepo, cron.LogReminderSink{})
	expirySweep := cron.StartExpirySweep(bookingRepo)
	defer expirySweep.Stop()

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", zap.String("port", config.AppConfig.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
}
