package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"detailflow/config"
	"detailflow/database"
	bookingRepoPkg "detailflow/database/repository/booking"
	communicationRepoPkg "detailflow/database/repository/communication"
	customerRepoPkg "detailflow/database/repository/customer"
	ledgerRepoPkg "detailflow/database/repository/ledger"
	vehicleRepoPkg "detailflow/database/repository/vehicle"
	"detailflow/handlers"
	"detailflow/middleware"
	"detailflow/routes"
	"detailflow/services/crm"
	"detailflow/services/finance"
	"detailflow/services/scheduler"
	"detailflow/skills"
	"detailflow/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	mongoClient, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	db := mongoClient.Database(config.AppConfig.DatabaseName)

	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), mongoClient)
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	customerRepo := customerRepoPkg.NewMongoCustomerRepo(db)
	vehicleRepo := vehicleRepoPkg.NewMongoVehicleRepo(db)
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(db)
	communicationRepo := communicationRepoPkg.NewMongoCommunicationRepo(db)
	ledgerRepo := ledgerRepoPkg.NewMongoLedgerRepo(db)

	// Services.
	crmService := &crm.DefaultCRMService{
		Customers: customerRepo,
		Vehicles:  vehicleRepo,
		Bookings:  bookingRepo,
		Comms:     communicationRepo,
		Cache:     utils.GetCacheClient(),
	}
	schedulerService := &scheduler.DefaultSchedulerService{
		Bookings:         bookingRepo,
		WorkingHourStart: config.AppConfig.WorkingHourStart,
		WorkingHourEnd:   config.AppConfig.WorkingHourEnd,
	}
	financeService := &finance.DefaultFinanceService{
		Bookings:  bookingRepo,
		Ledger:    ledgerRepo,
		Customers: customerRepo,
		Currency:  config.AppConfig.Currency,
	}

	// Tool registry.
	registry := skills.NewRegistry()
	skills.RegisterCRMTools(registry, crmService)
	skills.RegisterSchedulerTools(registry, schedulerService)
	skills.RegisterFinanceTools(registry, financeService)
	skills.RegisterExtractTools(registry)

	skillsHandler := &handlers.SkillsHandler{Registry: registry}
	routes.RegisterRoutes(router, skillsHandler)

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := mongoClient.Disconnect(ctx); err != nil {
		logger.Sugar().Warnf("main: failed to disconnect MongoDB: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
