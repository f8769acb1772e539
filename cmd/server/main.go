package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogapp "github.com/shopstack/backend/internal/application/catalog"
	inventoryapp "github.com/shopstack/backend/internal/application/inventory"
	partnerapp "github.com/shopstack/backend/internal/application/partner"
	reportapp "github.com/shopstack/backend/internal/application/report"
	tradeapp "github.com/shopstack/backend/internal/application/trade"
	"github.com/shopstack/backend/internal/infrastructure/config"
	"github.com/shopstack/backend/internal/infrastructure/logger"
	"github.com/shopstack/backend/internal/infrastructure/persistence"
	"github.com/shopstack/backend/internal/interfaces/http/handler"
	"github.com/shopstack/backend/internal/interfaces/http/middleware"
	"github.com/shopstack/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting shopstack backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, log, logger.MapGormLogLevel(cfg.Log.Level))
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	unitRepo := persistence.NewGormProductUnitRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	warehouseRepo := persistence.NewGormWarehouseRepository(db.DB)
	saleRepo := persistence.NewGormSaleRepository(db.DB)
	purchaseRepo := persistence.NewGormPurchaseRepository(db.DB)
	stockRepo := persistence.NewGormStockRepository(db.DB)

	salesReportRepo := persistence.NewGormSalesReportRepository(db.DB)
	purchaseReportRepo := persistence.NewGormPurchaseReportRepository(db.DB)
	stockReportRepo := persistence.NewGormStockReportRepository(db.DB)
	dueReportRepo := persistence.NewGormDueReportRepository(db.DB)
	profitReportRepo := persistence.NewGormProfitReportRepository(db.DB)
	dashboardRepo := persistence.NewGormDashboardRepository(db.DB)

	// Application services
	productService := catalogapp.NewProductService(productRepo)
	categoryService := catalogapp.NewCategoryService(categoryRepo)
	unitService := catalogapp.NewProductUnitService(unitRepo)
	customerService := partnerapp.NewCustomerService(customerRepo)
	supplierService := partnerapp.NewSupplierService(supplierRepo)
	warehouseService := partnerapp.NewWarehouseService(warehouseRepo)
	saleService := tradeapp.NewSaleService(saleRepo, stockRepo)
	purchaseService := tradeapp.NewPurchaseService(purchaseRepo, stockRepo)
	stockService := inventoryapp.NewStockService(stockRepo)

	reportService := reportapp.NewReportService(salesReportRepo, purchaseReportRepo, stockReportRepo, dueReportRepo)
	profitService := reportapp.NewProfitService(profitReportRepo)
	exportService := reportapp.NewExportService(reportService)
	dashboardService := reportapp.NewDashboardService(dashboardRepo)

	// HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}
	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.CORSWithConfig(middleware.DefaultCORSConfig()),
	)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewDashboardHandler(dashboardService))
	r.Register(handler.NewReportHandler(reportService, profitService, exportService))
	r.Register(handler.NewProductHandler(productService))
	r.Register(handler.NewCategoryHandler(categoryService))
	r.Register(handler.NewProductUnitHandler(unitService))
	r.Register(handler.NewCustomerHandler(customerService))
	r.Register(handler.NewSupplierHandler(supplierService))
	r.Register(handler.NewWarehouseHandler(warehouseService))
	r.Register(handler.NewSaleHandler(saleService))
	r.Register(handler.NewPurchaseHandler(purchaseService))
	r.Register(handler.NewStockHandler(stockService))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}
