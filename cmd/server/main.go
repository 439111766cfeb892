package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"gstinvoice/internal/config"
	"gstinvoice/internal/email/noop"
	sesemail "gstinvoice/internal/email/ses"
	"gstinvoice/internal/handler"
	"gstinvoice/internal/logger"
	"gstinvoice/internal/pdf"
	"gstinvoice/internal/port"
	"gstinvoice/internal/repository"
	"gstinvoice/internal/repository/kvstore"
	"gstinvoice/internal/router"
	"gstinvoice/internal/service"
	s3storage "gstinvoice/internal/storage/s3"
)

// @title GST Invoice API
// @version 1.0
// @description Create, price, render and deliver Indian GST tax invoices.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		logrus.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log := logger.Setup(&cfg.Log)
	if err := cfg.Store.RequirePersistent(); err != nil {
		return fmt.Errorf("invalid store config: %w", err)
	}
	if !cfg.Store.Persistent() {
		log.Warn("running on the memory store, records and the invoice counter are lost on restart")
	}

	store, err := repository.Open(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	log.WithField("driver", cfg.Store.Driver).Info("record store ready")

	// Initialize repositories
	companyRepo := kvstore.NewCompanyRepo(store)
	customerRepo := kvstore.NewCustomerRepo(store)
	catalogRepo := kvstore.NewCatalogRepo(store)
	invoiceRepo := kvstore.NewInvoiceRepo(store)
	counterRepo := kvstore.NewCounterRepo(store)
	sessionRepo := kvstore.NewSessionRepo(store)

	// Initialize archive storage
	var objectStorage port.ObjectStorage
	if cfg.S3.Enabled {
		objectStorage, err = s3storage.NewArchiveStore(&cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	} else {
		log.Info("S3 archive disabled, invoice e-mail delivery is unavailable")
	}

	var emailSender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		emailSender, err = sesemail.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		emailSender = noop.NewNoopSender()
	}

	// Initialize services
	authSvc := service.NewAuthService(sessionRepo, cfg.JWT, cfg.Auth)
	companySvc := service.NewCompanyService(companyRepo)
	customerSvc := service.NewCustomerService(customerRepo)
	catalogSvc := service.NewCatalogService(catalogRepo)
	numberingSvc := service.NewNumberingService(counterRepo, cfg.Numbering.AprilCutover, nil)
	invoiceSvc := service.NewInvoiceService(
		invoiceRepo, companyRepo, numberingSvc, pdf.NewRenderer(),
		objectStorage, emailSender,
		service.ArchiveConfig{Bucket: cfg.S3.Bucket, PresignExpiry: cfg.S3.PresignExpiry},
	)

	// Setup router
	r := router.Setup(authSvc, router.Handlers{
		Auth:      handler.NewAuthHandler(authSvc),
		Company:   handler.NewCompanyHandler(companySvc),
		Customer:  handler.NewCustomerHandler(customerSvc),
		Catalog:   handler.NewCatalogHandler(catalogSvc),
		Numbering: handler.NewNumberingHandler(numberingSvc),
		Invoice:   handler.NewInvoiceHandler(invoiceSvc),
		Health:    handler.NewHealthHandler(store),
	}, cfg.CORS.AllowedOrigins)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Server starting on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
