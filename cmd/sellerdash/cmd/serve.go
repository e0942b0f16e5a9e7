package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/sellerdash/sellerdash/api/openapi"
	"github.com/sellerdash/sellerdash/internal/api/handlers"
	mw "github.com/sellerdash/sellerdash/internal/api/middleware"
	"github.com/sellerdash/sellerdash/internal/config"
	"github.com/sellerdash/sellerdash/internal/spapi"
	"github.com/sellerdash/sellerdash/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the proxy API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	creds := &cfg.SPAPI.Credentials
	if report := creds.Validate(); !report.Valid {
		// Start anyway so /readyz can surface the problem, but every
		// SP-API call will fail until the secrets are provided.
		log.Warn("missing required credentials", "missing", report.Missing)
	}

	tokens := spapi.NewLWATokenProvider(
		creds.ClientID,
		creds.ClientSecret,
		creds.RefreshToken,
		spapi.WithTokenURL(cfg.SPAPI.TokenURL),
	)

	signOpts := []spapi.SigningOption{}
	if creds.RoleARN != "" && creds.HasSigningKeys() {
		stsClient := sts.New(sts.Options{
			Region: cfg.SPAPI.Region,
			Credentials: credentials.NewStaticCredentialsProvider(
				creds.AccessKeyID, creds.SecretAccessKey, "",
			),
		})
		signOpts = append(signOpts,
			spapi.WithRoleARN(creds.RoleARN),
			spapi.WithSTSClient(stsClient),
		)
	}
	signer := spapi.NewSigningResolver(
		creds.AccessKeyID, creds.SecretAccessKey, signOpts...,
	)

	limiter := spapi.NewCategoryLimiter(cfg.SPAPI.RateSpecs())

	exec := spapi.NewExecutor(
		tokens,
		signer,
		limiter,
		spapi.WithEndpoint(cfg.SPAPI.Endpoint),
		spapi.WithRegion(cfg.SPAPI.Region),
		spapi.WithTimeout(cfg.SPAPI.Timeout),
	)
	client := spapi.NewClient(exec)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	clientLimiter := mw.NewClientLimiter(
		cfg.Server.ClientLimit.PerSecond,
		cfg.Server.ClientLimit.Burst,
	)
	httpLog := logger.Component(log, "http")
	e.Use(mw.Recovery(httpLog))
	e.Use(mw.RequestLog(httpLog))
	e.Use(mw.Metrics())
	e.Use(clientLimiter.Middleware())

	health := handlers.NewHealthHandler(creds)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	openapi.RegisterRoutes(e)

	api := humaecho.New(e, huma.DefaultConfig("sellerdash API", Version))
	handlers.RegisterOrdersRoutes(api, handlers.NewOrdersHandler(client))
	handlers.RegisterInventoryRoutes(api, handlers.NewInventoryHandler(client))
	handlers.RegisterReportsRoutes(api, handlers.NewReportsHandler(client))
	handlers.RegisterFinancesRoutes(api, handlers.NewFinancesHandler(client))
	handlers.RegisterShipmentsRoutes(api, handlers.NewShipmentsHandler(client))
	handlers.RegisterLimitsRoutes(api, handlers.NewLimitsHandler(limiter))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr, "endpoint", cfg.SPAPI.Endpoint)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}
