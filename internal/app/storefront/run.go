package storefront

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"

	storefrontserver "github.com/Apurer/go-storefront/go"

	catalogmemory "github.com/Apurer/go-storefront/internal/domains/catalog/adapters/memory"
	catalogpostgres "github.com/Apurer/go-storefront/internal/domains/catalog/adapters/persistence/postgres"
	catalogports "github.com/Apurer/go-storefront/internal/domains/catalog/ports"
	checkoutworkflows "github.com/Apurer/go-storefront/internal/domains/checkout/adapters/workflows"
	checkoutports "github.com/Apurer/go-storefront/internal/domains/checkout/ports"
	platformobservability "github.com/Apurer/go-storefront/internal/platform/observability"
	platformpostgres "github.com/Apurer/go-storefront/internal/platform/postgres"
)

const serviceName = "storefront"

// Run boots the storefront with observability, catalog storage, and the
// receipt workflow wired.
func Run(ctx context.Context) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	instruments, shutdown, err := platformobservability.Init(ctx, cfg.Observability(serviceName))
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	catalogRepo, cleanupRepo := buildCatalogRepository(ctx, cfg, logger)
	defer cleanupRepo()

	var issuer checkoutports.ReceiptIssuer = checkoutworkflows.NewInlineReceipts()
	if temporalClient, err := ConnectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, issuing receipts inline", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		issuer = checkoutworkflows.NewTemporalReceipts(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	components, err := BuildComponents(catalogRepo, issuer, cfg.CurrencySymbol, instruments)
	if err != nil {
		return err
	}
	session, err := NewSession(ctx, components)
	if err != nil {
		return err
	}

	router := newRouter(session, instruments)
	logger.Info("storefront listening", slog.String("addr", cfg.Addr()))
	if err := router.Run(cfg.Addr()); err != nil {
		logger.Error("storefront server exited", slog.String("addr", cfg.Addr()), slog.String("error", err.Error()))
		return err
	}
	return nil
}

// newRouter installs middleware before any route exists; gin copies the
// engine's handler chain into each route at registration time.
func newRouter(session *Session, instruments *platformobservability.Instruments) *gin.Engine {
	engine := gin.New()
	middleware := []gin.HandlerFunc{gin.Logger(), gin.Recovery()}
	if instruments != nil && instruments.TracerProvider != nil {
		middleware = append(middleware, otelgin.Middleware(serviceName, otelgin.WithTracerProvider(instruments.TracerProvider)))
	} else {
		middleware = append(middleware, otelgin.Middleware(serviceName))
	}
	engine.Use(middleware...)
	return storefrontserver.NewRouterWithGinEngine(engine, storefrontserver.NewHandlers(session))
}

func buildCatalogRepository(ctx context.Context, cfg Config, logger *slog.Logger) (catalogports.Repository, func()) {
	db, cleanup := platformpostgres.ConnectOptional(ctx, cfg.PostgresDSN, logger)
	if db == nil {
		return catalogmemory.NewRepository(), cleanup
	}
	logger.Info("catalog repository configured with postgres")
	return catalogpostgres.NewRepository(db), cleanup
}

// ConnectTemporalClient dials Temporal with tracing and structured logging.
func ConnectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	logger := slog.Default()
	if instruments != nil && instruments.Logger != nil {
		logger = instruments.Logger
	}
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(logger),
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}
