package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/godbound-api/internal/config"
	"github.com/KirkDiggler/godbound-api/internal/handlers/sheet/v1alpha1"
	"github.com/KirkDiggler/godbound-api/internal/metrics"
	"github.com/KirkDiggler/godbound-api/internal/orchestrators/sheet"
	"github.com/KirkDiggler/godbound-api/internal/pkg/clock"
	"github.com/KirkDiggler/godbound-api/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/godbound-api/internal/redis"
	"github.com/KirkDiggler/godbound-api/internal/render"
	chatlog "github.com/KirkDiggler/godbound-api/internal/repositories/chat_log"
	"github.com/KirkDiggler/godbound-api/internal/repositories/subject"
	"github.com/KirkDiggler/godbound-api/internal/rules"
)

var (
	grpcPort    int
	metricsPort int
	envFile     string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the sheet gRPC server and the metrics endpoint.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides GODBOUND_GRPC_PORT)")
	serverCmd.Flags().IntVar(&metricsPort, "metrics-port", 0, "metrics port (overrides GODBOUND_METRICS_PORT)")
	serverCmd.Flags().StringVar(&envFile, "env-file", ".env", "optional .env file")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.GRPCPort = grpcPort
	}
	if cmd.Flags().Changed("metrics-port") {
		cfg.MetricsPort = metricsPort
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	redisClient, err := redisclient.NewClient(cfg.Redis.Addr, &redisclient.Options{
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
		UseTLS:   cfg.Redis.UseTLS,
	})
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		_ = redisClient.Close() // nolint:errcheck // safe to ignore on shutdown
	}()

	if err := redisclient.Ping(ctx, redisClient, 5*time.Second); err != nil {
		return err
	}

	m := metrics.New()

	sheetService, err := buildSheetService(cfg, redisClient, m)
	if err != nil {
		return err
	}

	sheetHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		SheetService: sheetService,
	})
	if err != nil {
		return fmt.Errorf("failed to create sheet handler: %w", err)
	}

	srv := newGRPCServer(logger)
	v1alpha1.RegisterSheetServiceServer(srv, sheetHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	metricsServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.MetricsPort),
		Handler:           metricsMux(m),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("gRPC server starting", "port", cfg.GRPCPort)
		if err := srv.Serve(lis); err != nil {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		logger.Info("metrics server starting", "port", cfg.MetricsPort)
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		healthServer.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		_ = metricsServer.Shutdown(shutdownCtx) // nolint:errcheck // best effort

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			logger.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			logger.Info("server stopped gracefully")
		}
		return nil
	})

	return g.Wait()
}

func buildSheetService(cfg *config.Config, client redisclient.Client, m *metrics.Metrics) (sheet.Service, error) {
	clk := clock.New()

	subjectRepo, err := subject.NewRedis(&subject.RedisConfig{
		Client: client,
		Clock:  clk,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create subject repository: %w", err)
	}

	chatLogRepo, err := chatlog.NewRedisRepository(&chatlog.Config{
		Client: client,
		Clock:  clk,
		TTL:    cfg.ChatLogTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create chat log repository: %w", err)
	}

	ruleset := rules.Default()
	if cfg.RulesetPath != "" {
		ruleset, err = rules.LoadFile(cfg.RulesetPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load ruleset: %w", err)
		}
	}

	renderer, err := render.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	svc, err := sheet.NewOrchestrator(&sheet.Config{
		SubjectRepo:     subjectRepo,
		ChatLogRepo:     chatLogRepo,
		Roller:          dice.DefaultRoller,
		EventBus:        events.NewBus(),
		Renderer:        renderer,
		IDGenerator:     idgen.NewUUID(""),
		Host:            sheet.HostContext{Notifier: sheet.SlogNotifier{}},
		Ruleset:         ruleset,
		Metrics:         m,
		DiceSound:       cfg.DiceSound,
		AdjustmentFloor: cfg.AdjustmentFloor,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet orchestrator: %w", err)
	}
	return svc, nil
}

func newGRPCServer(logger *slog.Logger) *grpc.Server {
	logOpts := []grpc_logging.Option{
		grpc_logging.WithLogOnEvents(grpc_logging.FinishCall),
	}
	recoveryOpts := []grpc_recovery.Option{
		grpc_recovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
			logger.ErrorContext(ctx, "recovered from panic", "panic", p)
			return status.Error(codes.Internal, "internal error")
		}),
	}

	return grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger(logger), logOpts...),
			grpc_recovery.UnaryServerInterceptor(recoveryOpts...),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger(logger), logOpts...),
			grpc_recovery.StreamServerInterceptor(recoveryOpts...),
		),
	)
}

// interceptorLogger adapts slog to the middleware logger
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if strings.EqualFold(cfg.LogFormat, "text") {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

func metricsMux(m *metrics.Metrics) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}
