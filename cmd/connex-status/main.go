package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/goodnatureofminers/connex-go/internal/metrics"
	"github.com/goodnatureofminers/connex-go/internal/thorrest"
	"github.com/goodnatureofminers/connex-go/pkg/driver"
	"github.com/goodnatureofminers/connex-go/pkg/framework"
)

var config struct {
	NodeURL      string        `long:"node-url" env:"CONNEX_NODE_URL" description:"thor node REST API root" default:"http://localhost:8669"`
	Network      string        `long:"network" env:"CONNEX_NETWORK" description:"network label for metrics" default:"main"`
	Addr         string        `long:"addr" env:"CONNEX_STATUS_ADDR" description:"grpc addr" default:":8000"`
	RestAddr     string        `long:"rest-addr" env:"CONNEX_STATUS_REST_ADDR" description:"rest addr" default:":8001"`
	RPS          int           `long:"rps" env:"CONNEX_NODE_RPS" description:"max requests per second to the node" default:"10"`
	PollInterval time.Duration `long:"poll-interval" env:"CONNEX_POLL_INTERVAL" description:"min interval between head polls" default:"1s"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	client, err := thorrest.New(ctx, thorrest.Config{
		BaseURL:         config.NodeURL,
		MinPollInterval: config.PollInterval,
		RPS:             config.RPS,
	}, logger)
	if err != nil {
		logger.Fatal("Connect to node", zap.String("url", config.NodeURL), zap.Error(err))
	}
	defer func() {
		_ = client.Close()
	}()

	observed := driver.NewObserved(client, metrics.NewDriver(config.Network))
	guarded := framework.GuardDriver(observed, logger, metrics.NewGuard(config.Network, logger).ObserveViolation)
	fw := framework.New(guarded, logger, metrics.NewHeadTracker(config.Network))

	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	go func() {
		if err := fw.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("Head tracker stopped", zap.Error(err))
		}
		healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	}()

	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
	grpcPrometheus.EnableHandlingTimeHistogram()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	grpcPrometheus.Register(grpcServer)

	socket, err := net.Listen("tcp", config.Addr)
	if err != nil {
		logger.Fatal("net.Listen error", zap.Error(err))
	}
	go func() {
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Fatal("Start GRPC server", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down gRPC server")
		grpcServer.GracefulStop()
	}()

	conn, err := grpc.NewClient(config.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		logger.Fatal("Dial grpc server", zap.Error(err))
	}
	defer func() {
		_ = conn.Close()
	}()

	gw := gwruntime.NewServeMux(gwruntime.WithHealthzEndpoint(healthpb.NewHealthClient(conn)))
	if err := newStatusHandler(fw.Thor, logger).register(gw); err != nil {
		logger.Fatal("Register status handler", zap.Error(err))
	}

	mux := http.NewServeMux()
	mux.Handle("/", gw)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              config.RestAddr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", config.RestAddr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}
