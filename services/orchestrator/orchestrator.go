// Copyright (C) 2026 Lighthouse SRE (ops@lighthouse-sre.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package orchestrator assembles and runs the readiness review service.
//
// The orchestrator wires together the model backend, the in-memory stores,
// the SRE agent, the policy engine, and the HTTP routes. Construction is
// tolerant by design: missing provider credentials demote the service to the
// mock backend, and a missing trace collector disables tracing. The server
// comes up either way.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/lighthouse-sre/readiness/services/llm"
	"github.com/lighthouse-sre/readiness/services/orchestrator/middleware"
	"github.com/lighthouse-sre/readiness/services/orchestrator/observability"
	"github.com/lighthouse-sre/readiness/services/orchestrator/routes"
	"github.com/lighthouse-sre/readiness/services/orchestrator/services"
	"github.com/lighthouse-sre/readiness/services/orchestrator/store"
	"github.com/lighthouse-sre/readiness/services/policy_engine"
)

// =============================================================================
// Interface Definition
// =============================================================================

// Service defines the contract for the readiness service lifecycle.
//
// Run() blocks and should only be called once per instance. Router() exposes
// the configured Gin engine for integration tests.
type Service interface {
	// Run starts the HTTP server and blocks until shutdown or error.
	Run() error

	// Router returns the underlying Gin engine for testing. Callers must
	// not modify the router.
	Router() *gin.Engine
}

// =============================================================================
// Configuration
// =============================================================================

// Config holds readiness service configuration options.
//
// All fields are optional; New() applies defaults for zero values.
type Config struct {
	// Port is the HTTP server port. Default: 12300
	Port int

	// ModelBackend specifies the model provider.
	// Valid values: "gemini", "openai", "mock". Default: "gemini"
	ModelBackend string

	// OTelEndpoint is the OpenTelemetry collector endpoint.
	// If empty, tracing is disabled.
	OTelEndpoint string

	// DisableMetrics skips Prometheus metric registration. Metrics register
	// on the process-global registry exactly once, so tests constructing
	// multiple services must set this.
	DisableMetrics bool

	// GinMode sets the Gin framework mode ("debug", "release", "test").
	// Default: uses GIN_MODE env var or "debug".
	GinMode string
}

// =============================================================================
// Implementation
// =============================================================================

// service implements Service for production use.
//
// Thread-safe after construction: all fields are read-only once New()
// returns.
type service struct {
	config        Config
	router        *gin.Engine
	model         llm.ModelClient
	backendName   string
	agent         *services.SREAgent
	uploads       *store.UploadStore
	results       *store.ResultStore
	policyEngine  *policy_engine.PolicyEngine
	metrics       *observability.PipelineMetrics
	tracerCleanup func(context.Context)
}

// =============================================================================
// Constructor
// =============================================================================

// New creates a readiness Service with the given configuration.
//
// # Description
//
// New initializes all components:
//  1. Applies default configuration for missing values
//  2. Initializes OpenTelemetry tracing (skipped without an endpoint)
//  3. Initializes Prometheus metrics
//  4. Creates the model client, demoting to mock on missing credentials
//  5. Initializes the policy engine and the in-memory stores
//  6. Sets up HTTP routes
//
// The only fatal condition is a broken embedded policy file, which means
// the binary itself is bad.
func New(ctx context.Context, cfg Config) (Service, error) {
	s := &service{
		config: applyConfigDefaults(cfg),
	}

	cleanup, err := s.initTracer(ctx)
	if err != nil {
		// Tracing is observability, not functionality. Keep going.
		slog.Warn("Tracer initialization failed, continuing without tracing", "error", err)
		cleanup = func(context.Context) {}
	}
	s.tracerCleanup = cleanup

	if !s.config.DisableMetrics {
		s.metrics = observability.InitMetrics()
		slog.Info("Initialized Prometheus metrics for the pipeline")
	}

	s.policyEngine, err = policy_engine.NewPolicyEngine()
	if err != nil {
		s.cleanup()
		return nil, fmt.Errorf("failed to initialize policy engine: %w", err)
	}

	s.initModelClient(ctx)

	clock := store.SystemClock{}
	s.uploads = store.NewUploadStore(clock, s.metrics.StoreReporter())
	s.results = store.NewResultStore(clock, s.metrics.StoreReporter())
	s.agent = services.NewSREAgent(s.model, s.backendName, clock, s.metrics)

	s.initRouter()

	return s, nil
}

// =============================================================================
// Service Interface Methods
// =============================================================================

// Run starts the HTTP server and blocks until shutdown or error.
func (s *service) Run() error {
	defer s.cleanup()

	addr := fmt.Sprintf(":%d", s.config.Port)
	slog.Info("Starting readiness server", "port", s.config.Port, "backend", s.backendName)

	return s.router.Run(addr)
}

// Router returns the underlying Gin engine for testing.
func (s *service) Router() *gin.Engine {
	return s.router
}

// =============================================================================
// Private Initialization Methods
// =============================================================================

// applyConfigDefaults fills in missing configuration values.
func applyConfigDefaults(cfg Config) Config {
	if cfg.Port == 0 {
		cfg.Port = 12300
	}
	if cfg.ModelBackend == "" {
		cfg.ModelBackend = "gemini"
	}
	return cfg
}

// initTracer initializes OpenTelemetry distributed tracing.
//
// Returns a no-op cleanup and nil error when no collector endpoint is
// configured. Uses an insecure gRPC connection, appropriate for internal
// networks.
func (s *service) initTracer(ctx context.Context) (func(context.Context), error) {
	if s.config.OTelEndpoint == "" {
		slog.Info("OTEL_EXPORTER_OTLP_ENDPOINT not set, tracing disabled")
		return func(context.Context) {}, nil
	}

	conn, err := grpc.NewClient(s.config.OTelEndpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC connection: %w", err)
	}

	traceExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceNameKey.String("readiness-service")))
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	bsp := sdktrace.NewBatchSpanProcessor(traceExporter)
	traceProvider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(res),
		sdktrace.WithSpanProcessor(bsp))

	otel.SetTracerProvider(traceProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{}))

	cleanup := func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, time.Second*5)
		defer cancel()
		if err := traceExporter.Shutdown(ctx); err != nil {
			slog.Error("failed to shutdown OTLP exporter", "error", err)
		}
	}

	return cleanup, nil
}

// initModelClient creates the model provider client.
//
// Backend construction failure is not fatal: the service demotes itself to
// the mock backend and keeps serving, with degraded output marked in every
// analysis record. Uploading users should never see a hard provider error.
func (s *service) initModelClient(ctx context.Context) {
	var (
		model llm.ModelClient
		err   error
	)

	switch s.config.ModelBackend {
	case "gemini":
		model, err = llm.NewGeminiClient(ctx)
		slog.Info("Using Gemini model backend")
	case "openai":
		model, err = llm.NewOpenAIClient()
		slog.Info("Using OpenAI model backend")
	case "mock":
		model, err = llm.NewMockClient(), nil
		slog.Info("Using mock model backend")
	default:
		slog.Warn("Unknown model backend, defaulting to gemini", "backend", s.config.ModelBackend)
		s.config.ModelBackend = "gemini"
		model, err = llm.NewGeminiClient(ctx)
	}

	if err != nil {
		slog.Warn("Model backend initialization failed, running in degraded mock mode",
			"backend", s.config.ModelBackend, "error", err)
		s.model = llm.NewMockClient()
		s.backendName = "mock"
		return
	}

	s.model = model
	s.backendName = s.config.ModelBackend
}

// initRouter sets up the Gin HTTP router with all routes.
func (s *service) initRouter() {
	if s.config.GinMode != "" {
		gin.SetMode(s.config.GinMode)
	}

	s.router = gin.Default()
	s.router.Use(middleware.CORS())
	s.router.Use(otelgin.Middleware("readiness-service"))

	routes.SetupRoutes(s.router, routes.Deps{
		Uploads:      s.uploads,
		Results:      s.results,
		Agent:        s.agent,
		Model:        s.model,
		PolicyEngine: s.policyEngine,
		Metrics:      s.metrics,
	})
}

// cleanup releases resources held by the service.
func (s *service) cleanup() {
	if s.tracerCleanup != nil {
		s.tracerCleanup(context.Background())
	}
}
