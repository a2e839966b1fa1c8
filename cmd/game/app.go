package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"detectivequest/cmd/game/ui"
	"detectivequest/internal/config"
	"detectivequest/internal/debug"
	"detectivequest/internal/game/investigation"
	"detectivequest/internal/game/mansion"
	"detectivequest/internal/game/scenario"
	"detectivequest/internal/logging"
	"detectivequest/internal/observability"
)

// app is everything one play session needs, wired from the config.
type app struct {
	ctx        context.Context
	controller *investigation.Controller
	loggers    ui.GameLoggers
	info       ui.CaseInfo
	tracer     trace.Tracer
	rooms      int
}

func loadScenario(path string) (*scenario.Scenario, error) {
	if path == "" {
		return scenario.Default(), nil
	}
	s, err := scenario.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load scenario %s: %w", path, err)
	}
	return s, nil
}

func createApp(cfg config.Config) (*app, func(), error) {
	debugLogger := debug.NewLogger(cfg.Debug, cfg.DebugLog)

	ctx := context.Background()
	tracingConfig := observability.LoadConfigFromEnv()
	tracerProvider, err := observability.InitTracing(ctx, tracingConfig)
	if err != nil {
		debugLogger.Printf("Failed to initialize tracing: %v", err)
	} else if tracerProvider.IsEnabled() {
		debugLogger.Println("OpenTelemetry tracing initialized and enabled")
	} else {
		debugLogger.Println("OpenTelemetry tracing disabled (set OTEL_TRACES_ENABLED=true to enable)")
	}

	shutdown := func() {
		if tracerProvider != nil {
			tracerProvider.Shutdown(context.Background())
		}
		debugLogger.Close()
	}

	s, err := loadScenario(cfg.Scenario)
	if err != nil {
		shutdown()
		return nil, nil, err
	}

	journal, err := logging.NewCaseLogger(cfg.Journal)
	if err != nil {
		shutdown()
		return nil, nil, fmt.Errorf("failed to initialize case journal: %w", err)
	}

	sessionID := uuid.NewString()
	ctx = observability.WithSessionID(ctx, sessionID)
	debugLogger.Printf("Starting case %s in %q", sessionID, s.Title)

	var tracer trace.Tracer
	if tracerProvider != nil {
		tracer = tracerProvider.GetTracer("investigation")
	}

	a, err := newApp(ctx, s, cfg.IndexCapacity, ui.GameLoggers{Debug: debugLogger, Journal: journal}, sessionID, tracer)
	if err != nil {
		journal.Close()
		shutdown()
		return nil, nil, err
	}

	cleanup := func() {
		a.controller.Close()
		journal.Close()
		shutdown()
	}
	return a, cleanup, nil
}

// newApp builds the mansion and the suspect index and starts the controller
// at the scenario's root room. A nil tracer keeps the global one.
func newApp(ctx context.Context, s *scenario.Scenario, capacity int, loggers ui.GameLoggers, sessionID string, tracer trace.Tracer) (*app, error) {
	root, err := s.BuildMansion()
	if err != nil {
		return nil, fmt.Errorf("failed to build mansion: %w", err)
	}
	index, err := s.BuildIndex(capacity)
	if err != nil {
		mansion.Release(root, nil)
		return nil, fmt.Errorf("failed to build suspect index: %w", err)
	}

	if tracer == nil {
		tracer = otel.Tracer("investigation")
	}
	rooms := mansion.Count(root)
	controller, err := investigation.New(root, index,
		investigation.WithLogger(loggers.Debug),
		investigation.WithTracer(tracer),
	)
	if err != nil {
		return nil, err
	}

	return &app{
		ctx:        ctx,
		controller: controller,
		loggers:    loggers,
		info:       ui.CaseInfo{SessionID: sessionID, Scenario: s.Title},
		tracer:     tracer,
		rooms:      rooms,
	}, nil
}

// startCase opens the span that parents every step and the verdict.
func (a *app) startCase() (context.Context, trace.Span) {
	return a.tracer.Start(a.ctx, "investigation.case",
		trace.WithAttributes(observability.CaseAttributes(a.info.SessionID, a.info.Scenario, a.rooms)...),
	)
}
