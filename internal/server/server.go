package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/rs/cors"

	"mlb-draft-tracker/internal/broadcast"
	"mlb-draft-tracker/internal/config"
	"mlb-draft-tracker/internal/domain"
	httpapi "mlb-draft-tracker/internal/http"
	"mlb-draft-tracker/internal/logging"
	"mlb-draft-tracker/internal/metrics"
	"mlb-draft-tracker/internal/poller"
	"mlb-draft-tracker/internal/providers"
	"mlb-draft-tracker/internal/providers/fixture"
	"mlb-draft-tracker/internal/sheets"
	"mlb-draft-tracker/internal/snapshots"
	"mlb-draft-tracker/internal/store"
)

var metricsSetup = metrics.Setup

// Server wires the roster and pick sources, the reconciliation poller, the
// publication cache, the WebSocket hub, and the HTTP surface together.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	cache         *store.SnapshotStore
	hub           *broadcast.Hub
	poller        Poller
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a fully wired server from configuration.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Server, error) {
	recorder, metricsSrv, metricsShutdown := buildMetrics(ctx, cfg, logger)

	rosterSource, rosterSink, err := buildRosterSource(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	pickBase, pickName := selectPickProvider(cfg, logger)
	pickSource := providers.NewRetryingPickProvider(pickBase, logger, pickName, 0)

	cache := store.NewSnapshotStore()
	hub := broadcast.NewHub(cache, logger)

	var writer *snapshots.Writer
	var fsStore *snapshots.FSStore
	if cfg.Snapshots.Enabled {
		writer = snapshots.NewWriter(cfg.Snapshots.Dir)
		fsStore = snapshots.NewFSStore(cfg.Snapshots.Dir)
	}

	plr := poller.New(rosterSource, pickSource, cache, poller.Options{
		RosterSink:   rosterSink,
		Writer:       snapshotWriter(writer),
		Broadcaster:  meteredHub{hub: hub, metrics: recorder},
		Logger:       logger,
		Metrics:      recorder,
		Interval:     cfg.PollInterval,
		FetchTimeout: cfg.FetchTimeout,
	})

	// Warm start: serve the last persisted snapshot until the first cycle
	// lands. A missing or unreadable file just means a cold start.
	if fsStore != nil {
		if snap, ok, err := fsStore.LoadLatest(); err != nil {
			logging.Warn(logger, "snapshot load failed, starting cold", "error", err)
		} else if ok {
			plr.Seed(snap, snap.LastUpdate)
			logging.Info(logger, "warm start from persisted snapshot", slog.Int(logging.FieldCount, len(snap.Roster)))
		}
	}

	httpSrv := buildHTTPServer(cfg, cache, hub, plr, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		cache:         cache,
		hub:           hub,
		poller:        plr,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, cache *store.SnapshotStore, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		metrics:    metrics.NewRecorder(),
		cache:      cache,
		httpServer: httpSrv,
		poller:     plr,
	}
}

// buildRosterSource returns the authoritative roster source and the sink the
// merged collection is written back to. Without a configured spreadsheet the
// fixture serves as a read-only source and nothing is written back.
func buildRosterSource(ctx context.Context, cfg config.Config, logger *slog.Logger) (providers.RosterProvider, providers.RosterSink, error) {
	if cfg.Sheets.SpreadsheetID == "" {
		logging.Warn(logger, "no spreadsheet configured, serving fixture roster")
		return fixture.New(), nil, nil
	}

	client, err := sheets.NewClient(ctx, sheets.Config{
		SpreadsheetID:   cfg.Sheets.SpreadsheetID,
		CredentialsFile: cfg.Sheets.CredentialsFile,
		Range:           cfg.Sheets.Range,
	})
	if err != nil {
		return nil, nil, err
	}
	return providers.NewRetryingRosterProvider(client, logger, sheets.SourceName, 0), client, nil
}

func buildHTTPServer(cfg config.Config, cache *store.SnapshotStore, hub *broadcast.Hub, plr Poller, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}

	handler := httpapi.NewHandler(cache, logger, statusFn)
	router := httpapi.NewRouter(handler, hub)

	if cfg.AdminToken != "" && plr != nil {
		admin := httpapi.NewAdminHandler(plr, cfg.AdminToken, logger)
		if mux, ok := router.(*http.ServeMux); ok {
			mux.HandleFunc("/admin/refresh", admin.Refresh)
		}
	}

	corsWrapped := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}).Handler(router)

	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := httpapi.LoggingMiddleware(logger, recorder, corsWrapped)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

func buildMetrics(ctx context.Context, cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(ctx, recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

// Run starts the poller and HTTP servers, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.poller.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop poller", err)
	}

	if s.hub != nil {
		s.hub.Close()
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}

// snapshotWriter avoids handing the poller a non-nil interface wrapping a
// nil writer when snapshots are disabled.
func snapshotWriter(w *snapshots.Writer) poller.SnapshotWriter {
	if w == nil {
		return nil
	}
	return w
}

// meteredHub records the connected client count alongside each broadcast.
type meteredHub struct {
	hub     *broadcast.Hub
	metrics *metrics.Recorder
}

func (m meteredHub) Broadcast(ctx context.Context, snap domain.Snapshot) error {
	err := m.hub.Broadcast(ctx, snap)
	m.metrics.RecordBroadcastClients(m.hub.ClientCount())
	return err
}
