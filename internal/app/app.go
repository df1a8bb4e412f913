package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/cinehall/booking-api/internal/domain"
	"github.com/cinehall/booking-api/internal/ledger"
	appvalidator "github.com/cinehall/booking-api/internal/validator"
	"github.com/cinehall/booking-api/internal/vcs"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/riandyrn/otelchi"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

const serviceName = "cinehall-booking-api"

var (
	version = vcs.Version()
)

type application struct {
	config         config
	logger         *slog.Logger
	validator      *validator.Validate
	sessionManager *scs.SessionManager
	ledger         domain.SeatLedger
}

type config struct {
	port int
	env  string

	venue struct {
		rows          int
		cols          int
		vipRows       int
		standardPrice string
		vipPrice      string
	}

	holds struct {
		ttl           time.Duration
		sweepInterval time.Duration
	}

	otelCollectorUrl string
}

func Run() error {
	var cfg config

	flag.IntVar(&cfg.port, "port", 3000, "server port")
	flag.StringVar(&cfg.env, "env", "dev", "Environment (dev|staging|prod)")

	flag.IntVar(&cfg.venue.rows, "venue-rows", 8, "Number of seat rows")
	flag.IntVar(&cfg.venue.cols, "venue-cols", 10, "Number of seats per row")
	flag.IntVar(&cfg.venue.vipRows, "venue-vip-rows", 2, "Number of trailing VIP rows")
	flag.StringVar(&cfg.venue.standardPrice, "standard-price", "12", "Standard seat price")
	flag.StringVar(&cfg.venue.vipPrice, "vip-price", "18", "VIP seat price")

	flag.DurationVar(&cfg.holds.ttl, "hold-ttl", ledger.DefaultHoldTTL, "How long a seat hold survives without a refresh")
	flag.DurationVar(&cfg.holds.sweepInterval, "hold-sweep-interval", ledger.DefaultSweepInterval, "How often expired holds are reclaimed")

	flag.StringVar(&cfg.otelCollectorUrl, "otel-collector-url", "", "OpenTelemetry collector URL")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	layout, err := newLayout(cfg)
	if err != nil {
		logger.Error("invalid venue configuration", "error", err)
		return err
	}

	app := &application{
		config:         cfg,
		logger:         logger,
		validator:      appvalidator.NewValidator(),
		sessionManager: newSessionManager(),
	}

	shutdownTelemetry, err := app.initTelemetry()
	if err != nil {
		logger.Error("failed to initialize telemetry", "error", err)
		return err
	}
	defer shutdownTelemetry(context.Background())

	if cfg.otelCollectorUrl != "" {
		app.logger = slog.New(NewMultiHandler(
			slog.NewTextHandler(os.Stdout, nil),
			otelslog.NewHandler(serviceName),
		))
	}

	seatLedger, err := ledger.New(layout,
		ledger.WithHoldTTL(cfg.holds.ttl),
		ledger.WithLogger(app.logger),
	)
	if err != nil {
		return err
	}
	app.ledger = seatLedger

	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()
	go seatLedger.Run(sweepCtx, cfg.holds.sweepInterval)

	app.logger.Info("initialized seat ledger",
		"rows", layout.Rows,
		"cols", layout.Cols,
		"hold_ttl", cfg.holds.ttl,
	)

	return app.serve()
}

func newLayout(cfg config) (domain.Layout, error) {
	standardPrice, err := decimal.NewFromString(cfg.venue.standardPrice)
	if err != nil {
		return domain.Layout{}, fmt.Errorf("invalid standard price %q", cfg.venue.standardPrice)
	}

	vipPrice, err := decimal.NewFromString(cfg.venue.vipPrice)
	if err != nil {
		return domain.Layout{}, fmt.Errorf("invalid VIP price %q", cfg.venue.vipPrice)
	}

	layout := domain.Layout{
		Rows:          cfg.venue.rows,
		Cols:          cfg.venue.cols,
		VIPRows:       cfg.venue.vipRows,
		StandardPrice: standardPrice,
		VIPPrice:      vipPrice,
	}

	if err := layout.Validate(); err != nil {
		return domain.Layout{}, err
	}

	return layout, nil
}

func newSessionManager() *scs.SessionManager {
	// The default in-memory store matches the ledger's lifetime: a restart
	// resets both seats and sessions.
	sessionManager := scs.New()

	sessionManager.IdleTimeout = 20 * time.Minute
	sessionManager.Cookie.Name = "session_id"

	return sessionManager
}

func (app *application) serve() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.port),
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
		}

		shutdownError <- nil
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *application) routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(app.recoverPanic)
	r.Use(app.sessionManager.LoadAndSave)
	r.Use(app.ensureGuestSession)
	r.Use(app.requestLogger)

	r.Get("/", app.GetRoot)
	r.Get("/health", app.GetHealth)
	r.Get("/seats", app.GetSeatMap)

	r.Route("/seats/{seatID}/hold", func(r chi.Router) {
		r.Post("/", app.HoldSeat)
		r.Delete("/", app.ReleaseSeat)
	})

	r.Post("/bookings", app.CreateBooking)

	return r
}
