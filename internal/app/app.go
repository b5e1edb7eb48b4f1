package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/flashdeck/backend/internal/adapter/postgres"
	cardrepo "github.com/flashdeck/backend/internal/adapter/postgres/card"
	deckrepo "github.com/flashdeck/backend/internal/adapter/postgres/deck"
	tokenrepo "github.com/flashdeck/backend/internal/adapter/postgres/token"
	userrepo "github.com/flashdeck/backend/internal/adapter/postgres/user"
	"github.com/flashdeck/backend/internal/adapter/s3store"
	authjwt "github.com/flashdeck/backend/internal/auth"
	"github.com/flashdeck/backend/internal/config"
	authsvc "github.com/flashdeck/backend/internal/service/auth"
	cardsvc "github.com/flashdeck/backend/internal/service/card"
	decksvc "github.com/flashdeck/backend/internal/service/deck"
	reviewsvc "github.com/flashdeck/backend/internal/service/review"
	statssvc "github.com/flashdeck/backend/internal/service/stats"
	"github.com/flashdeck/backend/internal/transport/middleware"
	"github.com/flashdeck/backend/internal/transport/rest"
)

// sweepInterval is how often idle review sessions are swept from memory.
const sweepInterval = 5 * time.Minute

// Run is the application entry point. It loads configuration, connects to
// the database, applies migrations, wires services and transport, and runs
// the HTTP server until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	images, err := s3store.New(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("init object storage: %w", err)
	}

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	decks := deckrepo.New(pool)
	cards := cardrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	jwt := authjwt.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	sessions := reviewsvc.NewStore(cfg.Review.SessionTTL)
	go sweepSessions(ctx, logger, sessions)

	authService := authsvc.NewService(logger, cfg.Auth, users, tokens, tx, jwt)
	deckService := decksvc.NewService(logger, cfg.Decks, decks, cards, tx)
	cardService := cardsvc.NewService(logger, cards, decks, images, tx)
	reviewService := reviewsvc.NewService(logger, cfg.Review, cards, decks, sessions)
	statsService := statssvc.NewService(logger, cards, decks)

	handlers := rest.Handlers{
		Auth:   rest.NewAuthHandler(authService, logger),
		Deck:   rest.NewDeckHandler(deckService, logger),
		Card:   rest.NewCardHandler(cardService, logger),
		Review: rest.NewReviewHandler(reviewService, logger),
		Stats:  rest.NewStatsHandler(statsService, logger),
		Health: rest.NewHealthHandler(pool, BuildVersion()),
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	}
	if cfg.Server.RateLimitPerMinute > 0 {
		mws = append(mws, limiter.Limit(cfg.Server.RateLimitPerMinute))
	}
	mws = append(mws, middleware.Auth(jwt))

	router := rest.NewRouter(handlers, mws...)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}

// sweepSessions periodically evicts expired review sessions.
func sweepSessions(ctx context.Context, logger *slog.Logger, store *reviewsvc.Store) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := store.Sweep(); removed > 0 {
				logger.Debug("swept review sessions", slog.Int("removed", removed))
			}
		}
	}
}
