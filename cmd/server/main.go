package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/rikalg22/surat-lamaran-api/internal/common"
	"github.com/rikalg22/surat-lamaran-api/internal/config"
	"github.com/rikalg22/surat-lamaran-api/internal/http/routes"
	appmiddleware "github.com/rikalg22/surat-lamaran-api/internal/middleware"
	"github.com/rikalg22/surat-lamaran-api/internal/respond"
	"github.com/rikalg22/surat-lamaran-api/internal/storage"
	profilestore "github.com/rikalg22/surat-lamaran-api/internal/storage/profiles"
	signaturestore "github.com/rikalg22/surat-lamaran-api/internal/storage/signatures"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	defer func() {
		if err := common.Sync(); err != nil {
			appmiddleware.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := common.Err(); err != nil {
		appmiddleware.LogError(context.Background(), "logger init error", err)
	}

	cfg := config.Load()

	db, err := storage.Open(context.Background(), cfg.DatabasePath)
	if err != nil {
		appmiddleware.LogFatal(context.Background(), "database open failed", err, zap.String("path", cfg.DatabasePath))
	}
	defer func() {
		if err := db.Close(); err != nil {
			appmiddleware.LogError(context.Background(), "database close error", err)
		}
	}()

	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	// Base middleware stack
	router.Use(
		appmiddleware.Vary(),
		appmiddleware.CORS(cfg.CORSAllowedOrigins...),
		appmiddleware.RequestID(),
		chimiddleware.RealIP,
		// Signature uploads arrive base64-encoded inside JSON, so allow a
		// little headroom over the raw image size.
		chimiddleware.RequestSize(2<<20), // 2 MB limit
		appmiddleware.RequestLogger(),
		appmiddleware.AccessLogger(),
		respond.Recoverer(),
	)

	respond.Install()

	humaCfg := huma.DefaultConfig("Surat Lamaran API", Version)
	humaCfg.DocsPath = "/api-docs"
	// The browser client expects exact response bodies (bare arrays,
	// {"success":true}), so skip the $schema link injection.
	humaCfg.Transformers = nil
	api := humachi.New(router, humaCfg)

	routes.Register(api,
		profilestore.NewSQLiteRepository(db),
		signaturestore.NewSQLiteRepository(db),
	)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}

	listenErr := make(chan error, 1)
	go func() {
		appmiddleware.LogInfo(context.Background(), "server listening",
			zap.String("addr", srv.Addr),
			zap.String("database", cfg.DatabasePath),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			listenErr <- err
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		appmiddleware.LogError(context.Background(), "listen failed", err, zap.String("addr", srv.Addr))
		os.Exit(1)
	case <-stop:
		appmiddleware.LogInfo(context.Background(), "shutdown signal received")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appmiddleware.LogError(ctx, "server shutdown error", err)
	}
	appmiddleware.LogInfo(context.Background(), "server exited")
}
