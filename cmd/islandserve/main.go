package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"time"

	"islandgen/internal/app"
	"islandgen/internal/server"
	"islandgen/pkg/worldgen"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	timeout := flag.Duration("timeout", 30*time.Second, "per-request generation timeout")
	maxCells := flag.Int("max-cells", server.DefaultMaxCells, "largest world a client may request")
	anyOrigin := flag.Bool("any-origin", false, "accept websocket upgrades from any origin")
	verbose := flag.Bool("v", false, "log rejected attempts")
	flag.Parse()

	logger := app.NewLogger(os.Stderr, *verbose)
	worldgen.SetLogger(logger)

	srv := server.New(server.Options{
		Logger:         logger,
		Timeout:        *timeout,
		MaxCells:       *maxCells,
		AllowAnyOrigin: *anyOrigin,
	})
	httpSrv := &http.Server{Addr: *addr, Handler: srv.Handler()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", "addr", *addr)
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
