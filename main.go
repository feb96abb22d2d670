package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/biit/biit-api/api/handlers"
	"github.com/biit/biit-api/api/scheduler"
	"github.com/biit/biit-api/config"
	"github.com/biit/biit-api/databases"
)

const shutdownTimeout = 15 * time.Second

func main() {
	a := handlers.App{}
	a.Config = *config.New()
	defer func() { _ = zap.L().Sync() }()

	// initialize database and router
	if err := a.Initialize(); err != nil {
		zap.S().Fatalw("failed to initialize", "error", err)
	}
	defer func() {
		if err := a.Close(); err != nil {
			zap.S().Errorw("failed to disconnect from database", "error", err)
		}
	}()

	s := scheduler.NewScheduler(
		databases.NewCommunityDatabase(a.DB()),
		databases.NewCommunityStatsDatabase(a.DB()),
		a.Config.StatsReconcileSchedule,
	)
	if err := s.Start(); err != nil {
		zap.S().Errorw("failed to start scheduler", "error", err)
		return
	}
	defer s.Stop()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%v", a.Config.Port),
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	zap.S().Infow("biit-api is up and running",
		"port", a.Config.Port,
		"url", a.Config.BaseURL,
	)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	if err := serve(srv, stop); err != nil {
		zap.S().Errorw("server stopped", "error", err)
	}
}

// serve runs srv until it fails or a signal arrives on stop. A signal shuts
// the server down gracefully.
func serve(srv *http.Server, stop <-chan os.Signal) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-stop:
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}
