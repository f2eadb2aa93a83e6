// SPDX-License-Identifier: EPL-2.0

// Command vemo-relay serves the browser facing API in front of the emotion
// inference service.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ik5/vemo"
	"github.com/ik5/vemo/formats"
	"github.com/ik5/vemo/internal/config"
	"github.com/ik5/vemo/internal/inference"
	"github.com/ik5/vemo/internal/relay"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configFilePath := flag.String("configFilePath", "config.yaml", "Set the file path to the config file.")
	flag.Parse()

	cfg, err := config.Load(*configFilePath)
	if err != nil {
		slog.Error("error during config read", "err", err)
		os.Exit(1)
	}

	logFilePointer, err := config.ConfigureLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		slog.Error("error configuring logger", "err", err)
		os.Exit(1)
	}
	if logFilePointer != nil {
		defer logFilePointer.Close()
	}

	if err := serve(cfg); err != nil {
		slog.Error("relay stopped", "err", err)
		if logFilePointer != nil {
			logFilePointer.Close()
		}
		os.Exit(1)
	}
}

func serve(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := inference.New(cfg.InferenceURL, inference.Options{
		Timeout: cfg.Timeout,
		Retries: cfg.Retries,
	})

	handler := relay.New(client, formats.NewRegistry(), relay.Options{
		AllowOrigin:  cfg.AllowOrigin,
		MaxBodyBytes: cfg.MaxBodyBytes,
		Analyze: vemo.Options{
			TargetRate: cfg.Analyze.TargetRate,
			Mono:       cfg.Analyze.Mono,
		},
	})

	srv := &http.Server{
		Addr:              cfg.ListenAddress,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Timeout + 30*time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting relay", "listenAddress", cfg.ListenAddress, "inferenceURL", cfg.InferenceURL)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down relay")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
