package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bornholm/navchrome/internal/config"
	"github.com/bornholm/navchrome/internal/setup"
	"github.com/bornholm/navchrome/pkg/log"
	"github.com/pkg/errors"
)

var (
	configFile string = ""
	dumpConfig bool   = false
)

func init() {
	flag.StringVar(&configFile, "config", configFile, "configuration file")
	flag.BoolVar(&dumpConfig, "dump-config", dumpConfig, "dump default configuration file and exit")
}

func main() {
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conf := config.NewDefaultConfig()

	if dumpConfig {
		if err := config.Dump(os.Stdout, conf); err != nil {
			slog.ErrorContext(ctx, "could not dump config file", log.Error(errors.WithStack(err)))
			os.Exit(1)
		}

		os.Exit(0)
	}

	if configFile != "" {
		if err := config.LoadFile(configFile, conf); err != nil {
			slog.ErrorContext(ctx, "could not parse config file", log.Error(errors.WithStack(err)), slog.String("file", configFile))
			os.Exit(1)
		}
	}

	if err := config.Interpolate(conf); err != nil {
		slog.ErrorContext(ctx, "could not interpolate config file", log.Error(errors.WithStack(err)))
		os.Exit(1)
	}

	slog.SetDefault(newLogger(conf.Logger))
	slog.SetLogLoggerLevel(slog.Level(conf.Logger.Level))

	httpHandler, err := setup.NewHandlerFromConfig(ctx, conf)
	if err != nil {
		slog.ErrorContext(ctx, "could not generate handler from config", log.Error(errors.WithStack(err)))
		os.Exit(1)
	}

	server := &http.Server{
		Addr:              string(conf.HTTP.Address),
		Handler:           httpHandler,
		ReadHeaderTimeout: time.Duration(*conf.HTTP.ReadHeaderTimeout),
	}

	go func() {
		slog.InfoContext(ctx, "http server listening", slog.String("addr", server.Addr))

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "could not listen", log.Error(errors.WithStack(err)))
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), time.Duration(*conf.HTTP.ShutdownTimeout))
	defer cancelShutdown()

	slog.InfoContext(shutdownCtx, "shutting down http server")

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "could not shutdown http server", log.Error(errors.WithStack(err)))
		os.Exit(1)
	}
}

func newLogger(conf config.Logger) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     slog.Level(conf.Level),
		AddSource: true,
	}

	var handler slog.Handler
	if string(conf.Format) == config.LoggerFormatJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(log.ContextHandler{
		Handler: handler,
	})
}
