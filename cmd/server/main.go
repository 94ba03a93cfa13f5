package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Heidric/contact-intake/internal/config"
	"github.com/Heidric/contact-intake/internal/logger"
	"github.com/Heidric/contact-intake/internal/server"
	"github.com/Heidric/contact-intake/internal/services/contact"
	"github.com/Heidric/contact-intake/internal/validation"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runner, ctx := errgroup.WithContext(ctx)

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal(err, "Load config")
	}

	loggerSvc, err := logger.Initialize(cfg.Logger)
	if err != nil {
		log.Fatal(err, "Init logger")
	}
	ctx = loggerSvc.Zerolog().WithContext(ctx)

	formValidator := validation.New(validation.ContactRules())
	contactSvc := contact.New()

	httpSrv := server.NewServer(cfg, formValidator, contactSvc)
	httpSrv.Run(ctx, runner)

	runner.Go(func() error {
		<-ctx.Done()
		return httpSrv.Shutdown(ctx)
	})

	if err := runner.Wait(); err != nil {
		loggerSvc.Zerolog().Error().Err(err).Msg("Server exited")
		os.Exit(1)
	}
}
