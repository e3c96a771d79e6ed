package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"barberia/config"
	"barberia/di"
	"barberia/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := di.InitializeConsumer()
	consumer.Run(ctx)
}
