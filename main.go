package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/SaiNageswarS/go-api-boot/dotenv"
	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-api-boot/server"
	"github.com/SaiNageswarS/gemini-notion-api/appconfig"
	"github.com/SaiNageswarS/gemini-notion-api/controller"
	"github.com/SaiNageswarS/gemini-notion-api/gemini"
	"github.com/SaiNageswarS/gemini-notion-api/notion"
	"go.uber.org/zap"
)

func main() {
	dotenv.LoadEnv()

	boot, err := server.New().
		GRPCPort(":50051").
		HTTPPort(":" + httpPort()).
		ProvideFunc(appconfig.ProvideAppConfig).
		ProvideFunc(notion.ProvideClient).
		ProvideFunc(notion.ProvideAggregator).
		ProvideFunc(gemini.ProvideClient).
		AddRestController(controller.ProvideHomeController).
		AddRestController(controller.ProvideStatusController).
		AddRestController(controller.ProvideSearchController).
		AddRestController(controller.ProvideRecentController).
		AddRestController(controller.ProvideChatController).
		AddRestController(controller.ProvideMCPController).
		Build()

	if err != nil {
		logger.Fatal("Dependency Injection Failed", zap.Error(err))
	}

	ctx := getCancellableContext()
	boot.Serve(ctx)
}

func httpPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8080"
}

func getCancellableContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sig
		cancel()
	}()

	return ctx
}
