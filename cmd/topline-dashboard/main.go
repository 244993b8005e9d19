package main

import (
	"fmt"
	"os"

	"github.com/moztelemetry/topline-dashboard-go/internal/adapter/driven/config"
	"github.com/moztelemetry/topline-dashboard-go/internal/adapter/driven/export"
	"github.com/moztelemetry/topline-dashboard-go/internal/adapter/driven/storage"
	"github.com/moztelemetry/topline-dashboard-go/internal/adapter/driving/cli"
	"github.com/moztelemetry/topline-dashboard-go/internal/application/usecase"
	"github.com/moztelemetry/topline-dashboard-go/pkg/console"
	"github.com/moztelemetry/topline-dashboard-go/pkg/version"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Inicializa os repositórios
	storageRepo := storage.NewS3Repository(logger)
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	rollupUseCase := usecase.NewRollupUseCase(
		storageRepo,
		exportRepo,
		configRepo,
		consoleImpl,
		logger,
	)

	// Define o caso de uso no aplicativo CLI
	app.SetRollupUseCase(rollupUseCase)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
