package main

import (
	"fmt"
	"os"

	"github.com/diillson/aws-cur-etl-go/internal/adapter/driven/config"
	"github.com/diillson/aws-cur-etl-go/internal/adapter/driven/export"
	"github.com/diillson/aws-cur-etl-go/internal/adapter/driven/report"
	"github.com/diillson/aws-cur-etl-go/internal/adapter/driving/cli"
	"github.com/diillson/aws-cur-etl-go/internal/application/usecase"
	"github.com/diillson/aws-cur-etl-go/pkg/console"
	"github.com/diillson/aws-cur-etl-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	reportRepo := report.NewReportRepository()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	etlUseCase := usecase.NewETLUseCase(
		reportRepo,
		exportRepo,
		configRepo,
		consoleImpl,
	)

	app.SetETLUseCase(etlUseCase)

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
