package usecase

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"

	"github.com/moztelemetry/topline-dashboard-go/internal/application/rollup"
	"github.com/moztelemetry/topline-dashboard-go/internal/domain/entity"
	"github.com/moztelemetry/topline-dashboard-go/internal/domain/repository"
	"github.com/moztelemetry/topline-dashboard-go/internal/shared/types"
)

// RollupUseCase handles the main dashboard rollup functionality: read the
// topline summary partition, reformat it into the historical layout, upload
// the CSV and optionally export local copies.
type RollupUseCase struct {
	storageRepo repository.StorageRepository
	exportRepo  repository.ExportRepository
	configRepo  repository.ConfigRepository
	console     types.ConsoleInterface
	logger      *logrus.Logger
}

// NewRollupUseCase creates a new rollup use case.
func NewRollupUseCase(
	storageRepo repository.StorageRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
	logger *logrus.Logger,
) *RollupUseCase {
	return &RollupUseCase{
		storageRepo: storageRepo,
		exportRepo:  exportRepo,
		configRepo:  configRepo,
		console:     console,
		logger:      logger,
	}
}

// ApplyConfigFile carrega o arquivo de configuração, se fornecido, e preenche
// os argumentos que não foram definidos na linha de comando. A precedência é
// flag explícita > arquivo > default: os defaults da localização de entrada
// entram por último, nunca antes da mesclagem.
func (uc *RollupUseCase) ApplyConfigFile(args *types.CLIArgs) (*types.Config, error) {
	var config *types.Config

	if args.ConfigFile != "" {
		loaded, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return nil, err
		}
		config = loaded

		if args.InputBucket == "" && config.InputBucket != "" {
			args.InputBucket = config.InputBucket
		}
		if args.InputPrefix == "" && config.InputPrefix != "" {
			args.InputPrefix = config.InputPrefix
		}
		if args.Workers == 0 && config.Workers > 0 {
			args.Workers = config.Workers
		}
		if args.ReportName == "" {
			args.ReportName = config.ReportName
		}
		if len(args.ReportType) == 0 {
			args.ReportType = config.ReportType
		}
		if args.Dir == "" {
			args.Dir = config.Dir
		}
	}

	if args.InputBucket == "" {
		args.InputBucket = types.DefaultInputBucket
	}
	if args.InputPrefix == "" {
		args.InputPrefix = types.DefaultInputPrefix
	}

	return config, nil
}

// RunRollup executa a funcionalidade principal: ler, reformatar, gravar.
func (uc *RollupUseCase) RunRollup(ctx context.Context, args *types.CLIArgs) error {
	if args.Mode != "weekly" && args.Mode != "monthly" {
		return types.ErrInvalidMode
	}

	config, err := uc.ApplyConfigFile(args)
	if err != nil {
		return err
	}

	log := uc.logger.WithFields(logrus.Fields{
		"mode":         args.Mode,
		"input_bucket": args.InputBucket,
		"input_prefix": args.InputPrefix,
	})
	log.Info("generating topline dashboard rollup")

	// A partição de entrada é selecionada pelo mode; o writer usa o mesmo
	// mode para nomear a chave de saída.
	status := uc.console.Status(fmt.Sprintf("Reading %s topline summary...", args.Mode))

	records, err := uc.storageRepo.ReadToplineSummary(ctx, args.InputBucket, args.InputPrefix, args.Mode, uc.console.ProgressWithTotal)
	if err != nil {
		status.Stop()
		return fmt.Errorf("reading topline summary: %w", err)
	}
	log.WithField("rows", len(records)).Info("input dataset loaded")

	status.Update("Aggregating all dimension combinations...")

	opts := []rollup.Option{rollup.WithWorkers(args.Workers)}
	if config != nil && len(config.Countries) > 0 {
		opts = append(opts, rollup.WithCountries(config.Countries))
	}
	pipeline := rollup.New(opts...)
	dataset, stats := pipeline.Reformat(records)

	if stats.DroppedDates > 0 {
		// Descarte silencioso mantido por compatibilidade com o histórico.
		log.WithField("dropped_dates", stats.DroppedDates).
			Warn("rows without a parseable report_start were excluded")
	}

	status.Update("Uploading dashboard CSV...")

	key := fmt.Sprintf("%s/topline-%s.csv", args.Prefix, args.Mode)
	uri, err := uc.storageRepo.WriteDashboardCSV(ctx, args.Bucket, key, dataset)
	if err != nil {
		status.Stop()
		return fmt.Errorf("writing dashboard data: %w", err)
	}
	status.Stop()

	log.WithFields(logrus.Fields{"key": key, "rows": stats.Output}).Info("dashboard data written")
	uc.console.LogSuccess("Wrote %d rows to %s", stats.Output, uri)

	uc.displaySummary(args, stats)
	uc.exportReports(dataset, args)

	return nil
}

// displaySummary renderiza a tabela e o gráfico de barras com as contagens
// de linhas por estágio do pipeline.
func (uc *RollupUseCase) displaySummary(args *types.CLIArgs, stats rollup.Stats) {
	table := uc.console.CreateTable()
	table.AddColumn("Mode")
	table.AddColumn("Input Rows")
	table.AddColumn("Unparseable Dates")
	table.AddColumn("Cube Rows")
	table.AddColumn("Output Rows")

	droppedText := fmt.Sprintf("%d", stats.DroppedDates)
	if stats.DroppedDates > 0 {
		droppedText = pterm.FgYellow.Sprintf("%d", stats.DroppedDates)
	}

	table.AddRow(
		pterm.FgMagenta.Sprint(args.Mode),
		fmt.Sprintf("%d", stats.Input),
		droppedText,
		fmt.Sprintf("%d", stats.CubeRows),
		pterm.FgGreen.Sprintf("%d", stats.Output),
	)
	uc.console.Print(table.Render())

	uc.console.DisplayStageBars([]types.StageCount{
		{Stage: "input", Rows: stats.Input},
		{Stage: "cube", Rows: stats.CubeRows},
		{Stage: "filtered", Rows: stats.Output},
	})
}

// exportReports grava cópias locais do rollup quando um nome de relatório
// foi fornecido.
func (uc *RollupUseCase) exportReports(dataset entity.ReportDataset, args *types.CLIArgs) {
	if args.ReportName == "" || len(args.ReportType) == 0 {
		return
	}

	for _, reportType := range args.ReportType {
		switch reportType {
		case "csv":
			csvPath, err := uc.exportRepo.ExportToCSV(dataset, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to CSV: %s", csvPath)
			}
		case "json":
			jsonPath, err := uc.exportRepo.ExportToJSON(dataset, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", jsonPath)
			}
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportToPDF(dataset, args.ReportName, args.Dir, args.Mode)
			if err != nil {
				uc.console.LogError("Failed to export to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to PDF: %s", pdfPath)
			}
		default:
			uc.console.LogWarning("Unknown report type '%s' (expected csv, json or pdf)", reportType)
		}
	}
}
