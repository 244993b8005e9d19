package cli

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/moztelemetry/topline-dashboard-go/internal/application/usecase"
	"github.com/moztelemetry/topline-dashboard-go/internal/shared/types"
	"github.com/moztelemetry/topline-dashboard-go/pkg/version"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd       *cobra.Command
	rollupUseCase *usecase.RollupUseCase
	version       string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	// Obtem a versão formatada
	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "topline-dashboard <mode> <bucket> <prefix>",
		Short:   "Topline Dashboard rollup CLI",
		Long:    "Aggregates topline summary data into the historical dashboard CSV.\n\nmode is the aggregation period (weekly or monthly), bucket and prefix name the S3 location where the dashboard CSV is written.",
		Version: formattedVersion, // Use a versão formatada
		Args:    cobra.ExactArgs(3),
		RunE:    app.runCommand,
	}

	// Personaliza a template para incluir mais informações de versão
	rootCmd.SetVersionTemplate(`{{printf "Topline Dashboard version: %s\n" .Version}}`)

	// Adiciona flags de linha de comando
	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().String("input_bucket", types.DefaultInputBucket, "Bucket containing the summary parquet data")
	rootCmd.PersistentFlags().String("input_prefix", types.DefaultInputPrefix, "Prefix of the summary parquet data")
	rootCmd.PersistentFlags().IntP("workers", "w", 0, "Number of aggregation workers (default: number of CPUs)")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Specify the base name for local report copies (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", nil, "Local report copies to write: csv, json, pdf")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save local report copies (default: current directory)")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs(positional []string) (*types.CLIArgs, error) {
	configFile, _ := app.rootCmd.Flags().GetString("config-file")
	inputBucket, _ := app.rootCmd.Flags().GetString("input_bucket")
	inputPrefix, _ := app.rootCmd.Flags().GetString("input_prefix")
	workers, _ := app.rootCmd.Flags().GetInt("workers")

	// Flags que o usuário não tocou ficam vazias até a mesclagem com o
	// arquivo de configuração; o default entra por último.
	if !app.rootCmd.Flags().Changed("input_bucket") {
		inputBucket = ""
	}
	if !app.rootCmd.Flags().Changed("input_prefix") {
		inputPrefix = ""
	}
	reportName, _ := app.rootCmd.Flags().GetString("report-name")
	reportType, _ := app.rootCmd.Flags().GetStringSlice("report-type")
	dir, _ := app.rootCmd.Flags().GetString("dir")

	if dir != "" {
		// Convert to absolute path
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	args := &types.CLIArgs{
		Mode:        positional[0],
		Bucket:      positional[1],
		Prefix:      positional[2],
		ConfigFile:  configFile,
		InputBucket: inputBucket,
		InputPrefix: inputPrefix,
		Workers:     workers,
		ReportName:  reportName,
		ReportType:  reportType,
		Dir:         dir,
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	// Exibe o banner de boas-vindas
	displayWelcomeBanner(app.version)

	// Verifica a versão mais recente disponível
	go version.CheckLatestVersion(app.version)

	// Analisa os argumentos da linha de comando
	cliArgs, err := app.parseArgs(args)
	if err != nil {
		return err
	}

	// Executa o rollup
	ctx := context.Background()
	return app.rollupUseCase.RunRollup(ctx, cliArgs)
}

// SetRollupUseCase sets the rollup use case for the CLI app.
func (app *CLIApp) SetRollupUseCase(useCase *usecase.RollupUseCase) {
	app.rollupUseCase = useCase
}
