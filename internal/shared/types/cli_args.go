package types

// Defaults da localização de entrada. São aplicados somente depois da
// mesclagem com o arquivo de configuração: uma flag explícita vence o
// arquivo, e o arquivo vence o default.
const (
	DefaultInputBucket = "telemetry-parquet"
	DefaultInputPrefix = "topline_summary/v1"
)

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	// Posicionais: mode (weekly|monthly), bucket e prefix de saída.
	Mode   string
	Bucket string
	Prefix string

	ConfigFile  string
	InputBucket string
	InputPrefix string
	Workers     int
	ReportName  string
	ReportType  []string
	Dir         string
}
