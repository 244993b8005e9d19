package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigFileTOML(t *testing.T) {
	path := writeConfigFile(t, "config.toml", `
input_bucket = "telemetry-parquet"
input_prefix = "topline_summary/v1"
workers = 4
countries = ["US", "DE"]
`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "telemetry-parquet", cfg.InputBucket)
	assert.Equal(t, "topline_summary/v1", cfg.InputPrefix)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, []string{"US", "DE"}, cfg.Countries)
}

func TestLoadConfigFileYAML(t *testing.T) {
	path := writeConfigFile(t, "config.yaml", `
input_bucket: telemetry-parquet
workers: 2
report_type:
  - csv
  - json
`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "telemetry-parquet", cfg.InputBucket)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, []string{"csv", "json"}, cfg.ReportType)
}

func TestLoadConfigFileJSON(t *testing.T) {
	path := writeConfigFile(t, "config.json", `{
  "input_bucket": "telemetry-parquet",
  "input_prefix": "topline_summary/v2",
  "report_name": "topline"
}`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "telemetry-parquet", cfg.InputBucket)
	assert.Equal(t, "topline_summary/v2", cfg.InputPrefix)
	assert.Equal(t, "topline", cfg.ReportName)
}

func TestLoadConfigFileRejectsNegativeWorkers(t *testing.T) {
	path := writeConfigFile(t, "config.toml", "workers = -1\n")

	repo := NewConfigRepository()
	_, err := repo.LoadConfigFile(path)
	assert.ErrorContains(t, err, "workers must not be negative")
}

func TestLoadConfigFileRejectsUnknownReportType(t *testing.T) {
	path := writeConfigFile(t, "config.yaml", "report_type:\n  - csv\n  - xlsx\n")

	repo := NewConfigRepository()
	_, err := repo.LoadConfigFile(path)
	assert.ErrorContains(t, err, `unknown report type "xlsx"`)
}

func TestLoadConfigFileRejectsMalformedCountry(t *testing.T) {
	path := writeConfigFile(t, "config.json", `{"countries": ["US", "germany"]}`)

	repo := NewConfigRepository()
	_, err := repo.LoadConfigFile(path)
	assert.ErrorContains(t, err, "country codes must be two uppercase letters")
}

func TestLoadConfigFileUnsupportedExtension(t *testing.T) {
	path := writeConfigFile(t, "config.ini", "input_bucket=foo")

	repo := NewConfigRepository()
	_, err := repo.LoadConfigFile(path)
	assert.ErrorContains(t, err, "unsupported config file format")
}

func TestLoadConfigFileMissing(t *testing.T) {
	repo := NewConfigRepository()
	_, err := repo.LoadConfigFile(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoadConfigFileDirectory(t *testing.T) {
	repo := NewConfigRepository()
	_, err := repo.LoadConfigFile(t.TempDir())
	assert.ErrorContains(t, err, "is a directory")
}
