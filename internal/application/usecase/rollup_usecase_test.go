package usecase

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moztelemetry/topline-dashboard-go/internal/domain/entity"
	"github.com/moztelemetry/topline-dashboard-go/internal/shared/types"
)

// fakeStorageRepo simula a partição de entrada: devolve um lote fixo e
// reporta um passo de progresso por "objeto" lido, como o adapter S3 faz.
type fakeStorageRepo struct {
	objects int
	records []entity.SummaryRecord

	readBucket string
	readPrefix string
	readMode   string

	writtenBucket  string
	writtenKey     string
	writtenDataset entity.ReportDataset
}

func (s *fakeStorageRepo) ReadToplineSummary(ctx context.Context, bucket, prefix, mode string, progress types.ProgressFactory) ([]entity.SummaryRecord, error) {
	s.readBucket = bucket
	s.readPrefix = prefix
	s.readMode = mode

	if progress != nil {
		bar := progress(s.objects)
		for i := 0; i < s.objects; i++ {
			bar.Increment()
		}
		bar.Stop()
	}

	return s.records, nil
}

func (s *fakeStorageRepo) WriteDashboardCSV(ctx context.Context, bucket, key string, dataset entity.ReportDataset) (string, error) {
	s.writtenBucket = bucket
	s.writtenKey = key
	s.writtenDataset = dataset
	return "s3://" + bucket + "/" + key, nil
}

type fakeExportRepo struct{}

func (e *fakeExportRepo) ExportToCSV(dataset entity.ReportDataset, filename, outputDir string) (string, error) {
	return "", nil
}

func (e *fakeExportRepo) ExportToJSON(dataset entity.ReportDataset, filename, outputDir string) (string, error) {
	return "", nil
}

func (e *fakeExportRepo) ExportToPDF(dataset entity.ReportDataset, filename, outputDir, mode string) (string, error) {
	return "", nil
}

type stubConfigRepo struct {
	cfg *types.Config
	err error
}

func (c *stubConfigRepo) LoadConfigFile(filePath string) (*types.Config, error) {
	return c.cfg, c.err
}

type fakeProgress struct {
	total      int
	increments int
	stopped    bool
}

func (p *fakeProgress) Increment() { p.increments++ }
func (p *fakeProgress) Stop()      { p.stopped = true }

type fakeStatus struct{}

func (s *fakeStatus) Update(message string) {}
func (s *fakeStatus) Stop()                 {}

type fakeTable struct{}

func (t *fakeTable) AddColumn(name string, options ...interface{}) {}
func (t *fakeTable) AddRow(cells ...interface{})                   {}
func (t *fakeTable) Render() string                                { return "" }

type fakeConsole struct {
	bars   []*fakeProgress
	stages []types.StageCount
}

func (c *fakeConsole) Print(a ...interface{})                     {}
func (c *fakeConsole) Printf(format string, a ...interface{})     {}
func (c *fakeConsole) Println(a ...interface{})                   {}
func (c *fakeConsole) LogInfo(format string, a ...interface{})    {}
func (c *fakeConsole) LogWarning(format string, a ...interface{}) {}
func (c *fakeConsole) LogError(format string, a ...interface{})   {}
func (c *fakeConsole) LogSuccess(format string, a ...interface{}) {}
func (c *fakeConsole) Status(message string) types.StatusHandle   { return &fakeStatus{} }
func (c *fakeConsole) CreateTable() types.TableInterface          { return &fakeTable{} }
func (c *fakeConsole) DisplayStageBars(stages []types.StageCount) { c.stages = stages }

func (c *fakeConsole) ProgressWithTotal(total int) types.ProgressHandle {
	bar := &fakeProgress{total: total}
	c.bars = append(c.bars, bar)
	return bar
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestUseCase(storage *fakeStorageRepo, configRepo *stubConfigRepo, console *fakeConsole) *RollupUseCase {
	return NewRollupUseCase(storage, &fakeExportRepo{}, configRepo, console, quietLogger())
}

func summaryRecord(geo, channel, os, reportStart string, actives float64) entity.SummaryRecord {
	return entity.SummaryRecord{
		Geo:         geo,
		Channel:     channel,
		OS:          os,
		ReportStart: reportStart,
		Aggregates:  map[string]float64{"actives": actives},
	}
}

func TestApplyConfigFileInputLocationFromFile(t *testing.T) {
	configRepo := &stubConfigRepo{cfg: &types.Config{
		InputBucket: "my-private-bucket",
		InputPrefix: "topline_summary/v9",
	}}
	uc := newTestUseCase(&fakeStorageRepo{}, configRepo, &fakeConsole{})

	// Flags não tocadas chegam vazias; o valor do arquivo deve prevalecer
	// sobre o default.
	args := &types.CLIArgs{Mode: "weekly", ConfigFile: "config.toml"}
	_, err := uc.ApplyConfigFile(args)
	require.NoError(t, err)

	assert.Equal(t, "my-private-bucket", args.InputBucket)
	assert.Equal(t, "topline_summary/v9", args.InputPrefix)
}

func TestApplyConfigFileFlagsWinOverFile(t *testing.T) {
	configRepo := &stubConfigRepo{cfg: &types.Config{
		InputBucket: "file-bucket",
		InputPrefix: "file-prefix",
		Workers:     8,
	}}
	uc := newTestUseCase(&fakeStorageRepo{}, configRepo, &fakeConsole{})

	args := &types.CLIArgs{
		Mode:        "weekly",
		ConfigFile:  "config.toml",
		InputBucket: "cli-bucket",
		Workers:     2,
	}
	_, err := uc.ApplyConfigFile(args)
	require.NoError(t, err)

	assert.Equal(t, "cli-bucket", args.InputBucket)
	assert.Equal(t, "file-prefix", args.InputPrefix)
	assert.Equal(t, 2, args.Workers)
}

func TestApplyConfigFileDefaultsWithoutFile(t *testing.T) {
	uc := newTestUseCase(&fakeStorageRepo{}, &stubConfigRepo{}, &fakeConsole{})

	args := &types.CLIArgs{Mode: "monthly"}
	cfg, err := uc.ApplyConfigFile(args)
	require.NoError(t, err)

	assert.Nil(t, cfg)
	assert.Equal(t, types.DefaultInputBucket, args.InputBucket)
	assert.Equal(t, types.DefaultInputPrefix, args.InputPrefix)
}

func TestRunRollupReportsReadProgress(t *testing.T) {
	storage := &fakeStorageRepo{
		objects: 3,
		records: []entity.SummaryRecord{
			summaryRecord("US", "release", "Windows", "20160103", 5),
			summaryRecord("DE", "beta", "Darwin", "20160103", 3),
		},
	}
	console := &fakeConsole{}
	uc := newTestUseCase(storage, &stubConfigRepo{}, console)

	args := &types.CLIArgs{Mode: "weekly", Bucket: "net-mozaws-data", Prefix: "dashboard/v4"}
	require.NoError(t, uc.RunRollup(context.Background(), args))

	// Uma barra por leitura, com um passo por objeto da partição.
	require.Len(t, console.bars, 1)
	assert.Equal(t, 3, console.bars[0].total)
	assert.Equal(t, 3, console.bars[0].increments)
	assert.True(t, console.bars[0].stopped)

	assert.Equal(t, types.DefaultInputBucket, storage.readBucket)
	assert.Equal(t, "weekly", storage.readMode)
	assert.Equal(t, "dashboard/v4/topline-weekly.csv", storage.writtenKey)
	assert.NotEmpty(t, storage.writtenDataset.Rows)
}

func TestRunRollupRejectsInvalidMode(t *testing.T) {
	uc := newTestUseCase(&fakeStorageRepo{}, &stubConfigRepo{}, &fakeConsole{})

	err := uc.RunRollup(context.Background(), &types.CLIArgs{Mode: "daily"})
	assert.ErrorIs(t, err, types.ErrInvalidMode)
}
