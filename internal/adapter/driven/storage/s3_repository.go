package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/parquet-go/parquet-go"
	"github.com/sirupsen/logrus"

	"github.com/moztelemetry/topline-dashboard-go/internal/domain/entity"
	"github.com/moztelemetry/topline-dashboard-go/internal/domain/repository"
	"github.com/moztelemetry/topline-dashboard-go/internal/shared/types"
)

// S3RepositoryImpl implementa o StorageRepository sobre o S3: lê a partição
// parquet do topline summary e grava o CSV do dashboard.
type S3RepositoryImpl struct {
	mu     sync.Mutex
	client *s3.Client
	logger *logrus.Logger
}

// NewS3Repository cria uma nova implementação do StorageRepository.
func NewS3Repository(logger *logrus.Logger) repository.StorageRepository {
	return &S3RepositoryImpl{logger: logger}
}

func (r *S3RepositoryImpl) getClient(ctx context.Context) (*s3.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.client != nil {
		return r.client, nil
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	r.client = s3.NewFromConfig(cfg)
	return r.client, nil
}

// toplineRow é o layout parquet de uma linha do topline summary. report_start
// chega como string (o dataset de origem já aplica essa tipagem); os campos
// agregados são numéricos, `hours` fracionário e os demais contagens.
type toplineRow struct {
	Geo           string  `parquet:"geo,optional"`
	Channel       string  `parquet:"channel,optional"`
	OS            string  `parquet:"os,optional"`
	ReportStart   string  `parquet:"report_start,optional"`
	Hours         float64 `parquet:"hours,optional"`
	Crashes       float64 `parquet:"crashes,optional"`
	Google        float64 `parquet:"google,optional"`
	Bing          float64 `parquet:"bing,optional"`
	Yahoo         float64 `parquet:"yahoo,optional"`
	Other         float64 `parquet:"other,optional"`
	Actives       float64 `parquet:"actives,optional"`
	NewRecords    float64 `parquet:"new_records,optional"`
	Default       float64 `parquet:"default,optional"`
	FiveOfSeven   float64 `parquet:"five_of_seven,optional"`
	TotalRecords  float64 `parquet:"total_records,optional"`
	Inactives     float64 `parquet:"inactives,optional"`
}

// ReadToplineSummary lê todos os objetos parquet de
// s3://{bucket}/{prefix}/mode={mode}/ e devolve o lote completo em memória,
// reportando um passo de progresso por objeto lido.
func (r *S3RepositoryImpl) ReadToplineSummary(ctx context.Context, bucket, prefix, mode string, progress types.ProgressFactory) ([]entity.SummaryRecord, error) {
	client, err := r.getClient(ctx)
	if err != nil {
		return nil, err
	}

	// O layout de partição do dataset de entrada: mode=weekly ou mode=monthly.
	partition := fmt.Sprintf("%s/mode=%s/", strings.TrimSuffix(prefix, "/"), mode)

	var keys []string
	paginator := s3.NewListObjectsV2Paginator(client, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(partition),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list s3://%s/%s: %w", bucket, partition, err)
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			if strings.HasSuffix(key, ".parquet") {
				keys = append(keys, key)
			}
		}
	}

	if len(keys) == 0 {
		return nil, fmt.Errorf("s3://%s/%s: %w", bucket, partition, types.ErrNoInputData)
	}

	r.logger.WithFields(logrus.Fields{
		"bucket":  bucket,
		"prefix":  partition,
		"objects": len(keys),
	}).Info("reading topline summary partition")

	var bar types.ProgressHandle
	if progress != nil {
		bar = progress(len(keys))
	}

	var records []entity.SummaryRecord
	for _, key := range keys {
		rows, err := r.readParquetObject(ctx, client, bucket, key)
		if err != nil {
			if bar != nil {
				bar.Stop()
			}
			return nil, err
		}
		records = append(records, rows...)
		if bar != nil {
			bar.Increment()
		}
	}
	if bar != nil {
		bar.Stop()
	}

	return records, nil
}

// readParquetObject baixa um objeto, valida o schema e decodifica as linhas.
func (r *S3RepositoryImpl) readParquetObject(ctx context.Context, client *s3.Client, bucket, key string) ([]entity.SummaryRecord, error) {
	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get s3://%s/%s: %w", bucket, key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read s3://%s/%s: %w", bucket, key, err)
	}

	file, err := parquet.OpenFile(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("s3://%s/%s is not a valid parquet file: %w", bucket, key, err)
	}
	if err := validateSchema(file.Schema()); err != nil {
		// Violação estrutural: a execução inteira falha, sem resultado parcial.
		return nil, fmt.Errorf("s3://%s/%s: %w", bucket, key, err)
	}

	rows, err := parquet.Read[toplineRow](bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to decode s3://%s/%s: %w", bucket, key, err)
	}

	records := make([]entity.SummaryRecord, len(rows))
	for i, row := range rows {
		records[i] = entity.SummaryRecord{
			Geo:         row.Geo,
			Channel:     row.Channel,
			OS:          row.OS,
			ReportStart: row.ReportStart,
			Aggregates: map[string]float64{
				"hours":         row.Hours,
				"crashes":       row.Crashes,
				"google":        row.Google,
				"bing":          row.Bing,
				"yahoo":         row.Yahoo,
				"other":         row.Other,
				"actives":       row.Actives,
				"new_records":   row.NewRecords,
				"default":       row.Default,
				"five_of_seven": row.FiveOfSeven,
				"total_records": row.TotalRecords,
				"inactives":     row.Inactives,
			},
		}
	}
	return records, nil
}

// validateSchema confere que o arquivo carrega todas as colunas do schema de
// entrada, com report_start tipado como string. Colunas extras são ignoradas.
func validateSchema(schema *parquet.Schema) error {
	fields := make(map[string]parquet.Field, len(schema.Fields()))
	for _, field := range schema.Fields() {
		fields[field.Name()] = field
	}

	for _, name := range []string{"geo", "channel", "os", "report_start"} {
		field, ok := fields[name]
		if !ok {
			return fmt.Errorf("missing column %q: %w", name, types.ErrSchemaMismatch)
		}
		if kind := field.Type().Kind(); kind != parquet.ByteArray {
			return fmt.Errorf("column %q has kind %s, want string: %w", name, kind, types.ErrSchemaMismatch)
		}
	}

	for _, name := range entity.ToplineAggregates {
		field, ok := fields[name]
		if !ok {
			return fmt.Errorf("missing column %q: %w", name, types.ErrSchemaMismatch)
		}
		switch field.Type().Kind() {
		case parquet.Int32, parquet.Int64, parquet.Float, parquet.Double:
		default:
			return fmt.Errorf("column %q is not numeric: %w", name, types.ErrSchemaMismatch)
		}
	}

	return nil
}

// WriteDashboardCSV serializa o dataset como CSV e grava em s3://{bucket}/{key}.
func (r *S3RepositoryImpl) WriteDashboardCSV(ctx context.Context, bucket, key string, dataset entity.ReportDataset) (string, error) {
	client, err := r.getClient(ctx)
	if err != nil {
		return "", err
	}

	body, err := encodeCSV(dataset)
	if err != nil {
		return "", fmt.Errorf("failed to encode dashboard CSV: %w", err)
	}

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("text/csv"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to put s3://%s/%s: %w", bucket, key, err)
	}

	uri := fmt.Sprintf("s3://%s/%s", bucket, key)
	r.logger.WithFields(logrus.Fields{
		"uri":   uri,
		"rows":  len(dataset.Rows),
		"bytes": len(body),
	}).Info("dashboard CSV uploaded")

	return uri, nil
}
