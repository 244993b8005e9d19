package repository

import (
	"context"

	"github.com/moztelemetry/topline-dashboard-go/internal/domain/entity"
	"github.com/moztelemetry/topline-dashboard-go/internal/shared/types"
)

// StorageRepository defines the interface for the dataset storage location.
// The core never touches it directly; the use case reads a complete batch,
// runs the transform, and hands the result back for upload.
type StorageRepository interface {
	// ReadToplineSummary lê a partição mode={mode} do dataset de entrada em
	// s3://{bucket}/{prefix} e devolve o lote completo em memória.
	// Uma coluna obrigatória ausente ou com tipo errado é fatal. O progresso
	// por objeto lido é reportado pela barra criada via `progress`; um
	// factory nil desliga o relatório.
	ReadToplineSummary(ctx context.Context, bucket, prefix, mode string, progress types.ProgressFactory) ([]entity.SummaryRecord, error)

	// WriteDashboardCSV serializa o dataset como texto delimitado e grava em
	// s3://{bucket}/{key}, devolvendo a URI final.
	WriteDashboardCSV(ctx context.Context, bucket, key string, dataset entity.ReportDataset) (string, error)
}
