package repository

import (
	"github.com/moztelemetry/topline-dashboard-go/internal/domain/entity"
)

// ExportRepository defines the interface for local report exports.
type ExportRepository interface {
	ExportToCSV(dataset entity.ReportDataset, filename string, outputDir string) (string, error)
	ExportToJSON(dataset entity.ReportDataset, filename string, outputDir string) (string, error)
	ExportToPDF(dataset entity.ReportDataset, filename string, outputDir string, mode string) (string, error)
}
