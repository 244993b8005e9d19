package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/moztelemetry/topline-dashboard-go/internal/domain/entity"
	"github.com/moztelemetry/topline-dashboard-go/internal/domain/repository"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// ExportToCSV grava uma cópia local do rollup como CSV.
func (r *ExportRepositoryImpl) ExportToCSV(dataset entity.ReportDataset, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(dataset.Columns); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}
	for _, row := range dataset.Rows {
		if err := writer.Write(row); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	return filepath.Abs(outputFilename)
}

// ExportToJSON grava o rollup como um array de objetos coluna->valor.
func (r *ExportRepositoryImpl) ExportToJSON(dataset entity.ReportDataset, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(dataset.RowMaps()); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// Limite de linhas da tabela de amostra no PDF; o arquivo completo é o CSV.
const pdfPreviewRows = 40

// ExportToPDF grava um resumo do rollup com uma amostra das primeiras linhas.
func (r *ExportRepositoryImpl) ExportToPDF(dataset entity.ReportDataset, filename, outputDir, mode string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	pdf.AddPage()

	// Cabeçalho
	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr(fmt.Sprintf("  Topline Dashboard Rollup (%s)", mode)), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Rows: %d  |  Columns: %d", len(dataset.Rows), len(dataset.Columns))), "", 1, "L", true, 0, "")
	pdf.Ln(8)

	// Tabela de amostra
	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.Cell(0, 8, "Sample Rows")
	pdf.Ln(7)
	pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
	pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+270, pdf.GetY())
	pdf.Ln(4)

	colWidth := 270.0 / float64(len(dataset.Columns))
	pdf.SetFont("Arial", "B", 7)
	for _, col := range dataset.Columns {
		pdf.CellFormat(colWidth, 6, tr(col), "B", 0, "L", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 7)
	limit := len(dataset.Rows)
	if limit > pdfPreviewRows {
		limit = pdfPreviewRows
	}
	for i := 0; i < limit; i++ {
		for _, cell := range dataset.Rows[i] {
			pdf.CellFormat(colWidth, 5, tr(cell), "", 0, "L", false, 0, "")
		}
		pdf.Ln(5)
	}
	if len(dataset.Rows) > limit {
		pdf.Ln(2)
		pdf.SetFont("Arial", "I", 8)
		pdf.Cell(0, 5, tr(fmt.Sprintf("... (+%d more rows in the CSV)", len(dataset.Rows)-limit)))
	}

	// Rodapé
	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	footerText := fmt.Sprintf("Generated by Topline Dashboard (Go) | %s", time.Now().Format("2006-01-02"))
	pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
