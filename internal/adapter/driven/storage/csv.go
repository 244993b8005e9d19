package storage

import (
	"bytes"
	"encoding/csv"

	"github.com/moztelemetry/topline-dashboard-go/internal/domain/entity"
)

// encodeCSV serializa o dataset no formato do dashboard: cabeçalho com as
// colunas do schema histórico seguido de uma linha por célula retida.
func encodeCSV(dataset entity.ReportDataset) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(dataset.Columns); err != nil {
		return nil, err
	}
	for _, row := range dataset.Rows {
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
