package rollup

import (
	"sort"
	"strconv"

	"github.com/moztelemetry/topline-dashboard-go/internal/domain/entity"
)

// Reconcile projeta as linhas filtradas do cubo no layout de colunas do
// dataset histórico. Para cada coluna alvo: colunas de atributo recebem o
// valor da dimensão (wildcard serializado como "all"), colunas agregadas
// presentes na origem recebem a soma formatada, e colunas agregadas ausentes
// recebem o literal 0. O conjunto e a ordem das colunas do resultado são
// determinados exclusivamente pelo schema alvo, nunca pela origem.
func Reconcile(rows []entity.CubeRow, columns []string) entity.ReportDataset {
	dataset := entity.ReportDataset{
		Columns: append([]string(nil), columns...),
		Rows:    make([][]string, 0, len(rows)),
	}

	for _, row := range rows {
		out := make([]string, len(columns))
		for i, col := range columns {
			out[i] = renderCell(row, col)
		}
		dataset.Rows = append(dataset.Rows, out)
	}

	// O cubo é um conjunto sem ordem; ordenar por (date, geo, channel, os)
	// torna o arquivo gerado idêntico entre reexecuções.
	sort.Slice(dataset.Rows, func(i, j int) bool {
		a, b := dataset.Rows[i], dataset.Rows[j]
		for k := 0; k < 4 && k < len(a); k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return false
	})

	return dataset
}

func renderCell(row entity.CubeRow, column string) string {
	switch column {
	case "date":
		return row.Key.Date.Render(entity.WildcardToken)
	case "geo":
		return row.Key.Geo.Render(entity.WildcardToken)
	case "channel":
		return row.Key.Channel.Render(entity.WildcardToken)
	case "os":
		return row.Key.OS.Render(entity.WildcardToken)
	}
	sum, ok := row.Sums[column]
	if !ok {
		// Coluna do schema histórico sem contraparte na origem.
		return "0"
	}
	return formatNumber(sum)
}

// formatNumber serializes an aggregate sum; integral values print without a
// decimal point, matching the historical CSVs.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
