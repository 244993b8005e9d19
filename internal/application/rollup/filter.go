package rollup

import (
	"github.com/moztelemetry/topline-dashboard-go/internal/domain/entity"
)

// Filter descarta as células do cubo que não pertencem ao relatório:
// primeiro as linhas cuja dimensão de data é o wildcard (agregados entre
// datas não fazem sentido aqui), depois as linhas cujo total somado é
// exatamente zero — células matematicamente válidas, mas sem informação,
// que só inflariam o CSV. Isso reproduz a densidade do dataset histórico.
func Filter(rows []entity.CubeRow) []entity.CubeRow {
	out := make([]entity.CubeRow, 0, len(rows))
	for _, row := range rows {
		if row.Key.Date.IsWildcard() {
			continue
		}
		if row.Total() == 0 {
			continue
		}
		out = append(out, row)
	}
	return out
}
