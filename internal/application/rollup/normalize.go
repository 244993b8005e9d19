package rollup

import (
	"time"

	"github.com/moztelemetry/topline-dashboard-go/internal/domain/entity"
)

const (
	reportStartLayout = "20060102"
	dateLayout        = "2006-01-02"
)

// NormalizeRecord devolve a cópia normalizada de um registro: o geo é limitado
// à allow-list de países (qualquer outro valor vira "Other") e o token de data
// YYYYMMDD é reemitido como YYYY-MM-DD. Um token que não parseia resulta em
// data vazia; a linha sobrevive até o cubo, que a exclui de todo agrupamento.
// Função pura por linha; nenhum outro campo é alterado.
func NormalizeRecord(rec entity.SummaryRecord, countries map[string]struct{}) entity.SummaryRecord {
	if _, ok := countries[rec.Geo]; !ok {
		rec.Geo = entity.OtherBucket
	}
	rec.Date = normalizeDate(rec.ReportStart)
	return rec
}

// normalizeDate parses a raw YYYYMMDD token into the historical dataset's
// YYYY-MM-DD format. Malformed tokens yield the empty string, the internal
// representation of "no concrete date".
func normalizeDate(token string) string {
	t, err := time.Parse(reportStartLayout, token)
	if err != nil {
		return ""
	}
	return t.Format(dateLayout)
}

// Normalize aplica NormalizeRecord a todo o lote e conta quantas linhas
// ficaram sem data concreta. A contagem é reportada pelo chamador: o descarte
// silencioso é mantido por compatibilidade com o dataset histórico, mas não
// deve passar despercebido.
func Normalize(records []entity.SummaryRecord, countries map[string]struct{}) ([]entity.SummaryRecord, int) {
	out := make([]entity.SummaryRecord, len(records))
	droppedDates := 0
	for i, rec := range records {
		out[i] = NormalizeRecord(rec, countries)
		if out[i].Date == "" {
			droppedDates++
		}
	}
	return out, droppedDates
}
