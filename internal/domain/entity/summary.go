package entity

// SummaryRecord is one row of the topline summary dataset as handed to the
// core by the reader: the three categorical attributes, the raw report-start
// token, and the named numeric aggregate fields for that combination.
type SummaryRecord struct {
	Geo     string `json:"geo"`
	Channel string `json:"channel"`
	OS      string `json:"os"`

	// ReportStart é o token de data bruto no formato YYYYMMDD.
	ReportStart string `json:"report_start"`

	// Date é a data normalizada (YYYY-MM-DD) preenchida pelo normalizador.
	// Vazio significa "sem data concreta": o token não pôde ser interpretado
	// e a linha não contribui para nenhuma linha de saída.
	Date string `json:"date,omitempty"`

	// Aggregates holds the numeric fields keyed by name. The field set is
	// open-ended but fixed for a run; values are non-negative counts/durations.
	Aggregates map[string]float64 `json:"aggregates"`
}
