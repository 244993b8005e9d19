package entity

// ReportDataset is the output of the pipeline: the historical column layout
// plus one string row per retained cube cell, ready for a delimited-text
// writer. Cells are already serialized (wildcards rendered, numbers formatted)
// so writers never need to know about the cube's internals.
type ReportDataset struct {
	Columns []string
	Rows    [][]string
}

// RowMaps re-expressa as linhas como mapas coluna->valor, na forma usada
// pela exportação JSON.
func (d ReportDataset) RowMaps() []map[string]string {
	out := make([]map[string]string, 0, len(d.Rows))
	for _, row := range d.Rows {
		m := make(map[string]string, len(d.Columns))
		for i, col := range d.Columns {
			if i < len(row) {
				m[col] = row[i]
			}
		}
		out = append(out, m)
	}
	return out
}
