package reconciliation

import "strings"

// RawRow é uma linha da planilha já mapeada pelos rótulos do cabeçalho compartilhado.
// A ordem das colunas é preservada em Labels.
type RawRow struct {
	Labels []string
	cells  map[string]string
}

// NewRawRow alinha as células da linha com os rótulos do cabeçalho pela posição.
// Rótulos vazios não geram coluna.
func NewRawRow(header, cells []string) RawRow {
	row := RawRow{
		Labels: make([]string, 0, len(header)),
		cells:  make(map[string]string, len(header)),
	}

	for i, label := range header {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}

		value := ""
		if i < len(cells) {
			value = cells[i]
		}

		key := labelKey(label)
		if _, exists := row.cells[key]; !exists {
			row.Labels = append(row.Labels, label)
		}
		row.cells[key] = value
	}

	return row
}

// Get retorna o valor da coluna, comparando rótulos sem diferenciar maiúsculas
func (r RawRow) Get(label string) (string, bool) {
	value, ok := r.cells[labelKey(label)]
	return value, ok
}

// Lookup percorre os aliases em ordem e retorna o primeiro valor não vazio
func (r RawRow) Lookup(aliases []string) string {
	for _, alias := range aliases {
		if value, ok := r.Get(alias); ok && strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func labelKey(label string) string {
	return strings.ToUpper(strings.Join(strings.Fields(label), " "))
}
