package reconciliation

import (
	"regexp"
	"strings"
)

var salespersonMarker = regexp.MustCompile(`(?i)^\s*salesperson\s*:(.*)$`)

// Block reúne as linhas de um vendedor dentro de um arquivo
type Block struct {
	Salesperson string
	Rows        []RawRow
}

// Segment separa a planilha bruta em blocos por vendedor.
// O primeiro "Date" da coluna A é o cabeçalho compartilhado; linhas "Salesperson: NOME"
// abrem o contexto do vendedor. Blocos repetidos do mesmo nome são acumulados, e a
// ordem de saída segue a primeira aparição de cada nome.
func Segment(rows [][]string) []Block {
	var (
		header  []string
		current string
		order   []string
	)
	byName := make(map[string]*Block)

	for _, cells := range rows {
		first := strings.TrimSpace(cell(cells, 0))

		if strings.EqualFold(first, "date") {
			// Cabeçalhos repetidos nunca substituem o primeiro
			if header == nil {
				header = cells
			}
			continue
		}

		if match := salespersonMarker.FindStringSubmatch(first); match != nil {
			current = CanonicalName(match[1])
			if current != "" {
				if _, ok := byName[current]; !ok {
					byName[current] = &Block{Salesperson: current}
					order = append(order, current)
				}
			}
			continue
		}

		if header == nil || current == "" {
			continue
		}

		if isMetaRow(cells) {
			continue
		}

		block := byName[current]
		block.Rows = append(block.Rows, NewRawRow(header, cells))
	}

	blocks := make([]Block, 0, len(order))
	for _, name := range order {
		blocks = append(blocks, *byName[name])
	}

	return blocks
}

// isMetaRow identifica linhas vazias, de totais e de cabeçalho de relatório
func isMetaRow(cells []string) bool {
	if isBlankRow(cells) {
		return true
	}

	first := strings.ToLower(strings.TrimSpace(cell(cells, 0)))
	switch {
	case first == "total", first == "grand total":
		return true
	case strings.HasPrefix(first, "branch:"), strings.HasPrefix(first, "period:"):
		return true
	}

	// Subtotais às vezes trazem o rótulo na segunda coluna
	return strings.Contains(strings.ToLower(cell(cells, 1)), "total")
}

func isBlankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func cell(cells []string, i int) string {
	if i < len(cells) {
		return cells[i]
	}
	return ""
}
