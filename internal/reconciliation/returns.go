package reconciliation

import (
	"sort"
	"strings"
)

const returnRefColumnPrefix = "REF. DOC"

// ReturnSet contém as notas devolvidas/creditadas que não entram na apuração
type ReturnSet map[string]struct{}

// Contains indica se a nota canônica está na lista de devoluções
func (s ReturnSet) Contains(invoiceNo string) bool {
	if s == nil {
		return false
	}
	_, ok := s[invoiceNo]
	return ok
}

// Len retorna a quantidade de notas na lista
func (s ReturnSet) Len() int {
	return len(s)
}

// InvoiceNumbers retorna as notas em ordem alfabética
func (s ReturnSet) InvoiceNumbers() []string {
	numbers := make([]string, 0, len(s))
	for n := range s {
		numbers = append(numbers, n)
	}
	sort.Strings(numbers)
	return numbers
}

// ExtractReturns lê a planilha de devoluções. A coluna de referência é a primeira cujo
// cabeçalho começa com "REF. DOC"; sem ela, usa a coluna A. De cada célula vale só o
// primeiro token (ex.: "GI/16909*  02-11-2025" → "GI/16909").
func ExtractReturns(rows [][]string) ReturnSet {
	set := ReturnSet{}
	if len(rows) == 0 {
		return set
	}

	column := 0
	for i, label := range rows[0] {
		if strings.HasPrefix(strings.ToUpper(strings.TrimSpace(label)), returnRefColumnPrefix) {
			column = i
			break
		}
	}

	for _, cells := range rows[1:] {
		tokens := strings.Fields(cell(cells, column))
		if len(tokens) == 0 {
			continue
		}

		if invoiceNo := CanonicalInvoiceNo(tokens[0]); invoiceNo != "" {
			set[invoiceNo] = struct{}{}
		}
	}

	return set
}
