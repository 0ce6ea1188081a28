// Package reconciliation contém o motor que transforma planilhas de vendas em conquistas
// mensais (own/other) por vendedor.
package reconciliation

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	sparesToken   = "SPARES"
	invoiceMarker = "*"
)

// ToNumber converte o conteúdo de uma célula em decimal.
// Células vazias ou ilegíveis valem zero; a função nunca falha.
func ToNumber(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero
	}

	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if !isPlainNumber(s) {
		return decimal.Zero
	}

	value, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}

	return value
}

// isPlainNumber aceita apenas sinal, dígitos e um ponto decimal. Notação
// científica fica de fora: expoentes enormes tornam o arredondamento inviável.
func isPlainNumber(s string) bool {
	s = strings.TrimLeft(s, "+-")
	digits, dots := 0, 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			dots++
		default:
			return false
		}
	}
	return digits > 0 && dots <= 1
}

// CanonicalInvoiceNo normaliza o número da nota: trim, maiúsculas e remoção
// dos marcadores (*) ao final.
func CanonicalInvoiceNo(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	for strings.HasSuffix(s, invoiceMarker) {
		s = strings.TrimSpace(strings.TrimSuffix(s, invoiceMarker))
	}
	return s
}

// IsSparesLine indica se o modelo do item é uma peça de reposição
func IsSparesLine(model string) bool {
	m := strings.ToUpper(strings.TrimSpace(model))
	if m == "" {
		return false
	}
	return strings.HasPrefix(m, sparesToken)
}

// CanonicalName normaliza nomes de vendedores, clientes e financeiras
func CanonicalName(raw string) string {
	return strings.ToUpper(strings.Join(strings.Fields(raw), " "))
}

// roundHalfUp arredonda para o inteiro mais próximo, com .5 sempre para cima
func roundHalfUp(d decimal.Decimal) decimal.Decimal {
	return d.Add(decimal.NewFromFloat(0.5)).Floor()
}
