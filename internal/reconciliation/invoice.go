package reconciliation

import (
	"strings"

	"github.com/shopspring/decimal"
)

// LineItem é um item da nota
type LineItem struct {
	Model     string          `json:"model"`
	Brand     string          `json:"brand"`
	NetAmount decimal.Decimal `json:"net_amount"`
}

// Invoice agrega todas as linhas de uma mesma nota dentro do bloco de um vendedor
type Invoice struct {
	InvoiceNo         string          `json:"invoice_no"`
	Customer          string          `json:"customer"`
	NetInvoice        decimal.Decimal `json:"net_invoice"`
	AmountRealised    decimal.Decimal `json:"amount_realised"`
	InvoiceValue      decimal.Decimal `json:"invoice_value"`
	CreditCardCharges decimal.Decimal `json:"credit_card_charges"`
	NegativeRoundOff  decimal.Decimal `json:"negative_round_off"`
	PositiveRoundOff  decimal.Decimal `json:"positive_round_off"`
	CashDiscount      decimal.Decimal `json:"cash_discount"`
	Items             []LineItem      `json:"items"`
}

// monetaryFields liga cada campo do alias table ao campo correspondente da nota
func (inv *Invoice) monetaryFields() map[Field]*decimal.Decimal {
	return map[Field]*decimal.Decimal{
		FieldNetInvoice:        &inv.NetInvoice,
		FieldAmountRealised:    &inv.AmountRealised,
		FieldInvoiceValue:      &inv.InvoiceValue,
		FieldCreditCardCharges: &inv.CreditCardCharges,
		FieldNegativeRoundOff:  &inv.NegativeRoundOff,
		FieldPositiveRoundOff:  &inv.PositiveRoundOff,
		FieldCashDiscount:      &inv.CashDiscount,
	}
}

// FinalValue é o valor da nota após encargos de cartão, arredondamentos e desconto à vista
func (inv *Invoice) FinalValue() decimal.Decimal {
	return inv.InvoiceValue.
		Sub(inv.CreditCardCharges).
		Sub(inv.NegativeRoundOff).
		Add(inv.PositiveRoundOff).
		Sub(inv.CashDiscount)
}

// InvoiceSet mantém as notas na ordem em que apareceram no bloco
type InvoiceSet struct {
	order []string
	byNo  map[string]*Invoice
}

func newInvoiceSet() *InvoiceSet {
	return &InvoiceSet{byNo: make(map[string]*Invoice)}
}

// Get retorna a nota pelo número canônico
func (s *InvoiceSet) Get(invoiceNo string) (*Invoice, bool) {
	inv, ok := s.byNo[invoiceNo]
	return inv, ok
}

// Len retorna a quantidade de notas
func (s *InvoiceSet) Len() int {
	return len(s.order)
}

// Invoices retorna as notas em ordem de aparição
func (s *InvoiceSet) Invoices() []*Invoice {
	invoices := make([]*Invoice, 0, len(s.order))
	for _, no := range s.order {
		invoices = append(invoices, s.byNo[no])
	}
	return invoices
}

// aggregation é o acumulador da redução sobre as linhas do bloco
type aggregation struct {
	aliases       AliasTable
	lastInvoiceNo string
	invoices      *InvoiceSet
}

// fold aplica uma linha ao acumulador e devolve o novo estado
func (a aggregation) fold(row RawRow) aggregation {
	invoiceNo := CanonicalInvoiceNo(row.Lookup(a.aliases.Aliases(FieldInvoiceNo)))
	if invoiceNo == "" {
		invoiceNo = a.lastInvoiceNo
	}
	if invoiceNo == "" {
		// Linha de continuação antes de qualquer nota: não pertence a ninguém
		return a
	}
	a.lastInvoiceNo = invoiceNo

	inv, ok := a.invoices.byNo[invoiceNo]
	if !ok {
		inv = &Invoice{InvoiceNo: invoiceNo}
		a.invoices.byNo[invoiceNo] = inv
		a.invoices.order = append(a.invoices.order, invoiceNo)
	}

	if inv.Customer == "" {
		inv.Customer = CanonicalName(row.Lookup(a.aliases.Aliases(FieldCustomer)))
	}

	// O primeiro valor diferente de zero prevalece
	for field, target := range inv.monetaryFields() {
		if !target.IsZero() {
			continue
		}
		if candidate := ToNumber(row.Lookup(a.aliases.Aliases(field))); !candidate.IsZero() {
			*target = candidate
		}
	}

	inv.Items = append(inv.Items, LineItem{
		Model:     strings.TrimSpace(row.Lookup(a.aliases.Aliases(FieldModel))),
		Brand:     strings.TrimSpace(row.Lookup(a.aliases.Aliases(FieldBrand))),
		NetAmount: ToNumber(row.Lookup(a.aliases.Aliases(FieldNetAmount))),
	})

	return a
}

// Aggregate agrupa as linhas de um vendedor em notas. Linhas sem número de nota herdam
// o último número visto no bloco.
func Aggregate(rows []RawRow, aliases AliasTable) *InvoiceSet {
	if aliases == nil {
		aliases = DefaultAliases()
	}

	acc := aggregation{aliases: aliases, invoices: newInvoiceSet()}
	for _, row := range rows {
		acc = acc.fold(row)
	}

	return acc.invoices
}
