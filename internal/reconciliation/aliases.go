package reconciliation

import (
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"
)

// Field identifica um campo canônico lido da planilha de vendas
type Field string

const (
	FieldInvoiceNo         Field = "invoice_no"
	FieldCustomer          Field = "customer"
	FieldNetInvoice        Field = "net_invoice"
	FieldAmountRealised    Field = "amount_realised"
	FieldInvoiceValue      Field = "invoice_value"
	FieldCreditCardCharges Field = "credit_card_charges"
	FieldNegativeRoundOff  Field = "negative_round_off"
	FieldPositiveRoundOff  Field = "positive_round_off"
	FieldCashDiscount      Field = "cash_discount"
	FieldModel             Field = "model"
	FieldBrand             Field = "brand"
	FieldNetAmount         Field = "net_amount"
)

// AliasTable mapeia cada campo canônico para as grafias aceitas no cabeçalho, em ordem de prioridade
type AliasTable map[Field][]string

// DefaultAliases retorna as grafias conhecidas dos relatórios exportados pelas filiais
func DefaultAliases() AliasTable {
	return AliasTable{
		FieldInvoiceNo:         {"Invoice No.", "Invoice No", "INVOICE NO", "Invoice", "Inv No"},
		FieldCustomer:          {"Customer", "Customer Name", "Party", "Party Name", "Financier"},
		FieldNetInvoice:        {"Net Invoice", "Net Inv", "Net Invoice Value"},
		FieldAmountRealised:    {"Amount Realised", "Amount Realized", "Amt Realised", "Realised Amount"},
		FieldInvoiceValue:      {"Invoice Value", "Inv Value", "Invoice Amount"},
		FieldCreditCardCharges: {"Credit Card Charges", "CC Charges", "Card Charges"},
		FieldNegativeRoundOff:  {"Negative Round Off", "Round Off (-)", "-ve Round Off"},
		FieldPositiveRoundOff:  {"Positive Round Off", "Round Off (+)", "+ve Round Off"},
		FieldCashDiscount:      {"Cash Discount", "Cash Disc", "CD"},
		FieldModel:             {"Model", "Model No", "Item", "Item Name", "Product"},
		FieldBrand:             {"Brand", "Make"},
		FieldNetAmount:         {"Net Amount", "Net Amt", "Net Value"},
	}
}

// Aliases retorna as grafias de um campo
func (t AliasTable) Aliases(field Field) []string {
	return t[field]
}

// Merge adiciona grafias extras ao final da lista de cada campo, sem duplicar
func (t AliasTable) Merge(extra AliasTable) AliasTable {
	merged := make(AliasTable, len(t))
	for field, aliases := range t {
		merged[field] = slices.Clone(aliases)
	}

	for field, aliases := range extra {
		for _, alias := range aliases {
			if !slices.Contains(merged[field], alias) {
				merged[field] = append(merged[field], alias)
			}
		}
	}

	return merged
}

// LoadAliases lê um arquivo YAML no formato `campo: [grafia, ...]` e o combina com os aliases padrão
func LoadAliases(r io.Reader) (AliasTable, error) {
	extra := AliasTable{}
	if err := yaml.NewDecoder(r).Decode(&extra); err != nil {
		if err == io.EOF {
			return DefaultAliases(), nil
		}
		return nil, fmt.Errorf("erro ao decodificar arquivo de aliases: %w", err)
	}

	known := DefaultAliases()
	for field := range extra {
		if _, ok := known[field]; !ok {
			return nil, fmt.Errorf("campo desconhecido no arquivo de aliases: %s", field)
		}
	}

	return known.Merge(extra), nil
}
