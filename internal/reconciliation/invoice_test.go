package reconciliation

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func rowsFrom(header []string, cells ...[]string) []RawRow {
	rows := make([]RawRow, 0, len(cells))
	for _, c := range cells {
		rows = append(rows, NewRawRow(header, c))
	}
	return rows
}

func TestAggregate(t *testing.T) {
	header := []string{"Date", "Invoice No.", "Customer", "Net Invoice", "Amount Realised", "Invoice Value", "Cash Discount", "Model", "Net Amount"}

	t.Run("Linha sem número de nota herda a nota anterior", func(t *testing.T) {
		rows := rowsFrom(header,
			[]string{"01-10-2025", "INV1", "random customer", "1,000", "1,000", "1,100", "", "VIDEUM X200", "800"},
			[]string{"", "", "", "", "", "", "50", "ACME Y", "200"},
		)

		invoices := Aggregate(rows, nil)
		require.Equal(t, 1, invoices.Len())

		inv, ok := invoices.Get("INV1")
		require.True(t, ok)
		assert.Equal(t, "RANDOM CUSTOMER", inv.Customer)
		assert.True(t, dec("1000").Equal(inv.NetInvoice))
		assert.True(t, dec("1100").Equal(inv.InvoiceValue))
		assert.True(t, dec("50").Equal(inv.CashDiscount), "campo zerado deve ser preenchido pela linha seguinte")
		require.Len(t, inv.Items, 2)
		assert.Equal(t, "ACME Y", inv.Items[1].Model)
		assert.True(t, dec("200").Equal(inv.Items[1].NetAmount))
	})

	t.Run("Primeiro valor diferente de zero prevalece", func(t *testing.T) {
		rows := rowsFrom(header,
			[]string{"01-10-2025", "INV1*", "", "1000", "", "", "", "A", "1"},
			[]string{"01-10-2025", "inv1", "", "2000", "990", "", "", "B", "1"},
		)

		invoices := Aggregate(rows, nil)
		require.Equal(t, 1, invoices.Len())
		inv, _ := invoices.Get("INV1")
		assert.True(t, dec("1000").Equal(inv.NetInvoice))
		assert.True(t, dec("990").Equal(inv.AmountRealised))
	})

	t.Run("Linhas de continuação antes de qualquer nota são descartadas", func(t *testing.T) {
		rows := rowsFrom(header,
			[]string{"", "", "", "", "", "", "", "ORPHAN", "100"},
			[]string{"01-10-2025", "INV2", "", "", "", "", "", "A", "1"},
		)

		invoices := Aggregate(rows, nil)
		require.Equal(t, 1, invoices.Len())
		inv, _ := invoices.Get("INV2")
		assert.Len(t, inv.Items, 1)
	})

	t.Run("Mantém a ordem de aparição e resolve aliases", func(t *testing.T) {
		aliasHeader := []string{"Date", "Inv No", "Net Inv", "Item", "Net Amt"}
		rows := rowsFrom(aliasHeader,
			[]string{"01-10-2025", "B2", "10", "X", "10"},
			[]string{"01-10-2025", "A1", "20", "Y", "20"},
			[]string{"01-10-2025", "B2", "", "Z", "5"},
		)

		invoices := Aggregate(rows, DefaultAliases())
		require.Equal(t, 2, invoices.Len())
		list := invoices.Invoices()
		assert.Equal(t, "B2", list[0].InvoiceNo)
		assert.Equal(t, "A1", list[1].InvoiceNo)
		assert.True(t, dec("10").Equal(list[0].NetInvoice))
		assert.Len(t, list[0].Items, 2)
	})
}

func TestInvoiceFinalValue(t *testing.T) {
	inv := &Invoice{
		InvoiceValue:      dec("10000"),
		CreditCardCharges: dec("100"),
		NegativeRoundOff:  dec("0.4"),
		PositiveRoundOff:  dec("0.6"),
		CashDiscount:      dec("500"),
	}

	assert.True(t, dec("9400.2").Equal(inv.FinalValue()))
}

func TestLoadAliases(t *testing.T) {
	t.Run("Adiciona novas grafias ao final", func(t *testing.T) {
		table, err := LoadAliases(strings.NewReader("net_invoice:\n  - NET INV VALUE\n  - Net Inv\n"))
		require.NoError(t, err)

		aliases := table.Aliases(FieldNetInvoice)
		assert.Equal(t, "Net Invoice", aliases[0])
		assert.Equal(t, "NET INV VALUE", aliases[len(aliases)-1])
		assert.Equal(t, len(DefaultAliases().Aliases(FieldNetInvoice))+1, len(aliases))
	})

	t.Run("Arquivo vazio retorna os aliases padrão", func(t *testing.T) {
		table, err := LoadAliases(strings.NewReader(""))
		require.NoError(t, err)
		assert.Equal(t, DefaultAliases(), table)
	})

	t.Run("Campo desconhecido é rejeitado", func(t *testing.T) {
		_, err := LoadAliases(strings.NewReader("discount_pct: [\"Disc %\"]\n"))
		assert.Error(t, err)
	})
}
