package reconciliation

import (
	"github.com/vfg2006/sales-achievement-api/pkg/log"
)

// LineClass é a classificação de um item da nota
type LineClass string

const (
	LineSpares  LineClass = "spares"
	LineOwn     LineClass = "own"
	LineOther   LineClass = "other"
	LineIgnored LineClass = "ignored"
)

// Tracer recebe os eventos de diagnóstico da apuração
type Tracer interface {
	LineClassified(salesperson string, invoiceNo string, item LineItem, class LineClass)
	InvoiceDecided(salesperson string, outcome InvoiceOutcome)
}

// NopTracer descarta todos os eventos
type NopTracer struct{}

func (NopTracer) LineClassified(string, string, LineItem, LineClass) {}
func (NopTracer) InvoiceDecided(string, InvoiceOutcome)               {}

// LogTracer escreve os eventos em nível debug
type LogTracer struct {
	Logger log.Logger
}

// NewLogTracer cria um tracer que usa o logger informado
func NewLogTracer(logger log.Logger) *LogTracer {
	if logger == nil {
		logger = log.L
	}
	return &LogTracer{Logger: logger}
}

func (t *LogTracer) LineClassified(salesperson string, invoiceNo string, item LineItem, class LineClass) {
	t.Logger.WithFields(log.Fields{
		"salesperson": salesperson,
		"invoice_no":  invoiceNo,
		"model":       item.Model,
		"net_amount":  item.NetAmount.String(),
		"class":       class,
	}).Debug("reconciliation: item classificado")
}

func (t *LogTracer) InvoiceDecided(salesperson string, outcome InvoiceOutcome) {
	t.Logger.WithFields(log.Fields{
		"salesperson":      salesperson,
		"invoice_no":       outcome.InvoiceNo,
		"status":           outcome.Status,
		"final_value":      outcome.FinalValue.String(),
		"adjusted_invoice": outcome.AdjustedInvoice.String(),
		"own":              outcome.Own.String(),
		"other":            outcome.Other.String(),
	}).Debug("reconciliation: nota avaliada")
}
