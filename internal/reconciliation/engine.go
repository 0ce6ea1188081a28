package reconciliation

import (
	"strings"

	"github.com/shopspring/decimal"
)

// InvoiceStatus descreve o destino da nota na apuração
type InvoiceStatus string

const (
	InvoiceAccepted         InvoiceStatus = "accepted"
	InvoiceSkippedReturn    InvoiceStatus = "skipped_return"
	InvoiceSkippedMismatch  InvoiceStatus = "skipped_credit_mismatch"
	InvoiceSkippedNoNetLine InvoiceStatus = "skipped_no_net_lines"
)

// DefaultFinanceCustomers são as financeiras isentas da checagem de divergência de crédito
var DefaultFinanceCustomers = []string{
	"BAJAJ FINANCE LTD",
	"TVS FINANCE LTD",
	"HDB FINANCE LTD",
}

// Delta é a contribuição de uma apuração para o acumulado mensal
type Delta struct {
	Own   decimal.Decimal `json:"own"`
	Other decimal.Decimal `json:"other"`
}

// Total soma own e other
func (d Delta) Total() decimal.Decimal {
	return d.Own.Add(d.Other)
}

// Scale multiplica o delta pelo fator informado (-1 estorna um lote)
func (d Delta) Scale(factor decimal.Decimal) Delta {
	return Delta{
		Own:   d.Own.Mul(factor),
		Other: d.Other.Mul(factor),
	}
}

// IsZero indica se o delta não altera o acumulado
func (d Delta) IsZero() bool {
	return d.Own.IsZero() && d.Other.IsZero()
}

// InvoiceOutcome registra o cálculo de uma nota para diagnóstico
type InvoiceOutcome struct {
	InvoiceNo       string          `json:"invoice_no"`
	Customer        string          `json:"customer"`
	Status          InvoiceStatus   `json:"status"`
	FinalValue      decimal.Decimal `json:"final_value"`
	SparesTotal     decimal.Decimal `json:"spares_total"`
	AdjustedInvoice decimal.Decimal `json:"adjusted_invoice"`
	Own             decimal.Decimal `json:"own"`
	Other           decimal.Decimal `json:"other"`
}

// Result é o resultado da apuração de um bloco
type Result struct {
	Delta    Delta            `json:"delta"`
	Outcomes []InvoiceOutcome `json:"invoices"`
}

// Accepted conta as notas que entraram nos totais
func (r Result) Accepted() int {
	count := 0
	for _, o := range r.Outcomes {
		if o.Status == InvoiceAccepted {
			count++
		}
	}
	return count
}

// Engine aplica as regras de apuração sobre as notas de um vendedor
type Engine struct {
	financeCustomers map[string]struct{}
	tracer           Tracer
}

// EngineOption configura o Engine
type EngineOption func(*Engine)

// WithFinanceCustomers substitui a lista de financeiras isentas
func WithFinanceCustomers(customers []string) EngineOption {
	return func(e *Engine) {
		if len(customers) == 0 {
			return
		}
		e.financeCustomers = make(map[string]struct{}, len(customers))
		for _, c := range customers {
			if name := CanonicalName(c); name != "" {
				e.financeCustomers[name] = struct{}{}
			}
		}
	}
}

// WithTracer define o destino dos eventos de diagnóstico
func WithTracer(tracer Tracer) EngineOption {
	return func(e *Engine) {
		if tracer != nil {
			e.tracer = tracer
		}
	}
}

// NewEngine cria o motor com as financeiras padrão e sem tracer
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{tracer: NopTracer{}}
	WithFinanceCustomers(DefaultFinanceCustomers)(e)

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// IsFinanceCustomer indica se o cliente está na lista de financeiras
func (e *Engine) IsFinanceCustomer(customer string) bool {
	_, ok := e.financeCustomers[CanonicalName(customer)]
	return ok
}

// Reconcile apura own e other das notas de um vendedor. brand nil (ou vazio) faz
// todos os itens caírem em other.
func (e *Engine) Reconcile(salesperson string, invoices *InvoiceSet, brand *string, returns ReturnSet) Result {
	result := Result{
		Delta:    Delta{Own: decimal.Zero, Other: decimal.Zero},
		Outcomes: make([]InvoiceOutcome, 0, invoices.Len()),
	}

	ownPrefix := ""
	if brand != nil {
		ownPrefix = strings.ToUpper(strings.TrimSpace(*brand))
	}

	for _, inv := range invoices.Invoices() {
		outcome := e.reconcileInvoice(salesperson, inv, ownPrefix, returns)
		e.tracer.InvoiceDecided(salesperson, outcome)
		result.Outcomes = append(result.Outcomes, outcome)

		if outcome.Status != InvoiceAccepted {
			continue
		}

		result.Delta.Own = result.Delta.Own.Add(outcome.Own)
		result.Delta.Other = result.Delta.Other.Add(outcome.Other)
	}

	return result
}

func (e *Engine) reconcileInvoice(salesperson string, inv *Invoice, ownPrefix string, returns ReturnSet) InvoiceOutcome {
	outcome := InvoiceOutcome{
		InvoiceNo:   inv.InvoiceNo,
		Customer:    inv.Customer,
		SparesTotal: decimal.Zero,
		Own:         decimal.Zero,
		Other:       decimal.Zero,
	}

	if returns.Contains(inv.InvoiceNo) {
		outcome.Status = InvoiceSkippedReturn
		return outcome
	}

	outcome.FinalValue = inv.FinalValue()

	for _, item := range inv.Items {
		class := classify(item, ownPrefix)
		e.tracer.LineClassified(salesperson, inv.InvoiceNo, item, class)

		switch class {
		case LineSpares:
			outcome.SparesTotal = outcome.SparesTotal.Add(item.NetAmount)
		case LineOwn:
			outcome.Own = outcome.Own.Add(item.NetAmount)
		case LineOther:
			outcome.Other = outcome.Other.Add(item.NetAmount)
		}
	}

	// Mantido apenas para diagnóstico; não participa do split own/other
	outcome.AdjustedInvoice = outcome.FinalValue.Sub(outcome.SparesTotal)

	if !roundHalfUp(inv.NetInvoice).Equal(roundHalfUp(inv.AmountRealised)) && !e.IsFinanceCustomer(inv.Customer) {
		outcome.Status = InvoiceSkippedMismatch
		return outcome
	}

	if outcome.Own.IsZero() && outcome.Other.IsZero() {
		outcome.Status = InvoiceSkippedNoNetLine
		return outcome
	}

	outcome.Status = InvoiceAccepted
	return outcome
}

func classify(item LineItem, ownPrefix string) LineClass {
	if IsSparesLine(item.Model) {
		return LineSpares
	}
	if item.NetAmount.IsZero() {
		return LineIgnored
	}
	if ownPrefix != "" && strings.HasPrefix(strings.ToUpper(item.Model), ownPrefix) {
		return LineOwn
	}
	return LineOther
}
