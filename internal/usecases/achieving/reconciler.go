package achieving

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-achievement-api/internal/domain"
	"github.com/vfg2006/sales-achievement-api/internal/reconciliation"
	"github.com/vfg2006/sales-achievement-api/pkg/apiErrors"
	"github.com/vfg2006/sales-achievement-api/pkg/log"
)

// Sheet é a primeira aba de um arquivo já lida em linhas
type Sheet struct {
	Name string
	Rows [][]string
}

// Input descreve um envio: arquivos de vendas, devoluções opcionais e o período de destino
type Input struct {
	Period  domain.Period
	Factor  int
	Replace bool
	Sales   []Sheet
	Returns *Sheet
}

// SalespersonResult é o que um vendedor contribuiu no envio, somando todos os seus blocos
type SalespersonResult struct {
	Name             string                          `json:"name"`
	SalespersonID    string                          `json:"salesperson_id"`
	Own              decimal.Decimal                 `json:"own"`
	Other            decimal.Decimal                 `json:"other"`
	AcceptedInvoices int                             `json:"accepted_invoices"`
	SkippedInvoices  int                             `json:"skipped_invoices"`
	Outcomes         []reconciliation.InvoiceOutcome `json:"outcomes,omitempty"`
}

// Summary resume um envio conciliado
type Summary struct {
	Period             string               `json:"period"`
	Factor             int                  `json:"factor"`
	Replaced           bool                 `json:"replaced"`
	ReturnsExcluded    int                  `json:"returns_excluded"`
	Salespeople        []*SalespersonResult `json:"salespeople"`
	SkippedSalespeople []string             `json:"skipped_salespeople"`
	Own                decimal.Decimal      `json:"own"`
	Other              decimal.Decimal      `json:"other"`
}

// Reconciler conduz as planilhas pelo segmentador, agregador e motor de conciliação e
// entrega os deltas ao Accumulator. Arquivos e blocos são processados em sequência.
type Reconciler struct {
	engine       *reconciliation.Engine
	aliases      reconciliation.AliasTable
	directory    Directory
	accumulator  Accumulator
	logger       log.Logger
	keepOutcomes bool
}

// ReconcilerOption ajusta o Reconciler na construção
type ReconcilerOption func(*Reconciler)

// WithAliases troca a tabela de aliases de cabeçalho; nil mantém a padrão
func WithAliases(aliases reconciliation.AliasTable) ReconcilerOption {
	return func(r *Reconciler) {
		if aliases != nil {
			r.aliases = aliases
		}
	}
}

// WithOutcomes mantém no resultado a decisão de cada nota
func WithOutcomes() ReconcilerOption {
	return func(r *Reconciler) {
		r.keepOutcomes = true
	}
}

// WithLogger define o logger usado no processamento; nil mantém o global
func WithLogger(logger log.Logger) ReconcilerOption {
	return func(r *Reconciler) {
		if logger != nil {
			r.logger = logger
		}
	}
}

func NewReconciler(
	engine *reconciliation.Engine,
	directory Directory,
	accumulator Accumulator,
	opts ...ReconcilerOption,
) *Reconciler {
	if engine == nil {
		engine = reconciliation.NewEngine()
	}

	r := &Reconciler{
		engine:      engine,
		aliases:     reconciliation.DefaultAliases(),
		directory:   directory,
		accumulator: accumulator,
		logger:      log.L,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Reconcile processa o envio. Um vendedor desconhecido descarta apenas o seu bloco;
// falhas de leitura do cadastro ou de gravação do acumulado interrompem o envio.
func (r *Reconciler) Reconcile(ctx context.Context, input *Input) (*Summary, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	logger := r.logger.WithContext(ctx).WithFields(log.Fields{
		"period":  input.Period.String(),
		"factor":  input.Factor,
		"replace": input.Replace,
	})

	var returns reconciliation.ReturnSet
	if input.Returns != nil {
		returns = reconciliation.ExtractReturns(input.Returns.Rows)
	}

	if input.Replace {
		cleared, err := r.accumulator.ClearPeriod(ctx, input.Period)
		if err != nil {
			return nil, NewAchievementError(ErrClearPeriod, apiErrors.ErrDatabaseOperation, err.Error())
		}
		logger.Infof("Período limpo antes do envio: %d registros removidos", cleared)
	}

	summary := &Summary{
		Period:             input.Period.String(),
		Factor:             input.Factor,
		Replaced:           input.Replace,
		ReturnsExcluded:    returns.Len(),
		Salespeople:        make([]*SalespersonResult, 0),
		SkippedSalespeople: make([]string, 0),
		Own:                decimal.Zero,
		Other:              decimal.Zero,
	}

	factor := decimal.NewFromInt(int64(input.Factor))
	byName := make(map[string]*SalespersonResult)
	skipped := make(map[string]struct{})

	for _, sheet := range input.Sales {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		blocks := reconciliation.Segment(sheet.Rows)
		logger.WithField("file", sheet.Name).Infof("Planilha segmentada em %d blocos de vendedor", len(blocks))

		for _, block := range blocks {
			salesperson, err := r.directory.GetByName(block.Salesperson)
			if err != nil {
				return nil, NewAchievementError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation,
					fmt.Sprintf("falha ao buscar vendedor %s: %v", block.Salesperson, err))
			}

			if salesperson == nil {
				logger.WithField("salesperson", block.Salesperson).Warn("Vendedor não cadastrado, bloco ignorado")
				if _, seen := skipped[block.Salesperson]; !seen {
					skipped[block.Salesperson] = struct{}{}
					summary.SkippedSalespeople = append(summary.SkippedSalespeople, block.Salesperson)
				}
				continue
			}

			invoices := reconciliation.Aggregate(block.Rows, r.aliases)
			result := r.engine.Reconcile(block.Salesperson, invoices, salesperson.Brand, returns)
			delta := result.Delta.Scale(factor)

			if err := r.accumulator.Merge(salesperson.ID, input.Period, delta.Own, delta.Other); err != nil {
				return nil, NewAchievementError(ErrMergeAchievement, apiErrors.ErrDatabaseOperation,
					fmt.Sprintf("vendedor %s: %v", block.Salesperson, err))
			}

			entry, ok := byName[block.Salesperson]
			if !ok {
				entry = &SalespersonResult{
					Name:          block.Salesperson,
					SalespersonID: salesperson.ID,
					Own:           decimal.Zero,
					Other:         decimal.Zero,
				}
				byName[block.Salesperson] = entry
				summary.Salespeople = append(summary.Salespeople, entry)
			}

			entry.Own = entry.Own.Add(delta.Own)
			entry.Other = entry.Other.Add(delta.Other)
			entry.AcceptedInvoices += result.Accepted()
			entry.SkippedInvoices += len(result.Outcomes) - result.Accepted()
			if r.keepOutcomes {
				entry.Outcomes = append(entry.Outcomes, result.Outcomes...)
			}

			summary.Own = summary.Own.Add(delta.Own)
			summary.Other = summary.Other.Add(delta.Other)

			logger.WithFields(log.Fields{
				"salesperson":   block.Salesperson,
				"invoice_count": invoices.Len(),
				"own":           delta.Own.String(),
				"other":         delta.Other.String(),
			}).Debug("Bloco conciliado")
		}
	}

	logger.WithFields(log.Fields{
		"batch_processed": len(summary.Salespeople),
		"batch_skipped":   len(summary.SkippedSalespeople),
	}).Info("Envio conciliado")

	return summary, nil
}

func validateInput(input *Input) error {
	if input == nil || len(input.Sales) == 0 {
		return NewAchievementError(ErrMissingSalesFile, apiErrors.ErrMissingRequiredData, "")
	}

	if err := input.Period.Validate(); err != nil {
		return NewAchievementError(err, apiErrors.ErrInvalidRequest, "")
	}

	if input.Factor != 1 && input.Factor != -1 {
		return NewAchievementError(ErrInvalidFactor, apiErrors.ErrInvalidRequest, fmt.Sprintf("recebido %d", input.Factor))
	}

	return nil
}
