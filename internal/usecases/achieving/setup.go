package achieving

import (
	"os"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-achievement-api/internal/config"
	"github.com/vfg2006/sales-achievement-api/internal/reconciliation"
	"github.com/vfg2006/sales-achievement-api/pkg/log"
)

// NewEngineFromConfig monta o motor de conciliação com as financeiras e o rastreamento configurados
func NewEngineFromConfig(cfg config.Reconciliation) *reconciliation.Engine {
	var tracer reconciliation.Tracer = reconciliation.NopTracer{}
	if cfg.TraceEnabled {
		tracer = reconciliation.NewLogTracer(log.L)
	}

	return reconciliation.NewEngine(
		reconciliation.WithFinanceCustomers(cfg.FinanceCustomers),
		reconciliation.WithTracer(tracer),
	)
}

// LoadAliasFile lê o arquivo YAML de grafias extras de cabeçalho. Caminho vazio retorna os aliases padrão.
func LoadAliasFile(path string) (reconciliation.AliasTable, error) {
	if path == "" {
		return reconciliation.DefaultAliases(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir arquivo de aliases %s", path)
	}
	defer f.Close()

	aliases, err := reconciliation.LoadAliases(f)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler arquivo de aliases %s", path)
	}

	return aliases, nil
}
