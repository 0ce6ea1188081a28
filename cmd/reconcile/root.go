package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-achievement-api/infrastructure/spreadsheet"
	"github.com/vfg2006/sales-achievement-api/internal/config"
	"github.com/vfg2006/sales-achievement-api/internal/domain"
	"github.com/vfg2006/sales-achievement-api/internal/usecases/achieving"
	"github.com/vfg2006/sales-achievement-api/pkg/log"
	"github.com/vfg2006/sales-achievement-api/pkg/utils"
)

type options struct {
	sales     []string
	returns   string
	directory string
	aliases   string
	finance   []string
	month     int
	year      int
	factor    int
	trace     bool
	outcomes  bool
	logLevel  string
}

// output é o JSON impresso ao final da conciliação
type output struct {
	Summary      *achieving.Summary           `json:"summary"`
	Achievements []*domain.MonthlyAchievement `json:"achievements"`
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Concilia planilhas de vendas sem banco de dados",
		Long: `Lê relatórios de vendas (xlsx, xlsm ou csv), aplica as devoluções e a regra de
divergência de crédito, e imprime em JSON o acumulado de cada vendedor do cadastro YAML.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVarP(&opts.sales, "sales", "s", nil, "planilha de vendas (repita a flag para vários arquivos)")
	flags.StringVarP(&opts.returns, "returns", "r", "", "planilha de devoluções")
	flags.StringVarP(&opts.directory, "directory", "d", "", "cadastro YAML de vendedores")
	flags.StringVar(&opts.aliases, "aliases", "", "arquivo YAML com grafias extras de cabeçalho")
	flags.StringSliceVar(&opts.finance, "finance", nil, "clientes financeiras que dispensam a conferência de crédito")
	flags.IntVarP(&opts.month, "month", "m", 0, "mês de apuração (1-12)")
	flags.IntVarP(&opts.year, "year", "y", 0, "ano de apuração")
	flags.IntVar(&opts.factor, "factor", 1, "1 soma o envio, -1 estorna")
	flags.BoolVar(&opts.trace, "trace", false, "registra a classificação de cada item e nota")
	flags.BoolVar(&opts.outcomes, "outcomes", false, "inclui o resultado de cada nota no JSON")
	flags.StringVar(&opts.logLevel, "log-level", "info", "nível de log")

	_ = cmd.MarkFlagRequired("sales")
	_ = cmd.MarkFlagRequired("directory")
	_ = cmd.MarkFlagRequired("month")
	_ = cmd.MarkFlagRequired("year")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	level, err := log.Configure(cmd.ErrOrStderr(), opts.logLevel)
	if err != nil {
		return errors.Wrapf(err, "nível de log inválido %q", opts.logLevel)
	}
	if opts.trace && level < logrus.DebugLevel {
		logrus.SetLevel(logrus.DebugLevel)
	}

	period, err := domain.NewPeriod(opts.year, opts.month)
	if err != nil {
		return err
	}

	directory, err := loadDirectory(opts.directory)
	if err != nil {
		return err
	}

	aliases, err := achieving.LoadAliasFile(opts.aliases)
	if err != nil {
		return err
	}

	reader := spreadsheet.NewReader()
	input := &achieving.Input{
		Period: period,
		Factor: opts.factor,
		Sales:  make([]achieving.Sheet, 0, len(opts.sales)),
	}

	for _, path := range opts.sales {
		sheet, err := readSheet(reader, path)
		if err != nil {
			return err
		}
		input.Sales = append(input.Sales, *sheet)
	}

	if opts.returns != "" {
		input.Returns, err = readSheet(reader, opts.returns)
		if err != nil {
			return err
		}
	}

	engine := achieving.NewEngineFromConfig(config.Reconciliation{
		FinanceCustomers: opts.finance,
		TraceEnabled:     opts.trace,
	})

	reconcilerOpts := []achieving.ReconcilerOption{achieving.WithAliases(aliases)}
	if opts.outcomes {
		reconcilerOpts = append(reconcilerOpts, achieving.WithOutcomes())
	}

	accumulator := achieving.NewMemoryAccumulator()
	reconciler := achieving.NewReconciler(engine, directory, accumulator, reconcilerOpts...)

	summary, err := reconciler.Reconcile(cmd.Context(), input)
	if err != nil {
		return err
	}

	body, err := utils.PrettyJson(output{
		Summary:      summary,
		Achievements: accumulator.Snapshot(period),
	})
	if err != nil {
		return errors.Wrap(err, "erro ao serializar resultado")
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), body)
	return err
}

func loadDirectory(path string) (*achieving.StaticDirectory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir cadastro de vendedores %s", path)
	}
	defer f.Close()

	directory, err := achieving.LoadDirectory(f)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler cadastro de vendedores %s", path)
	}

	logrus.WithField("salespeople", directory.Len()).Debug("Cadastro de vendedores carregado")
	return directory, nil
}

func readSheet(reader *spreadsheet.Reader, path string) (*achieving.Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir planilha %s", path)
	}
	defer f.Close()

	name := filepath.Base(path)
	rows, err := reader.ReadFirstSheet(name, f)
	if err != nil {
		return nil, err
	}

	return &achieving.Sheet{Name: name, Rows: rows}, nil
}
