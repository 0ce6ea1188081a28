package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-achievement-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-achievement-api/infrastructure/repository"
	"github.com/vfg2006/sales-achievement-api/infrastructure/spreadsheet"
	"github.com/vfg2006/sales-achievement-api/internal/api"
	"github.com/vfg2006/sales-achievement-api/internal/config"
	"github.com/vfg2006/sales-achievement-api/internal/scheduler"
	"github.com/vfg2006/sales-achievement-api/internal/usecases/achieving"
	"github.com/vfg2006/sales-achievement-api/pkg/log"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := log.Configure(os.Stdout, cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	salespersonRepo := repository.NewSalespersonRepository(pgConn)
	achievementRepo := repository.NewMonthlyAchievementRepository(pgConn)
	targetRepo := repository.NewMonthlyTargetRepository(pgConn)
	batchRepo := repository.NewUploadBatchRepository(pgConn)

	aliases, err := achieving.LoadAliasFile(cfg.Reconciliation.AliasFile)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar aliases de cabeçalho")
	}

	reconciler := achieving.NewReconciler(
		achieving.NewEngineFromConfig(cfg.Reconciliation),
		salespersonRepo,
		achievementRepo,
		achieving.WithAliases(aliases),
	)

	achievementService := achieving.NewService(
		reconciler,
		spreadsheet.NewReader(),
		salespersonRepo,
		achievementRepo,
		targetRepo,
		batchRepo,
	)

	// Inicializa o agendador de limpeza de dados antigos
	retentionService := scheduler.NewRetentionService(achievementRepo, batchRepo, cfg)
	if err := retentionService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de retenção")
	} else {
		logrus.Info("Agendador de retenção iniciado com sucesso")
	}

	server, err := api.New(cfg, achievementService, retentionService, pgConn)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource posiciona o processo no diretório do binário para achar o .env
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	os.Chdir(path.Dir(file))
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
