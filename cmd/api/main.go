package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-bi-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-bi-api/infrastructure/repository"
	"github.com/vfg2006/sales-bi-api/infrastructure/spreadsheet"
	"github.com/vfg2006/sales-bi-api/internal/api"
	"github.com/vfg2006/sales-bi-api/internal/config"
	"github.com/vfg2006/sales-bi-api/internal/scheduler"
	"github.com/vfg2006/sales-bi-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-bi-api/internal/usecases/generating"
	"github.com/vfg2006/sales-bi-api/internal/usecases/loading"
	"github.com/vfg2006/sales-bi-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)

	settings, err := cfg.Settings()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	datasetRepo := repository.NewDatasetRepository()
	exporter := spreadsheet.NewExporter()

	loader := loading.NewService(datasetRepo, newGenerator(cfg), spreadsheet.NewParser(), exporter)

	// O dashboard sobe com um dataset sintético; importações substituem depois
	if _, err := loader.Generate(); err != nil {
		logrus.WithError(err).Fatal("Erro ao gerar dataset inicial")
	}

	dashboardService := analyzing.NewService(datasetRepo, settings)

	var (
		snapshotRepo   repository.KPISnapshotRepository
		kpiSyncService *scheduler.KPISnapshotSyncService
	)

	if cfg.KPISnapshotSync.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		snapshotRepo = repository.NewKPISnapshotRepository(pgConn)
		if err := snapshotRepo.EnsureSchema(ctx); err != nil {
			logrus.WithError(err).Fatal("Erro ao preparar tabela de snapshots de KPI")
		}

		kpiSyncService = scheduler.NewKPISnapshotSyncService(dashboardService, snapshotRepo, cfg)
		if err := kpiSyncService.Start(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots de KPI")
		} else {
			logrus.Info("Agendador de snapshots de KPI iniciado com sucesso")
		}
	} else {
		logrus.Info("Histórico de KPIs desabilitado, PostgreSQL não será usado")
	}

	server, err := api.New(
		cfg,
		dashboardService,
		loader,
		exporter,
		snapshotRepo,
		kpiSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// newGenerator monta o gerador a partir da configuração; semente 0 gera dados diferentes a cada execução
func newGenerator(cfg *config.Config) *generating.Generator {
	options := generating.Options{
		Periods:         cfg.GenerationPeriods(),
		MonthlyVariance: cfg.Generator.MonthlyVariance,
		TargetRatio:     cfg.Generator.TargetRatio,
	}
	catalog := generating.NewCatalog(cfg.Generator.CustomersPerSalesperson)

	if cfg.Generator.Seed != 0 {
		logrus.WithField("seed", cfg.Generator.Seed).Info("Gerador com semente fixa")
		return generating.NewSeededGenerator(catalog, cfg.Generator.Seed, options)
	}
	return generating.NewGenerator(catalog, nil, options)
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
