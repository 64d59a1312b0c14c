// Script de migração do histórico de KPIs: cria a tabela kpi_snapshot e,
// com -backfill, grava os snapshots de todos os meses de um dataset gerado.
//
//	go run ./infrastructure/migration/script -backfill
package main

import (
	"context"
	"flag"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-bi-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-bi-api/infrastructure/repository"
	"github.com/vfg2006/sales-bi-api/internal/config"
	"github.com/vfg2006/sales-bi-api/internal/domain"
	"github.com/vfg2006/sales-bi-api/internal/scheduler"
	"github.com/vfg2006/sales-bi-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-bi-api/internal/usecases/generating"
	"github.com/vfg2006/sales-bi-api/pkg/log"
)

func main() {
	backfill := flag.Bool("backfill", false, "grava snapshots de todos os meses do dataset gerado")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Configure(cfg.App.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	snapshotRepo := repository.NewKPISnapshotRepository(conn)
	if err := snapshotRepo.EnsureSchema(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao criar tabela kpi_snapshot")
	}
	logrus.Info("Tabela kpi_snapshot pronta")

	if !*backfill {
		return
	}

	settings, err := cfg.Settings()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := backfillSnapshots(ctx, cfg, settings, snapshotRepo); err != nil {
		logrus.WithError(err).Fatal("Erro no backfill de snapshots")
	}
}

// backfillSnapshots trata todo mês diferente do selecionado como fechado
// (dia útil atual = total de dias úteis)
func backfillSnapshots(ctx context.Context, cfg *config.Config, base domain.Settings, snapshotRepo repository.KPISnapshotRepository) error {
	options := generating.Options{
		Periods:         cfg.GenerationPeriods(),
		MonthlyVariance: cfg.Generator.MonthlyVariance,
		TargetRatio:     cfg.Generator.TargetRatio,
	}
	generator := generating.NewSeededGenerator(
		generating.NewCatalog(cfg.Generator.CustomersPerSalesperson),
		cfg.Generator.Seed,
		options,
	)

	datasetRepo := repository.NewDatasetRepository()
	dataset := generator.GenerateFullDataset()
	if err := datasetRepo.Replace(dataset); err != nil {
		return err
	}

	startTime := time.Now()
	for _, period := range dataset.Periods() {
		month, err := domain.ParseYearMonth(period)
		if err != nil {
			return err
		}

		settings := base.Clone()
		settings.Month = month
		if month != base.Month {
			settings.CurrentBusinessDay = settings.TotalBusinessDays()
		}

		sync := scheduler.NewKPISnapshotSyncService(analyzing.NewService(datasetRepo, settings), snapshotRepo, cfg)
		if err := sync.SyncSnapshots(ctx); err != nil {
			return err
		}

		logrus.WithField("month", period).Info("Snapshots do mês gravados")
	}

	logrus.Infof("Backfill concluído em %v (%d meses)", time.Since(startTime), len(dataset.Periods()))
	return nil
}
