// Package scheduler contém os serviços de agendamento para sincronização de dados
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-bi-api/infrastructure/repository"
	"github.com/vfg2006/sales-bi-api/internal/config"
	"github.com/vfg2006/sales-bi-api/internal/domain"
	"github.com/vfg2006/sales-bi-api/internal/usecases/analyzing"
)

type KPISnapshotSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// snapshotLevels são os níveis gravados abaixo da raiz a cada execução
var snapshotLevels = []domain.Level{domain.LevelTeam, domain.LevelSalesperson}

var snapshotMetrics = []domain.MetricType{domain.MetricAmount, domain.MetricWeight}

// KPISnapshotSyncService grava periodicamente os KPIs do mês selecionado no Postgres
type KPISnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	dashboard           analyzing.Dashboard
	snapshotRepo        repository.KPISnapshotRepository
	config              KPISnapshotSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
	lastSyncCount       int
}

func NewKPISnapshotSyncService(
	dashboard analyzing.Dashboard,
	snapshotRepo repository.KPISnapshotRepository,
	cfg *config.Config,
) *KPISnapshotSyncService {
	syncConfig := KPISnapshotSyncConfig{
		CronSchedule: cfg.KPISnapshotSync.CronSchedule, // Default: 2h da manhã todos os dias
		SyncEnabled:  cfg.KPISnapshotSync.Enabled,      // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"enabled":       syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots de KPI carregada")

	return &KPISnapshotSyncService{
		scheduler:    gocron.NewScheduler(time.Local),
		dashboard:    dashboard,
		snapshotRepo: snapshotRepo,
		config:       syncConfig,
	}
}

func (s *KPISnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de snapshots de KPI desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de snapshots de KPI")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncSnapshots(ctx); err != nil {
			logrus.WithError(err).Error("Erro na gravação dos snapshots de KPI")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshots de KPI: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de snapshots de KPI")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncSnapshots calcula raiz, times e vendedores do mês selecionado para
// valor e peso e grava tudo em um único upsert
func (s *KPISnapshotSyncService) SyncSnapshots(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Gravação de snapshots de KPI já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	snapshots, err := s.collectSnapshots()
	if err == nil {
		err = s.snapshotRepo.SaveOrUpdateSnapshots(ctx, snapshots)
	}

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncError = ""
	s.lastSyncCount = 0
	if err != nil {
		s.lastSyncError = err.Error()
	} else {
		s.lastSyncCount = len(snapshots)
	}
	s.syncMutex.Unlock()

	if err != nil {
		return err
	}

	logrus.WithField("snapshots", len(snapshots)).Info("Snapshots de KPI gravados")

	return nil
}

// collectSnapshots lê a configuração uma vez; todas as linhas da execução
// ficam com o mesmo mês e a mesma taxa de progresso
func (s *KPISnapshotSyncService) collectSnapshots() ([]*domain.KPISnapshot, error) {
	settings := s.dashboard.Settings()
	progressRate := settings.ProgressRate()
	month := settings.Month.String()

	snapshots := make([]*domain.KPISnapshot, 0)
	for _, metric := range snapshotMetrics {
		summary, err := s.dashboard.GetSummaryWith(settings, domain.RootScope(), metric)
		if err != nil {
			return nil, fmt.Errorf("erro ao calcular resumo (%s): %w", metric, err)
		}
		snapshots = append(snapshots, domain.NewKPISnapshotFromSummary(summary, domain.RootScopeName))

		for _, level := range snapshotLevels {
			rows, err := s.dashboard.GetDrillDownWith(settings, domain.RootScope(), level, metric)
			if err != nil {
				return nil, fmt.Errorf("erro ao calcular %s (%s): %w", level, metric, err)
			}
			for _, row := range rows {
				snapshots = append(snapshots, domain.NewKPISnapshotFromRow(row, level, month, metric, progressRate))
			}
		}
	}

	return snapshots, nil
}

// TriggerManualSync inicia manualmente a gravação; retorna false se já houver uma em andamento
func (s *KPISnapshotSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Gravação de snapshots de KPI já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando gravação manual de snapshots de KPI")
	go func() {
		if err := s.SyncSnapshots(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na gravação manual dos snapshots de KPI")
		}
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *KPISnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_snapshots":    s.lastSyncCount,
		"last_sync_error":        s.lastSyncError,
	}
}
