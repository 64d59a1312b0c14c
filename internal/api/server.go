package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-bi-api/infrastructure/repository"
	"github.com/vfg2006/sales-bi-api/infrastructure/spreadsheet"
	"github.com/vfg2006/sales-bi-api/internal/api/handler"
	"github.com/vfg2006/sales-bi-api/internal/api/handler/router"
	"github.com/vfg2006/sales-bi-api/internal/config"
	"github.com/vfg2006/sales-bi-api/internal/scheduler"
	"github.com/vfg2006/sales-bi-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-bi-api/internal/usecases/loading"
	"github.com/vfg2006/sales-bi-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// New monta o servidor HTTP. snapshotRepo e kpiSyncService são nil quando o
// histórico de KPIs está desabilitado.
func New(
	config *config.Config,
	dashboardService analyzing.Dashboard,
	loader loading.Loader,
	exporter *spreadsheet.Exporter,
	snapshotRepo repository.KPISnapshotRepository,
	kpiSyncService *scheduler.KPISnapshotSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{}
	if kpiSyncService != nil {
		cronServices.KPISnapshotSyncService = kpiSyncService
	}

	maxUploadBytes := config.Import.MaxUploadMB << 20
	if maxUploadBytes <= 0 {
		return nil, fmt.Errorf("limite de upload inválido: %d MB", config.Import.MaxUploadMB)
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(loader)...),
		router.WithRoutes(handler.Dashboard(dashboardService, exporter)...),
		router.WithRoutes(handler.Settings(dashboardService)...),
		router.WithRoutes(handler.Datasets(loader, dashboardService, maxUploadBytes)...),
		router.WithRoutes(handler.KPISnapshots(snapshotRepo, dashboardService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Handler expõe a cadeia de middlewares e rotas, usada nos testes
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
