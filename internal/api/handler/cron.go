package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-bi-api/pkg/apiErrors"
	"github.com/vfg2006/sales-bi-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeKPISnapshot = "kpi-snapshot"
)

// ManualSyncer é um agendador que aceita execução manual
type ManualSyncer interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente.
// Um serviço nil indica que a cron está desabilitada.
type CronJobServices struct {
	KPISnapshotSyncService ManualSyncer
}

func (s CronJobServices) byType(cronType string) (ManualSyncer, bool) {
	switch cronType {
	case CronJobTypeKPISnapshot:
		return s.KPISnapshotSyncService, true
	}
	return nil, false
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		service, known := services.byType(cronType)
		if !known {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: kpi-snapshot", nil)
			return
		}
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrServiceDisabled, "Cron job desabilitada na configuração", cronType)
			return
		}

		if !service.TriggerManualSync() {
			apiErrors.WriteError(w, apiErrors.ErrConflict, "Cron job já está em execução", cronType)
			return
		}

		logger.WithField("type", cronType).Info("handler: cron job iniciada manualmente")

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}

		if services.KPISnapshotSyncService != nil {
			status[CronJobTypeKPISnapshot] = services.KPISnapshotSyncService.GetStatus()
		} else {
			status[CronJobTypeKPISnapshot] = map[string]any{"sync_enabled": false}
		}

		writeJSON(w, http.StatusOK, status)
	}
}
