package handler

import (
	"net/http"

	"github.com/vfg2006/sales-bi-api/infrastructure/repository"
	"github.com/vfg2006/sales-bi-api/internal/domain"
	"github.com/vfg2006/sales-bi-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-bi-api/pkg/apiErrors"
	"github.com/vfg2006/sales-bi-api/pkg/log"
)

// GetKPISnapshots retorna o histórico gravado de um mês (padrão: mês selecionado)
func GetKPISnapshots(repo repository.KPISnapshotRepository, settings analyzing.SettingsManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		month := settings.Settings().Month.String()
		if raw := r.URL.Query().Get("month"); raw != "" {
			ym, err := domain.ParseYearMonth(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
				return
			}
			month = ym.String()
		}

		response, err := repo.GetByMonth(r.Context(), month)
		if err != nil {
			logger.WithError(err).Error("handler: erro ao buscar snapshots de KPI")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar snapshots de KPI", nil)
			return
		}

		writeJSON(w, http.StatusOK, response)
	}
}
