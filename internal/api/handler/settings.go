package handler

import (
	"net/http"

	"github.com/vfg2006/sales-bi-api/internal/domain"
	"github.com/vfg2006/sales-bi-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-bi-api/pkg/apiErrors"
	"github.com/vfg2006/sales-bi-api/pkg/log"
)

func GetSettings(service analyzing.SettingsManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.GetSettings())
	}
}

// UpdateSettings aplica uma alteração parcial dos dias úteis. O cálculo em
// andamento não é afetado; a mudança vale a partir da próxima consulta.
func UpdateSettings(service analyzing.SettingsManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var update domain.SettingsUpdate
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", err.Error())
			return
		}

		view, err := service.UpdateSettings(update)
		if err != nil {
			writeServiceError(w, logger, err, "Erro ao atualizar configuração")
			return
		}

		logger.WithFields(log.Fields{
			"selected_month":       view.SelectedMonth,
			"current_business_day": view.CurrentBusinessDay,
			"total_business_days":  view.TotalBusinessDays,
		}).Info("handler: configuração de dias úteis atualizada")

		writeJSON(w, http.StatusOK, view)
	}
}
