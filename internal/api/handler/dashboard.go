package handler

import (
	"fmt"
	"net/http"

	"github.com/vfg2006/sales-bi-api/infrastructure/spreadsheet"
	"github.com/vfg2006/sales-bi-api/internal/domain"
	"github.com/vfg2006/sales-bi-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-bi-api/pkg/apiErrors"
	"github.com/vfg2006/sales-bi-api/pkg/log"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// GetSummary retorna os KPIs do escopo no mês selecionado
func GetSummary(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		scope, metric, err := queryScope(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		summary, err := service.GetSummary(scope, metric)
		if err != nil {
			writeServiceError(w, logger, err, "Erro ao calcular resumo")
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

// GetDrillDown retorna as linhas agregadas no nível de destino
func GetDrillDown(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		scope, metric, err := queryScope(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		target, err := queryTargetLevel(r, scope)
		if err != nil {
			writeServiceError(w, logger, err, "Nível de destino inválido")
			return
		}

		rows, err := service.GetDrillDown(scope, target, metric)
		if err != nil {
			writeServiceError(w, logger, err, "Erro ao calcular drill-down")
			return
		}

		writeJSON(w, http.StatusOK, rows)
	}
}

// GetDashboard combina resumo, próximo nível e caminho de navegação
func GetDashboard(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		scope, metric, err := queryScope(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		dashboard, err := service.GetDashboard(scope, metric)
		if err != nil {
			writeServiceError(w, logger, err, "Erro ao montar dashboard")
			return
		}

		writeJSON(w, http.StatusOK, dashboard)
	}
}

// ExportDrillDown gera um xlsx com as mesmas linhas do drill-down
func ExportDrillDown(service analyzing.Dashboard, exporter *spreadsheet.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		scope, metric, err := queryScope(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		target, err := queryTargetLevel(r, scope)
		if err != nil {
			writeServiceError(w, logger, err, "Nível de destino inválido")
			return
		}

		settings := service.Settings()
		rows, err := service.GetDrillDownWith(settings, scope, target, metric)
		if err != nil {
			writeServiceError(w, logger, err, "Erro ao calcular drill-down")
			return
		}

		unit := domain.UnitFor(metric, r.URL.Query().Get("unit"))
		file, err := exporter.ExportDrillDown(rows, target, metric, unit)
		if err != nil {
			writeServiceError(w, logger, err, "Erro ao gerar planilha")
			return
		}
		defer file.Close()

		filename := fmt.Sprintf("drilldown_%s_%s_%s.xlsx", target, metric, settings.Month)
		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

		if err := file.Write(w); err != nil {
			logger.WithError(err).Error("handler: erro ao enviar planilha")
		}
	}
}
