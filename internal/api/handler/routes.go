package handler

import (
	"net/http"

	"github.com/vfg2006/sales-bi-api/infrastructure/repository"
	"github.com/vfg2006/sales-bi-api/infrastructure/spreadsheet"
	"github.com/vfg2006/sales-bi-api/internal/api/handler/router"
	"github.com/vfg2006/sales-bi-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-bi-api/internal/usecases/loading"
)

func Healthcheck(loader loading.Loader) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(loader),
		},
	}
}

func Dashboard(service analyzing.Dashboard, exporter *spreadsheet.Exporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/dashboard/summary",
			Method:  http.MethodGet,
			Handler: GetSummary(service),
		},
		{
			Path:    "/v1/dashboard/drilldown",
			Method:  http.MethodGet,
			Handler: GetDrillDown(service),
		},
		{
			Path:    "/v1/dashboard/export",
			Method:  http.MethodGet,
			Handler: ExportDrillDown(service, exporter),
		},
	}
}

func Settings(service analyzing.SettingsManager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/settings",
			Method:  http.MethodGet,
			Handler: GetSettings(service),
		},
		{
			Path:    "/v1/settings",
			Method:  http.MethodPut,
			Handler: UpdateSettings(service),
		},
	}
}

func Datasets(loader loading.Loader, service analyzing.Analyzer, maxUploadBytes int64) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/datasets/current",
			Method:  http.MethodGet,
			Handler: GetCurrentDataset(loader),
		},
		{
			Path:    "/v1/datasets/generate",
			Method:  http.MethodPost,
			Handler: GenerateDataset(loader),
		},
		{
			Path:    "/v1/datasets/import",
			Method:  http.MethodPost,
			Handler: ImportDataset(loader, maxUploadBytes),
		},
		{
			Path:    "/v1/datasets/export",
			Method:  http.MethodGet,
			Handler: ExportDataset(loader),
		},
		{
			Path:    "/v1/datasets/periods",
			Method:  http.MethodGet,
			Handler: GetAvailablePeriods(service),
		},
	}
}

// KPISnapshots só é registrada quando o histórico no Postgres está habilitado
func KPISnapshots(repo repository.KPISnapshotRepository, settings analyzing.SettingsManager) []router.Route {
	if repo == nil {
		return nil
	}

	return []router.Route{
		{
			Path:    "/v1/kpi-snapshots",
			Method:  http.MethodGet,
			Handler: GetKPISnapshots(repo, settings),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
