package analyzing

import (
	"github.com/vfg2006/sales-bi-api/internal/domain"
)

// Analyzer define as consultas do dashboard sobre o dataset carregado
type Analyzer interface {
	// GetSummary calcula os KPIs de um escopo para o mês selecionado
	GetSummary(scope domain.Scope, metric domain.MetricType) (*domain.Summary, error)

	// GetDrillDown agrega o escopo no nível informado
	GetDrillDown(scope domain.Scope, level domain.Level, metric domain.MetricType) ([]domain.AggregateRow, error)

	// GetSummaryWith e GetDrillDownWith calculam com uma configuração já lida,
	// para que várias consultas de uma mesma operação usem o mesmo mês e dia útil
	GetSummaryWith(settings domain.Settings, scope domain.Scope, metric domain.MetricType) (*domain.Summary, error)
	GetDrillDownWith(settings domain.Settings, scope domain.Scope, level domain.Level, metric domain.MetricType) ([]domain.AggregateRow, error)

	// GetDashboard combina resumo, próximo nível do drill-down e caminho de navegação
	GetDashboard(scope domain.Scope, metric domain.MetricType) (*domain.DashboardResponse, error)

	// GetAvailablePeriods retorna os meses presentes no dataset
	GetAvailablePeriods() (*domain.AvailablePeriods, error)
}

// SettingsManager define a leitura e alteração dos dias úteis
type SettingsManager interface {
	Settings() domain.Settings
	GetSettings() domain.SettingsView
	UpdateSettings(update domain.SettingsUpdate) (domain.SettingsView, error)
}

// Dashboard é a interface completa exposta para a camada HTTP
type Dashboard interface {
	Analyzer
	SettingsManager
}
