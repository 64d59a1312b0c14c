package analyzing

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vfg2006/sales-bi-api/infrastructure/repository"
	"github.com/vfg2006/sales-bi-api/internal/domain"
	"github.com/vfg2006/sales-bi-api/pkg/log"
)

var (
	ErrDatasetNotLoaded = errors.New("nenhum dataset carregado")
	ErrInvalidSettings  = errors.New("configuração de dias úteis inválida")
)

// Service seleciona o mês configurado, monta um Engine novo a cada consulta
// e guarda a configuração de dias úteis
type Service struct {
	datasetRepository repository.DatasetRepository
	settings          domain.Settings
	settingsMutex     sync.RWMutex
}

// NewService cria o serviço de análise com a configuração inicial
func NewService(datasetRepo repository.DatasetRepository, settings domain.Settings) *Service {
	return &Service{
		datasetRepository: datasetRepo,
		settings:          settings.Clone(),
	}
}

// Settings retorna uma cópia da configuração vigente
func (s *Service) Settings() domain.Settings {
	s.settingsMutex.RLock()
	defer s.settingsMutex.RUnlock()

	return s.settings.Clone()
}

func (s *Service) GetSettings() domain.SettingsView {
	return s.Settings().View()
}

// UpdateSettings aplica uma alteração parcial; vale a partir da próxima consulta
func (s *Service) UpdateSettings(update domain.SettingsUpdate) (domain.SettingsView, error) {
	s.settingsMutex.Lock()
	defer s.settingsMutex.Unlock()

	next := s.settings.Clone()

	if update.SelectedMonth != nil {
		month, err := domain.ParseYearMonth(*update.SelectedMonth)
		if err != nil {
			return domain.SettingsView{}, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
		}
		next.Month = month
	}

	for key, days := range update.BusinessDaysByMonth {
		month, err := domain.ParseYearMonth(key)
		if err != nil {
			return domain.SettingsView{}, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
		}
		if days <= 0 || days > month.DaysInMonth() {
			return domain.SettingsView{}, fmt.Errorf("%w: %d dias úteis em %s", ErrInvalidSettings, days, month)
		}
		next.BusinessDaysByMonth[month.String()] = days
	}

	if update.CurrentBusinessDay != nil {
		if *update.CurrentBusinessDay < 0 {
			return domain.SettingsView{}, fmt.Errorf("%w: dia útil atual negativo", ErrInvalidSettings)
		}
		next.CurrentBusinessDay = *update.CurrentBusinessDay
	}

	s.settings = next

	log.L.WithFields(log.Fields{
		"selected_month":       next.Month.String(),
		"current_business_day": next.CurrentBusinessDay,
		"total_business_days":  next.TotalBusinessDays(),
	}).Info("settings: configuração de dias úteis atualizada")

	return next.View(), nil
}

// GetSummary calcula os KPIs do escopo no mês selecionado
func (s *Service) GetSummary(scope domain.Scope, metric domain.MetricType) (*domain.Summary, error) {
	return s.GetSummaryWith(s.Settings(), scope, metric)
}

func (s *Service) GetSummaryWith(settings domain.Settings, scope domain.Scope, metric domain.MetricType) (*domain.Summary, error) {
	engine, _, err := s.engineFor(settings)
	if err != nil {
		return nil, err
	}

	return engine.Summary(scope, metric, settings)
}

// GetDrillDown agrega o escopo no nível informado
func (s *Service) GetDrillDown(scope domain.Scope, level domain.Level, metric domain.MetricType) ([]domain.AggregateRow, error) {
	return s.GetDrillDownWith(s.Settings(), scope, level, metric)
}

func (s *Service) GetDrillDownWith(settings domain.Settings, scope domain.Scope, level domain.Level, metric domain.MetricType) ([]domain.AggregateRow, error) {
	engine, _, err := s.engineFor(settings)
	if err != nil {
		return nil, err
	}

	return engine.DrillDown(scope, level, metric, settings)
}

// GetDashboard monta a visão completa de um escopo: cards, linhas do nível
// seguinte e o caminho desde a raiz
func (s *Service) GetDashboard(scope domain.Scope, metric domain.MetricType) (*domain.DashboardResponse, error) {
	settings := s.Settings()

	engine, dataset, err := s.engineFor(settings)
	if err != nil {
		return nil, err
	}

	summary, err := engine.Summary(scope, metric, settings)
	if err != nil {
		return nil, err
	}

	response := &domain.DashboardResponse{
		Summary:   summary,
		Rows:      []domain.AggregateRow{},
		Path:      buildPath(dataset, settings.Month, scope),
		Settings:  settings.View(),
		DatasetID: dataset.ID,
	}

	if next, ok := scope.Level.Next(); ok {
		rows, err := engine.DrillDown(scope, next, metric, settings)
		if err != nil {
			return nil, err
		}
		response.Rows = rows
		response.RowsLevel = next
	}

	return response, nil
}

// GetAvailablePeriods retorna os meses presentes no dataset
func (s *Service) GetAvailablePeriods() (*domain.AvailablePeriods, error) {
	dataset, err := s.datasetRepository.Current()
	if err != nil {
		return nil, err
	}
	if dataset == nil {
		return nil, ErrDatasetNotLoaded
	}

	return domain.NewAvailablePeriods(dataset.Periods()), nil
}

// engineFor separa do dataset o mês selecionado, o mesmo mês do ano anterior
// e o mês anterior
func (s *Service) engineFor(settings domain.Settings) (*Engine, *domain.Dataset, error) {
	dataset, err := s.datasetRepository.Current()
	if err != nil {
		return nil, nil, err
	}
	if dataset == nil {
		return nil, nil, ErrDatasetNotLoaded
	}

	month := settings.Month
	engine := NewEngine(
		dataset.ActualOf(month),
		dataset.TargetOf(month),
		dataset.ActualOf(month.SameMonthLastYear()),
		dataset.ActualOf(month.PreviousMonth()),
	)

	return engine, dataset, nil
}

// buildPath reconstrói o breadcrumb a partir do primeiro registro do escopo
func buildPath(dataset *domain.Dataset, month domain.YearMonth, scope domain.Scope) []domain.PathNode {
	path := []domain.PathNode{{Level: domain.LevelRoot, ID: domain.RootScopeID, Name: domain.RootScopeName}}
	if scope.IsRoot() {
		return path
	}

	key := month.String()
	var team, salesperson, customerID, customerName string
	found := false

	for _, r := range dataset.Target {
		if r.YearMonth == key && matchesScope(scope, r.Team, r.SalespersonName, r.CustomerCode, r.CustomerName) {
			team, salesperson, customerID, customerName = r.Team, r.SalespersonName, firstNonEmpty(r.CustomerCode, r.CustomerName), r.CustomerName
			found = true
			break
		}
	}
	if !found {
		for _, r := range dataset.Actual {
			if r.YearMonth == key && matchesScope(scope, r.Team, r.SalespersonName, r.CustomerCode, r.CustomerName) {
				team, salesperson, customerID, customerName = r.Team, r.SalespersonName, firstNonEmpty(r.CustomerCode, r.CustomerName), r.CustomerName
				found = true
				break
			}
		}
	}
	if !found {
		return append(path, domain.PathNode{Level: scope.Level, ID: scope.ID, Name: scope.ID})
	}

	path = append(path, domain.PathNode{Level: domain.LevelTeam, ID: team, Name: team})
	if scope.Level.Depth() >= domain.LevelSalesperson.Depth() {
		path = append(path, domain.PathNode{Level: domain.LevelSalesperson, ID: salesperson, Name: salesperson})
	}
	if scope.Level.Depth() >= domain.LevelCustomer.Depth() {
		path = append(path, domain.PathNode{Level: domain.LevelCustomer, ID: customerID, Name: customerName})
	}

	return path
}

func matchesScope(scope domain.Scope, team, salesperson, customerCode, customerName string) bool {
	switch scope.Level {
	case domain.LevelTeam:
		return team == scope.ID
	case domain.LevelSalesperson:
		return salesperson == scope.ID
	case domain.LevelCustomer:
		return customerCode == scope.ID || customerName == scope.ID
	}
	return false
}
