package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-bi-api/internal/domain"
)

const delta = 1e-9

func sale(team, sp, code, name, item string, amount, weight float64) domain.SalesRecord {
	return domain.SalesRecord{
		YearMonth:       "202602",
		Team:            team,
		SalespersonName: sp,
		CustomerCode:    code,
		CustomerName:    name,
		ItemCode:        item,
		ItemName:        item + "명",
		Amount:          amount,
		Weight:          weight,
	}
}

func target(team, sp, code, name string, amount float64) domain.TargetRecord {
	return domain.TargetRecord{
		YearMonth:       "202602",
		Team:            team,
		SalespersonName: sp,
		CustomerCode:    code,
		CustomerName:    name,
		TargetAmount:    amount,
	}
}

func testSettings() domain.Settings {
	return domain.Settings{
		Month:               domain.NewYearMonth(2026, 2),
		BusinessDaysByMonth: map[string]int{"202602": 20},
		CurrentBusinessDay:  10,
	}
}

// fixtureEngine: FX팀 só tem vendas, sem metas; o cliente C5 só tem meta
func fixtureEngine() *Engine {
	actual := []domain.SalesRecord{
		sale("FD팀", "김민수", "C1", "고객1", "A", 50, 5),
		sale("FD팀", "김민수", "C1", "고객1", "B", 30, 3),
		sale("FD팀", "김민수", "C2", "고객2", "A", 20, 2),
		sale("FD팀", "이영희", "C3", "고객3", "C", 300, 30),
		sale("FC팀", "박철수", "C4", "고객4", "A", 10, 1),
		sale("FX팀", "최지은", "C9", "고객9", "Z", 999, 9),
	}
	targets := []domain.TargetRecord{
		target("FD팀", "김민수", "C1", "고객1", 100),
		target("FD팀", "김민수", "C2", "고객2", 100),
		target("FD팀", "이영희", "C3", "고객3", 200),
		target("FC팀", "박철수", "C4", "고객4", 0),
		target("FD팀", "김민수", "C5", "고객5", 50),
	}
	lastYear := []domain.SalesRecord{
		sale("FD팀", "김민수", "C1", "고객1", "A", 40, 4),
	}
	lastMonth := []domain.SalesRecord{
		sale("FD팀", "이영희", "C3", "고객3", "C", 150, 15),
	}

	return NewEngine(actual, targets, lastYear, lastMonth)
}

func TestEngine_Summary(t *testing.T) {
	engine := fixtureEngine()
	settings := testSettings()

	tests := []struct {
		name     string
		scope    domain.Scope
		metric   domain.MetricType
		validate func(t *testing.T, s *domain.Summary)
	}{
		{
			name:   "Raiz soma todas as vendas",
			scope:  domain.RootScope(),
			metric: domain.MetricAmount,
			validate: func(t *testing.T, s *domain.Summary) {
				assert.InDelta(t, 1409, s.Actual, delta)
				assert.InDelta(t, 450, s.Target, delta)
				assert.InDelta(t, 1409.0/450*100, s.AchievementRate, delta)
				assert.InDelta(t, 50, s.ProgressRate, delta)
				assert.InDelta(t, s.AchievementRate-s.ProgressRate, s.ProgressGap, delta)
				assert.InDelta(t, 1409*domain.CumulativeActualFactor, s.CumulativeActual, delta)
				assert.InDelta(t, 450*domain.CumulativeTargetFactor, s.CumulativeTarget, delta)
				assert.InDelta(t, 2818, s.Forecast, delta)
				assert.InDelta(t, 2818.0/450*100, s.ForecastAchievement, delta)
				assert.InDelta(t, 50, s.Weight, delta)
				assert.Equal(t, 20, s.TotalBusinessDays)
				assert.Equal(t, "202602", s.Month)
			},
		},
		{
			name:   "Time filtra por nome exato",
			scope:  domain.Scope{Level: domain.LevelTeam, ID: "FD팀"},
			metric: domain.MetricAmount,
			validate: func(t *testing.T, s *domain.Summary) {
				assert.InDelta(t, 400, s.Actual, delta)
				assert.InDelta(t, 450, s.Target, delta)
				assert.InDelta(t, 40, s.LastYearActual, delta)
				assert.InDelta(t, 150, s.LastMonthActual, delta)
				assert.InDelta(t, (400.0-40)/40*100, s.YoYGrowth, delta)
				assert.InDelta(t, (400.0-150)/150*100, s.MoMGrowth, delta)
			},
		},
		{
			name:   "Meta zero resulta em atingimento zero",
			scope:  domain.Scope{Level: domain.LevelTeam, ID: "FC팀"},
			metric: domain.MetricAmount,
			validate: func(t *testing.T, s *domain.Summary) {
				assert.InDelta(t, 10, s.Actual, delta)
				assert.Equal(t, 0.0, s.Target)
				assert.Equal(t, 0.0, s.AchievementRate)
				assert.Equal(t, 0.0, s.ForecastAchievement)
				assert.Equal(t, 0.0, s.YoYGrowth)
				assert.Equal(t, 0.0, s.MoMGrowth)
			},
		},
		{
			name:   "Vendedor em modo peso usa meta simulada",
			scope:  domain.Scope{Level: domain.LevelSalesperson, ID: "김민수"},
			metric: domain.MetricWeight,
			validate: func(t *testing.T, s *domain.Summary) {
				assert.Equal(t, domain.MetricWeight, s.Metric)
				assert.InDelta(t, 10, s.Actual, delta)
				assert.InDelta(t, 250/domain.WeightTargetDivisor, s.Target, delta)
				assert.InDelta(t, 4, s.LastYearActual, delta)
				assert.InDelta(t, 150, s.YoYWeightGrowth, delta)
			},
		},
		{
			name:   "Cliente aceita código ou nome",
			scope:  domain.Scope{Level: domain.LevelCustomer, ID: "고객1"},
			metric: domain.MetricAmount,
			validate: func(t *testing.T, s *domain.Summary) {
				assert.InDelta(t, 80, s.Actual, delta)
				assert.InDelta(t, 100, s.Target, delta)
			},
		},
		{
			name:   "Escopo inexistente retorna zeros",
			scope:  domain.Scope{Level: domain.LevelTeam, ID: "XX팀"},
			metric: domain.MetricAmount,
			validate: func(t *testing.T, s *domain.Summary) {
				assert.Equal(t, 0.0, s.Actual)
				assert.Equal(t, 0.0, s.AchievementRate)
				assert.InDelta(t, -50, s.ProgressGap, delta)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, err := engine.Summary(tt.scope, tt.metric, settings)
			require.NoError(t, err)
			tt.validate(t, summary)
		})
	}
}

func TestEngine_Summary_ItemScopeNotSupported(t *testing.T) {
	_, err := fixtureEngine().Summary(domain.Scope{Level: domain.LevelItem, ID: "A명"}, domain.MetricAmount, testSettings())
	assert.ErrorIs(t, err, ErrInvalidLevel)
}

func TestEngine_DrillDown(t *testing.T) {
	engine := fixtureEngine()
	settings := testSettings()

	tests := []struct {
		name     string
		scope    domain.Scope
		level    domain.Level
		metric   domain.MetricType
		validate func(t *testing.T, rows []domain.AggregateRow)
	}{
		{
			name:   "Times vêm apenas da tabela de metas",
			scope:  domain.RootScope(),
			level:  domain.LevelTeam,
			metric: domain.MetricAmount,
			validate: func(t *testing.T, rows []domain.AggregateRow) {
				require.Len(t, rows, 2)
				assert.Equal(t, "FD팀", rows[0].ID)
				assert.InDelta(t, 400, rows[0].Actual, delta)
				assert.InDelta(t, 450, rows[0].Target, delta)
				assert.Equal(t, "FC팀", rows[1].ID)
				assert.Equal(t, 0.0, rows[1].Achievement)
			},
		},
		{
			name:   "Vendedores do time ordenados por realizado",
			scope:  domain.Scope{Level: domain.LevelTeam, ID: "FD팀"},
			level:  domain.LevelSalesperson,
			metric: domain.MetricAmount,
			validate: func(t *testing.T, rows []domain.AggregateRow) {
				require.Len(t, rows, 2)
				assert.Equal(t, "이영희", rows[0].Name)
				assert.InDelta(t, 300, rows[0].Actual, delta)
				assert.InDelta(t, 100, rows[0].MoM, delta)
				assert.Equal(t, "김민수", rows[1].Name)
				assert.InDelta(t, 100, rows[1].Actual, delta)
				assert.InDelta(t, 250, rows[1].Target, delta)
				assert.InDelta(t, 150, rows[1].YoY, delta)
			},
		},
		{
			name:   "Cliente sem vendas aparece com zeros",
			scope:  domain.Scope{Level: domain.LevelSalesperson, ID: "김민수"},
			level:  domain.LevelCustomer,
			metric: domain.MetricAmount,
			validate: func(t *testing.T, rows []domain.AggregateRow) {
				require.Len(t, rows, 3)
				assert.Equal(t, "C1", rows[0].ID)
				assert.Equal(t, "고객1", rows[0].Name)
				assert.InDelta(t, 80, rows[0].Actual, delta)
				assert.Equal(t, "C5", rows[2].ID)
				assert.Equal(t, 0.0, rows[2].Actual)
				assert.Equal(t, 0.0, rows[2].Achievement)
				assert.Equal(t, 0.0, rows[2].Forecast)
				assert.InDelta(t, 50, rows[2].Target, delta)
			},
		},
		{
			name:   "Itens recebem meta sintética",
			scope:  domain.Scope{Level: domain.LevelCustomer, ID: "C1"},
			level:  domain.LevelItem,
			metric: domain.MetricAmount,
			validate: func(t *testing.T, rows []domain.AggregateRow) {
				require.Len(t, rows, 2)
				assert.Equal(t, "A", rows[0].ID)
				assert.Equal(t, "A명", rows[0].Name)
				assert.InDelta(t, 50, rows[0].Actual, delta)
				assert.InDelta(t, 50*domain.ItemTargetFactor, rows[0].Target, delta)
				assert.InDelta(t, 100/domain.ItemTargetFactor, rows[0].Achievement, 1e-6)
				assert.InDelta(t, 40, rows[0].LastYear, delta)
				assert.InDelta(t, 30, rows[1].Actual, delta)
			},
		},
		{
			name:   "Raiz direto para vendedores",
			scope:  domain.RootScope(),
			level:  domain.LevelSalesperson,
			metric: domain.MetricAmount,
			validate: func(t *testing.T, rows []domain.AggregateRow) {
				require.Len(t, rows, 3)
				assert.Equal(t, []string{"이영희", "김민수", "박철수"}, []string{rows[0].Name, rows[1].Name, rows[2].Name})
			},
		},
		{
			name:   "Modo peso",
			scope:  domain.RootScope(),
			level:  domain.LevelTeam,
			metric: domain.MetricWeight,
			validate: func(t *testing.T, rows []domain.AggregateRow) {
				require.Len(t, rows, 2)
				assert.InDelta(t, 40, rows[0].Actual, delta)
				assert.InDelta(t, 40, rows[0].Weight, delta)
				assert.InDelta(t, 450/domain.WeightTargetDivisor, rows[0].Target, delta)
				assert.InDelta(t, 80, rows[0].ForecastWeight, delta)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := engine.DrillDown(tt.scope, tt.level, tt.metric, settings)
			require.NoError(t, err)
			tt.validate(t, rows)

			for i, row := range rows {
				assert.InDelta(t, row.Achievement-settings.ProgressRate(), row.ProgressGap, delta)
				assert.InDelta(t, row.Actual*domain.CumulativeActualFactor, row.CumulativeActual, delta)
				if i > 0 {
					assert.GreaterOrEqual(t, rows[i-1].Actual, row.Actual)
				}
			}
		})
	}
}

func TestEngine_DrillDown_InvalidLevel(t *testing.T) {
	engine := fixtureEngine()

	tests := []struct {
		name  string
		scope domain.Scope
		level domain.Level
	}{
		{name: "Raiz para raiz", scope: domain.RootScope(), level: domain.LevelRoot},
		{name: "Mesmo nível", scope: domain.Scope{Level: domain.LevelTeam, ID: "FD팀"}, level: domain.LevelTeam},
		{name: "Nível acima do escopo", scope: domain.Scope{Level: domain.LevelCustomer, ID: "C1"}, level: domain.LevelTeam},
		{name: "Escopo item", scope: domain.Scope{Level: domain.LevelItem, ID: "A"}, level: domain.LevelItem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.DrillDown(tt.scope, tt.level, domain.MetricAmount, testSettings())
			assert.ErrorIs(t, err, ErrInvalidLevel)
		})
	}
}

func TestEngine_TeamSumEqualsRoot(t *testing.T) {
	// todos os times das vendas também estão nas metas
	actual := []domain.SalesRecord{
		sale("FD팀", "김민수", "C1", "고객1", "A", 123.5, 1),
		sale("FC팀", "박철수", "C4", "고객4", "B", 77.25, 2),
		sale("FD팀", "이영희", "C3", "고객3", "A", 10, 3),
	}
	targets := []domain.TargetRecord{
		target("FD팀", "김민수", "C1", "고객1", 100),
		target("FD팀", "이영희", "C3", "고객3", 100),
		target("FC팀", "박철수", "C4", "고객4", 100),
	}
	engine := NewEngine(actual, targets, nil, nil)

	summary, err := engine.Summary(domain.RootScope(), domain.MetricAmount, testSettings())
	require.NoError(t, err)
	rows, err := engine.DrillDown(domain.RootScope(), domain.LevelTeam, domain.MetricAmount, testSettings())
	require.NoError(t, err)

	sum := 0.0
	for _, row := range rows {
		sum += row.Actual
	}
	assert.InDelta(t, summary.Actual, sum, delta)
}

func TestEngine_SingleCustomer(t *testing.T) {
	engine := NewEngine(
		[]domain.SalesRecord{
			sale("FD팀", "김민수", "C1", "고객1", "A", 10, 1),
			sale("FD팀", "김민수", "C1", "고객1", "B", 15, 1),
		},
		[]domain.TargetRecord{target("FD팀", "김민수", "C1", "고객1", 30)},
		nil, nil,
	)
	scope := domain.Scope{Level: domain.LevelSalesperson, ID: "김민수"}

	summary, err := engine.Summary(scope, domain.MetricAmount, testSettings())
	require.NoError(t, err)
	rows, err := engine.DrillDown(scope, domain.LevelCustomer, domain.MetricAmount, testSettings())
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, summary.Actual, rows[0].Actual)
}

func TestEngine_Idempotent(t *testing.T) {
	engine := fixtureEngine()
	settings := testSettings()

	first, err := engine.DrillDown(domain.RootScope(), domain.LevelCustomer, domain.MetricAmount, settings)
	require.NoError(t, err)
	second, err := engine.DrillDown(domain.RootScope(), domain.LevelCustomer, domain.MetricAmount, settings)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	s1, _ := engine.Summary(domain.RootScope(), domain.MetricWeight, settings)
	s2, _ := engine.Summary(domain.RootScope(), domain.MetricWeight, settings)
	assert.Equal(t, s1, s2)
}

func TestEngine_EmptyData(t *testing.T) {
	engine := NewEngine(nil, nil, nil, nil)
	settings := domain.Settings{Month: domain.NewYearMonth(2026, 2)}

	summary, err := engine.Summary(domain.RootScope(), domain.MetricAmount, settings)
	require.NoError(t, err)
	assert.Equal(t, 0.0, summary.AchievementRate)
	assert.Equal(t, 0.0, summary.Forecast)

	rows, err := engine.DrillDown(domain.RootScope(), domain.LevelTeam, domain.MetricAmount, settings)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
