// Package analyzing contém o motor de agregação do dashboard de vendas
package analyzing

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vfg2006/sales-bi-api/internal/domain"
)

var ErrInvalidLevel = errors.New("combinação de níveis inválida para o drill-down")

// Engine agrega vendas e metas de um mês. Os slices recebidos são tratados
// como somente leitura e nenhum resultado é guardado entre chamadas.
type Engine struct {
	actual    []domain.SalesRecord
	target    []domain.TargetRecord
	lastYear  []domain.SalesRecord
	lastMonth []domain.SalesRecord
}

// NewEngine cria o motor; lastYear e lastMonth podem ser nil
func NewEngine(actual []domain.SalesRecord, target []domain.TargetRecord, lastYear, lastMonth []domain.SalesRecord) *Engine {
	return &Engine{
		actual:    actual,
		target:    target,
		lastYear:  lastYear,
		lastMonth: lastMonth,
	}
}

type salesFilter func(domain.SalesRecord) bool

type targetFilter func(domain.TargetRecord) bool

// totals acumula as somas de um grupo
type totals struct {
	id              string
	name            string
	actual          float64
	target          float64
	weight          float64
	lastYear        float64
	lastMonth       float64
	lastYearWeight  float64
	lastMonthWeight float64
}

// Summary calcula os KPIs do escopo. Escopos abaixo de customer não são suportados.
func (e *Engine) Summary(scope domain.Scope, metricType domain.MetricType, settings domain.Settings) (*domain.Summary, error) {
	inSales, inTarget, err := scopeFilters(scope)
	if err != nil {
		return nil, err
	}

	metric := domain.MetricFor(metricType)
	t := &totals{}

	for _, r := range e.actual {
		if inSales(r) {
			t.actual += metric.Actual(r)
			t.weight += r.Weight
		}
	}
	for _, r := range e.target {
		if inTarget(r) {
			t.target += metric.Target(r)
		}
	}
	for _, r := range e.lastYear {
		if inSales(r) {
			t.lastYear += metric.Actual(r)
			t.lastYearWeight += r.Weight
		}
	}
	for _, r := range e.lastMonth {
		if inSales(r) {
			t.lastMonth += metric.Actual(r)
			t.lastMonthWeight += r.Weight
		}
	}

	row := buildRow(t, settings)

	return &domain.Summary{
		Scope:                 scope,
		Metric:                metric.Type(),
		Month:                 settings.Month.String(),
		Actual:                row.Actual,
		Target:                row.Target,
		Weight:                row.Weight,
		LastYearActual:        row.LastYear,
		LastMonthActual:       row.LastMonth,
		LastYearWeight:        row.LastYearWeight,
		LastMonthWeight:       row.LastMonthWeight,
		AchievementRate:       row.Achievement,
		ProgressRate:          settings.ProgressRate(),
		ProgressGap:           row.ProgressGap,
		YoYGrowth:             row.YoY,
		MoMGrowth:             row.MoM,
		YoYWeightGrowth:       domain.Growth(row.Weight, row.LastYearWeight),
		CumulativeActual:      row.CumulativeActual,
		CumulativeTarget:      row.CumulativeTarget,
		CumulativeWeight:      row.CumulativeWeight,
		CumulativeAchievement: row.CumulativeAchievement,
		Forecast:              row.Forecast,
		ForecastWeight:        row.ForecastWeight,
		ForecastAchievement:   row.ForecastAchievement,
		CurrentBusinessDay:    settings.CurrentBusinessDay,
		TotalBusinessDays:     settings.TotalBusinessDays(),
	}, nil
}

// DrillDown agrupa o escopo pelo nível informado e ordena as linhas por
// realizado decrescente. Para team, salesperson e customer os grupos vêm da
// tabela de metas; para item, das vendas do escopo.
func (e *Engine) DrillDown(scope domain.Scope, level domain.Level, metricType domain.MetricType, settings domain.Settings) ([]domain.AggregateRow, error) {
	if level == domain.LevelRoot || level.Depth() <= scope.Level.Depth() {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidLevel, scope.Level, level)
	}

	inSales, inTarget, err := scopeFilters(scope)
	if err != nil {
		return nil, err
	}

	metric := domain.MetricFor(metricType)
	key := groupKeyFor(level)
	groups := newGrouping()

	if level == domain.LevelItem {
		for _, r := range e.actual {
			if inSales(r) {
				groups.add(r.ItemName, firstNonEmpty(r.ItemCode, r.ItemName), r.ItemName)
			}
		}
	} else {
		for _, r := range e.target {
			if inTarget(r) {
				k, name := key.target(r)
				groups.add(k, k, name)
			}
		}
	}

	for _, r := range e.actual {
		if !inSales(r) {
			continue
		}
		if g := groups.get(key.sales(r)); g != nil {
			g.actual += metric.Actual(r)
			g.weight += r.Weight
		}
	}
	for _, r := range e.lastYear {
		if !inSales(r) {
			continue
		}
		if g := groups.get(key.sales(r)); g != nil {
			g.lastYear += metric.Actual(r)
			g.lastYearWeight += r.Weight
		}
	}
	for _, r := range e.lastMonth {
		if !inSales(r) {
			continue
		}
		if g := groups.get(key.sales(r)); g != nil {
			g.lastMonth += metric.Actual(r)
			g.lastMonthWeight += r.Weight
		}
	}

	if level == domain.LevelItem {
		for _, g := range groups.order {
			g.target = g.actual * domain.ItemTargetFactor
		}
	} else {
		for _, r := range e.target {
			if !inTarget(r) {
				continue
			}
			k, _ := key.target(r)
			if g := groups.get(k); g != nil {
				g.target += metric.Target(r)
			}
		}
	}

	rows := make([]domain.AggregateRow, 0, len(groups.order))
	for _, g := range groups.order {
		rows = append(rows, buildRow(g, settings))
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Actual > rows[j].Actual
	})

	return rows, nil
}

// buildRow aplica as fórmulas derivadas sobre as somas de um grupo
func buildRow(t *totals, settings domain.Settings) domain.AggregateRow {
	achievement := domain.Rate(t.actual, t.target)
	forecast := settings.Forecast(t.actual)
	cumulativeActual := t.actual * domain.CumulativeActualFactor
	cumulativeTarget := t.target * domain.CumulativeTargetFactor

	return domain.AggregateRow{
		ID:                    t.id,
		Name:                  t.name,
		Actual:                t.actual,
		Target:                t.target,
		Weight:                t.weight,
		LastYear:              t.lastYear,
		LastMonth:             t.lastMonth,
		LastYearWeight:        t.lastYearWeight,
		LastMonthWeight:       t.lastMonthWeight,
		Achievement:           achievement,
		ProgressGap:           achievement - settings.ProgressRate(),
		YoY:                   domain.Growth(t.actual, t.lastYear),
		MoM:                   domain.Growth(t.actual, t.lastMonth),
		CumulativeActual:      cumulativeActual,
		CumulativeTarget:      cumulativeTarget,
		CumulativeWeight:      t.weight * domain.CumulativeActualFactor,
		CumulativeAchievement: domain.Rate(cumulativeActual, cumulativeTarget),
		Forecast:              forecast,
		ForecastWeight:        settings.Forecast(t.weight),
		ForecastAchievement:   domain.Rate(forecast, t.target),
	}
}

// scopeFilters devolve os filtros de vendas e metas de um escopo
func scopeFilters(scope domain.Scope) (salesFilter, targetFilter, error) {
	id := scope.ID

	switch scope.Level {
	case domain.LevelRoot, "":
		return func(domain.SalesRecord) bool { return true },
			func(domain.TargetRecord) bool { return true },
			nil
	case domain.LevelTeam:
		return func(r domain.SalesRecord) bool { return r.Team == id },
			func(r domain.TargetRecord) bool { return r.Team == id },
			nil
	case domain.LevelSalesperson:
		return func(r domain.SalesRecord) bool { return r.SalespersonName == id },
			func(r domain.TargetRecord) bool { return r.SalespersonName == id },
			nil
	case domain.LevelCustomer:
		// O id do cliente pode ser o código ou o nome
		return func(r domain.SalesRecord) bool { return r.CustomerCode == id || r.CustomerName == id },
			func(r domain.TargetRecord) bool { return r.CustomerCode == id || r.CustomerName == id },
			nil
	}

	return nil, nil, fmt.Errorf("%w: escopo %q", ErrInvalidLevel, scope.Level)
}

type groupKey struct {
	sales  func(domain.SalesRecord) string
	target func(domain.TargetRecord) (key, name string)
}

func groupKeyFor(level domain.Level) groupKey {
	switch level {
	case domain.LevelTeam:
		return groupKey{
			sales:  func(r domain.SalesRecord) string { return r.Team },
			target: func(r domain.TargetRecord) (string, string) { return r.Team, r.Team },
		}
	case domain.LevelSalesperson:
		return groupKey{
			sales:  func(r domain.SalesRecord) string { return r.SalespersonName },
			target: func(r domain.TargetRecord) (string, string) { return r.SalespersonName, r.SalespersonName },
		}
	case domain.LevelCustomer:
		return groupKey{
			sales: func(r domain.SalesRecord) string { return firstNonEmpty(r.CustomerCode, r.CustomerName) },
			target: func(r domain.TargetRecord) (string, string) {
				return firstNonEmpty(r.CustomerCode, r.CustomerName), r.CustomerName
			},
		}
	}

	// item
	return groupKey{
		sales:  func(r domain.SalesRecord) string { return r.ItemName },
		target: func(domain.TargetRecord) (string, string) { return "", "" },
	}
}

// grouping mantém os grupos na ordem em que foram vistos
type grouping struct {
	order []*totals
	byKey map[string]*totals
}

func newGrouping() *grouping {
	return &grouping{byKey: make(map[string]*totals)}
}

func (g *grouping) add(key, id, name string) {
	if _, ok := g.byKey[key]; ok {
		return
	}
	t := &totals{id: id, name: name}
	g.byKey[key] = t
	g.order = append(g.order, t)
}

func (g *grouping) get(key string) *totals {
	return g.byKey[key]
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
