// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

type KPISnapshotResponse struct {
	Month      string        `json:"month"`
	Snapshots  []KPISnapshot `json:"snapshots"`
	LastUpdate time.Time     `json:"last_update"`
}

// KPISnapshot é a fotografia dos KPIs de um escopo em um mês
type KPISnapshot struct {
	ID              int        `json:"id"`
	Month           string     `json:"month"` // Formato YYYYMM
	ScopeLevel      Level      `json:"scope_level"`
	ScopeID         string     `json:"scope_id"`
	ScopeName       string     `json:"scope_name"`
	Metric          MetricType `json:"metric"`
	Actual          float64    `json:"actual"`
	Target          float64    `json:"target"`
	AchievementRate float64    `json:"achievement_rate"`
	ProgressRate    float64    `json:"progress_rate"`
	Forecast        float64    `json:"forecast"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// NewKPISnapshotFromSummary converte o resumo de um escopo em snapshot
func NewKPISnapshotFromSummary(s *Summary, scopeName string) *KPISnapshot {
	return &KPISnapshot{
		Month:           s.Month,
		ScopeLevel:      s.Scope.Level,
		ScopeID:         s.Scope.ID,
		ScopeName:       scopeName,
		Metric:          s.Metric,
		Actual:          s.Actual,
		Target:          s.Target,
		AchievementRate: s.AchievementRate,
		ProgressRate:    s.ProgressRate,
		Forecast:        s.Forecast,
	}
}

// NewKPISnapshotFromRow converte uma linha de drill-down em snapshot
func NewKPISnapshotFromRow(row AggregateRow, level Level, month string, metric MetricType, progressRate float64) *KPISnapshot {
	return &KPISnapshot{
		Month:           month,
		ScopeLevel:      level,
		ScopeID:         row.ID,
		ScopeName:       row.Name,
		Metric:          metric,
		Actual:          row.Actual,
		Target:          row.Target,
		AchievementRate: row.Achievement,
		ProgressRate:    progressRate,
		Forecast:        row.Forecast,
	}
}
