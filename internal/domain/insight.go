package domain

// Summary reúne os KPIs de um escopo (cards do dashboard)
type Summary struct {
	Scope                 Scope      `json:"scope"`
	Metric                MetricType `json:"metric"`
	Month                 string     `json:"month"`
	Actual                float64    `json:"actual"`
	Target                float64    `json:"target"`
	Weight                float64    `json:"weight"`
	LastYearActual        float64    `json:"last_year_actual"`
	LastMonthActual       float64    `json:"last_month_actual"`
	LastYearWeight        float64    `json:"last_year_weight"`
	LastMonthWeight       float64    `json:"last_month_weight"`
	AchievementRate       float64    `json:"achievement_rate"`
	ProgressRate          float64    `json:"progress_rate"`
	ProgressGap           float64    `json:"progress_gap"`
	YoYGrowth             float64    `json:"yoy_growth"`
	MoMGrowth             float64    `json:"mom_growth"`
	YoYWeightGrowth       float64    `json:"yoy_weight_growth"`
	CumulativeActual      float64    `json:"cumulative_actual"`
	CumulativeTarget      float64    `json:"cumulative_target"`
	CumulativeWeight      float64    `json:"cumulative_weight"`
	CumulativeAchievement float64    `json:"cumulative_achievement"`
	Forecast              float64    `json:"forecast"`
	ForecastWeight        float64    `json:"forecast_weight"`
	ForecastAchievement   float64    `json:"forecast_achievement"`
	CurrentBusinessDay    int        `json:"current_business_day"`
	TotalBusinessDays     int        `json:"total_business_days"`
}

// AggregateRow é uma linha de qualquer nível do drill-down
type AggregateRow struct {
	ID                    string  `json:"id"`
	Name                  string  `json:"name"`
	Actual                float64 `json:"actual"`
	Target                float64 `json:"target"`
	Weight                float64 `json:"weight"`
	LastYear              float64 `json:"last_year"`
	LastMonth             float64 `json:"last_month"`
	LastYearWeight        float64 `json:"last_year_weight"`
	LastMonthWeight       float64 `json:"last_month_weight"`
	Achievement           float64 `json:"achievement"`
	ProgressGap           float64 `json:"progress_gap"`
	YoY                   float64 `json:"yoy"`
	MoM                   float64 `json:"mom"`
	CumulativeActual      float64 `json:"cumulative_actual"`
	CumulativeTarget      float64 `json:"cumulative_target"`
	CumulativeWeight      float64 `json:"cumulative_weight"`
	CumulativeAchievement float64 `json:"cumulative_achievement"`
	Forecast              float64 `json:"forecast"`
	ForecastWeight        float64 `json:"forecast_weight"`
	ForecastAchievement   float64 `json:"forecast_achievement"`
}

// DashboardResponse combina o resumo do escopo com o próximo nível do drill-down
type DashboardResponse struct {
	Summary   *Summary       `json:"summary"`
	Rows      []AggregateRow `json:"rows"`
	RowsLevel Level          `json:"rows_level,omitempty"`
	Path      []PathNode     `json:"path"`
	Settings  SettingsView   `json:"settings"`
	DatasetID string         `json:"dataset_id"`
}

// Rate calcula part / whole * 100, retornando 0 quando whole é zero
func Rate(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part / whole * 100
}

// Growth calcula (current - prior) / prior * 100, retornando 0 quando prior é zero
func Growth(current, prior float64) float64 {
	if prior == 0 {
		return 0
	}
	return (current - prior) / prior * 100
}
