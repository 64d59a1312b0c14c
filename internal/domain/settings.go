package domain

// Settings reúne os parâmetros de dias úteis usados em cada cálculo.
// É passado explicitamente a cada chamada do motor; alterações só valem
// para o próximo cálculo.
type Settings struct {
	Month               YearMonth      `json:"-"`
	BusinessDaysByMonth map[string]int `json:"business_days_by_month"`
	CurrentBusinessDay  int            `json:"current_business_day"`
}

// TotalBusinessDays retorna os dias úteis do mês selecionado. Sem
// configuração explícita, usa a contagem de dias de semana do mês.
func (s Settings) TotalBusinessDays() int {
	if days, ok := s.BusinessDaysByMonth[s.Month.String()]; ok && days > 0 {
		return days
	}
	if s.Month.IsZero() {
		return 0
	}
	return s.Month.Weekdays()
}

// ProgressRate é a porcentagem de dias úteis decorridos no mês
func (s Settings) ProgressRate() float64 {
	total := s.TotalBusinessDays()
	if total <= 0 {
		return 0
	}
	return float64(s.CurrentBusinessDay) / float64(total) * 100
}

// Forecast projeta linearmente o realizado até o fim do mês
func (s Settings) Forecast(actual float64) float64 {
	if s.CurrentBusinessDay <= 0 {
		return 0
	}
	return actual / float64(s.CurrentBusinessDay) * float64(s.TotalBusinessDays())
}

// Clone copia o mapa de dias úteis para que o chamador não compartilhe estado
func (s Settings) Clone() Settings {
	days := make(map[string]int, len(s.BusinessDaysByMonth))
	for k, v := range s.BusinessDaysByMonth {
		days[k] = v
	}
	s.BusinessDaysByMonth = days
	return s
}

// SettingsView é a representação de Settings exposta pela API
type SettingsView struct {
	SelectedMonth       string         `json:"selected_month"`
	BusinessDaysByMonth map[string]int `json:"business_days_by_month"`
	CurrentBusinessDay  int            `json:"current_business_day"`
	TotalBusinessDays   int            `json:"total_business_days"`
	ProgressRate        float64        `json:"progress_rate"`
}

// View monta a representação pública
func (s Settings) View() SettingsView {
	return SettingsView{
		SelectedMonth:       s.Month.String(),
		BusinessDaysByMonth: s.Clone().BusinessDaysByMonth,
		CurrentBusinessDay:  s.CurrentBusinessDay,
		TotalBusinessDays:   s.TotalBusinessDays(),
		ProgressRate:        s.ProgressRate(),
	}
}

// SettingsUpdate carrega uma alteração parcial de Settings
type SettingsUpdate struct {
	SelectedMonth       *string        `json:"selected_month,omitempty"`
	BusinessDaysByMonth map[string]int `json:"business_days_by_month,omitempty"`
	CurrentBusinessDay  *int           `json:"current_business_day,omitempty"`
}
