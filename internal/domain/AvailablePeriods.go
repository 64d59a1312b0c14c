package domain

// AvailablePeriods representa os períodos mensais disponíveis no dataset carregado
type AvailablePeriods struct {
	Periods []string `json:"periods"` // Lista de períodos no formato YYYYMM
	Years   []string `json:"years"`   // Lista de anos únicos disponíveis
	Months  []string `json:"months"`  // Lista de meses únicos disponíveis
}

// NewAvailablePeriods separa anos e meses únicos de uma lista de períodos YYYYMM
func NewAvailablePeriods(periods []string) *AvailablePeriods {
	years := make(map[string]struct{})
	months := make(map[string]struct{})
	for _, p := range periods {
		if len(p) != 6 {
			continue
		}
		years[p[:4]] = struct{}{}
		months[p[4:]] = struct{}{}
	}

	return &AvailablePeriods{
		Periods: periods,
		Years:   SortedKeys(years),
		Months:  SortedKeys(months),
	}
}
