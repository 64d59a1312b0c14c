package domain

import "time"

const (
	// Origens possíveis de um dataset carregado
	DatasetSourceGenerated = "generated"
	DatasetSourceImported  = "imported"
)

// SalesRecord representa uma linha agregada de venda realizada (매출)
type SalesRecord struct {
	YearMonth       string  `json:"year_month"` // Formato YYYYMM
	Team            string  `json:"team"`
	SalespersonName string  `json:"salesperson_name"`
	CustomerCode    string  `json:"customer_code"`
	CustomerName    string  `json:"customer_name"`
	ItemCode        string  `json:"item_code"`
	ItemName        string  `json:"item_name"`
	Amount          float64 `json:"amount"`
	Weight          float64 `json:"weight"` // Em KG
}

// TargetRecord representa a meta de um par vendedor-cliente em um mês (목표)
type TargetRecord struct {
	YearMonth       string  `json:"year_month"`
	Team            string  `json:"team"`
	SalespersonName string  `json:"salesperson_name"`
	CustomerCode    string  `json:"customer_code"`
	CustomerName    string  `json:"customer_name"`
	TargetAmount    float64 `json:"target_amount"`
}

// Dataset é o conjunto unificado em memória com todas as vendas e metas
type Dataset struct {
	ID          string         `json:"id"`
	Source      string         `json:"source"`
	Actual      []SalesRecord  `json:"-"`
	Target      []TargetRecord `json:"-"`
	GeneratedAt time.Time      `json:"generated_at"`
}

// DatasetInfo resume um dataset sem carregar os registros
type DatasetInfo struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	ActualRows  int       `json:"actual_rows"`
	TargetRows  int       `json:"target_rows"`
	Periods     []string  `json:"periods"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Info monta o resumo do dataset
func (d *Dataset) Info() DatasetInfo {
	return DatasetInfo{
		ID:          d.ID,
		Source:      d.Source,
		ActualRows:  len(d.Actual),
		TargetRows:  len(d.Target),
		Periods:     d.Periods(),
		GeneratedAt: d.GeneratedAt,
	}
}

// Periods lista os meses (YYYYMM) presentes no dataset em ordem crescente
func (d *Dataset) Periods() []string {
	seen := make(map[string]struct{})
	for _, r := range d.Actual {
		seen[r.YearMonth] = struct{}{}
	}
	for _, r := range d.Target {
		seen[r.YearMonth] = struct{}{}
	}
	return SortedKeys(seen)
}

// ActualOf retorna as vendas de um mês
func (d *Dataset) ActualOf(ym YearMonth) []SalesRecord {
	key := ym.String()
	out := make([]SalesRecord, 0)
	for _, r := range d.Actual {
		if r.YearMonth == key {
			out = append(out, r)
		}
	}
	return out
}

// TargetOf retorna as metas de um mês
func (d *Dataset) TargetOf(ym YearMonth) []TargetRecord {
	key := ym.String()
	out := make([]TargetRecord, 0)
	for _, r := range d.Target {
		if r.YearMonth == key {
			out = append(out, r)
		}
	}
	return out
}
