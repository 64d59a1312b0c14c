package domain

import "fmt"

// Constantes de simulação. Representam dados que não existem no dataset
// e são aproximações intencionais, não valores medidos.
const (
	// CumulativeActualFactor simula o acumulado do ano a partir do mês corrente
	CumulativeActualFactor = 1.8
	// CumulativeTargetFactor simula a meta acumulada do ano
	CumulativeTargetFactor = 2.0
	// ItemTargetFactor sintetiza a meta por item, que não existe na tabela de metas
	ItemTargetFactor = 1.2
	// WeightTargetDivisor converte meta em valor para uma meta de peso simulada
	WeightTargetDivisor = 10000.0
)

// MetricType seleciona a grandeza analisada
type MetricType string

const (
	MetricAmount MetricType = "amount"
	MetricWeight MetricType = "weight"
)

// ParseMetricType valida o tipo de métrica; vazio equivale a amount
func ParseMetricType(s string) (MetricType, error) {
	switch MetricType(s) {
	case "", MetricAmount:
		return MetricAmount, nil
	case MetricWeight:
		return MetricWeight, nil
	}
	return "", fmt.Errorf("métrica desconhecida: %q", s)
}

// Metric extrai os valores de venda e meta de acordo com a grandeza escolhida
type Metric interface {
	Type() MetricType
	Actual(r SalesRecord) float64
	Target(r TargetRecord) float64
}

type amountMetric struct{}

func (amountMetric) Type() MetricType              { return MetricAmount }
func (amountMetric) Actual(r SalesRecord) float64  { return r.Amount }
func (amountMetric) Target(r TargetRecord) float64 { return r.TargetAmount }

// weightMetric usa o peso das vendas; a meta de peso é SIMULADA
// (meta em valor / WeightTargetDivisor), pois não existe meta de peso real.
type weightMetric struct{}

func (weightMetric) Type() MetricType             { return MetricWeight }
func (weightMetric) Actual(r SalesRecord) float64 { return r.Weight }
func (weightMetric) Target(r TargetRecord) float64 {
	return r.TargetAmount / WeightTargetDivisor
}

// MetricFor devolve a estratégia correspondente ao tipo
func MetricFor(t MetricType) Metric {
	if t == MetricWeight {
		return weightMetric{}
	}
	return amountMetric{}
}
