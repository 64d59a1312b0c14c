package domain

import (
	"github.com/shopspring/decimal"
)

// DisplayUnit define como um valor é reduzido para exibição
type DisplayUnit struct {
	Key     string  `json:"key"`
	Label   string  `json:"label"`
	Divisor float64 `json:"divisor"`
	Suffix  string  `json:"suffix"`
}

var CurrencyUnits = []DisplayUnit{
	{Key: "100M", Label: "억원", Divisor: 100000000, Suffix: "억"},
	{Key: "1M", Label: "백만원", Divisor: 1000000, Suffix: "백만"},
	{Key: "1K", Label: "천원", Divisor: 1000, Suffix: "천"},
	{Key: "1", Label: "원", Divisor: 1, Suffix: "원"},
}

var WeightUnits = []DisplayUnit{
	{Key: "TON", Label: "톤(Ton)", Divisor: 1000, Suffix: "톤"},
	{Key: "KG", Label: "킬로그램(KG)", Divisor: 1, Suffix: "kg"},
	{Key: "BOX", Label: "박스(Box)", Divisor: 10, Suffix: "box"},
	{Key: "EA", Label: "개(EA)", Divisor: 1, Suffix: "ea"},
}

// UnitFor procura a unidade pela chave; sem correspondência usa o padrão da métrica
// (백만원 para valores, KG para peso)
func UnitFor(metric MetricType, key string) DisplayUnit {
	units, fallback := CurrencyUnits, CurrencyUnits[1]
	if metric == MetricWeight {
		units, fallback = WeightUnits, WeightUnits[1]
	}
	for _, u := range units {
		if u.Key == key {
			return u
		}
	}
	return fallback
}

// Convert divide o valor pelo divisor da unidade, arredondando para as casas
// usadas no dashboard: inteiro a partir de 10, senão 1 casa (2 para peso)
func (u DisplayUnit) Convert(metric MetricType, value float64) float64 {
	if u.Divisor == 0 {
		return value
	}
	converted := decimal.NewFromFloat(value).Div(decimal.NewFromFloat(u.Divisor))

	places := int32(1)
	if metric == MetricWeight {
		places = 2
	}
	if converted.Abs().GreaterThanOrEqual(decimal.NewFromInt(10)) || u.Divisor == 1 && metric == MetricAmount {
		places = 0
	}

	f, _ := converted.Round(places).Float64()
	return f
}
