package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// GenerationPeriod descreve um intervalo de meses de um ano com o total
// mensal médio a ser gerado
type GenerationPeriod struct {
	Year                int
	StartMonth          int
	EndMonth            int
	AverageMonthlyTotal float64
}

// ParseGenerationPeriod lê o formato "YYYY:inicio-fim:media" (ex: 2025:1-12:8000000000)
func ParseGenerationPeriod(s string) (GenerationPeriod, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return GenerationPeriod{}, fmt.Errorf("período de geração inválido: %q", s)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return GenerationPeriod{}, fmt.Errorf("ano inválido em %q: %w", s, err)
	}

	months := strings.Split(parts[1], "-")
	if len(months) != 2 {
		return GenerationPeriod{}, fmt.Errorf("intervalo de meses inválido em %q", s)
	}
	start, err := strconv.Atoi(months[0])
	if err != nil {
		return GenerationPeriod{}, fmt.Errorf("mês inicial inválido em %q: %w", s, err)
	}
	end, err := strconv.Atoi(months[1])
	if err != nil {
		return GenerationPeriod{}, fmt.Errorf("mês final inválido em %q: %w", s, err)
	}
	if start < 1 || end > 12 || start > end {
		return GenerationPeriod{}, fmt.Errorf("intervalo de meses fora de 1-12 em %q", s)
	}

	average, err := strconv.ParseFloat(parts[2], 64)
	if err != nil || average < 0 {
		return GenerationPeriod{}, fmt.Errorf("total médio inválido em %q", s)
	}

	return GenerationPeriod{
		Year:                year,
		StartMonth:          start,
		EndMonth:            end,
		AverageMonthlyTotal: average,
	}, nil
}

// Months retorna os meses cobertos pelo período
func (p GenerationPeriod) Months() []YearMonth {
	months := make([]YearMonth, 0, p.EndMonth-p.StartMonth+1)
	for m := p.StartMonth; m <= p.EndMonth; m++ {
		months = append(months, NewYearMonth(p.Year, m))
	}
	return months
}
