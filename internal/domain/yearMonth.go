package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// YearMonth identifica um período de apuração
type YearMonth struct {
	Year  int
	Month int
}

// NewYearMonth normaliza ano e mês (ex: mês 13 vira janeiro do ano seguinte)
func NewYearMonth(year, month int) YearMonth {
	t := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return YearMonth{Year: t.Year(), Month: int(t.Month())}
}

// ParseYearMonth aceita os formatos YYYYMM, YYYY-MM e MM-YYYY
func ParseYearMonth(s string) (YearMonth, error) {
	s = strings.TrimSpace(s)

	var year, month int
	var err error
	switch {
	case len(s) == 6 && !strings.Contains(s, "-"):
		year, err = strconv.Atoi(s[:4])
		if err == nil {
			month, err = strconv.Atoi(s[4:])
		}
	case len(s) == 7 && s[4] == '-':
		year, err = strconv.Atoi(s[:4])
		if err == nil {
			month, err = strconv.Atoi(s[5:])
		}
	case len(s) == 7 && s[2] == '-':
		month, err = strconv.Atoi(s[:2])
		if err == nil {
			year, err = strconv.Atoi(s[3:])
		}
	default:
		return YearMonth{}, fmt.Errorf("período inválido: %q", s)
	}
	if err != nil {
		return YearMonth{}, fmt.Errorf("período inválido: %q: %w", s, err)
	}
	if month < 1 || month > 12 {
		return YearMonth{}, fmt.Errorf("mês fora do intervalo em %q", s)
	}

	return YearMonth{Year: year, Month: month}, nil
}

// String retorna o período no formato YYYYMM
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d%02d", ym.Year, ym.Month)
}

// IsZero indica se o período não foi informado
func (ym YearMonth) IsZero() bool {
	return ym.Year == 0 && ym.Month == 0
}

// AddMonths desloca o período em n meses
func (ym YearMonth) AddMonths(n int) YearMonth {
	return NewYearMonth(ym.Year, ym.Month+n)
}

// PreviousMonth retorna o mês anterior
func (ym YearMonth) PreviousMonth() YearMonth {
	return ym.AddMonths(-1)
}

// SameMonthLastYear retorna o mesmo mês do ano anterior
func (ym YearMonth) SameMonthLastYear() YearMonth {
	return ym.AddMonths(-12)
}

// DaysInMonth retorna a quantidade de dias corridos do mês
func (ym YearMonth) DaysInMonth() int {
	return time.Date(ym.Year, time.Month(ym.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Weekdays conta os dias úteis (segunda a sexta) do mês, sem feriados
func (ym YearMonth) Weekdays() int {
	count := 0
	for day := 1; day <= ym.DaysInMonth(); day++ {
		switch time.Date(ym.Year, time.Month(ym.Month), day, 0, 0, 0, 0, time.UTC).Weekday() {
		case time.Saturday, time.Sunday:
		default:
			count++
		}
	}
	return count
}

// SortedKeys ordena as chaves de um conjunto (ex: períodos YYYYMM)
func SortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
