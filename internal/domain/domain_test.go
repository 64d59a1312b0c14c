package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYearMonth(t *testing.T) {
	tests := []struct {
		input    string
		expected YearMonth
		wantErr  bool
	}{
		{input: "202602", expected: YearMonth{Year: 2026, Month: 2}},
		{input: "2026-02", expected: YearMonth{Year: 2026, Month: 2}},
		{input: "02-2026", expected: YearMonth{Year: 2026, Month: 2}},
		{input: " 202512 ", expected: YearMonth{Year: 2025, Month: 12}},
		{input: "202613", wantErr: true},
		{input: "2026/02", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseYearMonth(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestYearMonth_Navigation(t *testing.T) {
	ym := NewYearMonth(2026, 1)

	assert.Equal(t, "202601", ym.String())
	assert.Equal(t, "202512", ym.PreviousMonth().String())
	assert.Equal(t, "202501", ym.SameMonthLastYear().String())
	assert.Equal(t, "202603", ym.AddMonths(2).String())
	assert.Equal(t, 31, ym.DaysInMonth())
	assert.Equal(t, 28, NewYearMonth(2026, 2).DaysInMonth())
	// fevereiro de 2026 começa num domingo: 20 dias de semana
	assert.Equal(t, 20, NewYearMonth(2026, 2).Weekdays())
}

func TestSettings(t *testing.T) {
	tests := []struct {
		name             string
		settings         Settings
		expectedTotal    int
		expectedProgress float64
		expectedForecast float64
	}{
		{
			name: "Mês configurado",
			settings: Settings{
				Month:               NewYearMonth(2026, 2),
				BusinessDaysByMonth: map[string]int{"202602": 17},
				CurrentBusinessDay:  9,
			},
			expectedTotal:    17,
			expectedProgress: 9.0 / 17 * 100,
			expectedForecast: 1000.0 / 9 * 17,
		},
		{
			name: "Mês sem configuração usa dias de semana",
			settings: Settings{
				Month:               NewYearMonth(2026, 2),
				BusinessDaysByMonth: map[string]int{"202601": 21},
				CurrentBusinessDay:  10,
			},
			expectedTotal:    20,
			expectedProgress: 50,
			expectedForecast: 2000,
		},
		{
			name: "Dia útil zero",
			settings: Settings{
				Month:              NewYearMonth(2026, 2),
				CurrentBusinessDay: 0,
			},
			expectedTotal:    20,
			expectedProgress: 0,
			expectedForecast: 0,
		},
		{
			name:             "Sem mês selecionado",
			settings:         Settings{CurrentBusinessDay: 5},
			expectedTotal:    0,
			expectedProgress: 0,
			expectedForecast: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedTotal, tt.settings.TotalBusinessDays())
			assert.InDelta(t, tt.expectedProgress, tt.settings.ProgressRate(), 1e-9)
			assert.InDelta(t, tt.expectedForecast, tt.settings.Forecast(1000), 1e-9)
		})
	}
}

func TestSettings_CloneIsIndependent(t *testing.T) {
	original := Settings{BusinessDaysByMonth: map[string]int{"202602": 17}}
	clone := original.Clone()
	clone.BusinessDaysByMonth["202602"] = 1

	assert.Equal(t, 17, original.BusinessDaysByMonth["202602"])
}

func TestRateAndGrowth(t *testing.T) {
	assert.Equal(t, 0.0, Rate(100, 0))
	assert.Equal(t, 0.0, Rate(0, 0))
	assert.InDelta(t, 50, Rate(50, 100), 1e-9)
	assert.Equal(t, 0.0, Growth(100, 0))
	assert.InDelta(t, -25, Growth(75, 100), 1e-9)
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, LevelRoot, level)

	level, err = ParseLevel("customer")
	require.NoError(t, err)
	next, ok := level.Next()
	assert.True(t, ok)
	assert.Equal(t, LevelItem, next)

	_, ok = LevelItem.Next()
	assert.False(t, ok)

	_, err = ParseLevel("region")
	assert.Error(t, err)
}

func TestDisplayUnit_Convert(t *testing.T) {
	tests := []struct {
		name     string
		metric   MetricType
		unit     string
		value    float64
		expected float64
	}{
		{name: "억 com uma casa", metric: MetricAmount, unit: "100M", value: 920000000, expected: 9.2},
		{name: "억 arredonda acima de 10", metric: MetricAmount, unit: "100M", value: 12345000000, expected: 123},
		{name: "백만", metric: MetricAmount, unit: "1M", value: 8_500_000, expected: 8.5},
		{name: "원 sem casas", metric: MetricAmount, unit: "1", value: 1234.56, expected: 1235},
		{name: "Unidade desconhecida usa 백만", metric: MetricAmount, unit: "X", value: 2_000_000, expected: 2},
		{name: "Toneladas", metric: MetricWeight, unit: "TON", value: 1234, expected: 1.23},
		{name: "Caixas", metric: MetricWeight, unit: "BOX", value: 55, expected: 5.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UnitFor(tt.metric, tt.unit).Convert(tt.metric, tt.value))
		})
	}
}

func TestParseGenerationPeriod(t *testing.T) {
	period, err := ParseGenerationPeriod("2025:3-5:8000000000")
	require.NoError(t, err)
	assert.Equal(t, GenerationPeriod{Year: 2025, StartMonth: 3, EndMonth: 5, AverageMonthlyTotal: 8e9}, period)
	assert.Len(t, period.Months(), 3)

	for _, invalid := range []string{"2025:1-12", "2025:0-3:100", "2025:5-3:100", "x:1-2:100", "2025:1-2:-5"} {
		_, err := ParseGenerationPeriod(invalid)
		assert.Error(t, err, invalid)
	}
}

func TestNewAvailablePeriods(t *testing.T) {
	periods := NewAvailablePeriods([]string{"202501", "202512", "202601", "202602"})

	assert.Equal(t, []string{"2025", "2026"}, periods.Years)
	assert.Equal(t, []string{"01", "02", "12"}, periods.Months)
}
