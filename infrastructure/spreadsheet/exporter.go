package spreadsheet

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/sales-bi-api/internal/domain"
)

var sheetNames = map[domain.Level]string{
	domain.LevelTeam:        "팀별",
	domain.LevelSalesperson: "영업사원별",
	domain.LevelCustomer:    "거래처별",
	domain.LevelItem:        "품목별",
}

// Exporter grava as linhas do drill-down e os registros brutos
type Exporter struct{}

func NewExporter() *Exporter {
	return &Exporter{}
}

// ExportDrillDown monta um xlsx com uma linha por grupo. Valores monetários
// (ou de peso) são convertidos para a unidade de exibição; taxas saem com uma casa.
func (e *Exporter) ExportDrillDown(rows []domain.AggregateRow, level domain.Level, metric domain.MetricType, unit domain.DisplayUnit) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeDrillDownSheet(f, rows, level, metric, unit); err != nil {
		_ = f.Close()
		return nil, err
	}

	return f, nil
}

func writeDrillDownSheet(f *excelize.File, rows []domain.AggregateRow, level domain.Level, metric domain.MetricType, unit domain.DisplayUnit) error {
	sheetName, ok := sheetNames[level]
	if !ok {
		sheetName = string(level)
	}
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return errors.Wrap(err, "spreadsheet: falha ao nomear a aba")
	}

	valueHeader := func(label string) string {
		return fmt.Sprintf("%s(%s)", label, unit.Label)
	}
	headers := []string{
		"코드", "이름",
		valueHeader("실적"), valueHeader("목표"), "달성률(%)", "진도율 대비(%p)",
		valueHeader("전년 동월"), "전년 대비(%)",
		valueHeader("전월"), "전월 대비(%)",
		valueHeader("누적 실적"), valueHeader("누적 목표"), "누적 달성률(%)",
		valueHeader("예상 마감"), "예상 달성률(%)",
		"중량(KG)",
	}

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return errors.Wrap(err, "spreadsheet: coordenada de cabeçalho inválida")
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return errors.Wrapf(err, "spreadsheet: falha ao gravar cabeçalho %s", cell)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return errors.Wrap(err, "spreadsheet: falha ao criar estilo do cabeçalho")
	}
	if err := f.SetRowStyle(sheetName, 1, 1, headerStyle); err != nil {
		return errors.Wrap(err, "spreadsheet: falha ao aplicar estilo do cabeçalho")
	}

	for i, r := range rows {
		values := []interface{}{
			r.ID, r.Name,
			unit.Convert(metric, r.Actual), unit.Convert(metric, r.Target), roundRate(r.Achievement), roundRate(r.ProgressGap),
			unit.Convert(metric, r.LastYear), roundRate(r.YoY),
			unit.Convert(metric, r.LastMonth), roundRate(r.MoM),
			unit.Convert(metric, r.CumulativeActual), unit.Convert(metric, r.CumulativeTarget), roundRate(r.CumulativeAchievement),
			unit.Convert(metric, r.Forecast), roundRate(r.ForecastAchievement),
			r.Weight,
		}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return errors.Wrap(err, "spreadsheet: coordenada de linha inválida")
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return errors.Wrapf(err, "spreadsheet: falha ao gravar %s", cell)
			}
		}
	}

	if err := f.SetColWidth(sheetName, "A", "B", 18); err != nil {
		return errors.Wrap(err, "spreadsheet: falha ao ajustar largura das colunas")
	}
	if err := f.SetColWidth(sheetName, "C", "P", 14); err != nil {
		return errors.Wrap(err, "spreadsheet: falha ao ajustar largura das colunas")
	}

	return nil
}

// WriteActualCSV grava as vendas em csv UTF-8 com BOM, no layout de importação
func (e *Exporter) WriteActualCSV(w io.Writer, records []domain.SalesRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.YearMonth, r.Team, r.SalespersonName, r.CustomerCode, r.CustomerName,
			r.ItemCode, r.ItemName, formatNumber(r.Amount), formatNumber(r.Weight),
		})
	}
	return writeCSV(w, ActualHeaders, rows)
}

// WriteTargetCSV grava as metas em csv UTF-8 com BOM
func (e *Exporter) WriteTargetCSV(w io.Writer, records []domain.TargetRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.YearMonth, r.Team, r.SalespersonName, r.CustomerCode, r.CustomerName,
			formatNumber(r.TargetAmount),
		})
	}
	return writeCSV(w, TargetHeaders, rows)
}

func writeCSV(w io.Writer, headers []string, rows [][]string) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return errors.Wrap(err, "spreadsheet: falha ao gravar BOM")
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(headers); err != nil {
		return errors.Wrap(err, "spreadsheet: falha ao gravar cabeçalho")
	}
	if err := writer.WriteAll(rows); err != nil {
		return errors.Wrap(err, "spreadsheet: falha ao gravar linhas")
	}

	return nil
}

func formatNumber(v float64) string {
	return decimal.NewFromFloat(v).String()
}

func roundRate(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(1).Float64()
	return f
}
