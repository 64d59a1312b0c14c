package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/sales-bi-api/internal/domain"
	"github.com/vfg2006/sales-bi-api/pkg/log"
)

var (
	ErrUnsupportedFile = errors.New("formato de arquivo não suportado (use .xlsx ou .csv)")
	ErrMissingColumn   = errors.New("coluna obrigatória ausente")
	ErrEmptySheet      = errors.New("planilha sem linhas de dados")
)

// Parser converte planilhas enviadas pelo usuário em registros do dataset
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// ParseActual lê uma planilha de vendas. Linhas sem nenhum valor são ignoradas;
// números ausentes ou inválidos viram zero.
func (p *Parser) ParseActual(r io.Reader, filename string) ([]domain.SalesRecord, error) {
	rows, err := readRows(r, filename)
	if err != nil {
		return nil, err
	}

	index, err := headerIndex(rows[0], KindActual)
	if err != nil {
		return nil, err
	}

	records := make([]domain.SalesRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		get := index.getter(row)
		records = append(records, domain.SalesRecord{
			YearMonth:       normalizeYearMonth(get(ColYearMonth)),
			Team:            get(ColTeam),
			SalespersonName: get(ColSalesperson),
			CustomerCode:    get(ColCustomerCode),
			CustomerName:    get(ColCustomerName),
			ItemCode:        get(ColItemCode),
			ItemName:        get(ColItemName),
			Amount:          parseNumber(get(ColAmount)),
			Weight:          parseNumber(get(ColWeight)),
		})
	}

	log.L.WithFields(log.Fields{
		"file": filename,
		"rows": len(records),
	}).Info("spreadsheet: planilha de vendas lida")

	return records, nil
}

// ParseTarget lê uma planilha de metas
func (p *Parser) ParseTarget(r io.Reader, filename string) ([]domain.TargetRecord, error) {
	rows, err := readRows(r, filename)
	if err != nil {
		return nil, err
	}

	index, err := headerIndex(rows[0], KindTarget)
	if err != nil {
		return nil, err
	}

	records := make([]domain.TargetRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		get := index.getter(row)
		records = append(records, domain.TargetRecord{
			YearMonth:       normalizeYearMonth(get(ColYearMonth)),
			Team:            get(ColTeam),
			SalespersonName: get(ColSalesperson),
			CustomerCode:    get(ColCustomerCode),
			CustomerName:    get(ColCustomerName),
			TargetAmount:    parseNumber(get(ColTargetAmount)),
		})
	}

	log.L.WithFields(log.Fields{
		"file": filename,
		"rows": len(records),
	}).Info("spreadsheet: planilha de metas lida")

	return records, nil
}

// readRows devolve todas as linhas da primeira aba (xlsx) ou do arquivo (csv).
// A primeira linha é o cabeçalho.
func readRows(r io.Reader, filename string) ([][]string, error) {
	var rows [][]string

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		f, err := excelize.OpenReader(r)
		if err != nil {
			return nil, errors.Wrap(err, "spreadsheet: falha ao abrir xlsx")
		}
		defer f.Close()

		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrEmptySheet
		}
		rows, err = f.GetRows(sheets[0])
		if err != nil {
			return nil, errors.Wrapf(err, "spreadsheet: falha ao ler a aba %s", sheets[0])
		}
	case ".csv":
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, errors.Wrap(err, "spreadsheet: falha ao ler csv")
		}
		reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte(utf8BOM))))
		reader.FieldsPerRecord = -1
		reader.TrimLeadingSpace = true
		rows, err = reader.ReadAll()
		if err != nil {
			return nil, errors.Wrap(err, "spreadsheet: csv inválido")
		}
	default:
		return nil, errors.Wrapf(ErrUnsupportedFile, "arquivo %q", filename)
	}

	if len(rows) < 2 {
		return nil, ErrEmptySheet
	}

	return rows, nil
}

type columnIndex map[string]int

// headerIndex localiza as colunas pelo cabeçalho, aceitando os aliases
func headerIndex(headers []string, kind Kind) (columnIndex, error) {
	index := make(columnIndex, len(headers))
	for i, h := range headers {
		col := canonicalHeader(h)
		if _, exists := index[col]; !exists {
			index[col] = i
		}
	}

	for _, col := range requiredColumns[kind] {
		if _, ok := index[col]; !ok {
			return nil, errors.Wrapf(ErrMissingColumn, "%s", col)
		}
	}

	return index, nil
}

func (c columnIndex) getter(row []string) func(string) string {
	return func(col string) string {
		i, ok := c[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
}

// parseNumber aceita separadores de milhar e sufixo de moeda; inválido vira zero
func parseNumber(raw string) float64 {
	s := strings.NewReplacer(",", "", "원", "", "₩", "", " ", "").Replace(raw)
	if s == "" || s == "-" {
		return 0
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}

	f, _ := d.Float64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0
	}
	return f
}

// normalizeYearMonth converte formatos como 2026-02 para YYYYMM; valores
// irreconhecíveis são mantidos como vieram
func normalizeYearMonth(raw string) string {
	ym, err := domain.ParseYearMonth(strings.TrimSuffix(raw, ".0"))
	if err != nil {
		return raw
	}
	return ym.String()
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
