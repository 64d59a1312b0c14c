// Package spreadsheet lê e grava planilhas de vendas e metas (xlsx e csv)
package spreadsheet

import "strings"

const utf8BOM = "\ufeff"

const (
	ColYearMonth    = "년도월"
	ColTeam         = "영업팀"
	ColSalesperson  = "영업사원명"
	ColCustomerCode = "거래처코드"
	ColCustomerName = "거래처명"
	ColItemCode     = "품목코드"
	ColItemName     = "품목명"
	ColAmount       = "매출금액"
	ColWeight       = "중량(KG)"
	ColTargetAmount = "목표금액"
)

// Kind identifica qual metade do dataset a planilha carrega
type Kind string

const (
	KindActual Kind = "actual"
	KindTarget Kind = "target"
)

// ParseKind valida o tipo informado; vazio equivale a actual
func ParseKind(s string) (Kind, bool) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case "", KindActual:
		return KindActual, true
	case KindTarget:
		return KindTarget, true
	}
	return "", false
}

var ActualHeaders = []string{
	ColYearMonth, ColTeam, ColSalesperson, ColCustomerCode, ColCustomerName,
	ColItemCode, ColItemName, ColAmount, ColWeight,
}

var TargetHeaders = []string{
	ColYearMonth, ColTeam, ColSalesperson, ColCustomerCode, ColCustomerName, ColTargetAmount,
}

var requiredColumns = map[Kind][]string{
	KindActual: {ColYearMonth, ColTeam, ColSalesperson, ColCustomerName, ColItemName, ColAmount},
	KindTarget: {ColYearMonth, ColTeam, ColSalesperson, ColCustomerName, ColTargetAmount},
}

// aliases mapeia cabeçalhos alternativos (normalizados) para a coluna canônica
var aliases = map[string]string{
	"yearmonth":        ColYearMonth,
	"year_month":       ColYearMonth,
	"month":            ColYearMonth,
	"team":             ColTeam,
	"salesperson":      ColSalesperson,
	"salesperson_name": ColSalesperson,
	"customer_code":    ColCustomerCode,
	"customercode":     ColCustomerCode,
	"customer_name":    ColCustomerName,
	"customername":     ColCustomerName,
	"customer":         ColCustomerName,
	"item_code":        ColItemCode,
	"itemcode":         ColItemCode,
	"item_name":        ColItemName,
	"itemname":         ColItemName,
	"item":             ColItemName,
	"amount":           ColAmount,
	"sales_amount":     ColAmount,
	"weight":           ColWeight,
	"weight_kg":        ColWeight,
	"target":           ColTargetAmount,
	"target_amount":    ColTargetAmount,
	"targetamount":     ColTargetAmount,
}

// canonicalHeader normaliza um cabeçalho lido da planilha
func canonicalHeader(header string) string {
	h := strings.TrimSpace(strings.TrimPrefix(header, utf8BOM))
	for _, col := range ActualHeaders {
		if h == col {
			return col
		}
	}
	if h == ColTargetAmount {
		return h
	}
	if h == "중량" {
		return ColWeight
	}

	key := strings.ToLower(strings.ReplaceAll(h, " ", ""))
	if col, ok := aliases[key]; ok {
		return col
	}
	return h
}
