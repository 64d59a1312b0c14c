// Package generating produz vendas e metas sintéticas para o dashboard
package generating

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/vfg2006/sales-bi-api/internal/domain"
	"github.com/vfg2006/sales-bi-api/pkg/log"
	"github.com/vfg2006/sales-bi-api/pkg/utils"
)

const (
	// MaxRecordsPerMonth limita o laço de geração de vendas
	MaxRecordsPerMonth = 5000

	minQuantity        = 10
	maxQuantity        = 100
	minWeightPerUnit   = 0.5
	weightPerUnitRange = 2.0

	minSalespersonVariance   = 0.8
	salespersonVarianceRange = 0.4

	DefaultMonthlyVariance = 0.1
	DefaultTargetRatio     = 1.3
)

// Options controla a montagem do dataset completo
type Options struct {
	Periods         []domain.GenerationPeriod
	MonthlyVariance float64
	TargetRatio     float64
}

// Generator não é seguro para uso concorrente: o *rand.Rand é compartilhado
type Generator struct {
	catalog *Catalog
	rng     *rand.Rand
	options Options
}

// NewGenerator cria um gerador. Um rng nil usa uma semente aleatória.
func NewGenerator(catalog *Catalog, rng *rand.Rand, options Options) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if options.MonthlyVariance < 0 {
		options.MonthlyVariance = 0
	}
	if options.TargetRatio <= 0 {
		options.TargetRatio = DefaultTargetRatio
	}

	return &Generator{
		catalog: catalog,
		rng:     rng,
		options: options,
	}
}

// NewSeededGenerator cria um gerador determinístico
func NewSeededGenerator(catalog *Catalog, seed uint64, options Options) *Generator {
	return NewGenerator(catalog, rand.New(rand.NewPCG(seed, seed)), options)
}

// GenerateActual sorteia vendas até a soma atingir targetTotal ou o limite de
// registros. O total realizado normalmente ultrapassa targetTotal.
func (g *Generator) GenerateActual(year, month int, targetTotal float64) []domain.SalesRecord {
	records := []domain.SalesRecord{}
	if targetTotal <= 0 || len(g.catalog.Customers) == 0 || len(g.catalog.Products) == 0 {
		return records
	}

	ym := domain.NewYearMonth(year, month).String()
	current := 0.0

	for current < targetTotal && len(records) < MaxRecordsPerMonth {
		sp := g.catalog.Salespersons[g.rng.IntN(len(g.catalog.Salespersons))]
		customers := g.catalog.CustomersOf(sp.ID)
		if len(customers) == 0 {
			continue
		}
		customer := customers[g.rng.IntN(len(customers))]
		product := g.catalog.Products[g.rng.IntN(len(g.catalog.Products))]

		quantity := minQuantity + g.rng.IntN(maxQuantity-minQuantity+1)
		amount := float64(quantity) * product.UnitPrice
		weight := utils.RoundTo(float64(quantity) * (minWeightPerUnit + g.rng.Float64()*weightPerUnitRange), 2)

		records = append(records, domain.SalesRecord{
			YearMonth:       ym,
			Team:            sp.Team,
			SalespersonName: sp.Name,
			CustomerCode:    customer.Code,
			CustomerName:    customer.Name,
			ItemCode:        product.Code,
			ItemName:        product.Name,
			Amount:          amount,
			Weight:          weight,
		})
		current += amount
	}

	return records
}

// GenerateTarget divide totalTarget igualmente entre vendedores, aplica uma
// variação por vendedor e reparte o valor entre os clientes dele
func (g *Generator) GenerateTarget(year, month int, totalTarget float64) []domain.TargetRecord {
	records := make([]domain.TargetRecord, 0, len(g.catalog.Customers))
	if len(g.catalog.Salespersons) == 0 {
		return records
	}

	ym := domain.NewYearMonth(year, month).String()
	perSalesperson := totalTarget / float64(len(g.catalog.Salespersons))

	for _, sp := range g.catalog.Salespersons {
		variance := minSalespersonVariance + g.rng.Float64()*salespersonVarianceRange
		customers := g.catalog.CustomersOf(sp.ID)
		if len(customers) == 0 {
			continue
		}

		perCustomer := math.Round(perSalesperson * variance / float64(len(customers)))
		for _, customer := range customers {
			records = append(records, domain.TargetRecord{
				YearMonth:       ym,
				Team:            sp.Team,
				SalespersonName: sp.Name,
				CustomerCode:    customer.Code,
				CustomerName:    customer.Name,
				TargetAmount:    perCustomer,
			})
		}
	}

	return records
}

// GenerateFullDataset monta um dataset único com todos os períodos configurados
func (g *Generator) GenerateFullDataset() *domain.Dataset {
	dataset := &domain.Dataset{
		Source:      domain.DatasetSourceGenerated,
		Actual:      []domain.SalesRecord{},
		Target:      []domain.TargetRecord{},
		GeneratedAt: time.Now(),
	}

	for _, period := range g.options.Periods {
		for _, ym := range period.Months() {
			band := 1 - g.options.MonthlyVariance + g.rng.Float64()*2*g.options.MonthlyVariance
			monthTotal := period.AverageMonthlyTotal * band

			dataset.Actual = append(dataset.Actual, g.GenerateActual(ym.Year, ym.Month, monthTotal)...)
			dataset.Target = append(dataset.Target, g.GenerateTarget(ym.Year, ym.Month, monthTotal*g.options.TargetRatio)...)
		}
	}

	log.L.WithFields(log.Fields{
		"periods":     len(g.options.Periods),
		"actual_rows": len(dataset.Actual),
		"target_rows": len(dataset.Target),
	}).Info("generator: dataset sintético gerado")

	return dataset
}
