package loading

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-bi-api/infrastructure/repository"
	"github.com/vfg2006/sales-bi-api/infrastructure/spreadsheet"
	"github.com/vfg2006/sales-bi-api/internal/domain"
	"github.com/vfg2006/sales-bi-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-bi-api/internal/usecases/generating"
)

func newTestService(t *testing.T) (*Service, repository.DatasetRepository) {
	t.Helper()

	repo := repository.NewDatasetRepository()
	generator := generating.NewSeededGenerator(generating.NewCatalog(2), 7, generating.Options{
		Periods: []domain.GenerationPeriod{
			{Year: 2026, StartMonth: 1, EndMonth: 2, AverageMonthlyTotal: 50_000_000},
		},
		MonthlyVariance: generating.DefaultMonthlyVariance,
		TargetRatio:     generating.DefaultTargetRatio,
	})

	return NewService(repo, generator, spreadsheet.NewParser(), spreadsheet.NewExporter()), repo
}

func TestService_CurrentWithoutDataset(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Current()
	assert.True(t, errors.Is(err, analyzing.ErrDatasetNotLoaded))

	err = service.Export(spreadsheet.KindActual, &bytes.Buffer{})
	assert.True(t, errors.Is(err, analyzing.ErrDatasetNotLoaded))
}

func TestService_Generate(t *testing.T) {
	service, repo := newTestService(t)

	info, err := service.Generate()
	require.NoError(t, err)

	assert.Equal(t, domain.DatasetSourceGenerated, info.Source)
	assert.NotEmpty(t, info.ID)
	assert.Equal(t, []string{"202601", "202602"}, info.Periods)
	assert.Greater(t, info.ActualRows, 0)

	current, err := repo.Current()
	require.NoError(t, err)
	assert.Equal(t, info.ID, current.ID)

	// uma nova geração troca o dataset inteiro
	again, err := service.Generate()
	require.NoError(t, err)
	assert.NotEqual(t, info.ID, again.ID)
}

func TestService_ImportKeepsOtherHalf(t *testing.T) {
	service, _ := newTestService(t)

	generated, err := service.Generate()
	require.NoError(t, err)

	input := strings.Join([]string{
		"년도월,영업팀,영업사원명,거래처코드,거래처명,품목코드,품목명,매출금액,중량(KG)",
		"202603,FD팀,김민수,SP001-C001,한국식품1,CH001,모짜렐라치즈1kg,1000,10",
	}, "\n")

	info, err := service.Import(spreadsheet.KindActual, strings.NewReader(input), "vendas.csv")
	require.NoError(t, err)

	assert.Equal(t, domain.DatasetSourceImported, info.Source)
	assert.Equal(t, 1, info.ActualRows)
	assert.Equal(t, generated.TargetRows, info.TargetRows)
	assert.Contains(t, info.Periods, "202603")
}

func TestService_ImportInvalidFileKeepsDataset(t *testing.T) {
	service, _ := newTestService(t)

	generated, err := service.Generate()
	require.NoError(t, err)

	_, err = service.Import(spreadsheet.KindTarget, strings.NewReader("년도월,영업팀\n202602,FD팀"), "metas.csv")
	assert.True(t, errors.Is(err, spreadsheet.ErrMissingColumn))

	current, err := service.Current()
	require.NoError(t, err)
	assert.Equal(t, generated.ID, current.ID)
}

func TestService_ExportTarget(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Generate()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, service.Export(spreadsheet.KindTarget, &buf))

	records, err := spreadsheet.NewParser().ParseTarget(&buf, "metas.csv")
	require.NoError(t, err)
	current, _ := service.Current()
	assert.Len(t, records, current.TargetRows)
}
