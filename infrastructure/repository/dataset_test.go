package repository

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/sales-bi-api/internal/domain"
)

func TestDatasetRepository_Replace(t *testing.T) {
	repo := NewDatasetRepository()

	current, err := repo.Current()
	require.NoError(t, err)
	assert.Nil(t, current)

	dataset := &domain.Dataset{Source: "generated"}
	require.NoError(t, repo.Replace(dataset))

	current, err = repo.Current()
	require.NoError(t, err)
	assert.Same(t, dataset, current)
	assert.NotEmpty(t, current.ID)
	assert.False(t, current.GeneratedAt.IsZero())
}

func TestDatasetRepository_ReplaceHalves(t *testing.T) {
	repo := NewDatasetRepository()
	actual := []domain.SalesRecord{{YearMonth: "202602", Team: "FD팀", Amount: 100}}
	target := []domain.TargetRecord{{YearMonth: "202602", Team: "FD팀", TargetAmount: 200}}

	first, err := repo.ReplaceActual(actual, "vendas.csv")
	require.NoError(t, err)
	assert.Empty(t, first.Target)

	second, err := repo.ReplaceTarget(target, "metas.csv")
	require.NoError(t, err)
	assert.Equal(t, actual, second.Actual)
	assert.Equal(t, target, second.Target)
	assert.Equal(t, "metas.csv", second.Source)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestDatasetRepository_ConcurrentImports(t *testing.T) {
	repo := NewDatasetRepository()

	for i := 0; i < 500; i++ {
		require.NoError(t, repo.Replace(&domain.Dataset{}))

		actual := []domain.SalesRecord{{YearMonth: "202602", Amount: float64(i)}}
		target := []domain.TargetRecord{{YearMonth: "202602", TargetAmount: float64(i)}}

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := repo.ReplaceActual(actual, "vendas.csv")
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := repo.ReplaceTarget(target, "metas.csv")
			assert.NoError(t, err)
		}()
		wg.Wait()

		// nenhuma das duas importações pode ser perdida
		current, err := repo.Current()
		require.NoError(t, err)
		require.Equal(t, actual, current.Actual, "iteração %d", i)
		require.Equal(t, target, current.Target, "iteração %d", i)
	}
}
