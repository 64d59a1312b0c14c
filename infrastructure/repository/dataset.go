package repository

import (
	"sync"
	"time"

	"github.com/vfg2006/sales-bi-api/internal/domain"
	"github.com/vfg2006/sales-bi-api/pkg/utils"
)

// DatasetRepository guarda o dataset corrente em memória. A troca do dataset
// é atômica: quem já leu o ponteiro continua com a versão anterior.
type DatasetRepository interface {
	Current() (*domain.Dataset, error)
	Replace(dataset *domain.Dataset) error
	ReplaceActual(records []domain.SalesRecord, source string) (*domain.Dataset, error)
	ReplaceTarget(records []domain.TargetRecord, source string) (*domain.Dataset, error)
}

type datasetRepository struct {
	mu      sync.RWMutex
	current *domain.Dataset
}

func NewDatasetRepository() DatasetRepository {
	return &datasetRepository{}
}

// Current retorna nil quando nenhum dataset foi carregado
func (r *datasetRepository) Current() (*domain.Dataset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.current, nil
}

func (r *datasetRepository) Replace(dataset *domain.Dataset) error {
	_, err := r.swap(func(*domain.Dataset) *domain.Dataset { return dataset })
	return err
}

// ReplaceActual troca apenas as vendas, mantendo as metas do dataset atual
func (r *datasetRepository) ReplaceActual(records []domain.SalesRecord, source string) (*domain.Dataset, error) {
	return r.swap(func(current *domain.Dataset) *domain.Dataset {
		dataset := &domain.Dataset{Source: source, Actual: records}
		if current != nil {
			dataset.Target = current.Target
		}
		return dataset
	})
}

// ReplaceTarget troca apenas as metas, mantendo as vendas do dataset atual
func (r *datasetRepository) ReplaceTarget(records []domain.TargetRecord, source string) (*domain.Dataset, error) {
	return r.swap(func(current *domain.Dataset) *domain.Dataset {
		dataset := &domain.Dataset{Source: source, Target: records}
		if current != nil {
			dataset.Actual = current.Actual
		}
		return dataset
	})
}

// swap lê o dataset atual e publica o próximo sob o mesmo lock de escrita
func (r *datasetRepository) swap(next func(current *domain.Dataset) *domain.Dataset) (*domain.Dataset, error) {
	id, err := utils.GenerateDatasetID()
	if err != nil {
		return nil, err
	}
	now := time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	dataset := next(r.current)
	if dataset.ID == "" {
		dataset.ID = id
	}
	if dataset.GeneratedAt.IsZero() {
		dataset.GeneratedAt = now
	}
	r.current = dataset

	return dataset, nil
}
