package loading

import (
	"fmt"
	"io"
	"sync"

	"github.com/vfg2006/sales-bi-api/infrastructure/repository"
	"github.com/vfg2006/sales-bi-api/infrastructure/spreadsheet"
	"github.com/vfg2006/sales-bi-api/internal/domain"
	"github.com/vfg2006/sales-bi-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-bi-api/internal/usecases/generating"
	"github.com/vfg2006/sales-bi-api/pkg/log"
)

// Loader controla a origem do dataset usado pelo dashboard
type Loader interface {
	// Current retorna o resumo do dataset carregado
	Current() (*domain.DatasetInfo, error)

	// Generate substitui o dataset por um novo conjunto sintético
	Generate() (*domain.DatasetInfo, error)

	// Import substitui as vendas ou as metas a partir de uma planilha
	Import(kind spreadsheet.Kind, r io.Reader, filename string) (*domain.DatasetInfo, error)

	// Export grava os registros brutos em csv no layout de importação
	Export(kind spreadsheet.Kind, w io.Writer) error
}

type Service struct {
	datasetRepository repository.DatasetRepository
	generator         *generating.Generator
	generatorMutex    sync.Mutex
	parser            *spreadsheet.Parser
	exporter          *spreadsheet.Exporter
}

func NewService(
	datasetRepo repository.DatasetRepository,
	generator *generating.Generator,
	parser *spreadsheet.Parser,
	exporter *spreadsheet.Exporter,
) *Service {
	return &Service{
		datasetRepository: datasetRepo,
		generator:         generator,
		parser:            parser,
		exporter:          exporter,
	}
}

func (s *Service) Current() (*domain.DatasetInfo, error) {
	dataset, err := s.datasetRepository.Current()
	if err != nil {
		return nil, err
	}
	if dataset == nil {
		return nil, analyzing.ErrDatasetNotLoaded
	}

	info := dataset.Info()
	return &info, nil
}

// Generate usa o gerador compartilhado; o rand dele não é seguro para uso concorrente
func (s *Service) Generate() (*domain.DatasetInfo, error) {
	s.generatorMutex.Lock()
	dataset := s.generator.GenerateFullDataset()
	s.generatorMutex.Unlock()

	if err := s.datasetRepository.Replace(dataset); err != nil {
		return nil, fmt.Errorf("erro ao substituir dataset: %w", err)
	}

	log.L.WithFields(log.Fields{
		"dataset_id":  dataset.ID,
		"actual_rows": len(dataset.Actual),
		"target_rows": len(dataset.Target),
	}).Info("loading: dataset sintético gerado")

	info := dataset.Info()
	return &info, nil
}

func (s *Service) Import(kind spreadsheet.Kind, r io.Reader, filename string) (*domain.DatasetInfo, error) {
	var (
		dataset *domain.Dataset
		rows    int
	)

	switch kind {
	case spreadsheet.KindTarget:
		records, err := s.parser.ParseTarget(r, filename)
		if err != nil {
			return nil, err
		}
		rows = len(records)
		if dataset, err = s.datasetRepository.ReplaceTarget(records, domain.DatasetSourceImported); err != nil {
			return nil, fmt.Errorf("erro ao substituir metas: %w", err)
		}
	default:
		records, err := s.parser.ParseActual(r, filename)
		if err != nil {
			return nil, err
		}
		rows = len(records)
		if dataset, err = s.datasetRepository.ReplaceActual(records, domain.DatasetSourceImported); err != nil {
			return nil, fmt.Errorf("erro ao substituir vendas: %w", err)
		}
	}

	log.L.WithFields(log.Fields{
		"dataset_id": dataset.ID,
		"kind":       kind,
		"file":       filename,
		"rows":       rows,
	}).Info("loading: planilha importada")

	info := dataset.Info()
	return &info, nil
}

func (s *Service) Export(kind spreadsheet.Kind, w io.Writer) error {
	dataset, err := s.datasetRepository.Current()
	if err != nil {
		return err
	}
	if dataset == nil {
		return analyzing.ErrDatasetNotLoaded
	}

	if kind == spreadsheet.KindTarget {
		return s.exporter.WriteTargetCSV(w, dataset.Target)
	}
	return s.exporter.WriteActualCSV(w, dataset.Actual)
}
