package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/vfg2006/sales-bi-api/infrastructure/spreadsheet"
	"github.com/vfg2006/sales-bi-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-bi-api/internal/usecases/loading"
	"github.com/vfg2006/sales-bi-api/pkg/apiErrors"
	"github.com/vfg2006/sales-bi-api/pkg/log"
)

func GetCurrentDataset(loader loading.Loader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info, err := loader.Current()
		if err != nil {
			writeServiceError(w, log.ForContext(r.Context()), err, "Erro ao buscar dataset")
			return
		}

		writeJSON(w, http.StatusOK, info)
	}
}

// GenerateDataset descarta o dataset atual e gera um novo conjunto sintético
func GenerateDataset(loader loading.Loader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		info, err := loader.Generate()
		if err != nil {
			writeServiceError(w, logger, err, "Erro ao gerar dataset")
			return
		}

		logger.WithField("dataset_id", info.ID).Info("handler: dataset regenerado")
		writeJSON(w, http.StatusCreated, info)
	}
}

// ImportDataset recebe uma planilha (xlsx ou csv) no campo "file" e troca
// as vendas ou as metas do dataset conforme o parâmetro kind
func ImportDataset(loader loading.Loader, maxUploadBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		kind, ok := spreadsheet.ParseKind(r.URL.Query().Get("kind"))
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo inválido. Valores aceitos: actual, target", nil)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge, fmt.Sprintf("Arquivo maior que %d bytes", maxUploadBytes), nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formulário multipart inválido", err.Error())
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo file obrigatório", nil)
			return
		}
		defer file.Close()

		info, err := loader.Import(kind, file, header.Filename)
		if err != nil {
			writeServiceError(w, logger, err, "Erro ao importar planilha")
			return
		}

		writeJSON(w, http.StatusOK, info)
	}
}

// ExportDataset devolve os registros brutos em csv no mesmo layout da importação
func ExportDataset(loader loading.Loader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		kind, ok := spreadsheet.ParseKind(r.URL.Query().Get("kind"))
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo inválido. Valores aceitos: actual, target", nil)
			return
		}

		// Confere antes de escrever cabeçalhos, senão o erro não sai como JSON
		info, err := loader.Current()
		if err != nil {
			writeServiceError(w, logger, err, "Erro ao buscar dataset")
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s_%s.csv"`, kind, info.ID))

		if err := loader.Export(kind, w); err != nil {
			logger.WithError(err).Error("handler: erro ao exportar dataset")
		}
	}
}

// GetAvailablePeriods lista anos e meses presentes no dataset
func GetAvailablePeriods(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		periods, err := service.GetAvailablePeriods()
		if err != nil {
			writeServiceError(w, log.ForContext(r.Context()), err, "Erro ao buscar períodos disponíveis")
			return
		}

		writeJSON(w, http.StatusOK, periods)
	}
}
