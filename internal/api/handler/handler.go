package handler

import (
	"errors"
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-bi-api/infrastructure/spreadsheet"
	"github.com/vfg2006/sales-bi-api/internal/domain"
	"github.com/vfg2006/sales-bi-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-bi-api/pkg/apiErrors"
	"github.com/vfg2006/sales-bi-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.L.WithError(err).Error("handler: erro ao enviar resposta")
	}
}

// queryScope lê level, id e metric da query string. level vazio é a raiz.
func queryScope(r *http.Request) (domain.Scope, domain.MetricType, error) {
	q := r.URL.Query()

	level, err := domain.ParseLevel(q.Get("level"))
	if err != nil {
		return domain.Scope{}, "", err
	}

	metric, err := domain.ParseMetricType(q.Get("metric"))
	if err != nil {
		return domain.Scope{}, "", err
	}

	if level == domain.LevelRoot {
		return domain.RootScope(), metric, nil
	}

	id := q.Get("id")
	if id == "" {
		return domain.Scope{}, "", fmt.Errorf("parâmetro id obrigatório para o nível %s", level)
	}

	return domain.Scope{Level: level, ID: id}, metric, nil
}

// queryTargetLevel lê o nível de destino do drill-down; sem valor usa o filho do escopo
func queryTargetLevel(r *http.Request, scope domain.Scope) (domain.Level, error) {
	raw := r.URL.Query().Get("target")
	if raw == "" {
		next, ok := scope.Level.Next()
		if !ok {
			return "", analyzing.ErrInvalidLevel
		}
		return next, nil
	}

	level, err := domain.ParseLevel(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", analyzing.ErrInvalidLevel, err)
	}
	return level, nil
}

// writeServiceError converte os erros dos casos de uso no formato da API
func writeServiceError(w http.ResponseWriter, logger log.Logger, err error, context string) {
	switch {
	case errors.Is(err, analyzing.ErrDatasetNotLoaded):
		apiErrors.WriteError(w, apiErrors.ErrDatasetNotLoaded, err.Error(), nil)
	case errors.Is(err, analyzing.ErrInvalidLevel), errors.Is(err, analyzing.ErrInvalidSettings):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	case errors.Is(err, spreadsheet.ErrUnsupportedFile),
		errors.Is(err, spreadsheet.ErrMissingColumn),
		errors.Is(err, spreadsheet.ErrEmptySheet):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	default:
		logger.WithError(err).Errorf("handler: %s", context)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, context, nil)
	}
}
