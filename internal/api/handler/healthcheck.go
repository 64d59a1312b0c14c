package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/sales-bi-api/internal/usecases/loading"
)

// HealthcheckHandler responde 200 mesmo sem dataset carregado; o campo
// dataset_id vazio indica que o dashboard ainda não tem dados
func HealthcheckHandler(loader loading.Loader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := map[string]any{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		}

		if info, err := loader.Current(); err == nil {
			response["dataset_id"] = info.ID
			response["dataset_source"] = info.Source
		} else {
			response["dataset_id"] = ""
		}

		writeJSON(w, http.StatusOK, response)
	})
}
