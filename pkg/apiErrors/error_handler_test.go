package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantStatus int
	}{
		{name: "Validação", code: ErrInvalidRequest, wantStatus: http.StatusBadRequest},
		{name: "Upload grande", code: ErrPayloadTooLarge, wantStatus: http.StatusRequestEntityTooLarge},
		{name: "Dataset ausente", code: ErrDatasetNotLoaded, wantStatus: http.StatusNotFound},
		{name: "Já em andamento", code: ErrConflict, wantStatus: http.StatusConflict},
		{name: "Código desconhecido", code: "XXX_999", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "mensagem", map[string]string{"campo": "level"})

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
		})
	}
}

func TestFromError(t *testing.T) {
	assert.Equal(t, ErrInternalServer, FromError(nil, ErrInvalidFormat).Code)

	apiErr := FromError(errors.New("coluna ausente"), ErrInvalidFormat)
	assert.Equal(t, ErrInvalidFormat, apiErr.Code)
	assert.Equal(t, "coluna ausente", apiErr.Message)
}
