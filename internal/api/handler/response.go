package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/vfg2006/serp-tracker-api/internal/usecases/tracking"
	"github.com/vfg2006/serp-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/serp-tracker-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxBodyBytes limita o corpo das rotas que recebem snapshots inline
const maxBodyBytes = 10 << 20

func writeJSON(w http.ResponseWriter, logger log.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.WithError(err).Error("serp: failed to encode response")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, target any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	return json.NewDecoder(r.Body).Decode(target)
}

// handleAnalysisError converte os erros da análise nos códigos SERP_* da API
func handleAnalysisError(w http.ResponseWriter, logger log.Logger, err error) {
	var details map[string]any

	var analysisErr *tracking.AnalysisError
	if errors.As(err, &analysisErr) {
		details = map[string]any{
			"keyword": analysisErr.Keyword,
			"details": analysisErr.Details,
		}
	}

	switch {
	case errors.Is(err, tracking.ErrInvalidInput):
		apiErrors.WriteError(w, apiErrors.ErrInvalidAnalysisInput, "Entrada inválida para a análise", details)

	case errors.Is(err, tracking.ErrInsufficientData):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientData, "Snapshots insuficientes para a comparação", details)

	case errors.Is(err, tracking.ErrInconsistentOrdering):
		apiErrors.WriteError(w, apiErrors.ErrInconsistentOrdering, "Snapshot inicial posterior ao final", details)

	default:
		logger.WithError(err).Error("serp: unexpected error during analysis")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar snapshots", nil)
	}
}
