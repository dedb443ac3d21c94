package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/serp-tracker-api/internal/domain"
	"github.com/vfg2006/serp-tracker-api/internal/usecases/tracking"
	"github.com/vfg2006/serp-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/serp-tracker-api/pkg/log"
	"github.com/vfg2006/serp-tracker-api/pkg/utils"
)

type snapshotsRequest struct {
	Snapshots []domain.Snapshot `json:"snapshots"`
}

type diffRequest struct {
	From *domain.Snapshot `json:"from"`
	To   *domain.Snapshot `json:"to"`
}

type featuresResponse struct {
	Keyword  string         `json:"keyword,omitempty"`
	Features map[string]int `json:"features"`
}

// parseSnapshotFilters lê start_date e end_date (YYYY-MM-DD). O end_date inclui o dia todo.
func parseSnapshotFilters(r *http.Request) (*domain.SnapshotFilters, error) {
	startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		return nil, err
	}

	endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		return nil, err
	}

	if endDate != nil {
		end := utils.EndOfDay(*endDate)
		endDate = &end
	}

	return &domain.SnapshotFilters{
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}

// GetKeywordHistory retorna o histórico por domínio dos snapshots armazenados
func GetKeywordHistory(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		keyword := httprouter.ParamsFromContext(r.Context()).ByName("keyword")
		logger.WithField("keyword", keyword).Info("serp: fetching domain histories")

		filters, err := parseSnapshotFilters(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"keyword": keyword,
				"error":   err.Error(),
			}).Warn("serp: invalid date filter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas devem estar no formato YYYY-MM-DD", nil)
			return
		}

		report, err := service.GetDomainHistories(r.Context(), keyword, filters)
		if err != nil {
			handleAnalysisError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"keyword":   keyword,
			"snapshots": report.SnapshotCount,
			"domains":   len(report.Domains),
		}).Info("serp: successfully built domain histories")

		writeJSON(w, logger, http.StatusOK, report)
	})
}

// GetKeywordDiff compara dois snapshots armazenados (from/to) ou os dois mais recentes
func GetKeywordDiff(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		keyword := httprouter.ParamsFromContext(r.Context()).ByName("keyword")

		from, err := utils.ParseTimestamp(r.URL.Query().Get("from"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro from deve estar em RFC3339", nil)
			return
		}

		to, err := utils.ParseTimestamp(r.URL.Query().Get("to"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro to deve estar em RFC3339", nil)
			return
		}

		logger.WithFields(log.Fields{
			"keyword": keyword,
			"latest":  from == nil && to == nil,
		}).Info("serp: comparing snapshots")

		diff, err := service.CompareSnapshots(r.Context(), keyword, from, to)
		if err != nil {
			handleAnalysisError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, diff)
	})
}

// GetKeywordFeatures conta os rich results dos snapshots armazenados
func GetKeywordFeatures(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		keyword := httprouter.ParamsFromContext(r.Context()).ByName("keyword")

		filters, err := parseSnapshotFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas devem estar no formato YYYY-MM-DD", nil)
			return
		}

		features, err := service.GetFeatureCounts(r.Context(), keyword, filters)
		if err != nil {
			handleAnalysisError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, featuresResponse{Keyword: keyword, Features: features})
	})
}

// BuildHistory monta o histórico por domínio de snapshots enviados no corpo
func BuildHistory(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request snapshotsRequest
		if err := decodeBody(w, r, &request); err != nil {
			logger.WithError(err).Warn("serp: invalid history request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		report := domain.DomainHistoryReport{
			SnapshotCount: len(request.Snapshots),
			Domains:       service.BuildDomainHistories(request.Snapshots),
			Features:      service.AggregateFeatures(request.Snapshots),
		}

		writeJSON(w, logger, http.StatusOK, report)
	})
}

// DiffSnapshots compara os snapshots from e to enviados no corpo
func DiffSnapshots(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request diffRequest
		if err := decodeBody(w, r, &request); err != nil {
			logger.WithError(err).Warn("serp: invalid diff request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if request.From == nil || request.To == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campos from e to são obrigatórios", nil)
			return
		}

		diff, err := service.DiffSnapshots(*request.From, *request.To)
		if err != nil {
			handleAnalysisError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, diff)
	})
}

// CountFeatures conta os rich results de snapshots enviados no corpo
func CountFeatures(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request snapshotsRequest
		if err := decodeBody(w, r, &request); err != nil {
			logger.WithError(err).Warn("serp: invalid features request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		writeJSON(w, logger, http.StatusOK, featuresResponse{Features: service.AggregateFeatures(request.Snapshots)})
	})
}
