package handler

import (
	"net/http"

	"github.com/vfg2006/serp-tracker-api/internal/domain"
	"github.com/vfg2006/serp-tracker-api/internal/usecases/summarizing"
	"github.com/vfg2006/serp-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/serp-tracker-api/pkg/log"
)

type recordsRequest[T any] struct {
	Records []T `json:"records"`
}

// statsHandler decodifica {records} e responde com o relatório montado por build
func statsHandler[T any, R any](report string, build func([]T) R) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request recordsRequest[T]
		if err := decodeBody(w, r, &request); err != nil {
			logger.WithFields(log.Fields{
				"report": report,
				"error":  err.Error(),
			}).Warn("stats: invalid request body")

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		logger.WithFields(log.Fields{
			"report":  report,
			"records": len(request.Records),
		}).Info("stats: building report")

		writeJSON(w, logger, http.StatusOK, build(request.Records))
	})
}

func KeywordGapStats(service summarizing.StatsSummarizer) http.Handler {
	return statsHandler[domain.KeywordGapRecord]("keyword-gap", service.KeywordGapStats)
}

func DomainIntersectionStats(service summarizing.StatsSummarizer) http.Handler {
	return statsHandler[domain.DomainIntersectionRecord]("domain-intersection", service.DomainIntersectionStats)
}

func DomainWhoisStats(service summarizing.StatsSummarizer) http.Handler {
	return statsHandler[domain.DomainWhoisRecord]("domain-whois", service.DomainWhoisStats)
}
