package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/serp-tracker-api/internal/api/handler/router"
	"github.com/vfg2006/serp-tracker-api/internal/config"
	"github.com/vfg2006/serp-tracker-api/internal/domain"
	"github.com/vfg2006/serp-tracker-api/internal/usecases/summarizing"
	"github.com/vfg2006/serp-tracker-api/pkg/apiErrors"
)

func statsRouter() router.Router {
	return router.New(router.WithRoutes(Stats(summarizing.NewSummarizer(config.Analytics{StatsTopN: 2}))...))
}

func TestKeywordGapStats(t *testing.T) {
	body := `{"records": [
		{"keyword": "x", "search_volume": 10, "competitor_position": 2},
		{"keyword": "y", "search_volume": 5, "competitor_position": 15},
		{"keyword": "z", "search_volume": null}
	]}`

	rec := serve(statsRouter(), http.MethodPost, "/v1/stats/keyword-gap", body)

	require.Equal(t, http.StatusOK, rec.Code)

	var stats domain.KeywordGapStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 3, stats.TotalKeywords)
	assert.Equal(t, 15.0, stats.TotalSearchVolume)
	assert.Equal(t, []domain.LabelValue{{Label: "x", Value: 10}, {Label: "y", Value: 5}}, stats.TopKeywordsByVolume)
	assert.Len(t, stats.PositionDistribution, len(summarizing.PositionBoundaries)+1)
}

func TestDomainIntersectionStats(t *testing.T) {
	body := `{"records": [
		{"keyword": "a", "etv": 30, "domain1_position": 1, "domain2_position": 4},
		{"keyword": "b", "etv": 60, "domain1_position": 3}
	]}`

	rec := serve(statsRouter(), http.MethodPost, "/v1/stats/domain-intersection", body)

	require.Equal(t, http.StatusOK, rec.Code)

	var stats domain.DomainIntersectionStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 90.0, stats.TotalETV)
	assert.Equal(t, "b", stats.TopKeywordsByETV[0].Label)
	assert.Equal(t, 2.0, stats.Domain1AveragePosition)
	assert.Equal(t, 4.0, stats.Domain2AveragePosition)
}

func TestDomainWhoisStats(t *testing.T) {
	body := `{"records": [
		{"domain": "a.com", "registrar": "GoDaddy", "organic_etv": 500, "backlinks": 100, "backlinks_spam_score": 5},
		{"domain": "b.com", "registrar": "GoDaddy", "organic_etv": 900, "backlinks": 300}
	]}`

	rec := serve(statsRouter(), http.MethodPost, "/v1/stats/domain-whois", body)

	require.Equal(t, http.StatusOK, rec.Code)

	var stats domain.DomainWhoisStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats.TotalDomains)
	assert.Equal(t, 200.0, stats.AverageBacklinks)
	assert.Equal(t, []domain.LabelValue{{Label: "GoDaddy", Value: 2}}, stats.TopRegistrars)
}

func TestStats_InvalidBody(t *testing.T) {
	rec := serve(statsRouter(), http.MethodPost, "/v1/stats/domain-whois", `{"records": "nope"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidRequest, decodeError(t, rec).Code)
}
