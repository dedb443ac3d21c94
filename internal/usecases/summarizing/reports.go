package summarizing

import (
	"github.com/vfg2006/serp-tracker-api/internal/config"
	"github.com/vfg2006/serp-tracker-api/internal/domain"
	"github.com/vfg2006/serp-tracker-api/pkg/utils"
)

const DefaultTopN = 10

var (
	// PositionBoundaries separa top 3, primeira página, segunda página, top 50 e cauda
	PositionBoundaries = []float64{4, 11, 21, 51}

	// SpamScoreBoundaries segue as faixas de risco usadas em relatórios de backlinks
	SpamScoreBoundaries = []float64{10, 30, 60}
)

type StatsSummarizer interface {
	KeywordGapStats(records []domain.KeywordGapRecord) domain.KeywordGapStats
	DomainIntersectionStats(records []domain.DomainIntersectionRecord) domain.DomainIntersectionStats
	DomainWhoisStats(records []domain.DomainWhoisRecord) domain.DomainWhoisStats
}

type Summarizer struct {
	topN int
}

func NewSummarizer(cfg config.Analytics) StatsSummarizer {
	topN := cfg.StatsTopN
	if topN <= 0 {
		topN = DefaultTopN
	}

	return &Summarizer{topN: topN}
}

func (s *Summarizer) KeywordGapStats(records []domain.KeywordGapRecord) domain.KeywordGapStats {
	keywordLabel := func(r domain.KeywordGapRecord) string { return r.Keyword }

	volume := Summarize(records, func(r domain.KeywordGapRecord) *float64 { return r.SearchVolume }, keywordLabel, s.topN, nil)
	cpc := Summarize(records, func(r domain.KeywordGapRecord) *float64 { return r.CPC }, keywordLabel, 0, nil)
	etv := Summarize(records, func(r domain.KeywordGapRecord) *float64 { return r.ETV }, keywordLabel, 0, nil)
	position := Summarize(records, func(r domain.KeywordGapRecord) *float64 { return r.CompetitorPosition }, keywordLabel, 0, PositionBoundaries)

	return domain.KeywordGapStats{
		TotalKeywords:        len(records),
		TotalSearchVolume:    volume.Sum,
		AverageCPC:           utils.RoundWithTwoDecimalPlace(cpc.Average),
		TotalETV:             utils.RoundWithTwoDecimalPlace(etv.Sum),
		TopKeywordsByVolume:  volume.TopN,
		PositionDistribution: position.Distribution,
	}
}

func (s *Summarizer) DomainIntersectionStats(records []domain.DomainIntersectionRecord) domain.DomainIntersectionStats {
	keywordLabel := func(r domain.DomainIntersectionRecord) string { return r.Keyword }

	etv := Summarize(records, func(r domain.DomainIntersectionRecord) *float64 { return r.ETV }, keywordLabel, s.topN, nil)
	volume := Summarize(records, func(r domain.DomainIntersectionRecord) *float64 { return r.SearchVolume }, keywordLabel, 0, nil)
	domain1 := Summarize(records, func(r domain.DomainIntersectionRecord) *float64 { return r.Domain1Position }, keywordLabel, 0, PositionBoundaries)
	domain2 := Summarize(records, func(r domain.DomainIntersectionRecord) *float64 { return r.Domain2Position }, keywordLabel, 0, PositionBoundaries)

	return domain.DomainIntersectionStats{
		TotalKeywords:               len(records),
		TotalSearchVolume:           volume.Sum,
		TotalETV:                    utils.RoundWithTwoDecimalPlace(etv.Sum),
		TopKeywordsByETV:            etv.TopN,
		Domain1PositionDistribution: domain1.Distribution,
		Domain2PositionDistribution: domain2.Distribution,
		Domain1AveragePosition:      utils.RoundWithTwoDecimalPlace(presentAverage(domain1)),
		Domain2AveragePosition:      utils.RoundWithTwoDecimalPlace(presentAverage(domain2)),
	}
}

func (s *Summarizer) DomainWhoisStats(records []domain.DomainWhoisRecord) domain.DomainWhoisStats {
	domainLabel := func(r domain.DomainWhoisRecord) string { return r.Domain }

	etv := Summarize(records, func(r domain.DomainWhoisRecord) *float64 { return r.OrganicETV }, domainLabel, s.topN, nil)
	backlinks := Summarize(records, func(r domain.DomainWhoisRecord) *float64 { return r.Backlinks }, domainLabel, 0, nil)
	spam := Summarize(records, func(r domain.DomainWhoisRecord) *float64 { return r.BacklinksSpamScore }, domainLabel, 0, SpamScoreBoundaries)

	return domain.DomainWhoisStats{
		TotalDomains:          len(records),
		TotalOrganicETV:       utils.RoundWithTwoDecimalPlace(etv.Sum),
		AverageBacklinks:      utils.RoundWithTwoDecimalPlace(backlinks.Average),
		TopDomainsByETV:       etv.TopN,
		SpamScoreDistribution: spam.Distribution,
		TopRegistrars:         s.topRegistrars(records),
	}
}

// topRegistrars conta domínios por registrar. Registrar vazio não entra no ranking.
func (s *Summarizer) topRegistrars(records []domain.DomainWhoisRecord) []domain.LabelValue {
	counts := make(map[string]float64)
	for _, r := range records {
		if r.Registrar == "" {
			continue
		}
		counts[r.Registrar]++
	}

	values := make([]domain.LabelValue, 0, len(counts))
	for registrar, count := range counts {
		values = append(values, domain.LabelValue{Label: registrar, Value: count})
	}

	return TopN(values, s.topN)
}

// presentAverage é a média só dos valores presentes. Posição ausente significa
// "não ranqueia", e tratá-la como 0 puxaria a média para uma posição melhor que a real.
func presentAverage(summary domain.StatsSummary) float64 {
	present := summary.Count - summary.MissingCount
	if present <= 0 {
		return 0
	}
	return summary.Sum / float64(present)
}
