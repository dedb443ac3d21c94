package tracking

import (
	"sort"

	"github.com/vfg2006/serp-tracker-api/internal/domain"
	"github.com/vfg2006/serp-tracker-api/pkg/log"
)

// BuildDomainHistories monta o histórico de posições de cada domínio orgânico.
//
// Para cada snapshot, domínios presentes recebem (data, posição) e domínios já vistos
// em snapshots anteriores mas ausentes recebem (data, nil). Um domínio visto pela
// primeira vez no snapshot k não tem entradas antes de k.
func (e *Engine) BuildDomainHistories(snapshots []domain.Snapshot) map[string]*domain.DomainHistory {
	histories := make(map[string]*domain.DomainHistory)
	if len(snapshots) == 0 {
		return histories
	}

	skippedTotal := 0
	for _, snapshot := range orderSnapshots(snapshots) {
		ranks, skipped := organicRanks(snapshot)
		skippedTotal += skipped

		for domainName, entry := range ranks {
			history, exists := histories[domainName]
			if !exists {
				history = &domain.DomainHistory{Domain: domainName}
				histories[domainName] = history
			}

			rank := entry.rank
			history.Occurrences = append(history.Occurrences, domain.Occurrence{
				Timestamp: snapshot.Timestamp,
				Rank:      &rank,
				Title:     entry.title,
				URL:       entry.url,
			})
		}

		for domainName, history := range histories {
			if _, present := ranks[domainName]; present {
				continue
			}
			history.Occurrences = append(history.Occurrences, domain.Occurrence{
				Timestamp: snapshot.Timestamp,
			})
		}
	}

	if skippedTotal > 0 {
		log.L.WithFields(log.Fields{
			"skipped_entries": skippedTotal,
			"snapshots":       len(snapshots),
		}).Debug("tracking: malformed organic entries skipped while building histories")
	}

	for _, history := range histories {
		e.summarizeHistory(history)
	}

	return histories
}

// summarizeHistory calcula melhor, pior e média das posições e classifica a tendência
func (e *Engine) summarizeHistory(history *domain.DomainHistory) {
	ranks := make([]int, 0, len(history.Occurrences))
	for _, occurrence := range history.Occurrences {
		if occurrence.Rank != nil {
			ranks = append(ranks, *occurrence.Rank)
		}
	}

	history.AppearanceCount = len(ranks)
	history.Trend = domain.TrendStable
	if len(ranks) == 0 {
		return
	}

	best, worst, sum := ranks[0], ranks[0], 0
	for _, rank := range ranks {
		if rank < best {
			best = rank
		}
		if rank > worst {
			worst = rank
		}
		sum += rank
	}

	history.BestRank = best
	history.WorstRank = worst
	history.AverageRank = float64(sum) / float64(len(ranks))
	history.Trend = e.classifyTrend(ranks)
}

// classifyTrend compara a média da janela inicial com a da janela recente.
// Posição menor é melhor, então média recente menor = subindo.
func (e *Engine) classifyTrend(ranks []int) domain.Trend {
	if len(ranks) < 2 {
		return domain.TrendStable
	}

	window := e.TrendWindowSize
	if window <= 0 {
		window = DefaultTrendWindowSize
	}
	if window > len(ranks) {
		window = len(ranks)
	}

	earlyAvg := average(ranks[:window])
	recentAvg := average(ranks[len(ranks)-window:])

	switch {
	case recentAvg < earlyAvg-e.TrendNoiseThreshold:
		return domain.TrendUp
	case recentAvg > earlyAvg+e.TrendNoiseThreshold:
		return domain.TrendDown
	default:
		return domain.TrendStable
	}
}

func average(values []int) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

// SortHistories devolve os históricos em ordem de apresentação: média crescente, depois domínio
func SortHistories(histories map[string]*domain.DomainHistory) []domain.DomainHistory {
	sorted := make([]domain.DomainHistory, 0, len(histories))
	for _, history := range histories {
		sorted = append(sorted, *history)
	}

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].AverageRank != sorted[j].AverageRank {
			return sorted[i].AverageRank < sorted[j].AverageRank
		}
		return sorted[i].Domain < sorted[j].Domain
	})

	return sorted
}
