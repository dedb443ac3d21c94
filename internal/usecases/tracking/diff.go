package tracking

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/vfg2006/serp-tracker-api/internal/domain"
	"github.com/vfg2006/serp-tracker-api/pkg/log"
)

// DiffSnapshots compara dois snapshots da mesma palavra-chave.
//
// "from" precisa ser anterior ou igual a "to": a ordem nunca é invertida
// silenciosamente, pois isso trocaria "subiu" por "desceu" no resultado.
func (e *Engine) DiffSnapshots(from, to domain.Snapshot) (*domain.SnapshotDiff, error) {
	if from.Timestamp.IsZero() || to.Timestamp.IsZero() {
		return nil, NewAnalysisError(ErrInvalidInput, "snapshot timestamp is required")
	}

	if from.Timestamp.After(to.Timestamp) {
		return nil, NewAnalysisError(ErrInconsistentOrdering, fmt.Sprintf(
			"from=%s to=%s",
			from.Timestamp.Format(time.RFC3339),
			to.Timestamp.Format(time.RFC3339),
		))
	}

	return e.compare(from, to), nil
}

// DiffRange compara o snapshot mais antigo com o mais recente da coleção
func (e *Engine) DiffRange(snapshots []domain.Snapshot) (*domain.SnapshotDiff, error) {
	ordered := orderSnapshots(snapshots)
	if len(ordered) < 2 {
		return nil, NewAnalysisError(ErrInsufficientData, fmt.Sprintf("got %d snapshot(s)", len(ordered)))
	}

	return e.DiffSnapshots(ordered[0], ordered[len(ordered)-1])
}

// compare calcula o diff sem validar a ordem dos snapshots
func (e *Engine) compare(from, to domain.Snapshot) *domain.SnapshotDiff {
	fromRanks, fromSkipped := organicRanks(from)
	toRanks, toSkipped := organicRanks(to)

	diff := &domain.SnapshotDiff{
		FromTimestamp:   from.Timestamp,
		ToTimestamp:     to.Timestamp,
		NewDomains:      []domain.NewDomain{},
		LostDomains:     []domain.LostDomain{},
		PositionChanges: []domain.PositionChange{},
		SkippedEntries:  fromSkipped + toSkipped,
	}

	if diff.SkippedEntries > 0 {
		log.L.WithFields(log.Fields{
			"skipped_entries": diff.SkippedEntries,
			"from":            from.Timestamp.Format(time.RFC3339),
			"to":              to.Timestamp.Format(time.RFC3339),
		}).Debug("tracking: malformed organic entries skipped while diffing")
	}

	movement := 0
	for domainName, current := range toRanks {
		previous, existed := fromRanks[domainName]
		if !existed {
			diff.NewDomains = append(diff.NewDomains, domain.NewDomain{
				Domain: domainName,
				Rank:   current.rank,
				Title:  current.title,
			})
			continue
		}

		delta := previous.rank - current.rank
		diff.PositionChanges = append(diff.PositionChanges, domain.PositionChange{
			Domain:  domainName,
			Title:   current.title,
			OldRank: previous.rank,
			NewRank: current.rank,
			Delta:   delta,
		})

		if delta != 0 {
			diff.TotalChanges++
			movement += absInt(delta)
		}
	}

	for domainName, previous := range fromRanks {
		if _, stillThere := toRanks[domainName]; stillThere {
			continue
		}
		diff.LostDomains = append(diff.LostDomains, domain.LostDomain{
			Domain:       domainName,
			PreviousRank: previous.rank,
			Title:        previous.title,
		})
	}

	diff.TotalChanges += len(diff.NewDomains) + len(diff.LostDomains)

	sortDiff(diff)

	diff.VolatilityScore = e.volatility(len(fromRanks), len(toRanks), movement, len(diff.NewDomains)+len(diff.LostDomains))
	diff.VolatilityLevel = VolatilityLevelFor(diff.VolatilityScore)

	return diff
}

// volatility normaliza a movimentação total para [0,1].
//
// raw = Σ|delta| + peso·(novos+perdidos), dividido por normalização·max(|from|,|to|).
// Um primeiro crawl (from vazio) é totalmente volátil.
func (e *Engine) volatility(fromSize, toSize, movement, churn int) float64 {
	if fromSize == 0 {
		if toSize == 0 {
			return 0
		}
		return 1
	}

	size := fromSize
	if toSize > size {
		size = toSize
	}

	normalization := e.VolatilityNormalization
	if normalization <= 0 {
		normalization = DefaultVolatilityNormalization
	}

	raw := float64(movement) + e.VolatilityNewLostWeight*float64(churn)
	score := raw / (normalization * float64(size))

	return math.Min(1, math.Max(0, score))
}

// VolatilityLevelFor traduz o score nas faixas stable (<0.3), moderate (0.3-0.6) e volatile (>=0.6)
func VolatilityLevelFor(score float64) domain.VolatilityLevel {
	switch {
	case score >= HighVolatilityThreshold:
		return domain.VolatilityVolatile
	case score >= ModerateVolatilityThreshold:
		return domain.VolatilityModerate
	default:
		return domain.VolatilityStable
	}
}

func sortDiff(diff *domain.SnapshotDiff) {
	sort.Slice(diff.NewDomains, func(i, j int) bool {
		a, b := diff.NewDomains[i], diff.NewDomains[j]
		if a.Rank != b.Rank {
			return a.Rank < b.Rank
		}
		return a.Domain < b.Domain
	})

	sort.Slice(diff.LostDomains, func(i, j int) bool {
		a, b := diff.LostDomains[i], diff.LostDomains[j]
		if a.PreviousRank != b.PreviousRank {
			return a.PreviousRank < b.PreviousRank
		}
		return a.Domain < b.Domain
	})

	sort.Slice(diff.PositionChanges, func(i, j int) bool {
		a, b := diff.PositionChanges[i], diff.PositionChanges[j]
		if a.NewRank != b.NewRank {
			return a.NewRank < b.NewRank
		}
		return a.Domain < b.Domain
	})
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
