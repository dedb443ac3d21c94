// Package tracking compara snapshots históricos de SERP: histórico por domínio com
// tendência, diff entre dois snapshots com volatilidade e contagem de rich results.
package tracking

import (
	"sort"

	"github.com/vfg2006/serp-tracker-api/internal/config"
	"github.com/vfg2006/serp-tracker-api/internal/domain"
)

const (
	DefaultTrendNoiseThreshold     = 2.0
	DefaultTrendWindowSize         = 3
	DefaultVolatilityNormalization = 10.0
	DefaultVolatilityNewLostWeight = 10.0

	// Faixas publicadas de interpretação do score de volatilidade
	ModerateVolatilityThreshold = 0.3
	HighVolatilityThreshold     = 0.6
)

// Engine executa os cálculos de histórico, diff e features. Não guarda estado além das
// heurísticas, então pode ser usado concorrentemente.
type Engine struct {
	TrendNoiseThreshold     float64
	TrendWindowSize         int
	VolatilityNormalization float64
	VolatilityNewLostWeight float64
}

// NewEngine cria um Engine a partir da configuração, usando os defaults para valores não positivos
func NewEngine(cfg config.Analytics) *Engine {
	engine := DefaultEngine()

	if cfg.TrendNoiseThreshold > 0 {
		engine.TrendNoiseThreshold = cfg.TrendNoiseThreshold
	}
	if cfg.TrendWindowSize > 0 {
		engine.TrendWindowSize = cfg.TrendWindowSize
	}
	if cfg.VolatilityNormalization > 0 {
		engine.VolatilityNormalization = cfg.VolatilityNormalization
	}
	if cfg.VolatilityNewLostWeight > 0 {
		engine.VolatilityNewLostWeight = cfg.VolatilityNewLostWeight
	}

	return engine
}

func DefaultEngine() *Engine {
	return &Engine{
		TrendNoiseThreshold:     DefaultTrendNoiseThreshold,
		TrendWindowSize:         DefaultTrendWindowSize,
		VolatilityNormalization: DefaultVolatilityNormalization,
		VolatilityNewLostWeight: DefaultVolatilityNewLostWeight,
	}
}

// rankedEntry é o representante de um domínio em um snapshot
type rankedEntry struct {
	rank  int
	title string
	url   string
}

// organicRanks monta o mapa domínio -> melhor posição orgânica do snapshot.
// Itens sem domínio ou posição são ignorados e contados em skipped.
func organicRanks(snapshot domain.Snapshot) (ranks map[string]rankedEntry, skipped int) {
	ranks = make(map[string]rankedEntry, len(snapshot.Items))

	for _, item := range snapshot.Items {
		if !item.IsOrganic() {
			continue
		}

		if !item.HasRank() {
			skipped++
			continue
		}

		current, exists := ranks[item.Domain]
		if exists && current.rank <= item.RankAbsolute {
			continue
		}

		ranks[item.Domain] = rankedEntry{
			rank:  item.RankAbsolute,
			title: item.Title,
			url:   item.URL,
		}
	}

	return ranks, skipped
}

// orderSnapshots devolve uma cópia ordenada por data, mantendo o último snapshot de cada data repetida
func orderSnapshots(snapshots []domain.Snapshot) []domain.Snapshot {
	ordered := make([]domain.Snapshot, 0, len(snapshots))
	byTimestamp := make(map[int64]int, len(snapshots))

	for _, snapshot := range snapshots {
		key := snapshot.Timestamp.UnixNano()
		if idx, exists := byTimestamp[key]; exists {
			ordered[idx] = snapshot
			continue
		}
		byTimestamp[key] = len(ordered)
		ordered = append(ordered, snapshot)
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Timestamp.Before(ordered[j].Timestamp)
	})

	return ordered
}
