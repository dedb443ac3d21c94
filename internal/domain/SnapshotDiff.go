package domain

import "time"

type VolatilityLevel string

const (
	VolatilityStable   VolatilityLevel = "stable"
	VolatilityModerate VolatilityLevel = "moderate"
	VolatilityVolatile VolatilityLevel = "volatile"
)

// PositionChange descreve a variação de um domínio presente nos dois snapshots.
// Delta positivo = subiu, negativo = desceu, 0 = manteve.
type PositionChange struct {
	Domain  string `json:"domain"`
	Title   string `json:"title"`
	OldRank int    `json:"old_rank"`
	NewRank int    `json:"new_rank"`
	Delta   int    `json:"delta"`
}

type NewDomain struct {
	Domain string `json:"domain"`
	Rank   int    `json:"rank"`
	Title  string `json:"title"`
}

type LostDomain struct {
	Domain       string `json:"domain"`
	PreviousRank int    `json:"previous_rank"`
	Title        string `json:"title"`
}

type SnapshotDiff struct {
	FromTimestamp   time.Time        `json:"from_timestamp"`
	ToTimestamp     time.Time        `json:"to_timestamp"`
	NewDomains      []NewDomain      `json:"new_domains"`
	LostDomains     []LostDomain     `json:"lost_domains"`
	PositionChanges []PositionChange `json:"position_changes"`
	TotalChanges    int              `json:"total_changes"`
	VolatilityScore float64          `json:"volatility_score"`
	VolatilityLevel VolatilityLevel  `json:"volatility_level"`
	SkippedEntries  int              `json:"skipped_entries,omitempty"`
}
