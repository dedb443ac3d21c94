package domain

import "time"

type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// Occurrence é a posição de um domínio em um snapshot. Rank nulo = ausente naquele snapshot.
type Occurrence struct {
	Timestamp time.Time `json:"timestamp"`
	Rank      *int      `json:"rank"`
	Title     string    `json:"title,omitempty"`
	URL       string    `json:"url,omitempty"`
}

type DomainHistory struct {
	Domain          string       `json:"domain"`
	Occurrences     []Occurrence `json:"occurrences"`
	AppearanceCount int          `json:"appearance_count"`
	BestRank        int          `json:"best_rank"`
	WorstRank       int          `json:"worst_rank"`
	AverageRank     float64      `json:"average_rank"`
	Trend           Trend        `json:"trend"`
}

type DomainHistoryReport struct {
	Keyword       string          `json:"keyword"`
	SnapshotCount int             `json:"snapshot_count"`
	Domains       []DomainHistory `json:"domains"`
	Features      map[string]int  `json:"features"`
}
