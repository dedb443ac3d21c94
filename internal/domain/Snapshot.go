// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

type EntryType string

const (
	EntryTypeOrganic EntryType = "organic"
	EntryTypePaid    EntryType = "paid"
	EntryTypeFeature EntryType = "feature"
)

// Snapshot é uma captura histórica da SERP de uma palavra-chave em um instante
type Snapshot struct {
	ID        string      `json:"id,omitempty"`
	Keyword   string      `json:"keyword,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Items     []SerpEntry `json:"items"`
	ItemCount int         `json:"item_count"`
}

// SerpEntry representa um item da SERP. Type define quais campos são preenchidos:
// organic e paid usam Domain/URL/Title/ranks, feature usa apenas FeatureType.
type SerpEntry struct {
	Type         EntryType `json:"type"`
	Domain       string    `json:"domain,omitempty"`
	URL          string    `json:"url,omitempty"`
	Title        string    `json:"title,omitempty"`
	Description  *string   `json:"description,omitempty"`
	RankAbsolute int       `json:"rank_absolute,omitempty"`
	RankGroup    int       `json:"rank_group,omitempty"`
	ETV          *float64  `json:"etv,omitempty"`
	FeatureType  string    `json:"feature_type,omitempty"`
}

// IsOrganic indica se o item é um resultado orgânico
func (e SerpEntry) IsOrganic() bool {
	return e.Type == EntryTypeOrganic
}

// IsFeature indica se o item é um rich result (nem orgânico nem pago)
func (e SerpEntry) IsFeature() bool {
	return e.Type == EntryTypeFeature
}

// HasRank indica se o item orgânico tem domínio e posição válidos
func (e SerpEntry) HasRank() bool {
	return e.Domain != "" && e.RankAbsolute > 0
}

type SnapshotFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}
