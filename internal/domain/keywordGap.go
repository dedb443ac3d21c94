package domain

// KeywordGapRecord é uma palavra-chave em que o concorrente ranqueia e o domínio alvo não
type KeywordGapRecord struct {
	Keyword            string   `json:"keyword"`
	SearchVolume       *float64 `json:"search_volume"`
	CPC                *float64 `json:"cpc"`
	Competition        *float64 `json:"competition"`
	ETV                *float64 `json:"etv"`
	CompetitorDomain   string   `json:"competitor_domain"`
	CompetitorPosition *float64 `json:"competitor_position"`
}

type KeywordGapStats struct {
	TotalKeywords        int          `json:"total_keywords"`
	TotalSearchVolume    float64      `json:"total_search_volume"`
	AverageCPC           float64      `json:"average_cpc"`
	TotalETV             float64      `json:"total_etv"`
	TopKeywordsByVolume  []LabelValue `json:"top_keywords_by_volume"`
	PositionDistribution []Bucket     `json:"position_distribution"`
}
