package domain

// DomainIntersectionRecord é uma palavra-chave em que os dois domínios comparados ranqueiam
type DomainIntersectionRecord struct {
	Keyword         string   `json:"keyword"`
	SearchVolume    *float64 `json:"search_volume"`
	ETV             *float64 `json:"etv"`
	CPC             *float64 `json:"cpc"`
	Domain1Position *float64 `json:"domain1_position"`
	Domain2Position *float64 `json:"domain2_position"`
}

type DomainIntersectionStats struct {
	TotalKeywords               int          `json:"total_keywords"`
	TotalSearchVolume           float64      `json:"total_search_volume"`
	TotalETV                    float64      `json:"total_etv"`
	TopKeywordsByETV            []LabelValue `json:"top_keywords_by_etv"`
	Domain1PositionDistribution []Bucket     `json:"domain1_position_distribution"`
	Domain2PositionDistribution []Bucket     `json:"domain2_position_distribution"`
	Domain1AveragePosition      float64      `json:"domain1_average_position"`
	Domain2AveragePosition      float64      `json:"domain2_average_position"`
}
