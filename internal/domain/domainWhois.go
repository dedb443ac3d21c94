package domain

// DomainWhoisRecord são os dados de whois e métricas de tráfego orgânico de um domínio
type DomainWhoisRecord struct {
	Domain             string   `json:"domain"`
	Registrar          string   `json:"registrar"`
	OrganicETV         *float64 `json:"organic_etv"`
	OrganicCount       *float64 `json:"organic_count"`
	PaidETV            *float64 `json:"paid_etv"`
	Backlinks          *float64 `json:"backlinks"`
	BacklinksSpamScore *float64 `json:"backlinks_spam_score"`
}

type DomainWhoisStats struct {
	TotalDomains          int          `json:"total_domains"`
	TotalOrganicETV       float64      `json:"total_organic_etv"`
	AverageBacklinks      float64      `json:"average_backlinks"`
	TopDomainsByETV       []LabelValue `json:"top_domains_by_etv"`
	SpamScoreDistribution []Bucket     `json:"spam_score_distribution"`
	TopRegistrars         []LabelValue `json:"top_registrars"`
}
