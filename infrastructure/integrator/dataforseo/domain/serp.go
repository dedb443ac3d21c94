package dataforseodomain

// Formato de data usado pela DataForSEO nos itens de SERP histórico
const DateTimeLayout = "2006-01-02 15:04:05 -07:00"

// StatusOK é o status_code de sucesso da API (tarefa ou resposta)
const StatusOK = 20000

// HistoricalSerpsTask é o corpo da requisição /dataforseo_labs/google/historical_serps/live
type HistoricalSerpsTask struct {
	Keyword      string `json:"keyword"`
	LocationCode int    `json:"location_code,omitempty"`
	LanguageCode string `json:"language_code,omitempty"`
	DateFrom     string `json:"date_from,omitempty"`
	DateTo       string `json:"date_to,omitempty"`
}

type HistoricalSerpsResponse struct {
	StatusCode    int                         `json:"status_code"`
	StatusMessage string                      `json:"status_message"`
	Tasks         []HistoricalSerpsTaskResult `json:"tasks"`
}

type HistoricalSerpsTaskResult struct {
	ID            string                  `json:"id"`
	StatusCode    int                     `json:"status_code"`
	StatusMessage string                  `json:"status_message"`
	Result        []HistoricalSerpsResult `json:"result"`
}

type HistoricalSerpsResult struct {
	Keyword    string      `json:"keyword"`
	TotalCount int         `json:"total_count"`
	ItemsCount int         `json:"items_count"`
	Items      []SerpCrawl `json:"items"`
}

// SerpCrawl é uma captura da SERP em um instante
type SerpCrawl struct {
	SeType     string     `json:"se_type"`
	Keyword    string     `json:"keyword"`
	CheckURL   string     `json:"check_url"`
	Datetime   string     `json:"datetime"`
	ItemsCount int        `json:"items_count"`
	ItemTypes  []string   `json:"item_types"`
	Items      []SerpItem `json:"items"`
}

type SerpItem struct {
	Type         string   `json:"type"`
	RankGroup    int      `json:"rank_group"`
	RankAbsolute int      `json:"rank_absolute"`
	Domain       string   `json:"domain"`
	URL          string   `json:"url"`
	Title        string   `json:"title"`
	Description  *string  `json:"description"`
	ETV          *float64 `json:"etv"`
}

// Tipos de item que não são features
const (
	ItemTypeOrganic = "organic"
	ItemTypePaid    = "paid"
)
