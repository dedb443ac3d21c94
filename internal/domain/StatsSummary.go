package domain

// LabelValue é um par (rótulo, valor) usado nos rankings top-N
type LabelValue struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Bucket é uma faixa [Min, Max) da distribuição. Min/Max nulos = faixa aberta.
type Bucket struct {
	Label string   `json:"label"`
	Min   *float64 `json:"min,omitempty"`
	Max   *float64 `json:"max,omitempty"`
	Count int      `json:"count"`
}

type StatsSummary struct {
	TopN         []LabelValue `json:"top_n"`
	Distribution []Bucket     `json:"distribution"`
	Average      float64      `json:"average"`
	Sum          float64      `json:"sum"`
	Count        int          `json:"count"`
	MissingCount int          `json:"missing_count"`
}
