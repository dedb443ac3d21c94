// Package summarizing calcula top-N, distribuição por faixas, soma e média de coleções
// de registros com métricas numéricas. Os relatórios de keyword gap, interseção de
// domínios e whois são adaptadores finos sobre Summarize.
package summarizing

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/vfg2006/serp-tracker-api/internal/domain"
)

// MetricSelector extrai a métrica do registro. nil = valor ausente.
type MetricSelector[T any] func(record T) *float64

// LabelSelector extrai o rótulo usado no top-N
type LabelSelector[T any] func(record T) string

// Summarize resume os registros pela métrica selecionada.
//
// Valores ausentes contam como 0 na soma e na média, mas ficam fora do top-N e da
// distribuição: um registro sem valor não pode aparecer como um falso líder com 0.
func Summarize[T any](records []T, metric MetricSelector[T], label LabelSelector[T], n int, boundaries []float64) domain.StatsSummary {
	summary := domain.StatsSummary{
		TopN:  []domain.LabelValue{},
		Count: len(records),
	}

	buckets := newBuckets(boundaries)
	present := make([]domain.LabelValue, 0, len(records))

	for _, record := range records {
		value := metric(record)
		if value == nil || math.IsNaN(*value) {
			summary.MissingCount++
			continue
		}

		summary.Sum += *value
		present = append(present, domain.LabelValue{Label: label(record), Value: *value})
		buckets[bucketIndex(buckets, *value)].Count++
	}

	if summary.Count > 0 {
		summary.Average = summary.Sum / float64(summary.Count)
	}

	summary.TopN = TopN(present, n)
	summary.Distribution = buckets

	return summary
}

// TopN ordena os pares por valor decrescente (empate pelo rótulo) e mantém os n primeiros
func TopN(values []domain.LabelValue, n int) []domain.LabelValue {
	if n <= 0 || len(values) == 0 {
		return []domain.LabelValue{}
	}

	sorted := make([]domain.LabelValue, len(values))
	copy(sorted, values)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Value != sorted[j].Value {
			return sorted[i].Value > sorted[j].Value
		}
		return sorted[i].Label < sorted[j].Label
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}

	return sorted
}

// newBuckets monta as faixas [-inf,b0), [b0,b1), ..., [bk,+inf) a partir dos limites
func newBuckets(boundaries []float64) []domain.Bucket {
	limits := normalizeBoundaries(boundaries)
	if len(limits) == 0 {
		return []domain.Bucket{{Label: "all"}}
	}

	buckets := make([]domain.Bucket, 0, len(limits)+1)

	upper := limits[0]
	buckets = append(buckets, domain.Bucket{
		Label: "<" + formatBoundary(upper),
		Max:   &upper,
	})

	for i := 0; i < len(limits)-1; i++ {
		lower, upper := limits[i], limits[i+1]
		buckets = append(buckets, domain.Bucket{
			Label: fmt.Sprintf("%s-%s", formatBoundary(lower), formatBoundary(upper)),
			Min:   &lower,
			Max:   &upper,
		})
	}

	last := limits[len(limits)-1]
	buckets = append(buckets, domain.Bucket{
		Label: formatBoundary(last) + "+",
		Min:   &last,
	})

	return buckets
}

func bucketIndex(buckets []domain.Bucket, value float64) int {
	for i, bucket := range buckets {
		if bucket.Max == nil || value < *bucket.Max {
			return i
		}
	}
	return len(buckets) - 1
}

// normalizeBoundaries ordena e remove limites repetidos ou inválidos
func normalizeBoundaries(boundaries []float64) []float64 {
	limits := make([]float64, 0, len(boundaries))
	for _, b := range boundaries {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			continue
		}
		limits = append(limits, b)
	}

	sort.Float64s(limits)

	unique := make([]float64, 0, len(limits))
	for _, b := range limits {
		if len(unique) > 0 && unique[len(unique)-1] == b {
			continue
		}
		unique = append(unique, b)
	}

	return unique
}

func formatBoundary(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
