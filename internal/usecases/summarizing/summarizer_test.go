package summarizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/serp-tracker-api/internal/domain"
)

type sample struct {
	label string
	value *float64
}

func f(v float64) *float64 {
	return &v
}

func sampleMetric(s sample) *float64 { return s.value }
func sampleLabel(s sample) string    { return s.label }

func bucketCounts(buckets []domain.Bucket) []int {
	counts := make([]int, len(buckets))
	for i, b := range buckets {
		counts[i] = b.Count
	}
	return counts
}

func bucketLabels(buckets []domain.Bucket) []string {
	labels := make([]string, len(buckets))
	for i, b := range buckets {
		labels[i] = b.Label
	}
	return labels
}

func TestSummarize_TopNExcludesMissing(t *testing.T) {
	records := []sample{
		{label: "x", value: f(10)},
		{label: "y", value: f(5)},
		{label: "z", value: nil},
	}

	summary := Summarize(records, sampleMetric, sampleLabel, 2, nil)

	assert.Equal(t, []domain.LabelValue{{Label: "x", Value: 10}, {Label: "y", Value: 5}}, summary.TopN)
	assert.Equal(t, 3, summary.Count)
	assert.Equal(t, 1, summary.MissingCount)
	assert.Equal(t, 15.0, summary.Sum)
	assert.Equal(t, 5.0, summary.Average)
}

func TestSummarize_TopN(t *testing.T) {
	records := []sample{
		{label: "b", value: f(3)},
		{label: "a", value: f(3)},
		{label: "c", value: f(7)},
		{label: "d", value: f(1)},
	}

	tests := []struct {
		name     string
		n        int
		expected []domain.LabelValue
	}{
		{
			name:     "Deve retornar lista vazia quando n é zero",
			n:        0,
			expected: []domain.LabelValue{},
		},
		{
			name:     "Deve retornar lista vazia quando n é negativo",
			n:        -1,
			expected: []domain.LabelValue{},
		},
		{
			name:     "Deve desempatar pelo rótulo",
			n:        3,
			expected: []domain.LabelValue{{Label: "c", Value: 7}, {Label: "a", Value: 3}, {Label: "b", Value: 3}},
		},
		{
			name: "Deve retornar todos quando n é maior que a coleção",
			n:    10,
			expected: []domain.LabelValue{
				{Label: "c", Value: 7}, {Label: "a", Value: 3}, {Label: "b", Value: 3}, {Label: "d", Value: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := Summarize(records, sampleMetric, sampleLabel, tt.n, nil)
			assert.Equal(t, tt.expected, summary.TopN)
		})
	}
}

func TestSummarize_EmptyInput(t *testing.T) {
	summary := Summarize([]sample{}, sampleMetric, sampleLabel, 5, []float64{10})

	assert.Empty(t, summary.TopN)
	assert.NotNil(t, summary.TopN)
	assert.Equal(t, 0, summary.Count)
	assert.Equal(t, 0.0, summary.Average)
	assert.Equal(t, []int{0, 0}, bucketCounts(summary.Distribution))
}

func TestSummarize_Distribution(t *testing.T) {
	records := []sample{
		{label: "a", value: f(1)},
		{label: "b", value: f(4)},
		{label: "c", value: f(10)},
		{label: "d", value: f(11)},
		{label: "e", value: f(50)},
		{label: "f", value: nil},
	}

	t.Run("Deve ordenar e deduplicar os limites", func(t *testing.T) {
		summary := Summarize(records, sampleMetric, sampleLabel, 0, []float64{11, 4, 4})

		require.Len(t, summary.Distribution, 3)
		assert.Equal(t, []string{"<4", "4-11", "11+"}, bucketLabels(summary.Distribution))
		assert.Equal(t, []int{1, 2, 2}, bucketCounts(summary.Distribution))
	})

	t.Run("Deve usar um único bucket sem limites", func(t *testing.T) {
		summary := Summarize(records, sampleMetric, sampleLabel, 0, nil)

		require.Len(t, summary.Distribution, 1)
		assert.Equal(t, "all", summary.Distribution[0].Label)
		assert.Nil(t, summary.Distribution[0].Min)
		assert.Nil(t, summary.Distribution[0].Max)
		assert.Equal(t, 5, summary.Distribution[0].Count)
	})

	t.Run("Deve deixar valores ausentes fora da distribuição", func(t *testing.T) {
		summary := Summarize(records, sampleMetric, sampleLabel, 0, []float64{4, 11})

		total := 0
		for _, b := range summary.Distribution {
			total += b.Count
		}
		assert.Equal(t, summary.Count-summary.MissingCount, total)
	})

	t.Run("Deve tratar o limite como inclusivo à esquerda", func(t *testing.T) {
		summary := Summarize([]sample{{label: "a", value: f(4)}}, sampleMetric, sampleLabel, 0, []float64{4})

		assert.Equal(t, []int{0, 1}, bucketCounts(summary.Distribution))
		require.NotNil(t, summary.Distribution[1].Min)
		assert.Equal(t, 4.0, *summary.Distribution[1].Min)
	})
}
