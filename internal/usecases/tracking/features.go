package tracking

import "github.com/vfg2006/serp-tracker-api/internal/domain"

// AggregateFeatures conta as ocorrências de cada rich result em todos os snapshots.
// Cada aparição conta, então uma feature presente em 5 snapshots soma 5.
func (e *Engine) AggregateFeatures(snapshots []domain.Snapshot) map[string]int {
	counts := make(map[string]int)

	for _, snapshot := range snapshots {
		for _, item := range snapshot.Items {
			if !item.IsFeature() || item.FeatureType == "" {
				continue
			}
			counts[item.FeatureType]++
		}
	}

	return counts
}
