package tracking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/serp-tracker-api/internal/domain"
)

func TestEngine_AggregateFeatures(t *testing.T) {
	tests := []struct {
		name      string
		snapshots []domain.Snapshot
		want      map[string]int
	}{
		{
			name: "Mesma feature em dois snapshots conta duas vezes",
			snapshots: []domain.Snapshot{
				snapshotAt(day(0), organic("a.com", 1), feature("featured_snippet")),
				snapshotAt(day(1), feature("featured_snippet"), organic("a.com", 1)),
			},
			want: map[string]int{"featured_snippet": 2},
		},
		{
			name: "Orgânicos e anúncios não contam",
			snapshots: []domain.Snapshot{
				snapshotAt(day(0), organic("a.com", 1), paid("ads.com", 1), feature("people_also_ask"), feature("people_also_ask"), feature("local_pack")),
			},
			want: map[string]int{"people_also_ask": 2, "local_pack": 1},
		},
		{
			name: "Feature sem tipo é ignorada",
			snapshots: []domain.Snapshot{
				snapshotAt(day(0), feature(""), feature("video")),
			},
			want: map[string]int{"video": 1},
		},
		{
			name:      "Sem snapshots",
			snapshots: nil,
			want:      map[string]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultEngine().AggregateFeatures(tt.snapshots))
		})
	}
}
