package tracking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/serp-tracker-api/infrastructure/repository/mocks"
	"github.com/vfg2006/serp-tracker-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestService_GetDomainHistories(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)
	service := NewService(DefaultEngine(), mockSnapshotRepo)
	ctx := context.Background()

	tests := []struct {
		name     string
		keyword  string
		filters  *domain.SnapshotFilters
		setup    func()
		validate func(t *testing.T, report *domain.DomainHistoryReport, err error)
	}{
		{
			name:    "Monta histórico ordenado e features",
			keyword: "seo tools",
			setup: func() {
				mockSnapshotRepo.EXPECT().
					ListByKeyword(ctx, "seo tools", nil).
					Return([]domain.Snapshot{
						snapshotAt(day(0), organic("a.com", 3), organic("b.com", 1), feature("featured_snippet")),
						snapshotAt(day(1), organic("a.com", 2), organic("b.com", 1), feature("featured_snippet")),
					}, nil)
			},
			validate: func(t *testing.T, report *domain.DomainHistoryReport, err error) {
				require.NoError(t, err)
				assert.Equal(t, "seo tools", report.Keyword)
				assert.Equal(t, 2, report.SnapshotCount)
				require.Len(t, report.Domains, 2)
				assert.Equal(t, "b.com", report.Domains[0].Domain)
				assert.Equal(t, "a.com", report.Domains[1].Domain)
				assert.Equal(t, map[string]int{"featured_snippet": 2}, report.Features)
			},
		},
		{
			name:    "Sem snapshots retorna relatório vazio",
			keyword: "nothing",
			setup: func() {
				mockSnapshotRepo.EXPECT().
					ListByKeyword(ctx, "nothing", nil).
					Return([]domain.Snapshot{}, nil)
			},
			validate: func(t *testing.T, report *domain.DomainHistoryReport, err error) {
				require.NoError(t, err)
				assert.Equal(t, 0, report.SnapshotCount)
				assert.Empty(t, report.Domains)
			},
		},
		{
			name:    "Período invertido",
			keyword: "seo tools",
			filters: &domain.SnapshotFilters{StartDate: timePtr(day(3)), EndDate: timePtr(day(1))},
			setup:   func() {},
			validate: func(t *testing.T, report *domain.DomainHistoryReport, err error) {
				assert.Nil(t, report)
				assert.True(t, errors.Is(err, ErrInconsistentOrdering))
			},
		},
		{
			name:    "Palavra-chave vazia",
			keyword: "",
			setup:   func() {},
			validate: func(t *testing.T, report *domain.DomainHistoryReport, err error) {
				assert.True(t, errors.Is(err, ErrInvalidInput))
			},
		},
		{
			name:    "Erro do repositório é propagado",
			keyword: "seo tools",
			setup: func() {
				mockSnapshotRepo.EXPECT().
					ListByKeyword(ctx, "seo tools", nil).
					Return(nil, errors.New("connection refused"))
			},
			validate: func(t *testing.T, report *domain.DomainHistoryReport, err error) {
				assert.EqualError(t, err, "connection refused")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			report, err := service.GetDomainHistories(ctx, tt.keyword, tt.filters)
			tt.validate(t, report, err)
		})
	}
}

func TestService_CompareSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)
	service := NewService(DefaultEngine(), mockSnapshotRepo)
	ctx := context.Background()

	stored := []domain.Snapshot{
		snapshotAt(day(0), organic("a.com", 1), organic("b.com", 2)),
		snapshotAt(day(1), organic("a.com", 2), organic("b.com", 1)),
		snapshotAt(day(2), organic("a.com", 3), organic("c.com", 1)),
	}

	tests := []struct {
		name     string
		from     *time.Time
		to       *time.Time
		setup    func()
		validate func(t *testing.T, diff *domain.SnapshotDiff, err error)
	}{
		{
			name: "Sem datas compara os dois mais recentes",
			setup: func() {
				mockSnapshotRepo.EXPECT().
					GetLatest(ctx, "seo tools", 2).
					Return(stored[1:], nil)
			},
			validate: func(t *testing.T, diff *domain.SnapshotDiff, err error) {
				require.NoError(t, err)
				assert.Equal(t, day(1), diff.FromTimestamp)
				assert.Equal(t, day(2), diff.ToTimestamp)
				assert.Equal(t, []domain.NewDomain{{Domain: "c.com", Rank: 1, Title: "Title c.com"}}, diff.NewDomains)
			},
		},
		{
			name: "Apenas um snapshot armazenado",
			setup: func() {
				mockSnapshotRepo.EXPECT().
					GetLatest(ctx, "seo tools", 2).
					Return(stored[:1], nil)
			},
			validate: func(t *testing.T, diff *domain.SnapshotDiff, err error) {
				assert.Nil(t, diff)
				assert.True(t, errors.Is(err, ErrInsufficientData))
			},
		},
		{
			name: "Datas explícitas",
			from: timePtr(day(0)),
			to:   timePtr(day(2)),
			setup: func() {
				mockSnapshotRepo.EXPECT().
					ListByKeyword(ctx, "seo tools", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, filters *domain.SnapshotFilters) ([]domain.Snapshot, error) {
						assert.Equal(t, day(0), *filters.StartDate)
						assert.Equal(t, day(2), *filters.EndDate)
						return stored, nil
					})
			},
			validate: func(t *testing.T, diff *domain.SnapshotDiff, err error) {
				require.NoError(t, err)
				assert.Equal(t, day(0), diff.FromTimestamp)
				assert.Equal(t, day(2), diff.ToTimestamp)
				assert.Equal(t, []domain.LostDomain{{Domain: "b.com", PreviousRank: 2, Title: "Title b.com"}}, diff.LostDomains)
			},
		},
		{
			name: "Data sem snapshot",
			from: timePtr(day(0)),
			to:   timePtr(day(0).Add(time.Hour)),
			setup: func() {
				mockSnapshotRepo.EXPECT().
					ListByKeyword(ctx, "seo tools", gomock.Any()).
					Return(stored[:1], nil)
			},
			validate: func(t *testing.T, diff *domain.SnapshotDiff, err error) {
				assert.True(t, errors.Is(err, ErrInvalidInput))
			},
		},
		{
			name:  "Datas invertidas",
			from:  timePtr(day(2)),
			to:    timePtr(day(0)),
			setup: func() {},
			validate: func(t *testing.T, diff *domain.SnapshotDiff, err error) {
				assert.True(t, errors.Is(err, ErrInconsistentOrdering))
			},
		},
		{
			name:  "Apenas uma data informada",
			from:  timePtr(day(0)),
			setup: func() {},
			validate: func(t *testing.T, diff *domain.SnapshotDiff, err error) {
				assert.True(t, errors.Is(err, ErrInvalidInput))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			diff, err := service.CompareSnapshots(ctx, "seo tools", tt.from, tt.to)
			tt.validate(t, diff, err)
		})
	}
}

func TestService_GetFeatureCounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)
	service := NewService(DefaultEngine(), mockSnapshotRepo)
	ctx := context.Background()

	mockSnapshotRepo.EXPECT().
		ListByKeyword(ctx, "seo tools", nil).
		Return([]domain.Snapshot{
			snapshotAt(day(0), feature("featured_snippet")),
			snapshotAt(day(1), feature("featured_snippet"), feature("video")),
		}, nil)

	counts, err := service.GetFeatureCounts(ctx, "seo tools", nil)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"featured_snippet": 2, "video": 1}, counts)
}
