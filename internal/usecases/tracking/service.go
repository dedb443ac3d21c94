package tracking

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/serp-tracker-api/infrastructure/repository"
	"github.com/vfg2006/serp-tracker-api/internal/domain"
)

// Tracker define as operações de análise de SERP expostas para a camada HTTP
type Tracker interface {
	// GetDomainHistories monta o histórico por domínio dos snapshots armazenados da palavra-chave
	GetDomainHistories(ctx context.Context, keyword string, filters *domain.SnapshotFilters) (*domain.DomainHistoryReport, error)

	// CompareSnapshots compara dois snapshots armazenados. Sem datas, usa os dois mais recentes.
	CompareSnapshots(ctx context.Context, keyword string, from, to *time.Time) (*domain.SnapshotDiff, error)

	// GetFeatureCounts conta os rich results dos snapshots armazenados
	GetFeatureCounts(ctx context.Context, keyword string, filters *domain.SnapshotFilters) (map[string]int, error)

	BuildDomainHistories(snapshots []domain.Snapshot) []domain.DomainHistory
	DiffSnapshots(from, to domain.Snapshot) (*domain.SnapshotDiff, error)
	AggregateFeatures(snapshots []domain.Snapshot) map[string]int
}

type Service struct {
	engine             *Engine
	snapshotRepository repository.SnapshotRepository
}

func NewService(engine *Engine, snapshotRepository repository.SnapshotRepository) Tracker {
	return &Service{
		engine:             engine,
		snapshotRepository: snapshotRepository,
	}
}

func (s *Service) GetDomainHistories(ctx context.Context, keyword string, filters *domain.SnapshotFilters) (*domain.DomainHistoryReport, error) {
	snapshots, err := s.loadSnapshots(ctx, keyword, filters)
	if err != nil {
		return nil, err
	}

	return &domain.DomainHistoryReport{
		Keyword:       keyword,
		SnapshotCount: len(snapshots),
		Domains:       s.BuildDomainHistories(snapshots),
		Features:      s.engine.AggregateFeatures(snapshots),
	}, nil
}

func (s *Service) CompareSnapshots(ctx context.Context, keyword string, from, to *time.Time) (*domain.SnapshotDiff, error) {
	if keyword == "" {
		return nil, NewAnalysisError(ErrInvalidInput, "keyword is required")
	}

	if (from == nil) != (to == nil) {
		return nil, NewAnalysisErrorWithKeyword(ErrInvalidInput, keyword, "both from and to are required when one is informed")
	}

	if from == nil {
		return s.compareLatest(ctx, keyword)
	}

	if from.After(*to) {
		return nil, NewAnalysisErrorWithKeyword(ErrInconsistentOrdering, keyword, fmt.Sprintf(
			"from=%s to=%s", from.Format(time.RFC3339), to.Format(time.RFC3339),
		))
	}

	snapshots, err := s.snapshotRepository.ListByKeyword(ctx, keyword, &domain.SnapshotFilters{
		StartDate: from,
		EndDate:   to,
	})
	if err != nil {
		logrus.WithError(err).WithField("keyword", keyword).Error("tracking: failed to load snapshots for comparison")
		return nil, err
	}

	fromSnapshot, found := findSnapshot(snapshots, *from)
	if !found {
		return nil, NewAnalysisErrorWithKeyword(ErrInvalidInput, keyword, "no snapshot at "+from.Format(time.RFC3339))
	}

	toSnapshot, found := findSnapshot(snapshots, *to)
	if !found {
		return nil, NewAnalysisErrorWithKeyword(ErrInvalidInput, keyword, "no snapshot at "+to.Format(time.RFC3339))
	}

	return s.engine.DiffSnapshots(fromSnapshot, toSnapshot)
}

// compareLatest compara os dois snapshots mais recentes da palavra-chave
func (s *Service) compareLatest(ctx context.Context, keyword string) (*domain.SnapshotDiff, error) {
	snapshots, err := s.snapshotRepository.GetLatest(ctx, keyword, 2)
	if err != nil {
		logrus.WithError(err).WithField("keyword", keyword).Error("tracking: failed to load latest snapshots")
		return nil, err
	}

	if len(snapshots) < 2 {
		return nil, NewAnalysisErrorWithKeyword(ErrInsufficientData, keyword, fmt.Sprintf("got %d snapshot(s)", len(snapshots)))
	}

	return s.engine.DiffRange(snapshots)
}

func (s *Service) GetFeatureCounts(ctx context.Context, keyword string, filters *domain.SnapshotFilters) (map[string]int, error) {
	snapshots, err := s.loadSnapshots(ctx, keyword, filters)
	if err != nil {
		return nil, err
	}

	return s.engine.AggregateFeatures(snapshots), nil
}

func (s *Service) BuildDomainHistories(snapshots []domain.Snapshot) []domain.DomainHistory {
	return SortHistories(s.engine.BuildDomainHistories(snapshots))
}

func (s *Service) DiffSnapshots(from, to domain.Snapshot) (*domain.SnapshotDiff, error) {
	return s.engine.DiffSnapshots(from, to)
}

func (s *Service) AggregateFeatures(snapshots []domain.Snapshot) map[string]int {
	return s.engine.AggregateFeatures(snapshots)
}

func (s *Service) loadSnapshots(ctx context.Context, keyword string, filters *domain.SnapshotFilters) ([]domain.Snapshot, error) {
	if keyword == "" {
		return nil, NewAnalysisError(ErrInvalidInput, "keyword is required")
	}

	if filters != nil && filters.StartDate != nil && filters.EndDate != nil && filters.StartDate.After(*filters.EndDate) {
		return nil, NewAnalysisErrorWithKeyword(ErrInconsistentOrdering, keyword, "start_date is after end_date")
	}

	snapshots, err := s.snapshotRepository.ListByKeyword(ctx, keyword, filters)
	if err != nil {
		logrus.WithError(err).WithField("keyword", keyword).Error("tracking: failed to load snapshots")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"keyword":   keyword,
		"snapshots": len(snapshots),
	}).Debug("tracking: snapshots loaded")

	return snapshots, nil
}

func findSnapshot(snapshots []domain.Snapshot, timestamp time.Time) (domain.Snapshot, bool) {
	for _, snapshot := range snapshots {
		if snapshot.Timestamp.Equal(timestamp) {
			return snapshot, true
		}
	}
	return domain.Snapshot{}, false
}
