package dataforseo

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/serp-tracker-api/infrastructure/integrator/dataforseo/dataforseoclient"
	dataforseodomain "github.com/vfg2006/serp-tracker-api/infrastructure/integrator/dataforseo/domain"
	"github.com/vfg2006/serp-tracker-api/internal/config"
	"github.com/vfg2006/serp-tracker-api/internal/domain"
)

// SerpProvider busca o histórico de SERPs de uma palavra-chave no provedor
type SerpProvider interface {
	FetchSnapshots(ctx context.Context, keyword string, filters *domain.SnapshotFilters) ([]domain.Snapshot, error)
}

type DataForSEOIntegrator struct {
	cfg    *config.Config
	Client dataforseoclient.Client
}

func New(cfg *config.Config, client dataforseoclient.Client) *DataForSEOIntegrator {
	return &DataForSEOIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *DataForSEOIntegrator) FetchSnapshots(ctx context.Context, keyword string, filters *domain.SnapshotFilters) ([]domain.Snapshot, error) {
	task := dataforseodomain.HistoricalSerpsTask{
		Keyword:      keyword,
		LocationCode: s.cfg.SnapshotSync.LocationCode,
		LanguageCode: s.cfg.SnapshotSync.LanguageCode,
	}

	if filters != nil {
		if filters.StartDate != nil {
			task.DateFrom = filters.StartDate.Format(time.DateOnly)
		}
		if filters.EndDate != nil {
			task.DateTo = filters.EndDate.Format(time.DateOnly)
		}
	}

	result, err := s.Client.GetHistoricalSerps(ctx, task)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"keyword": keyword,
			"error":   err.Error(),
		}).Error("serp sync: failed to get historical serps from provider")
		return nil, fmt.Errorf("erro ao buscar serps históricas de %q: %w", keyword, err)
	}

	snapshots := make([]domain.Snapshot, 0, len(result.Items))
	for _, crawl := range result.Items {
		snapshot, err := FactorySnapshot(keyword, crawl)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"keyword":  keyword,
				"datetime": crawl.Datetime,
				"error":    err.Error(),
			}).Warn("serp sync: skipping crawl with invalid datetime")
			continue
		}

		snapshots = append(snapshots, *snapshot)
	}

	sort.SliceStable(snapshots, func(i, j int) bool {
		return snapshots[i].Timestamp.Before(snapshots[j].Timestamp)
	})

	logrus.WithFields(logrus.Fields{
		"keyword":   keyword,
		"snapshots": len(snapshots),
	}).Debug("serp sync: successfully retrieved historical serps")

	return snapshots, nil
}

// FactorySnapshot converte uma captura da DataForSEO em Snapshot. Itens sem tipo são
// descartados; tudo que não é organic ou paid vira feature.
func FactorySnapshot(keyword string, crawl dataforseodomain.SerpCrawl) (*domain.Snapshot, error) {
	timestamp, err := time.Parse(dataforseodomain.DateTimeLayout, crawl.Datetime)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.SerpEntry, 0, len(crawl.Items))
	for _, item := range crawl.Items {
		itemType := strings.ToLower(strings.TrimSpace(item.Type))

		switch itemType {
		case "":
			continue
		case dataforseodomain.ItemTypeOrganic, dataforseodomain.ItemTypePaid:
			entryType := domain.EntryTypeOrganic
			if itemType == dataforseodomain.ItemTypePaid {
				entryType = domain.EntryTypePaid
			}

			entries = append(entries, domain.SerpEntry{
				Type:         entryType,
				Domain:       item.Domain,
				URL:          item.URL,
				Title:        item.Title,
				Description:  item.Description,
				RankAbsolute: item.RankAbsolute,
				RankGroup:    item.RankGroup,
				ETV:          item.ETV,
			})
		default:
			entries = append(entries, domain.SerpEntry{
				Type:         domain.EntryTypeFeature,
				FeatureType:  itemType,
				RankAbsolute: item.RankAbsolute,
				RankGroup:    item.RankGroup,
			})
		}
	}

	itemCount := crawl.ItemsCount
	if itemCount == 0 {
		itemCount = len(entries)
	}

	return &domain.Snapshot{
		Keyword:   keyword,
		Timestamp: timestamp.UTC(),
		Items:     entries,
		ItemCount: itemCount,
	}, nil
}
