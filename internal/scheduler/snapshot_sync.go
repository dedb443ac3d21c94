// Package scheduler contém os serviços de agendamento para sincronização de dados
package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vfg2006/serp-tracker-api/infrastructure/integrator/dataforseo"
	"github.com/vfg2006/serp-tracker-api/infrastructure/repository"
	"github.com/vfg2006/serp-tracker-api/internal/config"
	"github.com/vfg2006/serp-tracker-api/internal/domain"
)

const defaultMaxConcurrentJobs = 1

// SnapshotSyncConfig representa a configuração do agendador de snapshots de SERP
type SnapshotSyncConfig struct {
	CronSchedule      string
	Keywords          []string
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// SnapshotSyncResult resume uma execução da sincronização
type SnapshotSyncResult struct {
	Keywords       int      `json:"keywords"`
	SavedSnapshots int64    `json:"saved_snapshots"`
	FailedKeywords []string `json:"failed_keywords"`
}

// SnapshotSyncService busca periodicamente o histórico de SERPs das palavras-chave
// monitoradas e grava os snapshots novos
type SnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              SnapshotSyncConfig
	snapshotRepo        repository.SnapshotRepository
	provider            dataforseo.SerpProvider
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncResult      *SnapshotSyncResult
}

func NewSnapshotSyncService(
	snapshotRepo repository.SnapshotRepository,
	provider dataforseo.SerpProvider,
	appConfig *config.Config,
) *SnapshotSyncService {
	syncConfig := SnapshotSyncConfig{
		CronSchedule:      appConfig.SnapshotSync.CronSchedule,
		Keywords:          appConfig.SnapshotSync.Keywords,
		MaxConcurrentJobs: appConfig.SnapshotSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.SnapshotSync.Enabled,
	}

	if syncConfig.MaxConcurrentJobs <= 0 {
		syncConfig.MaxConcurrentJobs = defaultMaxConcurrentJobs
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"keywords":            len(syncConfig.Keywords),
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots de SERP carregada")

	return &SnapshotSyncService{
		scheduler:    gocron.NewScheduler(time.Local),
		config:       syncConfig,
		snapshotRepo: snapshotRepo,
		provider:     provider,
	}
}

// Start inicia o agendador
func (s *SnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de snapshots de SERP desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de snapshots de SERP")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.UpdateSnapshots(ctx); err != nil {
			logrus.WithError(err).Error("Erro na sincronização de snapshots de SERP")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de snapshots de SERP: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de snapshots de SERP")
		s.scheduler.Stop()
	}()

	return nil
}

// UpdateSnapshots sincroniza todas as palavras-chave configuradas. Falha em uma
// palavra-chave não interrompe as demais; só o cancelamento do contexto aborta a execução.
func (s *SnapshotSyncService) UpdateSnapshots(ctx context.Context) (*SnapshotSyncResult, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots de SERP já em andamento, ignorando")
		return nil, nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	startTime := time.Now()
	result := &SnapshotSyncResult{
		Keywords:       len(s.config.Keywords),
		FailedKeywords: []string{},
	}

	if len(s.config.Keywords) == 0 {
		logrus.Info("Nenhuma palavra-chave configurada para sincronização de snapshots de SERP")
		s.finish(result)
		return result, nil
	}

	var resultMutex sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.MaxConcurrentJobs)

	for _, keyword := range s.config.Keywords {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			saved, err := s.syncKeyword(gctx, keyword)

			resultMutex.Lock()
			defer resultMutex.Unlock()

			if err != nil {
				logrus.WithFields(logrus.Fields{
					"keyword": keyword,
					"error":   err.Error(),
				}).Error("Erro ao sincronizar snapshots de SERP da palavra-chave")
				result.FailedKeywords = append(result.FailedKeywords, keyword)
				return nil
			}

			result.SavedSnapshots += saved
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("sincronização de snapshots de SERP interrompida: %w", err)
	}

	sort.Strings(result.FailedKeywords)

	logrus.WithFields(logrus.Fields{
		"duration":        time.Since(startTime).String(),
		"keywords":        result.Keywords,
		"saved_snapshots": result.SavedSnapshots,
		"failed_keywords": len(result.FailedKeywords),
	}).Info("Sincronização de snapshots de SERP concluída")

	s.finish(result)

	return result, nil
}

// syncKeyword busca a partir do último snapshot gravado. Sem histórico, busca tudo que o
// provedor tiver.
func (s *SnapshotSyncService) syncKeyword(ctx context.Context, keyword string) (int64, error) {
	latest, err := s.snapshotRepo.GetLatest(ctx, keyword, 1)
	if err != nil {
		return 0, fmt.Errorf("erro ao buscar último snapshot: %w", err)
	}

	var filters *domain.SnapshotFilters
	if len(latest) > 0 {
		since := latest[len(latest)-1].Timestamp
		filters = &domain.SnapshotFilters{StartDate: &since}
	}

	snapshots, err := s.provider.FetchSnapshots(ctx, keyword, filters)
	if err != nil {
		return 0, err
	}

	if len(snapshots) == 0 {
		logrus.WithField("keyword", keyword).Debug("Nenhum snapshot novo para a palavra-chave")
		return 0, nil
	}

	saved, err := s.snapshotRepo.SaveSnapshots(ctx, keyword, snapshots)
	if err != nil {
		return 0, fmt.Errorf("erro ao salvar snapshots: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"keyword": keyword,
		"fetched": len(snapshots),
		"saved":   saved,
	}).Info("Snapshots de SERP salvos para a palavra-chave")

	return saved, nil
}

func (s *SnapshotSyncService) finish(result *SnapshotSyncResult) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.lastSyncCompletedAt = time.Now()
	s.lastSyncResult = result
}

// TriggerManualSync inicia manualmente uma sincronização de snapshots de SERP
func (s *SnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots de SERP já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de snapshots de SERP")
	go func() {
		if _, err := s.UpdateSnapshots(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na sincronização manual de snapshots de SERP")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *SnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_keywords":          s.config.Keywords,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_result":       s.lastSyncResult,
	}
}
