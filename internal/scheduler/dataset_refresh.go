package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/engagement-insights/infrastructure/loader"
	"github.com/vfg2006/engagement-insights/internal/config"
)

// DatasetRefreshConfig representa a configuração do agendador de recarga do dataset
type DatasetRefreshConfig struct {
	CronSchedule string
	InputPath    string
	SyncEnabled  bool
}

// DatasetRefreshService recarrega o dataset em cache quando o arquivo de origem muda
type DatasetRefreshService struct {
	scheduler           *gocron.Scheduler
	config              DatasetRefreshConfig
	cache               loader.Cache
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReloadAt        time.Time
	lastError           string
	reloads             int
}

// NewDatasetRefreshService cria uma nova instância do serviço de recarga do dataset
func NewDatasetRefreshService(cache loader.Cache, appConfig *config.Config) *DatasetRefreshService {
	refreshConfig := DatasetRefreshConfig{
		CronSchedule: appConfig.DatasetRefresh.CronSchedule,
		InputPath:    appConfig.Dataset.InputPath,
		SyncEnabled:  appConfig.DatasetRefresh.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"input_path":    refreshConfig.InputPath,
		"sync_enabled":  refreshConfig.SyncEnabled,
	}).Info("Configuração do agendador de recarga do dataset carregada")

	return &DatasetRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    refreshConfig,
		cache:     cache,
	}
}

// Start inicia o agendador
func (s *DatasetRefreshService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Recarga do dataset desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recarga do dataset")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshDataset(false)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga do dataset: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recarga do dataset")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshDataset recarrega o dataset se o arquivo mudou. Com force, recarrega sempre.
// Retorna true quando o cache foi renovado.
func (s *DatasetRefreshService) refreshDataset(force bool) bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recarga do dataset já em andamento, ignorando")
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	reloaded, err := s.reload(force)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	if err != nil {
		s.lastError = err.Error()
	} else {
		s.lastError = ""
	}
	if reloaded {
		s.lastReloadAt = s.lastSyncCompletedAt
		s.reloads++
	}
	s.syncMutex.Unlock()

	return reloaded
}

func (s *DatasetRefreshService) reload(force bool) (bool, error) {
	path := s.config.InputPath

	if !force {
		stale, err := s.cache.Stale(path)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"path":  path,
				"error": err.Error(),
			}).Error("Erro ao verificar o arquivo do dataset")
			return false, err
		}
		if !stale {
			logrus.WithField("path", path).Debug("Dataset inalterado, mantendo cache")
			return false, nil
		}
	}

	startTime := time.Now()
	s.cache.Invalidate(path)

	ds, err := s.cache.Load(path)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"path":  path,
			"error": err.Error(),
		}).Error("Erro ao recarregar o dataset")
		return false, err
	}

	logrus.WithFields(logrus.Fields{
		"path":     path,
		"rows":     ds.Len(),
		"warnings": len(s.cache.Warnings(path)),
		"duration": time.Since(startTime).String(),
	}).Info("Dataset recarregado")

	return true, nil
}

// TriggerManualSync força a recarga do dataset em segundo plano
func (s *DatasetRefreshService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recarga do dataset já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando recarga manual do dataset")
	go s.refreshDataset(true)
}

// GetStatus retorna o status atual do agendador
func (s *DatasetRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"input_path":             s.config.InputPath,
		"sync_running":           s.syncRunning,
		"reloads":                s.reloads,
		"last_error":             s.lastError,
		"last_reload_at":         s.lastReloadAt,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
