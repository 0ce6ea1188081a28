package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-achievement-api/infrastructure/repository"
	"github.com/vfg2006/sales-achievement-api/internal/config"
)

// RetentionConfig representa a configuração da limpeza de dados antigos
type RetentionConfig struct {
	CronSchedule      string
	AchievementMonths int
	BatchDays         int
	Enabled           bool
}

// RetentionResult registra o que a última execução removeu
type RetentionResult struct {
	AchievementsDeleted int64  `json:"achievements_deleted"`
	BatchesDeleted      int64  `json:"batches_deleted"`
	Error               string `json:"error,omitempty"`
}

// RetentionService remove acumulados mensais e lotes de upload mais antigos que a janela configurada
type RetentionService struct {
	scheduler           *gocron.Scheduler
	config              RetentionConfig
	achievementRepo     repository.MonthlyAchievementRepository
	batchRepo           repository.UploadBatchRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          RetentionResult
}

// NewRetentionService cria uma nova instância do serviço de retenção
func NewRetentionService(
	achievementRepo repository.MonthlyAchievementRepository,
	batchRepo repository.UploadBatchRepository,
	appConfig *config.Config,
) *RetentionService {
	retentionConfig := RetentionConfig{
		CronSchedule:      appConfig.Retention.CronSchedule,
		AchievementMonths: appConfig.Retention.AchievementKeep,
		BatchDays:         appConfig.Retention.BatchKeepDays,
		Enabled:           appConfig.Retention.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":      retentionConfig.CronSchedule,
		"achievement_months": retentionConfig.AchievementMonths,
		"batch_days":         retentionConfig.BatchDays,
		"enabled":            retentionConfig.Enabled,
	}).Info("Configuração do agendador de retenção carregada")

	return &RetentionService{
		scheduler:       gocron.NewScheduler(time.Local),
		config:          retentionConfig,
		achievementRepo: achievementRepo,
		batchRepo:       batchRepo,
	}
}

// Start inicia o agendador
func (s *RetentionService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Limpeza de dados antigos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de retenção")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.purge()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de dados antigos: %w", err)
	}

	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de retenção")
		s.scheduler.Stop()
	}()

	return nil
}

// purge executa a limpeza; retorna false quando outra execução já está em andamento
func (s *RetentionService) purge() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Limpeza de dados antigos já em andamento, ignorando")
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	result := RetentionResult{}

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.lastResult = result
		s.syncMutex.Unlock()
	}()

	if s.config.AchievementMonths > 0 {
		deleted, err := s.achievementRepo.DeleteOlderThan(s.config.AchievementMonths)
		if err != nil {
			logrus.WithError(err).Error("Erro ao remover acumulados mensais antigos")
			result.Error = err.Error()
			return true
		}
		result.AchievementsDeleted = deleted
	}

	if s.config.BatchDays > 0 {
		deleted, err := s.batchRepo.DeleteOlderThan(s.config.BatchDays)
		if err != nil {
			logrus.WithError(err).Error("Erro ao remover lotes de upload antigos")
			result.Error = err.Error()
			return true
		}
		result.BatchesDeleted = deleted
	}

	logrus.WithFields(logrus.Fields{
		"achievements_deleted": result.AchievementsDeleted,
		"batches_deleted":      result.BatchesDeleted,
	}).Info("Limpeza de dados antigos concluída")

	return true
}

// TriggerManualSync inicia manualmente uma limpeza; retorna false se já houver uma em andamento
func (s *RetentionService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Limpeza de dados antigos já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando limpeza manual de dados antigos")
	go s.purge()
	return true
}

// GetStatus retorna o status atual da limpeza
func (s *RetentionService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.Enabled,
		"achievement_months":     s.config.AchievementMonths,
		"batch_days":             s.config.BatchDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_result":            s.lastResult,
	}
}
