// Package scheduler contém os serviços agendados da API de metas
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-goals-api/infrastructure/repository"
	"github.com/vfg2006/store-goals-api/internal/config"
	"github.com/vfg2006/store-goals-api/internal/usecases/goaling"
	"github.com/vfg2006/store-goals-api/internal/usecases/quota"
	"github.com/vfg2006/store-goals-api/internal/usecases/redistributing"
	"github.com/vfg2006/store-goals-api/pkg/log"
	"github.com/vfg2006/store-goals-api/pkg/utils"
)

var ErrRunInProgress = errors.New("redistribuição de ausências já em execução")

type AbsenceRedistributionConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// RunSummary resume uma execução sobre todas as lojas com ausências no dia
type RunSummary struct {
	Date                 string   `json:"date"`
	StoresProcessed      int      `json:"stores_processed"`
	CollaboratorsUpdated int      `json:"collaborators_updated"`
	FailedStores         []string `json:"failed_stores"`
}

type AbsenceRedistributionService struct {
	scheduler         *gocron.Scheduler
	absenceRepo       repository.AbsenceRepository
	redistributor     redistributing.Redistributor
	invalidator       goaling.StoreInvalidator
	config            AbsenceRedistributionConfig
	location          *time.Location
	now               func() time.Time
	syncRunning       bool
	syncMutex         sync.Mutex
	lastRunStartedAt  time.Time
	lastRunFinishedAt time.Time
	lastSummary       *RunSummary
}

func NewAbsenceRedistributionService(
	absenceRepo repository.AbsenceRepository,
	redistributor redistributing.Redistributor,
	invalidator goaling.StoreInvalidator,
	cfg *config.Config,
) *AbsenceRedistributionService {
	redistributionConfig := AbsenceRedistributionConfig{
		CronSchedule: cfg.AbsenceRedistribution.CronSchedule,
		SyncEnabled:  cfg.AbsenceRedistribution.Enabled,
	}

	location := cfg.Location()

	logrus.WithFields(logrus.Fields{
		"cron_schedule": redistributionConfig.CronSchedule,
		"timezone":      location.String(),
	}).Info("Configuração do agendador de redistribuição de ausências carregada")

	return &AbsenceRedistributionService{
		scheduler:     gocron.NewScheduler(location),
		absenceRepo:   absenceRepo,
		redistributor: redistributor,
		invalidator:   invalidator,
		config:        redistributionConfig,
		location:      location,
		now:           time.Now,
	}
}

func (s *AbsenceRedistributionService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de redistribuição de ausências desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de redistribuição de ausências")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunForDate(context.Background(), utils.Today(s.now(), s.location)); err != nil {
			logrus.WithError(err).Error("Erro na redistribuição agendada de ausências")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar redistribuição de ausências: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de redistribuição de ausências")
		s.scheduler.Stop()
	}()

	return nil
}

// RunForDate redistribui as ausências de todas as lojas na data. Não é idempotente:
// executar duas vezes para a mesma data aplica os incrementos duas vezes.
func (s *AbsenceRedistributionService) RunForDate(ctx context.Context, date time.Time) (*RunSummary, error) {
	if !s.claimRun() {
		logrus.Warn("Redistribuição de ausências já está em execução")
		return nil, ErrRunInProgress
	}

	return s.run(ctx, date)
}

func (s *AbsenceRedistributionService) claimRun() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastRunStartedAt = s.now()
	return true
}

// run executa uma redistribuição já reservada por claimRun e libera a reserva ao final
func (s *AbsenceRedistributionService) run(ctx context.Context, date time.Time) (*RunSummary, error) {
	summary := &RunSummary{
		Date:         date.Format(time.DateOnly),
		FailedStores: make([]string, 0),
	}

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastRunFinishedAt = s.now()
		s.lastSummary = summary
		s.syncMutex.Unlock()
	}()

	logger := log.ForContext(ctx).WithField("absence_date", summary.Date)
	logger.Info("Iniciando redistribuição de ausências")

	storeIDs, err := s.absenceRepo.ListStoresWithAbsences(ctx, date)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar lojas com ausências")
		return summary, fmt.Errorf("erro ao buscar lojas com ausências: %w", err)
	}

	if len(storeIDs) == 0 {
		logger.Info("Nenhuma ausência registrada para a data")
		return summary, nil
	}

	for _, storeID := range storeIDs {
		result, err := s.redistributor.Redistribute(ctx, storeID, date)
		summary.StoresProcessed++

		if result != nil && result.CollaboratorsUpdated > 0 {
			summary.CollaboratorsUpdated += result.CollaboratorsUpdated
			s.invalidator.InvalidateStore(storeID)
		}

		if err != nil {
			summary.FailedStores = append(summary.FailedStores, storeID)
			entry := log.ForStore(ctx, storeID).WithError(err)
			if errors.Is(err, quota.ErrNoActiveCollaborators) {
				entry.Warn("Loja sem colaboradores presentes, redistribuição ignorada")
			} else {
				entry.Error("Erro ao redistribuir ausências da loja")
			}
		}
	}

	logger.WithFields(log.Fields{
		"stores_processed":      summary.StoresProcessed,
		"collaborators_updated": summary.CollaboratorsUpdated,
		"failed_stores":         len(summary.FailedStores),
	}).Info("Redistribuição de ausências concluída")

	return summary, nil
}

// TriggerManualSync inicia em segundo plano a redistribuição do dia informado.
// Retorna ErrRunInProgress quando já existe uma execução em andamento.
func (s *AbsenceRedistributionService) TriggerManualSync(date time.Time) error {
	if !s.claimRun() {
		logrus.Info("Redistribuição de ausências já em andamento, ignorando solicitação manual")
		return ErrRunInProgress
	}

	logrus.WithField("absence_date", date.Format(time.DateOnly)).Info("Iniciando redistribuição manual de ausências")
	go func() {
		if _, err := s.run(context.Background(), date); err != nil {
			logrus.WithError(err).Error("Erro na redistribuição manual de ausências")
		}
	}()

	return nil
}

// Today retorna o dia corrente no fuso configurado
func (s *AbsenceRedistributionService) Today() time.Time {
	return utils.Today(s.now(), s.location)
}

// GetStatus retorna o status atual do agendador
func (s *AbsenceRedistributionService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":         s.config.SyncEnabled,
		"sync_cron":            s.config.CronSchedule,
		"running":              s.syncRunning,
		"last_run_started_at":  s.lastRunStartedAt,
		"last_run_finished_at": s.lastRunFinishedAt,
		"last_summary":         s.lastSummary,
	}
}
