// Package redistributing transfere a cota do dia dos colaboradores ausentes para os presentes,
// incrementando de forma permanente a meta mensal de cada colaborador ativo.
package redistributing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/store-goals-api/infrastructure/repository"
	"github.com/vfg2006/store-goals-api/internal/domain"
	"github.com/vfg2006/store-goals-api/internal/usecases/quota"
	"github.com/vfg2006/store-goals-api/pkg/apiErrors"
	"github.com/vfg2006/store-goals-api/pkg/log"
	"github.com/vfg2006/store-goals-api/pkg/utils"
)

type Redistributor interface {
	Redistribute(ctx context.Context, storeID string, absenceDate time.Time) (*domain.RedistributionResult, error)
}

type Service struct {
	goalRepository           repository.GoalRepository
	absenceRepository        repository.AbsenceRepository
	collaboratorRepository   repository.CollaboratorRepository
	redistributionRepository repository.RedistributionLogRepository
	collaboratorRole         string
	now                      func() time.Time
}

func NewService(
	goalRepository repository.GoalRepository,
	absenceRepository repository.AbsenceRepository,
	collaboratorRepository repository.CollaboratorRepository,
	redistributionRepository repository.RedistributionLogRepository,
	collaboratorRole string,
) *Service {
	return &Service{
		goalRepository:           goalRepository,
		absenceRepository:        absenceRepository,
		collaboratorRepository:   collaboratorRepository,
		redistributionRepository: redistributionRepository,
		collaboratorRole:         collaboratorRole,
		now:                      time.Now,
	}
}

// pool acumula a cota do dia (e a cota desafio) a ser dividida entre os presentes
type pool struct {
	quota   decimal.Decimal
	stretch decimal.Decimal
}

func (p *pool) add(q domain.DailyQuota) {
	p.quota = p.quota.Add(q.Quota)
	p.stretch = p.stretch.Add(q.StretchQuota)
}

// Redistribute não é idempotente: cada chamada aplica um novo incremento nas metas.
func (s *Service) Redistribute(ctx context.Context, storeID string, absenceDate time.Time) (*domain.RedistributionResult, error) {
	logger := log.ForStore(ctx, storeID).WithField("absence_date", absenceDate.Format(time.DateOnly))

	result := &domain.RedistributionResult{
		Success: false,
		Skipped: make([]domain.SkippedCollaborator, 0),
	}

	month := quota.MonthOf(absenceDate)
	daysInMonth, err := quota.DaysInMonth(month)
	if err != nil {
		return result, quota.NewGoalError(err, apiErrors.ErrInvalidPeriod, storeID, "Data de ausência inválida")
	}

	roster, err := s.collaboratorRepository.ListActive(ctx, storeID, s.collaboratorRole)
	if err != nil {
		logger.WithError(err).Error("redistribution: erro ao buscar colaboradores ativos")
		return result, quota.NewGoalError(quota.ErrPersistence, apiErrors.ErrDatabaseOperation, storeID, "Erro ao buscar colaboradores da loja")
	}

	absences, err := s.absenceRepository.ListByDate(ctx, storeID, absenceDate)
	if err != nil {
		logger.WithError(err).Error("redistribution: erro ao buscar ausências")
		return result, quota.NewGoalError(quota.ErrPersistence, apiErrors.ErrDatabaseOperation, storeID, "Erro ao buscar ausências do dia")
	}

	absentIDs := absentCollaborators(absences)
	active := make([]*domain.Collaborator, 0, len(roster))
	for _, collaborator := range roster {
		if _, absent := absentIDs[collaborator.ID]; !absent {
			active = append(active, collaborator)
		}
	}

	if len(active) == 0 {
		logger.WithField("absent_count", len(absentIDs)).Warn("redistribution: nenhum colaborador ativo, nada será alterado")
		return result, quota.NewGoalError(quota.ErrNoActiveCollaborators, apiErrors.ErrNoActiveCollaborators, storeID, "Todos os colaboradores estão ausentes")
	}

	goals, err := s.goalRepository.ListIndividualGoals(ctx, storeID, month)
	if err != nil {
		logger.WithError(err).Error("redistribution: erro ao buscar metas individuais")
		return result, quota.NewGoalError(quota.ErrPersistence, apiErrors.ErrDatabaseOperation, storeID, "Erro ao buscar metas individuais")
	}

	total, err := s.buildPool(ctx, storeID, month, absenceDate, daysInMonth, absentIDs, goals)
	if err != nil {
		return result, err
	}

	activeCount := decimal.NewFromInt(int64(len(active)))
	share := total.quota.Div(activeCount)
	stretchShare := total.stretch.Div(activeCount)

	logger.WithFields(log.Fields{
		"absent_count": len(absentIDs),
		"active_count": len(active),
		"quota_pool":   total.quota.String(),
		"share":        share.String(),
	}).Info("redistribution: iniciando redistribuição")

	for _, collaborator := range active {
		skipped := s.applyShare(ctx, storeID, collaborator.ID, goals[collaborator.ID], absenceDate, daysInMonth, share, stretchShare)
		if skipped != nil {
			result.Skipped = append(result.Skipped, *skipped)
			continue
		}
		result.CollaboratorsUpdated++
	}

	result.Success = result.CollaboratorsUpdated > 0

	s.saveLog(ctx, &domain.RedistributionLog{
		StoreID:              storeID,
		AbsenceDate:          absenceDate,
		AbsentCount:          len(absentIDs),
		ActiveCount:          len(active),
		QuotaPool:            utils.RoundMoney(total.quota),
		StretchPool:          utils.RoundMoney(total.stretch),
		Share:                utils.RoundMoney(share),
		CollaboratorsUpdated: result.CollaboratorsUpdated,
	})

	logger.WithFields(log.Fields{
		"collaborators_updated": result.CollaboratorsUpdated,
		"skipped":               len(result.Skipped),
	}).Info("redistribution: redistribuição concluída")

	return result, nil
}

// buildPool soma a cota base da loja com a cota base de cada ausente que possui meta individual
func (s *Service) buildPool(
	ctx context.Context,
	storeID, month string,
	absenceDate time.Time,
	daysInMonth int,
	absentIDs map[string]struct{},
	goals map[string]*domain.MonthlyGoal,
) (pool, error) {
	logger := log.ForStore(ctx, storeID)
	total := pool{quota: decimal.Zero, stretch: decimal.Zero}

	storeGoal, err := s.goalRepository.GetStoreGoal(ctx, storeID, month)
	if err != nil {
		logger.WithError(err).Error("redistribution: erro ao buscar meta da loja")
		return total, quota.NewGoalError(quota.ErrPersistence, apiErrors.ErrDatabaseOperation, storeID, "Erro ao buscar meta da loja")
	}
	if storeGoal != nil {
		storeQuota, err := quota.ComputeBaseQuota(storeGoal, absenceDate, daysInMonth)
		if err != nil {
			return total, quota.NewGoalError(err, apiErrors.ErrInvalidPeriod, storeID, "Erro ao calcular cota da loja")
		}
		total.add(storeQuota)
	} else {
		logger.WithField("month", month).Warn("redistribution: loja sem meta no mês, pool parte de zero")
	}

	for collaboratorID := range absentIDs {
		goal, ok := goals[collaboratorID]
		if !ok {
			continue
		}
		absentQuota, err := quota.ComputeBaseQuota(goal, absenceDate, daysInMonth)
		if err != nil {
			return total, quota.NewCollaboratorGoalError(err, apiErrors.ErrInvalidPeriod, storeID, collaboratorID, "Erro ao calcular cota do ausente")
		}
		total.add(absentQuota)
	}

	return total, nil
}

// applyShare converte a parcela do dia em incremento mensal e persiste. Retorna o motivo quando o colaborador é ignorado.
func (s *Service) applyShare(
	ctx context.Context,
	storeID, collaboratorID string,
	goal *domain.MonthlyGoal,
	absenceDate time.Time,
	daysInMonth int,
	share, stretchShare decimal.Decimal,
) *domain.SkippedCollaborator {
	logger := log.ForStore(ctx, storeID).WithField("collaborator_id", collaboratorID)

	if goal == nil {
		logger.Warn("redistribution: colaborador sem meta individual, ignorado")
		return &domain.SkippedCollaborator{CollaboratorID: collaboratorID, Reason: quota.ErrMissingGoal.Error()}
	}

	target, err := quota.MonthlyIncrement(goal, absenceDate, daysInMonth, share)
	if err != nil {
		logger.WithError(err).Warn("redistribution: fator do dia inválido, colaborador ignorado")
		return &domain.SkippedCollaborator{CollaboratorID: collaboratorID, Reason: quota.ErrZeroFactor.Error()}
	}
	stretchTarget, err := quota.MonthlyIncrement(goal, absenceDate, daysInMonth, stretchShare)
	if err != nil {
		logger.WithError(err).Warn("redistribution: fator do dia inválido, colaborador ignorado")
		return &domain.SkippedCollaborator{CollaboratorID: collaboratorID, Reason: quota.ErrZeroFactor.Error()}
	}

	increment := domain.GoalIncrement{
		GoalID:         goal.ID,
		CollaboratorID: collaboratorID,
		Target:         target,
		StretchTarget:  stretchTarget,
	}

	if err := s.goalRepository.ApplyIncrement(ctx, increment); err != nil {
		logger.WithError(err).Error("redistribution: erro ao persistir incremento da meta")
		return &domain.SkippedCollaborator{CollaboratorID: collaboratorID, Reason: quota.ErrPersistence.Error()}
	}

	logger.WithField("increment", increment.Target.StringFixed(2)).Debug("redistribution: meta incrementada")

	return nil
}

func (s *Service) saveLog(ctx context.Context, entry *domain.RedistributionLog) {
	id, err := utils.GenerateID()
	if err != nil {
		log.ForStore(ctx, entry.StoreID).WithError(err).Error("redistribution: erro ao gerar id do registro")
		return
	}
	entry.ID = id
	entry.CreatedAt = s.now()

	if err := s.redistributionRepository.Save(ctx, entry); err != nil {
		log.ForStore(ctx, entry.StoreID).WithError(err).Error("redistribution: erro ao salvar registro de auditoria")
	}
}

func absentCollaborators(absences []*domain.AbsenceRecord) map[string]struct{} {
	ids := make(map[string]struct{}, len(absences))
	for _, absence := range absences {
		ids[absence.CollaboratorID] = struct{}{}
	}
	return ids
}
