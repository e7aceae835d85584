package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RedistributionRequest struct {
	Date string `json:"date"` // Formato yyyy-mm-dd
}

type SkippedCollaborator struct {
	CollaboratorID string `json:"collaborator_id"`
	Reason         string `json:"reason"`
}

type RedistributionResult struct {
	Success              bool                  `json:"success"`
	CollaboratorsUpdated int                   `json:"collaborators_updated"`
	Skipped              []SkippedCollaborator `json:"skipped,omitempty"`
}

// RedistributionLog é o registro de auditoria de uma execução de redistribuição
type RedistributionLog struct {
	ID                   string          `json:"id"`
	StoreID              string          `json:"store_id"`
	AbsenceDate          time.Time       `json:"absence_date"`
	AbsentCount          int             `json:"absent_count"`
	ActiveCount          int             `json:"active_count"`
	QuotaPool            decimal.Decimal `json:"quota_pool"`
	StretchPool          decimal.Decimal `json:"stretch_pool"`
	Share                decimal.Decimal `json:"share"`
	CollaboratorsUpdated int             `json:"collaborators_updated"`
	CreatedAt            time.Time       `json:"created_at"`
}
