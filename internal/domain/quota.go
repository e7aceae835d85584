package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type DailyQuota struct {
	Quota        decimal.Decimal `json:"quota"`
	StretchQuota decimal.Decimal `json:"stretch_quota"`
}

type DailyQuotaView struct {
	StoreID        string          `json:"store_id"`
	CollaboratorID string          `json:"collaborator_id"`
	Date           string          `json:"date"`
	Mode           string          `json:"mode"`
	BaseQuota      decimal.Decimal `json:"base_quota"`
	AdjustedQuota  decimal.Decimal `json:"adjusted_quota"`
	StretchQuota   decimal.Decimal `json:"stretch_quota"`
	ExpectedToDate decimal.Decimal `json:"expected_to_date"`
	RealizedToDate decimal.Decimal `json:"realized_to_date"`
	RemainingDays  int             `json:"remaining_days"`
	ComputedAt     time.Time       `json:"computed_at"`

	// Falso quando a loja é estática ou o livro de vendas não respondeu
	PerformanceAvailable bool `json:"performance_available"`
}

type StoreDailyQuotasResponse struct {
	StoreID string            `json:"store_id"`
	Date    string            `json:"date"`
	Quotas  []*DailyQuotaView `json:"quotas"`
}
