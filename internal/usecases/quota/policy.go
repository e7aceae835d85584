package quota

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/store-goals-api/internal/domain"
)

// PolicyMode define como a cota base do dia é ajustada pelo desempenho
type PolicyMode int

const (
	ModeStatic     PolicyMode = iota // Cota base sem ajuste
	ModeDefensive                    // Compensa o déficit nos dias restantes
	ModeAggressive                   // Bonifica quem está à frente do ritmo
	ModeFull                         // Defensivo quando atrás, agressivo quando à frente
)

func (m PolicyMode) String() string {
	switch m {
	case ModeDefensive:
		return "DEFENSIVE"
	case ModeAggressive:
		return "AGGRESSIVE"
	case ModeFull:
		return "FULL"
	default:
		return "STATIC"
	}
}

// PolicyConfig é a configuração de ajuste da loja, resolvida antes do cálculo
type PolicyConfig struct {
	CompensateDeficit bool
	BonusAhead        bool
}

func PolicyConfigFromStore(store *domain.Store) PolicyConfig {
	if store == nil {
		return PolicyConfig{}
	}
	return PolicyConfig{
		CompensateDeficit: store.CompensateDeficit,
		BonusAhead:        store.BonusAhead,
	}
}

func (c PolicyConfig) Mode() PolicyMode {
	switch {
	case c.CompensateDeficit && c.BonusAhead:
		return ModeFull
	case c.CompensateDeficit:
		return ModeDefensive
	case c.BonusAhead:
		return ModeAggressive
	default:
		return ModeStatic
	}
}

// Performance reúne as entradas do ajuste dinâmico de um colaborador em um dia
type Performance struct {
	BaseQuota      decimal.Decimal
	ExpectedToDate decimal.Decimal
	RealizedToDate decimal.Decimal
	RemainingDays  int
}

// Adjuster calcula a cota ajustada do dia. Deve ser puro.
type Adjuster func(p Performance) decimal.Decimal

// ResolveAdjuster resolve o modo uma única vez na função de ajuste correspondente
func ResolveAdjuster(mode PolicyMode) Adjuster {
	switch mode {
	case ModeDefensive:
		return compensateDeficit
	case ModeAggressive:
		return bonusAhead
	case ModeFull:
		return full
	default:
		return static
	}
}

// Adjust aplica a política da configuração sobre o desempenho informado
func (c PolicyConfig) Adjust(p Performance) decimal.Decimal {
	return ResolveAdjuster(c.Mode())(p)
}

func static(p Performance) decimal.Decimal {
	return p.BaseQuota
}

func compensateDeficit(p Performance) decimal.Decimal {
	if !p.RealizedToDate.LessThan(p.ExpectedToDate) {
		return p.BaseQuota
	}

	deficit := p.ExpectedToDate.Sub(p.RealizedToDate)

	// No último dia o déficit inteiro recai sobre o dia
	if p.RemainingDays <= 0 {
		return p.BaseQuota.Add(deficit)
	}

	return p.BaseQuota.Add(deficit.Div(decimal.NewFromInt(int64(p.RemainingDays))))
}

func bonusAhead(p Performance) decimal.Decimal {
	if !p.RealizedToDate.GreaterThan(p.ExpectedToDate) || p.ExpectedToDate.IsZero() {
		return p.BaseQuota
	}

	aheadPct := p.RealizedToDate.Sub(p.ExpectedToDate).Div(p.ExpectedToDate)
	return p.BaseQuota.Mul(decimal.NewFromInt(1).Add(aheadPct))
}

func full(p Performance) decimal.Decimal {
	switch {
	case p.RealizedToDate.LessThan(p.ExpectedToDate):
		return compensateDeficit(p)
	case p.RealizedToDate.GreaterThan(p.ExpectedToDate):
		return bonusAhead(p)
	default:
		return p.BaseQuota
	}
}
