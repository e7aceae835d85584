package quota

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicyConfig_Mode(t *testing.T) {
	assert.Equal(t, ModeStatic, PolicyConfig{}.Mode())
	assert.Equal(t, ModeDefensive, PolicyConfig{CompensateDeficit: true}.Mode())
	assert.Equal(t, ModeAggressive, PolicyConfig{BonusAhead: true}.Mode())
	assert.Equal(t, ModeFull, PolicyConfig{CompensateDeficit: true, BonusAhead: true}.Mode())

	assert.Equal(t, "FULL", ModeFull.String())
	assert.Equal(t, "STATIC", PolicyMode(42).String())
}

func TestAdjusters(t *testing.T) {
	behind := Performance{
		BaseQuota:      dec("1290"),
		ExpectedToDate: dec("20645"),
		RealizedToDate: dec("15000"),
		RemainingDays:  15,
	}
	ahead := Performance{
		BaseQuota:      dec("1290"),
		ExpectedToDate: dec("20645"),
		RealizedToDate: dec("30000"),
		RemainingDays:  15,
	}
	onPace := Performance{
		BaseQuota:      dec("1290"),
		ExpectedToDate: dec("20645"),
		RealizedToDate: dec("20645"),
		RemainingDays:  15,
	}

	tests := []struct {
		name        string
		mode        PolicyMode
		performance Performance
		expected    float64
		delta       float64
	}{
		{name: "Estático atrás do ritmo", mode: ModeStatic, performance: behind, expected: 1290},
		{name: "Estático à frente do ritmo", mode: ModeStatic, performance: ahead, expected: 1290},
		{name: "Defensivo atrás do ritmo compensa o déficit", mode: ModeDefensive, performance: behind, expected: 1666.33, delta: 0.005},
		{name: "Defensivo à frente do ritmo mantém a base", mode: ModeDefensive, performance: ahead, expected: 1290},
		{name: "Agressivo à frente do ritmo bonifica", mode: ModeAggressive, performance: ahead, expected: 1874.9, delta: 0.5},
		{name: "Agressivo atrás do ritmo mantém a base", mode: ModeAggressive, performance: behind, expected: 1290},
		{name: "Completo atrás do ritmo usa regra defensiva", mode: ModeFull, performance: behind, expected: 1666.33, delta: 0.005},
		{name: "Completo à frente do ritmo usa regra agressiva", mode: ModeFull, performance: ahead, expected: 1874.9, delta: 0.5},
		{name: "Completo no ritmo mantém a base", mode: ModeFull, performance: onPace, expected: 1290},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ResolveAdjuster(tt.mode)(tt.performance)
			assert.InDelta(t, tt.expected, result.InexactFloat64(), tt.delta)
		})
	}
}

func TestAdjusters_EdgeCases(t *testing.T) {
	t.Run("Esperado zero não gera bônus", func(t *testing.T) {
		p := Performance{BaseQuota: dec("1000"), ExpectedToDate: dec("0"), RealizedToDate: dec("500"), RemainingDays: 30}

		assert.True(t, dec("1000").Equal(ResolveAdjuster(ModeAggressive)(p)))
		assert.True(t, dec("1000").Equal(ResolveAdjuster(ModeFull)(p)))
	})

	t.Run("Sem dias restantes o déficit inteiro vai para o dia", func(t *testing.T) {
		p := Performance{BaseQuota: dec("1000"), ExpectedToDate: dec("29000"), RealizedToDate: dec("25000"), RemainingDays: 0}

		assert.True(t, dec("5000").Equal(ResolveAdjuster(ModeDefensive)(p)))
		assert.True(t, dec("5000").Equal(ResolveAdjuster(ModeFull)(p)))
	})

	t.Run("Adjust usa o modo da configuração", func(t *testing.T) {
		p := Performance{BaseQuota: dec("100"), ExpectedToDate: dec("1000"), RealizedToDate: dec("400"), RemainingDays: 6}

		assert.True(t, dec("200").Equal(PolicyConfig{CompensateDeficit: true}.Adjust(p)))
		assert.True(t, dec("100").Equal(PolicyConfig{BonusAhead: true}.Adjust(p)))
	})
}
