// Package quota calcula a cota diária de uma meta mensal e aplica as políticas de ajuste dinâmico.
package quota

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/store-goals-api/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// ComputeBaseQuota retorna a cota do dia para a meta: peso do dia quando existir, senão divisão uniforme.
func ComputeBaseQuota(goal *domain.MonthlyGoal, date time.Time, daysInMonth int) (domain.DailyQuota, error) {
	if daysInMonth <= 0 {
		return domain.DailyQuota{}, fmt.Errorf("%w: %d", ErrInvalidPeriod, daysInMonth)
	}
	if goal == nil {
		return domain.DailyQuota{}, ErrMissingGoal
	}

	if weight, ok := goal.DailyWeights.Weight(date); ok {
		return domain.DailyQuota{
			Quota:        goal.TargetAmount.Mul(weight).Div(hundred),
			StretchQuota: goal.StretchTargetAmount.Mul(weight).Div(hundred),
		}, nil
	}

	days := decimal.NewFromInt(int64(daysInMonth))
	return domain.DailyQuota{
		Quota:        goal.TargetAmount.Div(days),
		StretchQuota: goal.StretchTargetAmount.Div(days),
	}, nil
}

// DayFactor é a fração da meta mensal atribuída ao dia (peso/100 ou 1/dias do mês)
func DayFactor(goal *domain.MonthlyGoal, date time.Time, daysInMonth int) (decimal.Decimal, error) {
	if daysInMonth <= 0 {
		return decimal.Zero, fmt.Errorf("%w: %d", ErrInvalidPeriod, daysInMonth)
	}

	if goal != nil {
		if weight, ok := goal.DailyWeights.Weight(date); ok {
			return weight.Div(hundred), nil
		}
	}

	return decimal.NewFromInt(1).Div(decimal.NewFromInt(int64(daysInMonth))), nil
}

// MonthlyIncrement converte a parcela de um dia no acréscimo da meta mensal que eleva a cota
// do dia exatamente nessa parcela (parcela*100/peso ou parcela*dias do mês)
func MonthlyIncrement(goal *domain.MonthlyGoal, date time.Time, daysInMonth int, share decimal.Decimal) (decimal.Decimal, error) {
	factor, err := DayFactor(goal, date, daysInMonth)
	if err != nil {
		return decimal.Zero, err
	}
	if factor.IsZero() {
		return decimal.Zero, ErrZeroFactor
	}

	if goal != nil {
		if weight, ok := goal.DailyWeights.Weight(date); ok {
			return share.Mul(hundred).Div(weight), nil
		}
	}

	return share.Mul(decimal.NewFromInt(int64(daysInMonth))), nil
}

// ExpectedToDate soma as cotas base do primeiro dia do mês até ontem
func ExpectedToDate(goal *domain.MonthlyGoal, date time.Time, daysInMonth int) (decimal.Decimal, error) {
	if daysInMonth <= 0 {
		return decimal.Zero, fmt.Errorf("%w: %d", ErrInvalidPeriod, daysInMonth)
	}
	if goal == nil {
		return decimal.Zero, ErrMissingGoal
	}

	if len(goal.DailyWeights) == 0 {
		elapsed := decimal.NewFromInt(int64(date.Day() - 1))
		return goal.TargetAmount.Mul(elapsed).Div(decimal.NewFromInt(int64(daysInMonth))), nil
	}

	expected := decimal.Zero
	firstDay := FirstDayOfMonth(date)
	for day := firstDay; day.Before(truncateDay(date)); day = day.AddDate(0, 0, 1) {
		dailyQuota, err := ComputeBaseQuota(goal, day, daysInMonth)
		if err != nil {
			return decimal.Zero, err
		}
		expected = expected.Add(dailyQuota.Quota)
	}

	return expected, nil
}

// RemainingDays conta os dias restantes do mês incluindo o dia informado
func RemainingDays(date time.Time, daysInMonth int) int {
	remaining := daysInMonth - date.Day() + 1
	if remaining < 0 {
		return 0
	}
	return remaining
}

// DaysInMonth retorna a quantidade de dias do mês no formato yyyymm
func DaysInMonth(month string) (int, error) {
	start, err := ParseMonth(month)
	if err != nil {
		return 0, err
	}
	return start.AddDate(0, 1, -1).Day(), nil
}

// ParseMonth converte o mês yyyymm no primeiro dia do mês (UTC)
func ParseMonth(month string) (time.Time, error) {
	start, err := time.Parse(domain.MonthFormat, month)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidMonth, month)
	}
	return start, nil
}

// MonthOf retorna o mês de referência (yyyymm) de uma data
func MonthOf(date time.Time) string {
	return date.Format(domain.MonthFormat)
}

// ValidateDate garante que a data pertence ao mês da meta
func ValidateDate(goal *domain.MonthlyGoal, date time.Time) error {
	if goal == nil {
		return ErrMissingGoal
	}
	if MonthOf(date) != goal.Month {
		return fmt.Errorf("%w: %s não pertence a %s", ErrInvalidDate, date.Format(time.DateOnly), goal.Month)
	}
	return nil
}

func FirstDayOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

func truncateDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}
