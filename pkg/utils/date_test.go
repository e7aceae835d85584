package utils

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateOrToday(t *testing.T) {
	date, err := ParseDateOrToday("2024-06-16", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC), date)

	_, err = ParseDateOrToday("16/06/2024", time.UTC)
	assert.Error(t, err)

	today, err := ParseDateOrToday("", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, today.Location())
	assert.Zero(t, today.Hour())
}

func TestToday(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	// 02h UTC ainda é o dia anterior em São Paulo
	now := time.Date(2024, 7, 1, 2, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), Today(now, loc))
	assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), Today(now, nil))
}

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, "397.5", RoundMoney(decimal.RequireFromString("397.499999")).String())
	assert.Equal(t, "1000", RoundMoney(decimal.NewFromInt(1000)).String())
}
