package ssoticadomain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSumNetAmountByEmployee(t *testing.T) {
	orders := []Order{
		{ID: 1, Status: "finalizada", NetAmount: decimal.NewFromFloat(350.50), Employee: Employee{ID: 10}},
		{ID: 2, Status: "Cancelada", NetAmount: decimal.NewFromFloat(900), Employee: Employee{ID: 10}},
		{ID: 3, Status: "finalizada", NetAmount: decimal.NewFromFloat(120.25), Employee: Employee{ID: 10}},
		{ID: 4, Status: "finalizada", NetAmount: decimal.NewFromFloat(1000), Employee: Employee{ID: 20}},
	}

	tests := []struct {
		name             string
		employeeID       int
		expectedTotal    string
		expectedQuantity int
	}{
		{
			name:             "Soma apenas vendas não canceladas do funcionário",
			employeeID:       10,
			expectedTotal:    "470.75",
			expectedQuantity: 2,
		},
		{
			name:             "Outro funcionário",
			employeeID:       20,
			expectedTotal:    "1000",
			expectedQuantity: 1,
		},
		{
			name:             "Funcionário sem vendas",
			employeeID:       99,
			expectedTotal:    "0",
			expectedQuantity: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, quantity := SumNetAmountByEmployee(orders, tt.employeeID)

			assert.Equal(t, tt.expectedTotal, total.String())
			assert.Equal(t, tt.expectedQuantity, quantity)
		})
	}
}

func TestOrder_IsCanceled(t *testing.T) {
	assert.True(t, Order{Status: "cancelada"}.IsCanceled())
	assert.True(t, Order{Status: " CANCELADA "}.IsCanceled())
	assert.False(t, Order{Status: "finalizada"}.IsCanceled())
	assert.False(t, Order{}.IsCanceled())
}
