package ssoticadomain

import (
	"strings"

	"github.com/shopspring/decimal"
)

const canceledStatus = "cancelada"

type Order struct {
	ID             int             `json:"id,omitempty"`
	Date           string          `json:"data,omitempty"`
	Time           string          `json:"hora,omitempty"`
	Status         string          `json:"status,omitempty"`
	Number         int             `json:"numero,omitempty"`
	GrossAmount    decimal.Decimal `json:"valor_bruto,omitempty"`
	Increase       decimal.Decimal `json:"acrescimo,omitempty"`
	Discount       decimal.Decimal `json:"desconto,omitempty"`
	ExchangeCredit decimal.Decimal `json:"credito_troca,omitempty"`
	NetAmount      decimal.Decimal `json:"valor_liquido,omitempty"`
	Employee       Employee        `json:"funcionario,omitempty"`
}

type Employee struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"nome,omitempty"`
	CPF  string `json:"cpf,omitempty"`
	Role string `json:"funcao,omitempty"`
}

type GetSalesParams struct {
	CNPJ       string
	SecretName string
}

func (o Order) IsCanceled() bool {
	return strings.EqualFold(strings.TrimSpace(o.Status), canceledStatus)
}

// SumNetAmountByEmployee soma o valor líquido das vendas não canceladas do funcionário
func SumNetAmountByEmployee(orders []Order, employeeID int) (decimal.Decimal, int) {
	total := decimal.Zero
	quantity := 0

	for _, order := range orders {
		if order.Employee.ID != employeeID || order.IsCanceled() {
			continue
		}
		total = total.Add(order.NetAmount)
		quantity++
	}

	return total, quantity
}
