package domain

type Collaborator struct {
	ID      string `json:"id"`
	StoreID string `json:"store_id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Active  bool   `json:"active"`
	// Identificador do funcionário no ERP (SSOtica)
	ExternalEmployeeID *int `json:"external_employee_id"`
}
