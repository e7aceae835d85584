package domain

type Store struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	CNPJ              *string `json:"cnpj"`
	SecretName        *string `json:"secret_name"`
	CompensateDeficit bool    `json:"compensate_deficit"`
	BonusAhead        bool    `json:"bonus_ahead"`
}

// HasSalesIntegration indica se a loja possui os dados necessários para consultar o SSOtica
func (s *Store) HasSalesIntegration() bool {
	return s.CNPJ != nil && *s.CNPJ != "" && s.SecretName != nil && *s.SecretName != ""
}
