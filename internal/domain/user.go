package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims são emitidas pelo serviço de usuários da plataforma e apenas validadas aqui
type Claims struct {
	UserID     int
	UserName   string
	UserEmail  string
	UserActive bool
	UserRoleID int
	// Lojas que o usuário pode consultar. Vazio para administradores.
	UserStores []string
	jwt.RegisteredClaims
}

func (c *Claims) CanAccessStore(storeID string) bool {
	for _, id := range c.UserStores {
		if id == storeID {
			return true
		}
	}
	return false
}
