package domain

import "github.com/golang-jwt/jwt/v5"

// Claims são as claims do token de sessão emitido pelo gate de senha.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
