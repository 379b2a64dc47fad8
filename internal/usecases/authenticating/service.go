package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/martonai/revenue-dashboard-api/internal/config"
	"github.com/martonai/revenue-dashboard-api/internal/domain"
)

var (
	ErrInvalidCredentials = errors.New("senha incorreta")
	ErrInvalidToken       = errors.New("token inválido")
)

// Authenticator é o gate de acesso ao dashboard. O dashboard é interno e tem
// uma única senha compartilhada; não existe cadastro de usuários.
type Authenticator interface {
	Login(password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{cfg: cfg}
}

// Login valida a senha compartilhada e emite o token de sessão. Quando o hash
// bcrypt está configurado ele tem precedência; a comparação em texto plano
// existe só para ambientes de desenvolvimento.
func (s *Service) Login(password string) (string, error) {
	if password == "" {
		return "", ErrInvalidCredentials
	}

	if s.cfg.Auth.PasswordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.Auth.PasswordHash), []byte(password)); err != nil {
			logrus.Warn("auth: login attempt with wrong password")
			return "", ErrInvalidCredentials
		}
	} else if password != s.cfg.Auth.Password {
		logrus.Warn("auth: login attempt with wrong password")
		return "", ErrInvalidCredentials
	}

	token, err := s.generateJWT()
	if err != nil {
		return "", fmt.Errorf("erro ao gerar o token de sessão: %w", err)
	}

	return token, nil
}

func (s *Service) generateJWT() (string, error) {
	now := time.Now()

	claims := domain.Claims{
		Role: "dashboard",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "revenue-dashboard-api",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Auth.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.Secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
