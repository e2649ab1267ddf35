package usecase

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/momozvault/go-backend/internal/cfg"
	"github.com/momozvault/go-backend/pkg/e"
	"github.com/momozvault/go-backend/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

const adminRole = "admin"

// AuthUseCase gates the admin surface with a single configured account
// and HS256 bearer tokens.
type AuthUseCase struct {
	auth   cfg.AuthCfg
	logger logger.Logger
}

func NewAuthUC(auth cfg.AuthCfg, logger logger.Logger) *AuthUseCase {
	return &AuthUseCase{
		auth:   auth,
		logger: logger,
	}
}

func (a *AuthUseCase) Login(ctx context.Context, email, password string) (*LoginRes, error) {
	const op = "AuthUseCase.Login"

	if email != a.auth.AdminEmail {
		return nil, e.Wrap(op, e.ErrInvalidCredentials)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.auth.AdminPasswordHash), []byte(password)); err != nil {
		return nil, e.Wrap(op, e.ErrInvalidCredentials)
	}

	expiresAt := time.Now().Add(a.auth.TokenTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  email,
		"role": adminRole,
		"exp":  expiresAt.Unix(),
		"iat":  time.Now().Unix(),
	})

	signed, err := token.SignedString(a.auth.JwtSecret)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &LoginRes{Token: signed, ExpiresAt: expiresAt}, nil
}

func (a *AuthUseCase) VerifyToken(tokenStr string) (*TokenClaims, error) {
	const op = "AuthUseCase.VerifyToken"

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, e.ErrInvalidToken
		}
		return a.auth.JwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, e.Wrap(op, e.ErrInvalidToken)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, e.Wrap(op, e.ErrInvalidToken)
	}

	email, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if role != adminRole {
		return nil, e.Wrap(op, e.ErrInvalidToken)
	}

	return &TokenClaims{Email: email, Role: role}, nil
}
