package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"gstinvoice/internal/config"
	"gstinvoice/internal/domain"
	"gstinvoice/internal/port"
)

const accessAudience = "access"

// Claims represents the JWT claims of the single user.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// Token is an issued access token.
type Token struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// LoginInput is the DTO for login requests.
type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthService is the single-user login gate. A token is only honoured while
// the persisted session flag is set, so Logout revokes every issued token.
type AuthService interface {
	Login(ctx context.Context, input LoginInput) (*Token, error)
	Logout(ctx context.Context) error
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

type authService struct {
	sessions port.SessionRepository
	jwtCfg   config.JWTConfig
	authCfg  config.AuthConfig
}

// NewAuthService creates a new AuthService implementation.
func NewAuthService(sessions port.SessionRepository, jwtCfg config.JWTConfig, authCfg config.AuthConfig) AuthService {
	return &authService{
		sessions: sessions,
		jwtCfg:   jwtCfg,
		authCfg:  authCfg,
	}
}

func (s *authService) Login(ctx context.Context, input LoginInput) (*Token, error) {
	if s.authCfg.PasswordHash == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(input.Username), []byte(s.authCfg.Username)) != 1 {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.authCfg.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(input.Username)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.SetAuthenticated(ctx, true); err != nil {
		return nil, fmt.Errorf("auth.Login: %w", err)
	}
	return token, nil
}

func (s *authService) Logout(ctx context.Context) error {
	if err := s.sessions.SetAuthenticated(ctx, false); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}
	return nil
}

func (s *authService) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	active, err := s.sessions.IsAuthenticated(ctx)
	if err != nil {
		return nil, fmt.Errorf("auth.ValidateToken: %w", err)
	}
	if !active {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}

func (s *authService) generateToken(username string) (*Token, error) {
	now := time.Now()
	expiry := now.Add(s.jwtCfg.AccessTokenExpiry)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    s.jwtCfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiry),
			ID:        uuid.New().String(),
			Audience:  jwt.ClaimStrings{accessAudience},
		},
		Username: username,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtCfg.Secret))
	if err != nil {
		return nil, fmt.Errorf("signing access token: %w", err)
	}
	return &Token{AccessToken: signed, ExpiresAt: expiry}, nil
}

func (s *authService) parseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtCfg.Secret), nil
	}, jwt.WithAudience(accessAudience))
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}
	if !token.Valid {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}
