package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gdg-garage/hotel-admin/internal/config"
	"github.com/gdg-garage/hotel-admin/internal/database"
	"github.com/gdg-garage/hotel-admin/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const TokenDuration = 12 * time.Hour

// Claims are carried by every bearer token the API issues.
type Claims struct {
	UserID   uint     `json:"user_id"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	jwt.RegisteredClaims
}

type AuthHandler struct {
	db     *gorm.DB
	secret []byte
	ttl    time.Duration
}

func NewAuthHandler(cfg *config.Config, db *gorm.DB) *AuthHandler {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = TokenDuration
	}
	return &AuthHandler{
		db:     db,
		secret: []byte(cfg.JWTSecret),
		ttl:    ttl,
	}
}

func (h *AuthHandler) GenerateToken(user database.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		Roles:    user.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			ExpiresAt: jwt.NewNumericDate(now.Add(h.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.secret)
}

func (h *AuthHandler) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return h.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

type LoginInput struct {
	Body models.LoginRequest
}

type LoginOutput struct {
	Body models.LoginResponse
}

func (h *AuthHandler) HandleLogin(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	var user database.User
	if err := h.db.WithContext(ctx).Where("username = ?", input.Body.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, huma.Error401Unauthorized("Credenciales inválidas")
		}
		return nil, huma.Error500InternalServerError("Database error")
	}

	if !ComparePassword(user.PasswordHash, input.Body.Password) {
		return nil, huma.Error401Unauthorized("Credenciales inválidas")
	}

	token, err := h.GenerateToken(user)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to generate token")
	}

	out := &LoginOutput{}
	out.Body = models.LoginResponse{
		Token:    token,
		Username: user.Username,
		Roles:    user.Roles,
	}
	return out, nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

func ComparePassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
