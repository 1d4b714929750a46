package auth

import (
	"errors"
	"time"

	"github.com/GlebRadaev/serviceconnect/internal/domain"
	"github.com/golang-jwt/jwt"
)

const issuer = "serviceconnect"

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidTokenClaims = errors.New("invalid token claims")
)

type JWTServiceInterface interface {
	GenerateJWT(caller Caller, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type Claims struct {
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
	jwt.StandardClaims
}

type JWTService struct {
	secretKey []byte
}

func NewJWTService(secret string) *JWTService {
	return &JWTService{secretKey: []byte(secret)}
}

// GenerateJWT signs a token for caller. A zero expirationTime issues a token
// without the exp claim.
func (s *JWTService) GenerateJWT(caller Caller, expirationTime time.Time) (string, error) {
	claims := Claims{
		Email: caller.Email,
		Role:  caller.Role,
		StandardClaims: jwt.StandardClaims{
			IssuedAt: time.Now().Unix(),
			Issuer:   issuer,
		},
	}
	if !expirationTime.IsZero() {
		claims.ExpiresAt = expirationTime.Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Email == "" || !claims.Role.Valid() || claims.Issuer != issuer {
		return nil, ErrInvalidTokenClaims
	}

	return claims, nil
}
