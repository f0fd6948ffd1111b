package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tokens signs and verifies the two JWT shapes used by the API: customer
// tokens (1h) and admin tokens (2h, carrying the role claim).
type Tokens struct {
	secret []byte
}

func NewTokens(secret string) *Tokens {
	return &Tokens{secret: []byte(secret)}
}

// UserClaims is the customer token payload.
type UserClaims struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// AdminClaims is the admin token payload.
type AdminClaims struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// IssueUserToken signs a customer token valid for one hour.
func (t *Tokens) IssueUserToken(id int64, email string) (string, error) {
	claims := UserClaims{
		ID:    id,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// IssueAdminToken signs an admin token valid for two hours.
func (t *Tokens) IssueAdminToken(id int64, email, role string) (string, error) {
	claims := AdminClaims{
		ID:    id,
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(2 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

var ErrInvalidToken = errors.New("invalid or expired token")

// VerifyUserToken parses and validates a customer token.
func (t *Tokens) VerifyUserToken(raw string) (*UserClaims, error) {
	claims := &UserClaims{}
	if err := t.verify(raw, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// VerifyAdminToken parses and validates an admin token.
func (t *Tokens) VerifyAdminToken(raw string) (*AdminClaims, error) {
	claims := &AdminClaims{}
	if err := t.verify(raw, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func (t *Tokens) verify(raw string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(raw, claims, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tok.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}
	return nil
}
